// Package sweep measures how often the seat allocator fails to separate
// disruptive students as their number grows, for a fixed room and
// attempt budget.
package sweep

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"runtime"
	"sync"
	"time"

	"github.com/san-kum/classkit/internal/roster"
	"github.com/san-kum/classkit/internal/seating"
)

var ErrInvalidSpec = errors.New("sweep: invalid spec")

type Spec struct {
	Layout seating.Layout
	// Students is the class size; zero fills every free seat.
	Students int
	// MaxDisruptive is the largest disruptive count tried; zero means
	// Students.
	MaxDisruptive int
	Trials        int
	// Seed fixes every trial's source; zero seeds from the clock.
	Seed        int64
	MaxAttempts int
	// Workers bounds concurrency; zero means runtime.NumCPU().
	Workers int
}

// Point aggregates the trials for one disruptive count.
type Point struct {
	Disruptive      int
	Trials          int
	Warnings        int
	MeanAttempts    float64
	MeanUnseparated float64
}

func (p Point) WarningRate() float64 {
	if p.Trials == 0 {
		return 0
	}
	return float64(p.Warnings) / float64(p.Trials)
}

type Result struct {
	Spec   Spec
	Points []Point
}

// Rates returns the warning rate per disruptive count, starting at zero.
func (r *Result) Rates() []float64 {
	out := make([]float64, len(r.Points))
	for i, p := range r.Points {
		out[i] = p.WarningRate()
	}
	return out
}

type trial struct {
	disruptive int
	seed       int64
}

type outcome struct {
	warned      bool
	attempts    int
	unseparated int
	err         error
}

func (s *Spec) normalize() error {
	capacity := s.Layout.Capacity()
	if s.Layout.Rows < 1 || s.Layout.Cols < 1 {
		return fmt.Errorf("%w: layout %dx%d", ErrInvalidSpec, s.Layout.Rows, s.Layout.Cols)
	}
	if s.Students == 0 {
		s.Students = capacity
	}
	if s.Students < 0 || s.Students > capacity {
		return fmt.Errorf("%w: %d students for %d seats", ErrInvalidSpec, s.Students, capacity)
	}
	if s.MaxDisruptive <= 0 || s.MaxDisruptive > s.Students {
		s.MaxDisruptive = s.Students
	}
	if s.Trials < 1 {
		return fmt.Errorf("%w: trials must be positive", ErrInvalidSpec)
	}
	if s.MaxAttempts < 1 {
		s.MaxAttempts = seating.DefaultMaxAttempts
	}
	if s.Workers < 1 {
		s.Workers = runtime.NumCPU()
	}
	if s.Seed == 0 {
		s.Seed = time.Now().UnixNano()
	}
	return nil
}

// Run allocates Trials classes for every disruptive count from zero to
// MaxDisruptive. Each trial has its own seeded source, so results depend
// only on the spec, not on scheduling.
func Run(ctx context.Context, spec Spec) (*Result, error) {
	if err := spec.normalize(); err != nil {
		return nil, err
	}

	counts := spec.MaxDisruptive + 1
	trials := make([]trial, 0, counts*spec.Trials)
	for d := 0; d < counts; d++ {
		for t := 0; t < spec.Trials; t++ {
			trials = append(trials, trial{disruptive: d, seed: spec.Seed + int64(len(trials)) + 1})
		}
	}
	outcomes := make([]outcome, len(trials))

	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < spec.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				outcomes[idx] = runTrial(spec, trials[idx])
			}
		}()
	}

	var cancelled error
feed:
	for i := range trials {
		if err := ctx.Err(); err != nil {
			cancelled = err
			break
		}
		select {
		case jobs <- i:
		case <-ctx.Done():
			cancelled = ctx.Err()
			break feed
		}
	}
	close(jobs)
	wg.Wait()
	if cancelled != nil {
		return nil, cancelled
	}

	points := make([]Point, counts)
	for d := range points {
		points[d].Disruptive = d
	}
	for i, o := range outcomes {
		if o.err != nil {
			return nil, o.err
		}
		p := &points[trials[i].disruptive]
		p.Trials++
		if o.warned {
			p.Warnings++
		}
		p.MeanAttempts += float64(o.attempts)
		p.MeanUnseparated += float64(o.unseparated)
	}
	for d := range points {
		if n := float64(points[d].Trials); n > 0 {
			points[d].MeanAttempts /= n
			points[d].MeanUnseparated /= n
		}
	}
	return &Result{Spec: spec, Points: points}, nil
}

func runTrial(spec Spec, t trial) outcome {
	students := make([]roster.Student, spec.Students)
	for i := range students {
		students[i] = roster.Student{
			ID:         int64(i + 1),
			Name:       fmt.Sprintf("s%d", i+1),
			Gender:     roster.Male,
			Disruptive: i < t.disruptive,
		}
	}
	// Built directly: rng.New treats seed 0 as "use the clock".
	r := rand.New(rand.NewSource(t.seed))
	res, err := seating.Allocate(students, spec.Layout, r, seating.WithMaxAttempts(spec.MaxAttempts))
	if err != nil {
		return outcome{err: err}
	}
	return outcome{
		warned:      len(res.Warnings) > 0,
		attempts:    res.Attempts,
		unseparated: len(res.Unseparated),
	}
}
