// Package grouping splits a class into small groups.
//
// Disruptive students are dealt out round-robin first so no group gets
// more than one extra; everyone else tops up the smallest group. The
// result is balanced to within one student when a group count is given.
package grouping

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/san-kum/classkit/internal/rng"
	"github.com/san-kum/classkit/internal/roster"
)

var (
	// ErrInvalidMode indicates a negative group size or count.
	ErrInvalidMode = errors.New("grouping: group size and count must not be negative")

	// ErrOutOfRange indicates a group or member index that does not exist.
	ErrOutOfRange = errors.New("grouping: index out of range")
)

// Group is an unordered set of students.
type Group []roster.Student

// Mode picks how many groups to make.
type Mode struct {
	Size  int
	Count int
}

// BySize makes as many groups as needed for groups of about n.
func BySize(n int) Mode { return Mode{Size: n} }

// ByCount makes exactly k groups (fewer if there are fewer students).
func ByCount(k int) Mode { return Mode{Count: k} }

func (m Mode) String() string {
	if m.Count > 0 {
		return fmt.Sprintf("%d groups", m.Count)
	}
	return fmt.Sprintf("groups of %d", m.Size)
}

// groupCount returns K for n students. A zero size or count means no
// groups; K never exceeds n since empty groups are pruned anyway.
func (m Mode) groupCount(n int) (int, error) {
	if m.Size < 0 || m.Count < 0 {
		return 0, ErrInvalidMode
	}
	k := 0
	switch {
	case m.Count > 0:
		k = m.Count
	case m.Size > 0:
		k = n / m.Size
		if n%m.Size != 0 {
			k++
		}
	}
	if k > n {
		k = n
	}
	return k, nil
}

// Make shuffles students and deals them into groups. An empty class or a
// zero size or count yields no groups and no error.
func Make(students []roster.Student, mode Mode, r *rand.Rand) ([]Group, error) {
	if len(students) == 0 {
		return nil, nil
	}
	k, err := mode.groupCount(len(students))
	if err != nil {
		return nil, err
	}
	if k == 0 {
		return nil, nil
	}

	shuffled := rng.Shuffle(rng.OrNew(r), students)

	groups := make([]Group, k)
	var normal []roster.Student
	d := 0
	for _, s := range shuffled {
		if !s.Disruptive {
			normal = append(normal, s)
			continue
		}
		groups[d%k] = append(groups[d%k], s)
		d++
	}

	for _, s := range normal {
		i := smallest(groups)
		groups[i] = append(groups[i], s)
	}

	return Prune(groups), nil
}

// smallest returns the index of the smallest group, lowest index first.
func smallest(groups []Group) int {
	min := 0
	for i := range groups {
		if len(groups[i]) < len(groups[min]) {
			min = i
		}
	}
	return min
}

// Prune drops empty groups.
func Prune(groups []Group) []Group {
	out := groups[:0:0]
	for _, g := range groups {
		if len(g) > 0 {
			out = append(out, g)
		}
	}
	return out
}

// Move takes member idx out of group from and appends it to group to,
// then prunes empty groups. No balancing rule is applied: a manual move
// is kept as made. The input slice is not modified.
func Move(groups []Group, from, idx, to int) ([]Group, error) {
	if from < 0 || from >= len(groups) || to < 0 || to >= len(groups) {
		return nil, fmt.Errorf("%w: group %d -> %d of %d", ErrOutOfRange, from, to, len(groups))
	}
	if idx < 0 || idx >= len(groups[from]) {
		return nil, fmt.Errorf("%w: member %d of group %d", ErrOutOfRange, idx, from)
	}

	out := Clone(groups)
	s := out[from][idx]
	out[from] = append(out[from][:idx], out[from][idx+1:]...)
	out[to] = append(out[to], s)
	return Prune(out), nil
}

// AddGroup appends an empty group to move students into. It survives
// until the next Move or Make prunes it.
func AddGroup(groups []Group) []Group {
	return append(Clone(groups), Group{})
}

// Clone deep-copies groups.
func Clone(groups []Group) []Group {
	out := make([]Group, len(groups))
	for i, g := range groups {
		out[i] = append(Group(nil), g...)
	}
	return out
}

// Locate finds the group and member index of a student id.
func Locate(groups []Group, id int64) (group, idx int, ok bool) {
	for gi, g := range groups {
		for mi, s := range g {
			if s.ID == id {
				return gi, mi, true
			}
		}
	}
	return 0, 0, false
}
