package classstore

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/san-kum/classkit/internal/roster"
)

type Store struct {
	backend Backend
	logger  *log.Logger
	now     func() time.Time
	newID   func() string
}

type Option func(*Store)

func WithLogger(l *log.Logger) Option {
	return func(s *Store) { s.logger = l }
}

func withClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

func New(backend Backend, opts ...Option) *Store {
	s := &Store{
		backend: backend,
		logger:  log.Default(),
		now:     time.Now,
		newID:   func() string { return uuid.NewString() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// List returns every saved class in storage order.
func (s *Store) List(ctx context.Context) ([]SavedClass, error) {
	return s.backend.Read(ctx)
}

// Save creates or overwrites the class named req.Name.
func (s *Store) Save(ctx context.Context, req SaveRequest) (*SavedClass, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, ErrEmptyName
	}

	classes, err := s.backend.Read(ctx)
	if err != nil {
		return nil, err
	}

	var existing *SavedClass
	kept := make([]SavedClass, 0, len(classes)+1)
	for i := range classes {
		if classes[i].Name == name {
			existing = &classes[i]
			continue
		}
		kept = append(kept, classes[i])
	}

	saved := SavedClass{
		ID:        s.newID(),
		Name:      name,
		Students:  append([]roster.Student{}, req.Students...),
		Timestamp: s.now().UnixMilli(),
	}
	if existing != nil {
		saved.ID = existing.ID
		saved.Grid = existing.Grid
		saved.Rows = existing.Rows
		saved.Cols = existing.Cols
		saved.BlockedCells = existing.BlockedCells
	}

	switch {
	case req.Grid != nil:
		l := req.Grid.Layout()
		saved.Grid = req.Grid.Matrix()
		saved.Rows, saved.Cols = l.Rows, l.Cols
		saved.BlockedCells = formatBlocked(l.Blocked)
	case req.Layout != nil:
		saved.Rows, saved.Cols = req.Layout.Rows, req.Layout.Cols
		saved.BlockedCells = formatBlocked(req.Layout.Blocked)
	}

	if err := s.backend.Write(ctx, append(kept, saved)); err != nil {
		return nil, err
	}
	s.logger.Debug("saved class", "name", saved.Name, "id", saved.ID, "students", len(saved.Students), "seating", saved.HasSeating())
	return &saved, nil
}

// Load returns the class saved under name.
func (s *Store) Load(ctx context.Context, name string) (*SavedClass, error) {
	return s.find(ctx, func(c *SavedClass) bool { return c.Name == strings.TrimSpace(name) })
}

// Get returns the class with the given id.
func (s *Store) Get(ctx context.Context, id string) (*SavedClass, error) {
	return s.find(ctx, func(c *SavedClass) bool { return c.ID == id })
}

// Delete removes the class with the given id.
func (s *Store) Delete(ctx context.Context, id string) error {
	classes, err := s.backend.Read(ctx)
	if err != nil {
		return err
	}
	kept := classes[:0]
	found := false
	for _, c := range classes {
		if c.ID == id {
			found = true
			continue
		}
		kept = append(kept, c)
	}
	if !found {
		return ErrNotFound
	}
	if err := s.backend.Write(ctx, kept); err != nil {
		return err
	}
	s.logger.Debug("deleted class", "id", id)
	return nil
}

// DeleteByName removes the class saved under name.
func (s *Store) DeleteByName(ctx context.Context, name string) error {
	c, err := s.Load(ctx, name)
	if err != nil {
		return err
	}
	return s.Delete(ctx, c.ID)
}

func (s *Store) find(ctx context.Context, match func(*SavedClass) bool) (*SavedClass, error) {
	classes, err := s.backend.Read(ctx)
	if err != nil {
		return nil, err
	}
	for i := range classes {
		if match(&classes[i]) {
			return &classes[i], nil
		}
	}
	return nil, ErrNotFound
}
