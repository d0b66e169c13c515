// Package roster holds the student list a class is built from: the
// Student record, roster editing, bulk paste and spreadsheet import.
package roster

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

type Gender string

const (
	Male   Gender = "m"
	Female Gender = "v"
)

// Student is one roster entry. ID is assigned once and survives edits.
type Student struct {
	ID         int64  `json:"id"`
	Name       string `json:"name" validate:"required"`
	Gender     Gender `json:"gender" validate:"oneof=m v"`
	Disruptive bool   `json:"disruptive"`
	FrontRow   bool   `json:"frontRow"`
}

func (s Student) String() string {
	return s.Name
}

var validate = validator.New()

// Validate checks the struct tags on s.
func Validate(s Student) error {
	if strings.TrimSpace(s.Name) == "" {
		return ErrEmptyName
	}
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("roster: invalid student %q: %w", s.Name, err)
	}
	return nil
}

// ParseGender maps free text to a Gender, defaulting to Male.
func ParseGender(s string) Gender {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "v", "f", "female", "vrouw", "meisje", "girl":
		return Female
	default:
		return Male
	}
}

// idSource hands out increasing ids derived from the wall clock, so ids
// from separate sessions stay distinct within a saved class.
type idSource struct {
	last int64
	now  func() time.Time
}

func (g *idSource) next() int64 {
	id := g.now().UnixMilli()
	if id <= g.last {
		id = g.last + 1
	}
	g.last = id
	return id
}
