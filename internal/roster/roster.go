package roster

import (
	"math/rand"
	"strings"
	"time"
)

// Roster is an ordered, editable student list.
type Roster struct {
	students []Student
	ids      idSource
}

// New returns a roster holding a copy of students. Ids already present
// are respected by the id generator.
func New(students []Student) *Roster {
	r := &Roster{ids: idSource{now: time.Now}}
	r.students = append(r.students, students...)
	for _, s := range students {
		if s.ID > r.ids.last {
			r.ids.last = s.ID
		}
	}
	return r
}

// Students returns a copy of the current list.
func (r *Roster) Students() []Student {
	out := make([]Student, len(r.students))
	copy(out, r.students)
	return out
}

func (r *Roster) Len() int { return len(r.students) }

// Add appends one student and returns it with its assigned id.
func (r *Roster) Add(name string, gender Gender, disruptive, frontRow bool) (Student, error) {
	if gender == "" {
		gender = Male
	}
	s := Student{
		Name:       strings.TrimSpace(name),
		Gender:     gender,
		Disruptive: disruptive,
		FrontRow:   frontRow,
	}
	if err := Validate(s); err != nil {
		return Student{}, err
	}
	s.ID = r.ids.next()
	r.students = append(r.students, s)
	return s, nil
}

// Paste adds one student per non-blank line of text. Pasted students get
// the default gender and no flags.
func (r *Roster) Paste(text string) []Student {
	var added []Student
	for _, line := range strings.Split(text, "\n") {
		name := strings.TrimSpace(line)
		if name == "" {
			continue
		}
		s := Student{ID: r.ids.next(), Name: name, Gender: Male}
		r.students = append(r.students, s)
		added = append(added, s)
	}
	return added
}

// Edit applies fn to the student with the given id. The id cannot be
// changed by fn.
func (r *Roster) Edit(id int64, fn func(*Student)) (Student, error) {
	for i := range r.students {
		if r.students[i].ID != id {
			continue
		}
		updated := r.students[i]
		fn(&updated)
		updated.ID = id
		updated.Name = strings.TrimSpace(updated.Name)
		if updated.Gender == "" {
			updated.Gender = Male
		}
		if err := Validate(updated); err != nil {
			return Student{}, err
		}
		r.students[i] = updated
		return updated, nil
	}
	return Student{}, ErrNotFound
}

// Remove deletes the student with the given id.
func (r *Roster) Remove(id int64) error {
	for i := range r.students {
		if r.students[i].ID == id {
			r.students = append(r.students[:i], r.students[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (r *Roster) Find(id int64) (Student, bool) {
	for _, s := range r.students {
		if s.ID == id {
			return s, true
		}
	}
	return Student{}, false
}

// FindByName returns the first student whose name matches, ignoring case.
func (r *Roster) FindByName(name string) (Student, bool) {
	name = strings.TrimSpace(name)
	for _, s := range r.students {
		if strings.EqualFold(s.Name, name) {
			return s, true
		}
	}
	return Student{}, false
}

// Pick draws one student uniformly at random.
func Pick(students []Student, rnd *rand.Rand) (Student, error) {
	if len(students) == 0 {
		return Student{}, ErrEmptyRoster
	}
	return students[rnd.Intn(len(students))], nil
}
