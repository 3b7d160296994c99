package student

import (
	"context"
	"sync"

	"github.com/pkg/errors"

	"github.com/Jeevana090908/stdgrd/core"
	"github.com/Jeevana090908/stdgrd/core/grade"
)

var (
	// errors
	ErrNotFound    = errors.New("student not found")
	ErrInvalidName = errors.New("invalid name: use only letters and single spaces between words (no numbers or special characters)")
	ErrDuplicateID = errors.New("student ID already exists")
)

const nameField = "name"

// Repository persists the whole student collection as one document.
type Repository interface {
	LoadStudents(ctx context.Context) ([]Student, error)
	SaveStudents(ctx context.Context, students []Student) error
}

// Directory keeps the student collection keyed by Student.ID, in insertion order.
// Every mutation is persisted as a full-collection write; the in-memory
// collection only changes once the write succeeded.
type Directory struct {
	mu       sync.RWMutex
	repo     Repository
	students []Student
}

func NewDirectory(ctx context.Context, repo Repository) (*Directory, error) {
	students, err := repo.LoadStudents(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "loading students")
	}
	return &Directory{repo: repo, students: students}, nil
}

func invalidNameErr() error {
	return core.NewValidationError(ErrInvalidName, core.FieldError{Field: nameField, Error: ErrInvalidName.Error()})
}

func (d *Directory) indexOf(id string) int {
	for i, s := range d.students {
		if s.ID == id {
			return i
		}
	}
	return -1
}

// snapshot must be called with d.mu held.
func (d *Directory) snapshot() []Student {
	students := make([]Student, 0, len(d.students))
	for _, s := range d.students {
		students = append(students, s.Clone())
	}
	return students
}

// commit must be called with d.mu held.
func (d *Directory) commit(ctx context.Context, students []Student) error {
	if err := d.repo.SaveStudents(ctx, students); err != nil {
		return errors.Wrap(err, "saving students")
	}
	d.students = students
	return nil
}

// All returns a copy of the collection in store order.
func (d *Directory) All() []Student {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.snapshot()
}

func (d *Directory) FindByID(id string) (Student, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if i := d.indexOf(id); i >= 0 {
		return d.students[i].Clone(), nil
	}
	return Student{}, ErrNotFound
}

// Upsert replaces the Student with the same ID in place, keeping its stored password,
// or appends the candidate when the ID is new.
func (d *Directory) Upsert(ctx context.Context, candidate Student) (Student, error) {
	if !core.IsPersonName(candidate.Name) {
		return Student{}, invalidNameErr()
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	students := d.snapshot()
	candidate = candidate.Clone()
	if i := d.indexOf(candidate.ID); i >= 0 {
		candidate.Pass = students[i].Pass
		students[i] = candidate
	} else {
		students = append(students, candidate)
	}
	if err := d.commit(ctx, students); err != nil {
		return Student{}, err
	}
	return candidate.Clone(), nil
}

// AddOrUpdate grades the entered marks and upserts the resulting Student.
// The password defaults to the ID for students who never signed up.
func (d *Directory) AddOrUpdate(ctx context.Context, ns NewStudent) (Student, error) {
	marks := ns.subjectMarks()
	res := grade.Compute(marks)
	total := res.Total

	return d.Upsert(ctx, Student{
		ID:      ns.ID,
		Name:    ns.Name,
		Branch:  ns.Branch,
		Year:    ns.Year,
		Section: ns.Section,
		Pass:    ns.ID,
		Marks:   marks,
		Total:   &total,
		CGPA:    CGPA(res.CGPA),
		Grade:   res.Grade,
	})
}

// Remove deletes the Student with the given ID. Unknown IDs are not an error.
func (d *Directory) Remove(ctx context.Context, id string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	students := make([]Student, 0, len(d.students))
	for _, s := range d.students {
		if s.ID != id {
			students = append(students, s.Clone())
		}
	}
	return d.commit(ctx, students)
}

// Signup registers a Student without marks.
func (d *Directory) Signup(ctx context.Context, su Signup) (Student, error) {
	if !core.IsPersonName(su.Name) {
		return Student{}, invalidNameErr()
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if d.indexOf(su.ID) >= 0 {
		return Student{}, core.NewConflictError(ErrDuplicateID)
	}

	st := Student{
		ID:     su.ID,
		Name:   su.Name,
		Pass:   su.Password,
		Branch: "",
		Marks:  []grade.SubjectMark{},
		CGPA:   Unrated,
	}
	students := append(d.snapshot(), st)
	if err := d.commit(ctx, students); err != nil {
		return Student{}, err
	}
	return st.Clone(), nil
}
