// Package gradebook is the application context the view layers talk to.
// It owns the student directory, the teacher registry and the session slot.
package gradebook

import (
	"context"

	"github.com/pkg/errors"

	"github.com/Jeevana090908/stdgrd/core"
	"github.com/Jeevana090908/stdgrd/core/grade"
	"github.com/Jeevana090908/stdgrd/core/roster"
	"github.com/Jeevana090908/stdgrd/core/session"
	"github.com/Jeevana090908/stdgrd/core/student"
	"github.com/Jeevana090908/stdgrd/core/teacher"
)

var ErrAnonymous = errors.New("not logged in")

// Repository is a record store holding both collections.
type Repository interface {
	student.Repository
	teacher.Repository
}

type Service struct {
	students *student.Directory
	teachers *teacher.Registry
	sessions *session.Context
}

func NewService(ctx context.Context, repo Repository) (*Service, error) {
	students, err := student.NewDirectory(ctx, repo)
	if err != nil {
		return nil, err
	}
	teachers, err := teacher.NewRegistry(ctx, repo)
	if err != nil {
		return nil, err
	}
	return &Service{
		students: students,
		teachers: teachers,
		sessions: session.NewContext(teachers, students),
	}, nil
}

// SignupRequest carries either role's signup fields.
// For teachers ID is the username and Name is ignored.
type SignupRequest struct {
	ID       string
	Name     string
	Password string
}

func (svc *Service) Login(role session.Role, username, password string) (session.Session, error) {
	return svc.sessions.Login(role, username, password)
}

func (svc *Service) Logout() {
	svc.sessions.Logout()
}

// Session returns the current session.
func (svc *Service) Session() (session.Session, bool) {
	return svc.sessions.Current()
}

// LookupSession returns the current session when its ID is id.
func (svc *Service) LookupSession(id string) (session.Session, bool) {
	return svc.sessions.Lookup(id)
}

func (svc *Service) Signup(ctx context.Context, role session.Role, req SignupRequest) error {
	switch role {
	case session.RoleTeacher:
		_, err := svc.teachers.Signup(ctx, teacher.Signup{Username: req.ID, Password: req.Password})
		return err
	case session.RoleStudent:
		_, err := svc.students.Signup(ctx, student.Signup{ID: req.ID, Name: req.Name, Password: req.Password})
		return err
	}
	return core.NewValidationError(session.ErrUnknownRole, core.FieldError{Field: "role", Error: session.ErrUnknownRole.Error()})
}

func (svc *Service) AddOrUpdateStudent(ctx context.Context, ns student.NewStudent) (student.Student, error) {
	return svc.students.AddOrUpdate(ctx, ns)
}

func (svc *Service) DeleteStudent(ctx context.Context, id string) error {
	return svc.students.Remove(ctx, id)
}

// AddTeacher registers a teacher login outside of any session.
func (svc *Service) AddTeacher(ctx context.Context, username, password string) error {
	_, err := svc.teachers.Signup(ctx, teacher.Signup{Username: username, Password: password})
	return err
}

// Project returns the roster rows for mode. Rows are removable only while a
// teacher is logged in.
func (svc *Service) Project(mode roster.Mode) ([]roster.Row, error) {
	rows, err := roster.Project(svc.students.All(), mode)
	if err != nil {
		return nil, err
	}
	if sess, ok := svc.sessions.Current(); ok && sess.IsTeacher() {
		for i := range rows {
			rows[i].Removable = true
		}
	}
	return rows, nil
}

// SubjectResult is one line of a student's dashboard.
type SubjectResult struct {
	Subject string
	Mark    float64
	Passed  bool
}

// Dashboard is what the logged in actor sees on their home page.
type Dashboard struct {
	Role     session.Role
	Teacher  string
	Student  *student.Student
	Subjects []SubjectResult
	// Graded is false for a student whose marks were never entered.
	Graded bool
}

// Dashboard renders the session's snapshot. A student sees the record as it
// was at login.
func (svc *Service) Dashboard() (Dashboard, error) {
	sess, ok := svc.sessions.Current()
	if !ok {
		return Dashboard{}, core.NewAuthError(ErrAnonymous)
	}

	dash := Dashboard{Role: sess.Role}
	if sess.IsTeacher() {
		dash.Teacher = sess.Identity()
		return dash, nil
	}

	st := sess.Student
	dash.Student = st
	dash.Graded = st.HasMarks()
	dash.Subjects = make([]SubjectResult, 0, len(st.Marks))
	for _, m := range st.Marks {
		dash.Subjects = append(dash.Subjects, SubjectResult{Subject: m.Subject, Mark: m.Mark, Passed: m.Passed()})
	}
	return dash, nil
}

// Summary is the "Total | CGPA | Grade" line of a graded dashboard.
func (d Dashboard) Summary() (total float64, cgpa string, grd string) {
	if d.Student == nil || !d.Graded {
		return 0, grade.FormatCGPA(0), ""
	}
	if d.Student.Total != nil {
		total = *d.Student.Total
	}
	return total, string(d.Student.CGPA), d.Student.Grade
}
