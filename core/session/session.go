// Package session holds the single authenticated actor of the process.
package session

import (
	"sync"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/Jeevana090908/stdgrd/core"
	"github.com/Jeevana090908/stdgrd/core/student"
	"github.com/Jeevana090908/stdgrd/core/teacher"
)

type Role string

// Roles
const (
	RoleTeacher Role = "teacher"
	RoleStudent Role = "student"
)

var (
	// errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrStudentNotFound    = errors.New("student not found or wrong password")
	ErrUnknownRole        = errors.New("unknown role")
)

func (r Role) Valid() bool {
	return r == RoleTeacher || r == RoleStudent
}

// Session is the Authenticated state. Exactly one of Teacher and Student is set,
// matching Role. Student is a snapshot taken at login.
type Session struct {
	ID      string
	Role    Role
	Teacher *teacher.Credential
	Student *student.Student
}

// Identity is the username or student ID the session was opened with.
func (s Session) Identity() string {
	switch {
	case s.Teacher != nil:
		return s.Teacher.User
	case s.Student != nil:
		return s.Student.ID
	}
	return ""
}

func (s Session) IsTeacher() bool { return s.Role == RoleTeacher }

type TeacherAuthenticator interface {
	Authenticate(username, password string) (teacher.Credential, error)
}

type StudentFinder interface {
	FindByID(id string) (student.Student, error)
}

// Context is a single slot state machine: Anonymous or Authenticated.
type Context struct {
	mu       sync.RWMutex
	teachers TeacherAuthenticator
	students StudentFinder
	current  *Session
}

func NewContext(teachers TeacherAuthenticator, students StudentFinder) *Context {
	return &Context{teachers: teachers, students: students}
}

// Login replaces the current session on success. On failure the context is
// left as it was and an AuthError is returned.
func (c *Context) Login(role Role, username, password string) (Session, error) {
	var sess Session

	switch role {
	case RoleTeacher:
		cred, err := c.teachers.Authenticate(username, password)
		if err != nil {
			return Session{}, core.NewAuthError(ErrInvalidCredentials)
		}
		sess = Session{Role: role, Teacher: &cred}
	case RoleStudent:
		st, err := c.students.FindByID(username)
		if err != nil || st.Pass != password {
			return Session{}, core.NewAuthError(ErrStudentNotFound)
		}
		sess = Session{Role: role, Student: &st}
	default:
		return Session{}, core.NewValidationError(ErrUnknownRole, core.FieldError{Field: "role", Error: ErrUnknownRole.Error()})
	}
	sess.ID = uuid.New().String()

	c.mu.Lock()
	c.current = &sess
	c.mu.Unlock()
	return sess.clone(), nil
}

// Logout returns to Anonymous unconditionally.
func (c *Context) Logout() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.current = nil
}

// Current returns the authenticated session, if any.
func (c *Context) Current() (Session, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.current == nil {
		return Session{}, false
	}
	return c.current.clone(), true
}

// Lookup returns the current session only when its ID is id.
func (c *Context) Lookup(id string) (Session, bool) {
	sess, ok := c.Current()
	if !ok || sess.ID != id {
		return Session{}, false
	}
	return sess, true
}

func (s Session) clone() Session {
	c := s
	if s.Teacher != nil {
		cred := *s.Teacher
		c.Teacher = &cred
	}
	if s.Student != nil {
		st := s.Student.Clone()
		c.Student = &st
	}
	return c
}
