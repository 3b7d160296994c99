// Package dummy is a map-backed record store used by tests.
package dummy

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/Jeevana090908/stdgrd/core/student"
	"github.com/Jeevana090908/stdgrd/core/teacher"
)

const (
	studentsKey = "students"
	teachersKey = "teachers"
)

// Store keeps every slot as the JSON document a real engine would write.
type Store struct {
	mu    sync.RWMutex
	slots map[string][]byte

	// WriteErr, when set, is returned by every save and nothing is written.
	WriteErr error
}

var (
	_ student.Repository = (*Store)(nil)
	_ teacher.Repository = (*Store)(nil)
)

func Open() *Store {
	return &Store{slots: make(map[string][]byte)}
}

func (s *Store) get(key string, v interface{}) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	doc, ok := s.slots[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(doc, v)
}

func (s *Store) put(key string, v interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.WriteErr != nil {
		return s.WriteErr
	}
	doc, err := json.Marshal(v)
	if err != nil {
		return err
	}
	s.slots[key] = doc
	return nil
}

// Raw returns the stored document of a slot.
func (s *Store) Raw(key string) []byte {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.slots[key]
}

// SetRaw overwrites a slot with an arbitrary document.
func (s *Store) SetRaw(key string, doc []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.slots[key] = doc
}

func (s *Store) LoadStudents(_ context.Context) ([]student.Student, error) {
	students := make([]student.Student, 0)
	if _, err := s.get(studentsKey, &students); err != nil {
		return nil, err
	}
	if students == nil {
		students = []student.Student{}
	}
	return students, nil
}

func (s *Store) SaveStudents(_ context.Context, students []student.Student) error {
	return s.put(studentsKey, students)
}

func (s *Store) LoadTeachers(_ context.Context) ([]teacher.Credential, error) {
	var creds []teacher.Credential
	found, err := s.get(teachersKey, &creds)
	if err != nil {
		return nil, err
	}
	if !found {
		return teacher.DefaultCredentials(), nil
	}
	return creds, nil
}

func (s *Store) SaveTeachers(_ context.Context, creds []teacher.Credential) error {
	return s.put(teachersKey, creds)
}
