// Package kvstore is the default record store engine: a badger database
// holding one key per collection.
package kvstore

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/dgraph-io/badger/v4"
	"github.com/pkg/errors"

	"github.com/Jeevana090908/stdgrd/core"
	"github.com/Jeevana090908/stdgrd/core/student"
	"github.com/Jeevana090908/stdgrd/core/teacher"
)

var (
	studentsKey = []byte("students")
	teachersKey = []byte("teachers")
)

type Store struct {
	db *badger.DB
}

var (
	_ student.Repository = (*Store)(nil)
	_ teacher.Repository = (*Store)(nil)
)

// Open opens (or creates) the badger database configured in conf.Store.
// logger may be nil to silence badger.
func Open(conf *core.Config, logger core.Logger) (*Store, error) {
	opts := badger.DefaultOptions(conf.Store.Path)
	if conf.Store.InMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	}
	if logger != nil {
		opts = opts.WithLogger(badgerLogger{logger})
	} else {
		opts = opts.WithLogger(nil)
	}

	db, err := badger.Open(opts)
	if err != nil {
		return nil, errors.Wrap(err, "opening badger")
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) get(key []byte, v interface{}) (bool, error) {
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, v)
		})
	})
	if err == badger.ErrKeyNotFound {
		return false, nil
	}
	if err != nil {
		return false, errors.Wrapf(err, "reading %s", key)
	}
	return true, nil
}

func (s *Store) put(key []byte, v interface{}) error {
	doc, err := json.Marshal(v)
	if err != nil {
		return errors.Wrapf(err, "encoding %s", key)
	}
	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key, doc)
	})
	if err == badger.ErrDBClosed {
		// nothing can be saved anymore
		return core.NewShutdownError(fmt.Sprintf("writing %s: %v", key, err))
	}
	return errors.Wrapf(err, "writing %s", key)
}

func (s *Store) LoadStudents(_ context.Context) ([]student.Student, error) {
	var students []student.Student
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

// badgerLogger routes badger's printf style logs to the app logger.
type badgerLogger struct {
	logger core.Logger
}

func format(f string, v ...interface{}) string {
	return "badger: " + strings.TrimSpace(fmt.Sprintf(f, v...))
}

func (l badgerLogger) Errorf(f string, v ...interface{})   { l.logger.Error(format(f, v...)) }
func (l badgerLogger) Warningf(f string, v ...interface{}) { l.logger.Warn(format(f, v...)) }
func (l badgerLogger) Infof(f string, v ...interface{})    { l.logger.Info(format(f, v...)) }
func (l badgerLogger) Debugf(f string, v ...interface{})   { l.logger.Debug(format(f, v...)) }
