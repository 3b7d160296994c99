// Package database is the postgres record store engine. Each slot is one row
// of the slots table holding the JSON document of a collection.
package database

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"fmt"
	"net/url"
	"time"

	_ "github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/trezcool/goose"

	"github.com/Jeevana090908/stdgrd/core"
	"github.com/Jeevana090908/stdgrd/core/student"
	"github.com/Jeevana090908/stdgrd/core/teacher"
)

const (
	driverName  = "postgres"
	studentsKey = "students"
	teachersKey = "teachers"

	migrationsDir = "migrations"

	selectSlot = `SELECT doc FROM slots WHERE key = $1`
	upsertSlot = `INSERT INTO slots (key, doc) VALUES ($1, $2)
ON CONFLICT (key) DO UPDATE SET doc = EXCLUDED.doc`
)

var (
	//go:embed migrations/*.sql
	migrationsFS embed.FS

	gooseRunFunc = goose.RunFS // mockable

	// pingAttempts is the number of pings before giving up on a starting database.
	pingAttempts = 30
)

type Store struct {
	db *sql.DB
}

var (
	_ student.Repository = (*Store)(nil)
	_ teacher.Repository = (*Store)(nil)
)

func dataSourceName(conf *core.Config) string {
	sslMode := "require"
	if conf.Database.DisableTLS {
		sslMode = "disable"
	}
	q := make(url.Values)
	q.Set("sslmode", sslMode)
	q.Set("timezone", "utc")

	u := url.URL{
		Scheme:   driverName,
		User:     url.UserPassword(conf.Database.User, conf.Database.Password),
		Host:     conf.DatabaseAddress(),
		Path:     conf.Database.Name,
		RawQuery: q.Encode(),
	}
	return u.String()
}

// Open connects to postgres and applies the pending migrations.
func Open(ctx context.Context, conf *core.Config) (*Store, error) {
	db, err := sql.Open(driverName, dataSourceName(conf))
	if err != nil {
		return nil, errors.Wrap(err, "opening database")
	}
	if err = ping(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	if err = goose.Up(db, migrationsFS, migrationsDir); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "migrating database")
	}
	return &Store{db: db}, nil
}

// Migrate runs a goose command (up, down, status, version, redo...) against the store.
func (s *Store) Migrate(command string, args ...string) error {
	return gooseRunFunc(command, s.db, migrationsFS, migrationsDir, args...)
}

// ping waits for the database to be ready. Waits 100ms longer between each attempt.
func ping(ctx context.Context, db *sql.DB) error {
	var err error
	for attempts := 1; attempts <= pingAttempts; attempts++ {
		if err = db.PingContext(ctx); err == nil {
			return nil
		}
		select {
		case <-ctx.Done():
			return errors.Wrap(ctx.Err(), "DB ping")
		case <-time.After(time.Duration(attempts) * 100 * time.Millisecond):
		}
	}
	return errors.Wrap(err, "DB ping timeout")
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) get(ctx context.Context, key string, v interface{}) (bool, error) {
	var doc []byte
	err := s.db.QueryRowContext(ctx, selectSlot, key).Scan(&doc)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, errors.Wrapf(err, "reading %s", key)
	}
	if err = json.Unmarshal(doc, v); err != nil {
		return false, errors.Wrapf(err, "decoding %s", key)
	}
	return true, nil
}

func (s *Store) put(ctx context.Context, key string, v interface{}) error {
	doc, err := json.Marshal(v)
	if err != nil {
		return errors.Wrapf(err, "encoding %s", key)
	}
	if _, err = s.db.ExecContext(ctx, upsertSlot, key, doc); err != nil {
		if errors.Is(err, sql.ErrConnDone) {
			return core.NewShutdownError(fmt.Sprintf("writing %s: %v", key, err))
		}
		return errors.Wrapf(err, "writing %s", key)
	}
	return nil
}

func (s *Store) LoadStudents(ctx context.Context) ([]student.Student, error) {
	var students []student.Student
	if _, err := s.get(ctx, studentsKey, &students); err != nil {
		return nil, err
	}
	if students == nil {
		students = []student.Student{}
	}
	return students, nil
}

func (s *Store) SaveStudents(ctx context.Context, students []student.Student) error {
	return s.put(ctx, studentsKey, students)
}

func (s *Store) LoadTeachers(ctx context.Context) ([]teacher.Credential, error) {
	var creds []teacher.Credential
	found, err := s.get(ctx, teachersKey, &creds)
	if err != nil {
		return nil, err
	}
	if !found {
		return teacher.DefaultCredentials(), nil
	}
	return creds, nil
}

func (s *Store) SaveTeachers(ctx context.Context, creds []teacher.Credential) error {
	return s.put(ctx, teachersKey, creds)
}
