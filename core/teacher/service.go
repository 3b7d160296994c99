package teacher

import (
	"context"
	"sync"

	"github.com/pkg/errors"
)

var ErrInvalidCredentials = errors.New("invalid teacher credentials")

type Repository interface {
	LoadTeachers(ctx context.Context) ([]Credential, error)
	SaveTeachers(ctx context.Context, creds []Credential) error
}

// Registry holds the teacher logins in signup order.
type Registry struct {
	mu    sync.RWMutex
	repo  Repository
	creds []Credential
}

func NewRegistry(ctx context.Context, repo Repository) (*Registry, error) {
	creds, err := repo.LoadTeachers(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "loading teachers")
	}
	return &Registry{repo: repo, creds: creds}, nil
}

// Signup appends a login. A username that already exists is appended again.
func (r *Registry) Signup(ctx context.Context, su Signup) (Credential, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	cred := Credential{User: su.Username, Pass: su.Password}
	creds := make([]Credential, len(r.creds), len(r.creds)+1)
	copy(creds, r.creds)
	creds = append(creds, cred)

	if err := r.repo.SaveTeachers(ctx, creds); err != nil {
		return Credential{}, errors.Wrap(err, "saving teachers")
	}
	r.creds = creds
	return cred, nil
}

// Authenticate returns the first login matching both username and password.
func (r *Registry) Authenticate(username, password string) (Credential, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, c := range r.creds {
		if c.User == username && c.Pass == password {
			return c, nil
		}
	}
	return Credential{}, ErrInvalidCredentials
}

func (r *Registry) All() []Credential {
	r.mu.RLock()
	defer r.mu.RUnlock()

	creds := make([]Credential, len(r.creds))
	copy(creds, r.creds)
	return creds
}
