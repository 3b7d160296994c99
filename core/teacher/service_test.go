package teacher_test

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jeevana090908/stdgrd/core/teacher"
	"github.com/Jeevana090908/stdgrd/storage/dummy"
)

func TestRegistry(t *testing.T) {
	ctx := context.Background()
	store := dummy.Open()
	reg, err := teacher.NewRegistry(ctx, store)
	require.NoError(t, err)

	assert.Equal(t, teacher.DefaultCredentials(), reg.All())

	_, err = reg.Signup(ctx, teacher.Signup{Username: "mr", Password: "one"})
	require.NoError(t, err)
	_, err = reg.Signup(ctx, teacher.Signup{Username: "mr", Password: "two"})
	require.NoError(t, err, "duplicate usernames are allowed")
	assert.Len(t, reg.All(), 3)

	tests := []struct {
		name     string
		username string
		password string
		wantErr  error
	}{
		{name: "default admin", username: "admin", password: "admin"},
		{name: "first duplicate", username: "mr", password: "one"},
		{name: "second duplicate", username: "mr", password: "two"},
		{name: "wrong password", username: "mr", password: "three", wantErr: teacher.ErrInvalidCredentials},
		{name: "unknown user", username: "mrs", password: "one", wantErr: teacher.ErrInvalidCredentials},
		{name: "case sensitive", username: "ADMIN", password: "admin", wantErr: teacher.ErrInvalidCredentials},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cred, err := reg.Authenticate(tt.username, tt.password)
			if tt.wantErr != nil {
				assert.Equal(t, tt.wantErr, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.username, cred.User)
		})
	}

	reloaded, err := teacher.NewRegistry(ctx, store)
	require.NoError(t, err)
	assert.Equal(t, reg.All(), reloaded.All())
}

func TestRegistry_storeFailure(t *testing.T) {
	ctx := context.Background()
	store := dummy.Open()
	reg, err := teacher.NewRegistry(ctx, store)
	require.NoError(t, err)

	boom := errors.New("boom")
	store.WriteErr = boom
	_, err = reg.Signup(ctx, teacher.Signup{Username: "x", Password: "y"})
	assert.Equal(t, boom, errors.Cause(err))
	assert.Equal(t, teacher.DefaultCredentials(), reg.All())
}
