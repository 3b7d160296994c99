package di

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	echoapi "github.com/Jeevana090908/stdgrd/apps/api/echo"
	"github.com/Jeevana090908/stdgrd/storage"
)

func TestNew(t *testing.T) {
	require.NoError(t, os.Setenv("ENV", "TEST"))
	defer func() { _ = os.Unsetenv("ENV") }()

	c := New()
	err := c.Invoke(func(server *echoapi.Server, store storage.Store) {
		assert.NotNil(t, server)
		assert.NoError(t, store.Close())
	})
	assert.NoError(t, err)
}
