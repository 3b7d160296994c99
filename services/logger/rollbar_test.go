package logsvc

import (
	"bytes"
	"log"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	"github.com/Jeevana090908/stdgrd/core"
	"github.com/Jeevana090908/stdgrd/core/session"
	"github.com/Jeevana090908/stdgrd/core/teacher"
)

func newTestLogger(debug bool) (*RollbarLogger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	conf := &core.Config{Env: "TEST", Debug: debug}
	return NewRollbarLogger(log.New(buf, "", 0), conf), buf
}

func TestRollbarLogger_print(t *testing.T) {
	logger, buf := newTestLogger(false)

	sess := session.Session{ID: "sess-7f3e", Role: session.RoleTeacher, Teacher: &teacher.Credential{User: "admin"}}
	logger.Error("saving failed", errors.New("disk full"), sess)

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "ERROR: saving failed\ndisk full\n"), out)
	assert.Contains(t, out, "TestRollbarLogger_print", "errors are printed with their stack")
	assert.NotContains(t, out, "sess-7f3e", "sessions are reported, not printed")
}

func TestRollbarLogger_debugOnlyInDebugMode(t *testing.T) {
	logger, buf := newTestLogger(false)
	logger.Debug("hidden")
	assert.Empty(t, buf.String())

	logger, buf = newTestLogger(true)
	logger.Debug("shown")
	assert.Equal(t, "DEBUG: shown\n", buf.String())
}

func TestSplit(t *testing.T) {
	first := session.Session{ID: "1", Role: session.RoleTeacher, Teacher: &teacher.Credential{User: "a"}}
	second := session.Session{ID: "2", Role: session.RoleTeacher, Teacher: &teacher.Credential{User: "b"}}
	extra := map[string]interface{}{"id": "S1"}

	report, printed := split("msg", []interface{}{first, extra, second})
	assert.Equal(t, []interface{}{"msg", extra}, report)
	assert.Equal(t, []interface{}{extra}, printed)
}
