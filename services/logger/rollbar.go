package logsvc

import (
	"log"

	"github.com/rollbar/rollbar-go"
	"github.com/rollbar/rollbar-go/errors"

	"github.com/Jeevana090908/stdgrd/core"
	"github.com/Jeevana090908/stdgrd/core/session"
)

// RollbarLogger prints to std and reports to rollbar when enabled.
type RollbarLogger struct {
	std   *log.Logger
	debug bool
}

var _ core.Logger = (*RollbarLogger)(nil)

func NewRollbarLogger(std *log.Logger, conf *core.Config) *RollbarLogger {
	rollbar.SetToken(conf.RollbarToken)
	rollbar.SetEnvironment(conf.Env)
	rollbar.SetServerHost(conf.Server.Host)
	rollbar.SetCodeVersion(conf.Build)
	rollbar.SetStackTracer(errors.StackTracer)
	rollbar.SetEnabled(!conf.Debug && conf.RollbarToken != "")
	return &RollbarLogger{std: std, debug: conf.Debug}
}

// Close waits for pending reports to be sent.
func (l *RollbarLogger) Close() {
	rollbar.Close()
}

// split pulls the session out of args and reports it as the rollbar person.
// expected fmt: error, map[string]interface{}, session.Session
func split(msg string, args []interface{}) (report []interface{}, printed []interface{}) {
	var sess *session.Session
	report = append(make([]interface{}, 0, len(args)+1), msg)
	printed = make([]interface{}, 0, len(args))
	for _, arg := range args {
		if s, ok := arg.(session.Session); ok {
			if sess == nil {
				sess = &s
			}
			continue
		}
		report = append(report, arg)
		printed = append(printed, arg)
	}

	if sess != nil {
		rollbar.SetPerson(sess.ID, sess.Identity(), "")
		rollbar.SetCustom(map[string]interface{}{"role": string(sess.Role)})
	} else {
		rollbar.ClearPerson()
		rollbar.SetCustom(nil)
	}
	return report, printed
}

func (l *RollbarLogger) print(level, msg string, args []interface{}) {
	l.std.Printf("%s: %s\n", level, msg)
	for _, arg := range args {
		l.std.Printf("%+v\n", arg)
	}
}

func (l *RollbarLogger) Debug(msg string, args ...interface{}) {
	if !l.debug {
		return
	}
	report, printed := split(msg, args)
	rollbar.Debug(report...)
	l.print("DEBUG", msg, printed)
}

func (l *RollbarLogger) Info(msg string, args ...interface{}) {
	report, printed := split(msg, args)
	rollbar.Info(report...)
	l.print("INFO", msg, printed)
}

func (l *RollbarLogger) Warn(msg string, args ...interface{}) {
	report, printed := split(msg, args)
	rollbar.Warning(report...)
	l.print("WARN", msg, printed)
}

func (l *RollbarLogger) Error(msg string, args ...interface{}) {
	report, printed := split(msg, args)
	rollbar.Error(report...)
	l.print("ERROR", msg, printed)
}

func (l *RollbarLogger) Fatal(msg string, args ...interface{}) {
	report, printed := split(msg, args)
	rollbar.Critical(report...)
	l.print("FATAL", msg, printed)
	rollbar.Close()
	l.std.Fatal(msg)
}
