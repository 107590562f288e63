package log

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

var std = New()

// Logger wraps a logrus instance behind the two channels the controller
// writes to: informational output (banner, listing) and debug trace
// (state transitions, errors). Writes are fire-and-forget.
type Logger struct {
	l *logrus.Logger
}

func New() *Logger {
	l := logrus.New()
	l.SetOutput(os.Stdout)
	l.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
		DisableColors:    true,
	})
	return &Logger{l: l}
}

// SetDebug enables the debug trace channel.
func (lg *Logger) SetDebug(debug bool) {
	if debug {
		lg.l.SetLevel(logrus.DebugLevel)
	} else {
		lg.l.SetLevel(logrus.InfoLevel)
	}
}

// SetOutput redirects all channels, mainly for tests.
func (lg *Logger) SetOutput(w io.Writer) {
	lg.l.SetOutput(w)
}

func (lg *Logger) Infof(format string, args ...interface{}) {
	lg.l.Infof(format, args...)
}

func (lg *Logger) Debugf(format string, args ...interface{}) {
	lg.l.Debugf(format, args...)
}

func (lg *Logger) Warnf(format string, args ...interface{}) {
	lg.l.Warnf(format, args...)
}

func (lg *Logger) Errorf(format string, args ...interface{}) {
	lg.l.Errorf(format, args...)
}

// Package-level convenience funcs on a shared logger.

func SetDebug(debug bool) { std.SetDebug(debug) }

func SetOutput(w io.Writer) { std.SetOutput(w) }

func Default() *Logger { return std }

func Infof(format string, args ...interface{}) { std.Infof(format, args...) }

func Debugf(format string, args ...interface{}) { std.Debugf(format, args...) }

func Warnf(format string, args ...interface{}) { std.Warnf(format, args...) }

func Errorf(format string, args ...interface{}) { std.Errorf(format, args...) }
