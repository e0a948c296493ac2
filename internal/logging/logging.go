// Package logging wraps go.uber.org/zap the way the teacher repo's logger
// package wraps log/syslog: a small adapter exposing the handful of calls
// the demo driver needs. cmd/ercrypt builds one Logger in its root
// command's pre-run hook and keeps it in a package-level variable that its
// subcommands share.
package logging

import (
	"os"

	"go.uber.org/zap"
)

// Logger is the handful of structured logging calls cmd/ercrypt needs.
type Logger struct {
	s *zap.SugaredLogger
}

// New builds a Logger writing console-encoded output to stderr. debug
// lowers the minimum level from info to debug, mirroring the teacher's own
// "-d" debug flag toggling log.SetOutput(os.Stdout).
func New(debug bool) (*Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	if debug {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	l, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return &Logger{s: l.Sugar()}, nil
}

// NewNop returns a Logger that discards everything, for tests and library
// callers that don't want CLI-style console output.
func NewNop() *Logger {
	return &Logger{s: zap.NewNop().Sugar()}
}

func (l *Logger) Debugw(msg string, kv ...interface{}) { l.s.Debugw(msg, kv...) }
func (l *Logger) Infow(msg string, kv ...interface{})  { l.s.Infow(msg, kv...) }
func (l *Logger) Warnw(msg string, kv ...interface{})  { l.s.Warnw(msg, kv...) }
func (l *Logger) Errorw(msg string, kv ...interface{}) { l.s.Errorw(msg, kv...) }

// Sync flushes any buffered log entries; call it before process exit.
func (l *Logger) Sync() error { return l.s.Sync() }

// Fatalw logs at error level with the given fields then exits the process
// with status 1, matching the demo's need for a terminal CLI error path.
func (l *Logger) Fatalw(msg string, kv ...interface{}) {
	l.s.Errorw(msg, kv...)
	_ = l.Sync()
	os.Exit(1)
}
