// Package logger adapts the l structured logger to the ports.Logger
// interface the core components log through.
package logger

import (
	"os"

	"github.com/baditaflorin/go_translation_accuracy/internal/ports"
	"github.com/baditaflorin/l"
)

// StdLogger forwards ports.Logger calls to a wrapped l.Logger.
type StdLogger struct {
	inner l.Logger
}

// NewStdLogger creates the default logger: asynchronous buffered writes to
// stdout with source annotation and metrics enabled.
func NewStdLogger() (ports.Logger, error) {
	inner, err := l.NewStandardFactory().CreateLogger(l.Config{
		Output:      os.Stdout,
		JsonFormat:  false,
		AsyncWrite:  true,
		BufferSize:  1024 * 1024,      // 1MB buffer
		MaxFileSize: 10 * 1024 * 1024, // 10MB max file size
		MaxBackups:  5,
		AddSource:   true,
		Metrics:     true,
	})
	if err != nil {
		return nil, err
	}
	return &StdLogger{inner: inner}, nil
}

// FromExisting wraps an already configured l.Logger, so one logger can be
// shared between a comparator and the rest of an application.
func FromExisting(inner l.Logger) ports.Logger {
	return &StdLogger{inner: inner}
}

func (s *StdLogger) Debug(msg string, keysAndValues ...interface{}) {
	s.inner.Debug(msg, keysAndValues...)
}

func (s *StdLogger) Info(msg string, keysAndValues ...interface{}) {
	s.inner.Info(msg, keysAndValues...)
}

func (s *StdLogger) Warn(msg string, keysAndValues ...interface{}) {
	s.inner.Warn(msg, keysAndValues...)
}

func (s *StdLogger) Error(msg string, keysAndValues ...interface{}) {
	s.inner.Error(msg, keysAndValues...)
}

// Close flushes buffered output and releases the wrapped logger.
func (s *StdLogger) Close() error {
	return s.inner.Close()
}
