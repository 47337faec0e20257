package logger

import (
	"context"

	"github.com/sirupsen/logrus"
)

// Logger wraps logrus for structured logging with context support
type Logger struct {
	*logrus.Entry
}

// New creates a new logger
func New() *Logger {
	return &Logger{
		Entry: logrus.NewEntry(logrus.StandardLogger()),
	}
}

// WithContext creates a logger carrying the acting employee, when known
func WithContext(ctx context.Context) *Logger {
	logger := New()

	if registration, ok := ctx.Value("registration").(string); ok && registration != "" {
		logger.Entry = logger.Entry.WithField("employee", registration)
	} else if employeeID, ok := ctx.Value("employee_id").(string); ok && employeeID != "" {
		logger.Entry = logger.Entry.WithField("employee", employeeID)
	} else {
		logger.Entry = logger.Entry.WithField("employee", "unknown")
	}

	return logger
}

// WithField adds a field to the logger
func (l *Logger) WithField(key string, value interface{}) *Logger {
	return &Logger{
		Entry: l.Entry.WithField(key, value),
	}
}

// WithFields adds multiple fields to the logger
func (l *Logger) WithFields(fields map[string]interface{}) *Logger {
	return &Logger{
		Entry: l.Entry.WithFields(fields),
	}
}

// WithError adds an error field to the logger
func (l *Logger) WithError(err error) *Logger {
	return &Logger{
		Entry: l.Entry.WithError(err),
	}
}
