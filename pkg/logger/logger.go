package logger

import (
	"os"

	"github.com/sirupsen/logrus"

	"codeassist/internal/models"
)

// Logger wraps logrus to provide structured, JSON-formatted logging with a
// small fluent API for attaching request and error context.
type Logger struct {
	entry *logrus.Entry
}

// Init configures the global logrus settings. It must be called once at
// process start, before any Logger is created.
func Init(level logrus.Level) {
	logrus.SetFormatter(&logrus.JSONFormatter{
		FieldMap: logrus.FieldMap{
			logrus.FieldKeyTime:  "timestamp",
			logrus.FieldKeyLevel: "level",
			logrus.FieldKeyMsg:   "message",
		},
	})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(level)
}

// New creates a Logger scoped to a service name.
func New(serviceName string) *Logger {
	return &Logger{
		entry: logrus.WithField("service_name", serviceName),
	}
}

// WithRequest attaches HTTP request context to the log entry.
func (l *Logger) WithRequest(req models.RequestInfo) *Logger {
	return &Logger{entry: l.entry.WithField("request_info", req)}
}

// WithError attaches structured error details to the log entry.
func (l *Logger) WithError(err models.ErrorInfo) *Logger {
	return &Logger{entry: l.entry.WithField("error", err)}
}

// WithPayload attaches arbitrary business data to the log entry.
func (l *Logger) WithPayload(payload map[string]interface{}) *Logger {
	return &Logger{entry: l.entry.WithField("payload", payload)}
}

// Info logs a message at info level.
func (l *Logger) Info(message string) {
	l.entry.Info(message)
}

// Warn logs a message at warning level.
func (l *Logger) Warn(message string) {
	l.entry.Warn(message)
}

// Error logs a message at error level.
func (l *Logger) Error(message string) {
	l.entry.Error(message)
}

// Debug logs a message at debug level.
func (l *Logger) Debug(message string) {
	l.entry.Debug(message)
}

// Fatal logs a message at fatal level and terminates the process.
func (l *Logger) Fatal(message string) {
	l.entry.Fatal(message)
}
