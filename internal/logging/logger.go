// Package logging provides the logger factory and the issue-aware adapter
// built on top of logrus. The factory assembles the handler pipeline from
// the declarative configuration; the adapter injects an error_code field,
// resolved through the issue registry, into every emitted record.
package logging

// Logger defines the leveled logging surface handed to application code.
// Every emitted record carries an error_code field: the code of the
// referenced issue when it is registered, a placeholder otherwise.
type Logger interface {
	// Debug logs a debug-level message with optional fields
	Debug(msg string, fields ...Field)

	// Info logs an info-level message with optional fields
	Info(msg string, fields ...Field)

	// Warn logs a warning-level message with optional fields
	Warn(msg string, fields ...Field)

	// Error logs an error-level message with optional fields
	Error(msg string, fields ...Field)

	// Critical logs at the highest severity. It never terminates the
	// process; logging is not allowed to be the reason an application dies.
	Critical(msg string, fields ...Field)

	// WithError returns a new logger with an error field attached
	WithError(err error) Logger

	// WithField returns a new logger with a single field attached
	WithField(key string, value interface{}) Logger

	// WithFields returns a new logger with multiple fields attached
	WithFields(fields ...Field) Logger

	// WithIssue returns a new logger whose records carry the code of the
	// named issue. An unregistered name results in the placeholder code.
	WithIssue(name string) Logger
}

// Field represents a key-value pair for structured logging.
// Fields provide context to log messages without cluttering the message text.
type Field struct {
	Key   string
	Value interface{}
}
