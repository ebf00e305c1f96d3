package logging

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"fjacquet/issuelog/internal/registry"
)

// Adapter implements Logger on top of a logrus pipeline and an issue
// registry. On every call it merges the issue context into the record
// before delegating: a recognized issue name contributes its code as
// error_code, anything else contributes the placeholder.
type Adapter struct {
	logger   *logrus.Logger
	entry    *logrus.Entry
	registry *registry.Registry
	name     string
	issue    string
}

func newAdapter(logger *logrus.Logger, reg *registry.Registry, name string) *Adapter {
	return &Adapter{
		logger:   logger,
		entry:    logger.WithField(FieldLogger, name),
		registry: reg,
		name:     name,
	}
}

// Name returns the logger name the adapter is bound to.
func (a *Adapter) Name() string {
	return a.name
}

func (a *Adapter) clone(entry *logrus.Entry, issue string) *Adapter {
	return &Adapter{
		logger:   a.logger,
		entry:    entry,
		registry: a.registry,
		name:     a.name,
		issue:    issue,
	}
}

// log resolves the issue context and emits the record. The error_code
// field is set on every record, so no formatter can fail on its absence.
func (a *Adapter) log(level logrus.Level, msg string, fields []Field) {
	entry := a.entry
	if len(fields) > 0 {
		entry = entry.WithFields(convertFields(fields))
	}

	issueName := a.issue
	if v, ok := entry.Data[FieldIssue]; ok {
		if s, ok := v.(string); ok && s != "" {
			issueName = s
		}
	}

	code := CodePlaceholder
	if issueName != "" {
		if found, err := a.registry.Get(issueName); err == nil {
			code = found.Code
		}
	}

	if _, ok := entry.Data[FieldErrorCode]; !ok {
		entry = entry.WithField(FieldErrorCode, code)
	}

	entry.Log(level, msg)
}

// Debug logs a debug-level message with optional fields
func (a *Adapter) Debug(msg string, fields ...Field) {
	a.log(logrus.DebugLevel, msg, fields)
}

// Info logs an info-level message with optional fields
func (a *Adapter) Info(msg string, fields ...Field) {
	a.log(logrus.InfoLevel, msg, fields)
}

// Warn logs a warning-level message with optional fields
func (a *Adapter) Warn(msg string, fields ...Field) {
	a.log(logrus.WarnLevel, msg, fields)
}

// Error logs an error-level message with optional fields
func (a *Adapter) Error(msg string, fields ...Field) {
	a.log(logrus.ErrorLevel, msg, fields)
}

// Critical logs at the highest severity without terminating the process.
// It maps to the logrus fatal level but goes through Entry.Log, which does
// not call os.Exit.
func (a *Adapter) Critical(msg string, fields ...Field) {
	a.log(logrus.FatalLevel, msg, fields)
}

// WithError returns a new logger with an error field attached
func (a *Adapter) WithError(err error) Logger {
	return a.clone(a.entry.WithError(err), a.issue)
}

// WithField returns a new logger with a single field attached
func (a *Adapter) WithField(key string, value interface{}) Logger {
	return a.clone(a.entry.WithField(key, value), a.issue)
}

// WithFields returns a new logger with multiple fields attached
func (a *Adapter) WithFields(fields ...Field) Logger {
	return a.clone(a.entry.WithFields(convertFields(fields)), a.issue)
}

// WithIssue returns a new logger bound to the named issue. The issue's
// code is injected as error_code on every record; an unregistered name
// falls back to the placeholder.
func (a *Adapter) WithIssue(name string) Logger {
	return a.clone(a.entry, name)
}

// GetIssue retrieves the registry entry for name.
func (a *Adapter) GetIssue(name string) (registry.IssueEntry, error) {
	return a.registry.Get(name)
}

// AllIssues returns every registered issue, sorted by name.
func (a *Adapter) AllIssues() []registry.IssueEntry {
	return a.registry.All()
}

// Convenience methods for the printf-style call sites

func (a *Adapter) Debugf(format string, args ...interface{}) {
	a.log(logrus.DebugLevel, fmt.Sprintf(format, args...), nil)
}

func (a *Adapter) Infof(format string, args ...interface{}) {
	a.log(logrus.InfoLevel, fmt.Sprintf(format, args...), nil)
}

func (a *Adapter) Warnf(format string, args ...interface{}) {
	a.log(logrus.WarnLevel, fmt.Sprintf(format, args...), nil)
}

func (a *Adapter) Errorf(format string, args ...interface{}) {
	a.log(logrus.ErrorLevel, fmt.Sprintf(format, args...), nil)
}

// convertFields converts our Field slice to logrus.Fields map
func convertFields(fields []Field) logrus.Fields {
	logrusFields := make(logrus.Fields, len(fields))
	for _, field := range fields {
		logrusFields[field.Key] = field.Value
	}
	return logrusFields
}
