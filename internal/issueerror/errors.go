// Package issueerror defines the typed errors surfaced by the registry
// and the logging configuration loader.
package issueerror

import "fmt"

// NotFoundError represents a lookup for an issue name that was never registered.
// Callers should treat it as a recoverable condition, not a crash.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("issue %q is not registered", e.Name)
}

// ConfigError represents a logging configuration file that could not be
// loaded or parsed. The factory recovers from it by falling back to the
// built-in default configuration.
type ConfigError struct {
	Path string
	Err  error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("logging config %s: %v", e.Path, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// UnknownKindError represents a handler, formatter, or encoding name in the
// configuration that is not one of the supported enumerated kinds.
type UnknownKindError struct {
	What string // "handler", "formatter" or "encoding"
	Kind string
}

func (e *UnknownKindError) Error() string {
	return fmt.Sprintf("unknown %s kind: %q", e.What, e.Kind)
}
