// Package issues declares the issues the library raises about itself and
// registers them during bootstrap. Applications follow the same pattern for
// their own issues: declare sentinel errors, then register them explicitly
// before the first logger is requested, never from init side effects.
package issues

import (
	"errors"

	"fjacquet/issuelog/internal/registry"
)

// Names and codes of the built-in issues.
const (
	NameConfigFallback = "ConfigFallback"
	CodeConfigFallback = "W0001"

	NameDuplicateRegistration = "DuplicateRegistration"
	CodeDuplicateRegistration = "W0002"
)

// Sentinel errors for the built-in issues.
var (
	// ErrConfigFallback marks records emitted when the declarative
	// configuration was missing or unparsable and the defaults applied.
	ErrConfigFallback = errors.New("logging configuration missing or invalid, defaults applied")

	// ErrDuplicateRegistration marks an issue name registered more than once.
	ErrDuplicateRegistration = errors.New("issue name registered more than once")
)

// Register records the built-in issues in reg. Call it once during
// application startup, before the first logger is requested.
func Register(reg *registry.Registry) {
	reg.Register(NameConfigFallback, CodeConfigFallback, ErrConfigFallback)
	reg.Register(NameDuplicateRegistration, CodeDuplicateRegistration, ErrDuplicateRegistration)
}
