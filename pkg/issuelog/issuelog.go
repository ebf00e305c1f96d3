// Package issuelog is the public entry point for applications embedding the
// library. It re-exports the registry, the logger factory and the adapter,
// and wires the recommended bootstrap: construct a registry, register
// issues explicitly, then build a factory and request loggers from it.
//
//	reg := issuelog.NewRegistry()
//	issuelog.RegisterBuiltinIssues(reg)
//	reg.Register("QuotaExceeded", "E4010", ErrQuotaExceeded)
//
//	factory := issuelog.NewFactory(reg, issuelog.WithConfigPath("logging.yaml"))
//	defer factory.Close()
//
//	log := factory.GetLogger("worker.pool")
//	log.WithIssue("QuotaExceeded").Error("tenant over quota")
package issuelog

import (
	"fjacquet/issuelog/internal/config"
	"fjacquet/issuelog/internal/issues"
	"fjacquet/issuelog/internal/logging"
	"fjacquet/issuelog/internal/registry"
)

// Core types, re-exported for consumers.
type (
	Logger     = logging.Logger
	Field      = logging.Field
	Adapter    = logging.Adapter
	Factory    = logging.Factory
	Option     = logging.Option
	Registry   = registry.Registry
	IssueEntry = registry.IssueEntry
	Config     = config.Config
	Options    = config.Options
)

// CodePlaceholder is the error_code injected when a record does not
// reference a registered issue.
const CodePlaceholder = logging.CodePlaceholder

// NewRegistry creates an empty issue registry.
func NewRegistry() *Registry {
	return registry.New()
}

// RegisterBuiltinIssues records the library's own issues in reg.
func RegisterBuiltinIssues(reg *Registry) {
	issues.Register(reg)
}

// NewFactory creates a logger factory bound to reg. The pipeline is built
// on the first GetLogger call.
func NewFactory(reg *Registry, opts ...Option) *Factory {
	return logging.NewFactory(reg, opts...)
}

// WithConfigPath sets the configuration file path for the factory.
func WithConfigPath(path string) Option {
	return logging.WithConfigPath(path)
}

// WithLogDir sets the directory rotating file handlers write under.
func WithLogDir(dir string) Option {
	return logging.WithLogDir(dir)
}

// WithOptions applies environment overrides on top of the loaded
// configuration.
func WithOptions(opts Options) Option {
	return logging.WithOptions(opts)
}

// LoadEnv loads environment variables from a .env file if one exists.
func LoadEnv() {
	config.LoadEnv()
}

// LoadOptions reads the ISSUELOG_* environment overrides.
func LoadOptions() Options {
	return config.LoadOptions()
}

// DefaultConfig returns the built-in configuration used when no file is
// found: console at DEBUG plus rotating plain and JSON files at WARNING.
func DefaultConfig() Config {
	return config.Default()
}
