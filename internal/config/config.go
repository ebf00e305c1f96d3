// Package config provides loading and validation of the declarative logging
// configuration. Handler and formatter kinds form a fixed enumerated set,
// each mapped explicitly to a constructor in the logging package; the file
// selects among them by name. A missing or malformed file is reported as a
// typed error so the factory can fall back to Default().
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"fjacquet/issuelog/internal/issueerror"
)

// Supported handler kinds.
const (
	HandlerConsole  = "console"
	HandlerFile     = "file"
	HandlerJSONFile = "json_file"
)

// Supported formatter kinds.
const (
	FormatterPlain = "plain"
	FormatterColor = "color"
	FormatterJSON  = "json"
)

// Supported file encodings for file handlers.
// An empty encoding means UTF-8.
const (
	EncodingUTF8   = "utf-8"
	EncodingLatin1 = "latin-1"
	EncodingCP1252 = "windows-1252"
)

// RootLoggerName is the key of the catch-all logger entry. Loggers that are
// not configured by name, and loggers with propagate enabled, use its
// handler set.
const RootLoggerName = "root"

// DefaultConfigFile is the conventional local filename looked up when no
// explicit path is given.
const DefaultConfigFile = "logging.yaml"

// Config is the parsed representation of the declarative logging
// configuration. It is loaded once at factory initialization and treated as
// immutable for the process lifetime.
type Config struct {
	Version                int                        `yaml:"version"`
	DisableExistingLoggers bool                       `yaml:"disable_existing_loggers"`
	Formatters             map[string]FormatterConfig `yaml:"formatters"`
	Handlers               map[string]HandlerConfig   `yaml:"handlers"`
	Loggers                map[string]LoggerConfig    `yaml:"loggers"`
	Queue                  QueueConfig                `yaml:"queue"`
}

// FormatterConfig selects one of the enumerated formatter kinds and its
// rendering options. DateFmt is a Go time layout; empty means the
// formatter's own default.
type FormatterConfig struct {
	Kind          string `yaml:"kind"`
	DateFmt       string `yaml:"datefmt"`
	FullTimestamp bool   `yaml:"full_timestamp"`
	PrettyPrint   bool   `yaml:"pretty_print"`
}

// HandlerConfig selects one of the enumerated handler kinds, its level
// threshold and formatter, plus kind-specific fields. Filename is resolved
// relative to the logs directory, joined with Foldername when set.
type HandlerConfig struct {
	Kind        string `yaml:"kind"`
	Level       string `yaml:"level"`
	Formatter   string `yaml:"formatter"`
	Stream      string `yaml:"stream"`
	Filename    string `yaml:"filename"`
	Foldername  string `yaml:"foldername"`
	MaxBytes    int64  `yaml:"max_bytes"`
	BackupCount int    `yaml:"backup_count"`
	Encoding    string `yaml:"encoding"`
	Delay       bool   `yaml:"delay"`
}

// LoggerConfig binds a named logger to a subset of the configured handlers.
// Propagate additionally routes records to the root logger's handlers.
type LoggerConfig struct {
	Level     string   `yaml:"level"`
	Handlers  []string `yaml:"handlers"`
	Propagate bool     `yaml:"propagate"`
}

// QueueConfig controls the buffering fan-out queue that can sit in front of
// the terminal handlers. Size is the channel capacity; zero means a
// reasonable default.
type QueueConfig struct {
	Enabled bool `yaml:"enabled"`
	Size    int  `yaml:"size"`
}

// Default returns the built-in configuration applied whenever no usable
// file is found: a colorized console handler at DEBUG, a rotating plain
// text file and a rotating JSON-lines file both at WARNING.
func Default() Config {
	return Config{
		Version: 1,
		Formatters: map[string]FormatterConfig{
			"plain": {Kind: FormatterPlain, FullTimestamp: true},
			"color": {Kind: FormatterColor, FullTimestamp: true},
			"json":  {Kind: FormatterJSON},
		},
		Handlers: map[string]HandlerConfig{
			"console": {
				Kind:      HandlerConsole,
				Level:     "debug",
				Formatter: "color",
				Stream:    "stdout",
			},
			"file": {
				Kind:        HandlerFile,
				Level:       "warning",
				Formatter:   "plain",
				Filename:    "issuelog.log",
				MaxBytes:    5 * 1024 * 1024,
				BackupCount: 3,
			},
			"json_file": {
				Kind:        HandlerJSONFile,
				Level:       "warning",
				Formatter:   "json",
				Filename:    "issuelog.jsonl",
				MaxBytes:    5 * 1024 * 1024,
				BackupCount: 3,
			},
		},
		Loggers: map[string]LoggerConfig{
			RootLoggerName: {
				Level:    "debug",
				Handlers: []string{"console", "file", "json_file"},
			},
		},
	}
}

// Load reads and validates the configuration at path. An empty path looks
// for DefaultConfigFile in the standard locations. Any failure is returned
// as a *issueerror.ConfigError; the caller decides whether to fall back.
func Load(path string) (Config, error) {
	if path == "" {
		found, err := FindConfigFile(DefaultConfigFile)
		if err != nil {
			return Config{}, &issueerror.ConfigError{Path: DefaultConfigFile, Err: err}
		}
		path = found
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, &issueerror.ConfigError{Path: path, Err: err}
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, &issueerror.ConfigError{Path: path, Err: err}
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, &issueerror.ConfigError{Path: path, Err: err}
	}
	return cfg, nil
}

// FindConfigFile looks for a configuration file in standard locations
func FindConfigFile(filename string) (string, error) {
	// Check if it's an absolute path
	if filepath.IsAbs(filename) {
		if _, err := os.Stat(filename); err == nil {
			return filename, nil
		}
		return "", os.ErrNotExist
	}

	// Common locations to check for config files
	locations := []string{
		filename,                            // Current directory
		filepath.Join("config", filename),   // ./config/ directory
		filepath.Join("settings", filename), // ./settings/ directory
	}

	for _, location := range locations {
		if _, err := os.Stat(location); err == nil {
			return location, nil
		}
	}

	// If still not found, check in user's home directory under .config/issuelog/
	homeDir, err := os.UserHomeDir()
	if err == nil {
		configPath := filepath.Join(homeDir, ".config", "issuelog", filename)
		if _, err := os.Stat(configPath); err == nil {
			return configPath, nil
		}
	}

	return "", os.ErrNotExist
}

var validLevels = map[string]bool{
	"":         true,
	"debug":    true,
	"info":     true,
	"warn":     true,
	"warning":  true,
	"error":    true,
	"critical": true,
}

var validEncodings = map[string]bool{
	"":             true,
	EncodingUTF8:   true,
	EncodingLatin1: true,
	EncodingCP1252: true,
}

// Validate checks that every referenced kind, formatter, handler and level
// is one of the supported values.
func (c *Config) Validate() error {
	for name, f := range c.Formatters {
		switch f.Kind {
		case FormatterPlain, FormatterColor, FormatterJSON:
		default:
			return fmt.Errorf("formatter %q: %w", name,
				&issueerror.UnknownKindError{What: "formatter", Kind: f.Kind})
		}
	}

	for name, h := range c.Handlers {
		switch h.Kind {
		case HandlerConsole:
			switch h.Stream {
			case "", "stdout", "stderr":
			default:
				return fmt.Errorf("handler %q: unsupported stream %q", name, h.Stream)
			}
		case HandlerFile, HandlerJSONFile:
			if h.Filename == "" {
				return fmt.Errorf("handler %q: filename is required for kind %q", name, h.Kind)
			}
			if !validEncodings[h.Encoding] {
				return fmt.Errorf("handler %q: %w", name,
					&issueerror.UnknownKindError{What: "encoding", Kind: h.Encoding})
			}
		default:
			return fmt.Errorf("handler %q: %w", name,
				&issueerror.UnknownKindError{What: "handler", Kind: h.Kind})
		}

		if !validLevels[h.Level] {
			return fmt.Errorf("handler %q: unsupported level %q", name, h.Level)
		}
		if h.Formatter != "" {
			if _, ok := c.Formatters[h.Formatter]; !ok {
				return fmt.Errorf("handler %q: unknown formatter %q", name, h.Formatter)
			}
		}
	}

	for name, l := range c.Loggers {
		if !validLevels[l.Level] {
			return fmt.Errorf("logger %q: unsupported level %q", name, l.Level)
		}
		for _, h := range l.Handlers {
			if _, ok := c.Handlers[h]; !ok {
				return fmt.Errorf("logger %q: unknown handler %q", name, h)
			}
		}
	}

	return nil
}
