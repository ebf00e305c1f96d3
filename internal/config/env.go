package config

// This file provides the environment layer: .env loading and the viper-based
// process overrides applied on top of the declarative file.

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

var (
	once sync.Once
	log  = logrus.New()
)

// LoadEnv loads environment variables from .env file if it exists
func LoadEnv() {
	once.Do(func() {
		// Try to find .env file in current directory
		envFile := ".env"
		if _, err := os.Stat(envFile); os.IsNotExist(err) {
			// Try to find .env in parent directory (project root)
			envFile = filepath.Join("..", ".env")
			if _, err := os.Stat(envFile); os.IsNotExist(err) {
				return
			}
		}

		// Load .env file silently without logging
		_ = godotenv.Load(envFile)
	})
}

// Options are process-level overrides for the declarative configuration,
// sourced from the environment (after LoadEnv) with an ISSUELOG_ prefix:
// ISSUELOG_CONFIG, ISSUELOG_LOG_LEVEL, ISSUELOG_LOG_FORMAT.
type Options struct {
	ConfigPath string
	Level      string
	Format     string
}

// LoadOptions reads the override options through viper so environment
// variables and defaults layer the same way as the rest of the tooling.
func LoadOptions() Options {
	v := viper.New()

	v.SetDefault("config", "")
	v.SetDefault("log.level", "")
	v.SetDefault("log.format", "")

	v.SetEnvPrefix("ISSUELOG")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	return Options{
		ConfigPath: v.GetString("config"),
		Level:      strings.ToLower(v.GetString("log.level")),
		Format:     strings.ToLower(v.GetString("log.format")),
	}
}

// ApplyOverrides mutates cfg in place with the non-empty option values.
// Level replaces every logger and handler threshold; Format switches the
// console handlers to the named formatter kind when it is a known one.
func (c *Config) ApplyOverrides(opts Options) {
	if opts.Level != "" && validLevels[opts.Level] {
		for name, l := range c.Loggers {
			l.Level = opts.Level
			c.Loggers[name] = l
		}
		for name, h := range c.Handlers {
			h.Level = opts.Level
			c.Handlers[name] = h
		}
	} else if opts.Level != "" {
		log.Warnf("Invalid log level override '%s', keeping configured levels", opts.Level)
	}

	if opts.Format == "" {
		return
	}
	switch opts.Format {
	case FormatterPlain, FormatterColor, FormatterJSON:
	default:
		log.Warnf("Invalid log format override '%s', keeping configured formatters", opts.Format)
		return
	}

	// Only console handlers follow the format override; file handlers keep
	// their configured formatters so rotation archives stay consistent.
	formatterName := ""
	for name, f := range c.Formatters {
		if f.Kind == opts.Format {
			formatterName = name
			break
		}
	}
	if formatterName == "" {
		formatterName = opts.Format
		c.Formatters[formatterName] = FormatterConfig{Kind: opts.Format, FullTimestamp: true}
	}
	for name, h := range c.Handlers {
		if h.Kind == HandlerConsole {
			h.Formatter = formatterName
			c.Handlers[name] = h
		}
	}
}
