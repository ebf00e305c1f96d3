package logging

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
	"gopkg.in/natefinch/lumberjack.v2"

	"fjacquet/issuelog/internal/config"
	"fjacquet/issuelog/internal/issues"
	"fjacquet/issuelog/internal/registry"
)

// Factory builds the logrus pipeline from the declarative configuration
// exactly once per instance and hands out adapters bound to logger names.
// Construct it explicitly and pass it to whatever needs loggers; there is
// no package-level singleton.
type Factory struct {
	registry   *registry.Registry
	configPath string
	options    config.Options
	logDir     string

	initOnce sync.Once
	cfg      config.Config
	fellBack bool
	loadErr  error
	loggers  map[string]*logrus.Logger
	root     *logrus.Logger
	queue    *queueDispatcher
	closers  []io.Closer
}

// Option configures a Factory at construction time.
type Option func(*Factory)

// WithConfigPath sets the configuration file path. An empty path keeps the
// default lookup (logging.yaml in the standard locations).
func WithConfigPath(path string) Option {
	return func(f *Factory) { f.configPath = path }
}

// WithLogDir sets the directory file handlers resolve their relative
// filenames under. Defaults to "logs".
func WithLogDir(dir string) Option {
	return func(f *Factory) { f.logDir = dir }
}

// WithOptions applies environment overrides on top of the loaded
// configuration.
func WithOptions(opts config.Options) Option {
	return func(f *Factory) { f.options = opts }
}

// NewFactory creates a Factory bound to reg. The pipeline is not built
// until the first GetLogger call.
func NewFactory(reg *registry.Registry, opts ...Option) *Factory {
	f := &Factory{
		registry: reg,
		logDir:   "logs",
	}
	for _, opt := range opts {
		opt(f)
	}
	if f.registry == nil {
		f.registry = registry.New()
	}
	return f
}

// GetLogger returns an adapter bound to name. The first call loads the
// configuration and builds the pipeline; every later call, for any name,
// reuses it. Loggers configured by name get their own handler subset;
// everything else shares the root pipeline.
func (f *Factory) GetLogger(name string) *Adapter {
	f.initOnce.Do(f.initialize)
	return newAdapter(f.loggerFor(name), f.registry, name)
}

// Config returns the effective configuration, forcing initialization.
func (f *Factory) Config() config.Config {
	f.initOnce.Do(f.initialize)
	return f.cfg
}

// FellBack reports whether the built-in default configuration was applied
// because the configured file was missing or unparsable.
func (f *Factory) FellBack() bool {
	f.initOnce.Do(f.initialize)
	return f.fellBack
}

// Close flushes the fan-out queue, if any, and closes the rotating file
// writers. Call it once at process teardown.
func (f *Factory) Close() {
	if f.queue != nil {
		f.queue.Close()
	}
	for _, c := range f.closers {
		_ = c.Close()
	}
}

// initialize is the one-time pipeline construction. Every failure mode
// degrades to the built-in default configuration; nothing here is fatal.
func (f *Factory) initialize() {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		cfg = config.Default()
		f.fellBack = true
		f.loadErr = err
	}
	cfg.ApplyOverrides(f.options)

	f.build(cfg)
	f.cfg = cfg

	if f.fellBack {
		warn := newAdapter(f.root, f.registry, "issuelog")
		warn.WithError(f.loadErr).
			WithIssue(issues.NameConfigFallback).
			Warn("Falling back to default logging config")
	}
}

func (f *Factory) build(cfg config.Config) {
	formatters := make(map[string]logrus.Formatter, len(cfg.Formatters))
	for name, fc := range cfg.Formatters {
		formatters[name] = newFormatter(fc)
	}

	handlers := make(map[string]*handlerHook, len(cfg.Handlers))
	for name, hc := range cfg.Handlers {
		handlers[name] = f.newHandler(name, hc, formatters)
	}

	if cfg.Queue.Enabled {
		f.queue = newQueueDispatcher(cfg.Queue.Size)
	}

	rootCfg, ok := cfg.Loggers[config.RootLoggerName]
	if !ok {
		// No root entry: route everything to every configured handler.
		rootCfg = config.LoggerConfig{Level: "debug"}
		for name := range cfg.Handlers {
			rootCfg.Handlers = append(rootCfg.Handlers, name)
		}
	}

	f.loggers = make(map[string]*logrus.Logger, len(cfg.Loggers))
	f.root = f.newPipeline(rootCfg, nil, handlers)
	f.loggers[config.RootLoggerName] = f.root

	for name, lc := range cfg.Loggers {
		if name == config.RootLoggerName {
			continue
		}
		var propagated []string
		if lc.Propagate {
			propagated = rootCfg.Handlers
		}
		f.loggers[name] = f.newPipeline(lc, propagated, handlers)
	}
}

// newPipeline assembles one logrus logger: output discarded, all emission
// through the handler hooks, optionally behind the shared queue.
func (f *Factory) newPipeline(lc config.LoggerConfig, propagated []string, handlers map[string]*handlerHook) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	logger.SetLevel(parseLevel(lc.Level))

	seen := make(map[string]bool)
	var targets []*handlerHook
	for _, name := range append(append([]string{}, lc.Handlers...), propagated...) {
		if seen[name] {
			continue
		}
		seen[name] = true
		if h, ok := handlers[name]; ok {
			targets = append(targets, h)
		}
	}

	if f.queue != nil {
		logger.AddHook(&queueHook{dispatcher: f.queue, targets: targets})
	} else {
		for _, h := range targets {
			logger.AddHook(h)
		}
	}
	return logger
}

func (f *Factory) loggerFor(name string) *logrus.Logger {
	if logger, ok := f.loggers[name]; ok {
		return logger
	}
	return f.root
}

func (f *Factory) newHandler(name string, hc config.HandlerConfig, formatters map[string]logrus.Formatter) *handlerHook {
	formatter := formatters[hc.Formatter]
	if formatter == nil {
		if hc.Kind == config.HandlerJSONFile {
			formatter = &logrus.JSONFormatter{}
		} else {
			formatter = &logrus.TextFormatter{DisableColors: true, FullTimestamp: true}
		}
	}

	var out io.Writer
	switch hc.Kind {
	case config.HandlerConsole:
		if hc.Stream == "stderr" {
			out = os.Stderr
		} else {
			out = os.Stdout
		}
	default:
		rotating := f.newRotatingWriter(hc)
		f.closers = append(f.closers, rotating)
		out = encodedWriter(rotating, hc.Encoding)
	}

	return &handlerHook{
		name:      name,
		threshold: parseLevel(hc.Level),
		formatter: formatter,
		out:       out,
	}
}

// newRotatingWriter builds the lumberjack writer for a file handler.
// Relative filenames are resolved under the logs directory joined with the
// handler's foldername; the directory is created up front, the file itself
// opens lazily on first write.
func (f *Factory) newRotatingWriter(hc config.HandlerConfig) *lumberjack.Logger {
	filename := hc.Filename
	if !filepath.IsAbs(filename) {
		filename = filepath.Join(f.logDir, hc.Foldername, filename)
	}
	if dir := filepath.Dir(filename); dir != "" && dir != "." {
		_ = os.MkdirAll(dir, 0o750)
	}

	// lumberjack sizes in megabytes; round the configured byte cap up.
	maxMB := int(hc.MaxBytes / (1024 * 1024))
	if maxMB < 1 {
		maxMB = 1
	}

	return &lumberjack.Logger{
		Filename:   filename,
		MaxSize:    maxMB,
		MaxBackups: hc.BackupCount,
	}
}

// encodedWriter wraps w with a charmap encoder when the handler declares a
// non-UTF-8 encoding. Unknown names were rejected by config validation.
func encodedWriter(w io.Writer, encoding string) io.Writer {
	switch encoding {
	case config.EncodingLatin1:
		return transform.NewWriter(w, charmap.ISO8859_1.NewEncoder())
	case config.EncodingCP1252:
		return transform.NewWriter(w, charmap.Windows1252.NewEncoder())
	default:
		return w
	}
}

func newFormatter(fc config.FormatterConfig) logrus.Formatter {
	switch fc.Kind {
	case config.FormatterJSON:
		return &logrus.JSONFormatter{
			TimestampFormat: fc.DateFmt,
			PrettyPrint:     fc.PrettyPrint,
		}
	case config.FormatterColor:
		return &logrus.TextFormatter{
			ForceColors:     true,
			FullTimestamp:   fc.FullTimestamp,
			TimestampFormat: fc.DateFmt,
		}
	default:
		return &logrus.TextFormatter{
			DisableColors:   true,
			FullTimestamp:   fc.FullTimestamp,
			TimestampFormat: fc.DateFmt,
		}
	}
}

// parseLevel converts a configuration level string to a logrus level.
// "critical" maps to the logrus fatal level; unknown or empty values
// default to info.
func parseLevel(level string) logrus.Level {
	switch strings.ToLower(level) {
	case "critical":
		return logrus.FatalLevel
	case "":
		return logrus.InfoLevel
	}
	parsed, err := logrus.ParseLevel(strings.ToLower(level))
	if err != nil {
		return logrus.InfoLevel
	}
	return parsed
}
