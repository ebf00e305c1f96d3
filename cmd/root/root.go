// Package root contains the root command for the application
package root

import (
	"fjacquet/issuelog/internal/config"
	"fjacquet/issuelog/internal/issues"
	"fjacquet/issuelog/internal/logging"
	"fjacquet/issuelog/internal/registry"

	"github.com/spf13/cobra"
)

var (
	// Registry is the shared issue registry, populated during bootstrap
	Registry = registry.New()

	// Factory builds the logging pipeline once per process
	Factory *logging.Factory

	// Log is the shared logger instance for commands
	Log logging.Logger

	// ConfigPath is the --config flag value
	ConfigPath string

	// LogDir is the --log-dir flag value
	LogDir string

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "issuelog",
		Short: "A CLI tool to exercise issue-coded logging pipelines.",
		Long: `issuelog wires an issue registry, a declarative logging configuration
and an error-code-injecting adapter on top of logrus. The subcommands emit
sample records and list the registered issues.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to issuelog!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Environment first, then the explicit bootstrap registrations,
			// then the factory. Flags win over environment overrides.
			config.LoadEnv()
			opts := config.LoadOptions()
			if ConfigPath != "" {
				opts.ConfigPath = ConfigPath
			}

			issues.Register(Registry)

			factoryOpts := []logging.Option{
				logging.WithConfigPath(opts.ConfigPath),
				logging.WithOptions(opts),
			}
			if LogDir != "" {
				factoryOpts = append(factoryOpts, logging.WithLogDir(LogDir))
			}
			Factory = logging.NewFactory(Registry, factoryOpts...)
			Log = Factory.GetLogger("issuelog")
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			// Flush the fan-out queue and close the rotating files.
			if Factory != nil {
				Factory.Close()
			}
		},
	}
)

// Init initializes the root command and all flags
func Init() {
	Cmd.PersistentFlags().StringVarP(&ConfigPath, "config", "c", "", "Path to the logging configuration file")
	Cmd.PersistentFlags().StringVar(&LogDir, "log-dir", "", "Directory for rotating log files (default \"logs\")")
}
