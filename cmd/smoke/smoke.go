// Package smoke emits sample records at every level to exercise the
// configured pipeline end to end.
package smoke

import (
	"errors"

	"fjacquet/issuelog/cmd/root"

	"github.com/spf13/cobra"
)

// ErrQuotaExceeded is the sample application issue the smoke run registers.
var ErrQuotaExceeded = errors.New("demo quota exceeded")

// Cmd represents the smoke command
var Cmd = &cobra.Command{
	Use:   "smoke",
	Short: "Emit sample log records at every level",
	Long: `Emit one record per level through the configured handlers, including one
referencing a registered issue and one referencing an unknown issue, so the
error_code injection can be observed on console and in the log files.`,
	Run: smokeFunc,
}

func smokeFunc(cmd *cobra.Command, args []string) {
	root.Registry.Register("QuotaExceeded", "E4010", ErrQuotaExceeded)

	log := root.Factory.GetLogger("issuelog.smoke")
	log.Debug("DEBUG.")
	log.Info("INFO.")
	log.Warn("WARNING.")
	log.Error("ERROR.")
	log.Critical("CRITICAL.")

	log.WithIssue("QuotaExceeded").Error("Quota exceeded for demo tenant")
	log.WithIssue("MyCustomWarning").Error("DUMMY ERROR.")
}
