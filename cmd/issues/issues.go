// Package issues lists the issues registered in the shared registry.
package issues

import (
	"fmt"
	"io"
	"os"

	"fjacquet/issuelog/cmd/root"

	"github.com/gocarina/gocsv"
	"github.com/spf13/cobra"
)

// issueRow is the CSV projection of one registry entry.
type issueRow struct {
	Name string `csv:"name"`
	Code string `csv:"code"`
}

var (
	asCSV      bool
	outputFile string
)

// Cmd represents the issues command
var Cmd = &cobra.Command{
	Use:   "issues",
	Short: "List the registered issues and their codes",
	Run:   issuesFunc,
}

func init() {
	Cmd.Flags().BoolVar(&asCSV, "csv", false, "Emit the issue table as CSV")
	Cmd.Flags().StringVarP(&outputFile, "output", "o", "", "Write the CSV to a file instead of stdout")
}

func issuesFunc(cmd *cobra.Command, args []string) {
	entries := root.Registry.All()
	if len(entries) == 0 {
		root.Log.Warn("No issues registered")
		return
	}

	if !asCSV {
		for _, entry := range entries {
			fmt.Printf("%-8s %s\n", entry.Code, entry.Name)
		}
		return
	}

	var out io.Writer = os.Stdout
	if outputFile != "" {
		f, err := os.Create(outputFile)
		if err != nil {
			root.Log.WithError(err).Error("Failed to create issues CSV file")
			return
		}
		defer func() {
			if err := f.Close(); err != nil {
				root.Log.WithError(err).Warn("Failed to close issues CSV file")
			}
		}()
		out = f
	}

	rows := make([]issueRow, 0, len(entries))
	for _, entry := range entries {
		rows = append(rows, issueRow{Name: entry.Name, Code: entry.Code})
	}

	if err := gocsv.Marshal(&rows, out); err != nil {
		root.Log.WithError(err).Error("Failed to write issues CSV")
		return
	}
	root.Log.WithField("count", len(rows)).Debug("Issue table written")
}
