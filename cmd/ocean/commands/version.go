package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewVersionCommand creates the version command.
func NewVersionCommand(version, commit, date string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		RunE: func(cmd *cobra.Command, args []string) error {
			versionInfo := struct {
				Version string `json:"version" yaml:"version"`
				Commit  string `json:"commit"  yaml:"commit"`
				Date    string `json:"date"    yaml:"date"`
			}{
				Version: version,
				Commit:  commit,
				Date:    date,
			}

			return renderOutput(versionInfo, func() error {
				_, err := fmt.Fprintf(cmd.OutOrStdout(), "ocean %s (commit %s, built %s)\n", version, commit, date)

				return err
			})
		},
	}
}
