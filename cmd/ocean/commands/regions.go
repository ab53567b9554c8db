package commands

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewRegionsCommand creates the regions command group.
func NewRegionsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "regions",
		Aliases: []string{"region"},
		Short:   "List regions",
	}

	cmd.AddCommand(newRegionsListCommand())

	return cmd
}

func newRegionsListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List available regions",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			client, err := CreateClient(ctx)
			if err != nil {
				return err
			}

			regions, err := client.Regions().List(ctx)
			if err != nil {
				return fmt.Errorf("failed to list regions: %w", err)
			}

			return renderOutput(regions, func() error {
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Slug", "Name", "Available", "Sizes")

				for _, region := range regions {
					_ = table.Append(region.Slug, region.Name,
						formatBool(region.Available), strings.Join(region.Sizes, ", "))
				}

				return table.Render()
			})
		},
	}
}
