package commands

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewSizesCommand creates the sizes command group.
func NewSizesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "sizes",
		Aliases: []string{"size"},
		Short:   "List droplet sizes",
	}

	cmd.AddCommand(newSizesListCommand())

	return cmd
}

func newSizesListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List available droplet sizes",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			client, err := CreateClient(ctx)
			if err != nil {
				return err
			}

			sizes, err := client.Sizes().List(ctx)
			if err != nil {
				return fmt.Errorf("failed to list sizes: %w", err)
			}

			return renderOutput(sizes, func() error {
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Slug", "Memory MB", "VCPUs", "Disk GB", "$/Month", "$/Hour")

				for _, size := range sizes {
					_ = table.Append(size.Slug,
						strconv.Itoa(size.Memory),
						strconv.Itoa(size.VCPUs),
						strconv.Itoa(size.Disk),
						strconv.FormatFloat(size.PriceMonthly, 'f', 2, 64),
						strconv.FormatFloat(size.PriceHourly, 'f', 5, 64))
				}

				return table.Render()
			})
		},
	}
}
