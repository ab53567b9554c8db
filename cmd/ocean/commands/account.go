package commands

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewAccountCommand creates the account command group.
func NewAccountCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "account",
		Short: "Show account information",
	}

	cmd.AddCommand(newAccountGetCommand())

	return cmd
}

func newAccountGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get",
		Short: "Show the authenticated account",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			client, err := CreateClient(ctx)
			if err != nil {
				return err
			}

			account, err := client.Account().Get(ctx)
			if err != nil {
				return fmt.Errorf("failed to get account: %w", err)
			}

			return renderOutput(account, func() error {
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Property", "Value")

				_ = table.Append("Email", account.Email)
				_ = table.Append("UUID", account.UUID)
				_ = table.Append("Status", account.Status)
				_ = table.Append("Email Verified", formatBool(account.EmailVerified))
				_ = table.Append("Droplet Limit", strconv.Itoa(account.DropletLimit))

				return table.Render()
			})
		},
	}
}
