package commands

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/tidewater-io/ocean/pkg/ocean"
)

// NewActionsCommand creates the actions command group.
func NewActionsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "actions",
		Aliases: []string{"action"},
		Short:   "Inspect account actions",
		Long:    "List and inspect the account-wide action history",
	}

	cmd.AddCommand(newActionsListCommand())
	cmd.AddCommand(newActionsGetCommand())

	return cmd
}

func newActionsListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List actions",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			client, err := CreateClient(ctx)
			if err != nil {
				return err
			}

			actions, err := client.Actions().List(ctx)
			if err != nil {
				return fmt.Errorf("failed to list actions: %w", err)
			}

			return renderOutput(actions, func() error {
				return renderActionsTable(actions)
			})
		},
	}
}

func newActionsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get ACTION_ID",
		Short: "Show an action",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			actionID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("%w: %q", ErrActionIDRequired, args[0])
			}

			ctx := context.Background()

			client, err := CreateClient(ctx)
			if err != nil {
				return err
			}

			action, err := client.Actions().Get(ctx, actionID)
			if err != nil {
				return fmt.Errorf("failed to get action: %w", err)
			}

			return renderOutput(action, func() error {
				return renderActionsTable([]ocean.Action{*action})
			})
		},
	}
}

// renderActionsTable prints actions in the shared table layout used by
// both the actions command and the droplet action listings.
func renderActionsTable(actions []ocean.Action) error {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Type", "Status", "Resource", "Started", "Completed")

	for _, action := range actions {
		completed := NotAvailable
		if action.CompletedAt != nil {
			completed = action.CompletedAt.Format(time.RFC3339)
		}

		resource := fmt.Sprintf("%s %d", action.ResourceType, action.ResourceID)

		_ = table.Append(strconv.Itoa(action.ID), action.Type, action.Status, resource,
			action.StartedAt.Format(time.RFC3339), completed)
	}

	return table.Render()
}
