package commands

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/tidewater-io/ocean/pkg/ocean"
)

// NewDropletsCommand creates the droplets command group.
func NewDropletsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "droplets",
		Aliases: []string{"droplet"},
		Short:   "Manage droplets",
		Long:    "List, create, inspect, delete, and control droplets",
	}

	cmd.AddCommand(newDropletsListCommand())
	cmd.AddCommand(newDropletsGetCommand())
	cmd.AddCommand(newDropletsCreateCommand())
	cmd.AddCommand(newDropletsDeleteCommand())
	cmd.AddCommand(newDropletsActionsCommand())

	for _, trigger := range dropletTriggers() {
		cmd.AddCommand(newDropletTriggerCommand(trigger))
	}

	return cmd
}

func parseDropletID(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrDropletIDRequired, arg)
	}

	return id, nil
}

func newDropletsListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List droplets",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			client, err := CreateClient(ctx)
			if err != nil {
				return err
			}

			droplets, err := client.Droplets().List(ctx)
			if err != nil {
				return fmt.Errorf("failed to list droplets: %w", err)
			}

			return renderOutput(droplets, func() error {
				return renderDropletsTable(droplets)
			})
		},
	}
}

func renderDropletsTable(droplets []ocean.Droplet) error {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Name", "Public IPv4", "Region", "Size", "Status")

	for _, droplet := range droplets {
		region := NotAvailable
		if droplet.Region != nil {
			region = droplet.Region.Slug
		}

		_ = table.Append(strconv.Itoa(droplet.ID), droplet.Name, droplet.PublicIPv4(),
			region, droplet.SizeSlug, droplet.Status)
	}

	return table.Render()
}

func newDropletsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get DROPLET_ID",
		Short: "Show a droplet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dropletID, err := parseDropletID(args[0])
			if err != nil {
				return err
			}

			ctx := context.Background()

			client, err := CreateClient(ctx)
			if err != nil {
				return err
			}

			droplet, err := client.Droplets().Get(ctx, dropletID)
			if err != nil {
				return fmt.Errorf("failed to get droplet: %w", err)
			}

			return renderOutput(droplet, func() error {
				return renderDropletDetails(droplet)
			})
		},
	}
}

func renderDropletDetails(droplet *ocean.Droplet) error {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Property", "Value")

	_ = table.Append("ID", strconv.Itoa(droplet.ID))
	_ = table.Append("Name", droplet.Name)
	_ = table.Append("Status", droplet.Status)
	_ = table.Append("Public IPv4", droplet.PublicIPv4())
	_ = table.Append("Memory", fmt.Sprintf("%d MB", droplet.Memory))
	_ = table.Append("VCPUs", strconv.Itoa(droplet.VCPUs))
	_ = table.Append("Disk", fmt.Sprintf("%d GB", droplet.Disk))
	_ = table.Append("Size", droplet.SizeSlug)
	_ = table.Append("Locked", formatBool(droplet.Locked))
	_ = table.Append("Created", droplet.CreatedAt.Format("2006-01-02 15:04:05"))

	if droplet.Region != nil {
		_ = table.Append("Region", droplet.Region.Slug)
	}

	if droplet.Image != nil {
		_ = table.Append("Image", droplet.Image.Name)
	}

	_, _ = os.Stdout.WriteString("Droplet details:\n\n")

	return table.Render()
}

func newDropletsCreateCommand() *cobra.Command {
	var (
		region   string
		size     string
		image    string
		sshKeys  []string
		backups  bool
		ipv6     bool
		userData string
	)

	cmd := &cobra.Command{
		Use:   "create NAME",
		Short: "Create a droplet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			client, err := CreateClient(ctx)
			if err != nil {
				return err
			}

			droplet, err := client.Droplets().Create(ctx, &ocean.DropletCreateRequest{
				Name:     args[0],
				Region:   region,
				Size:     size,
				Image:    image,
				SSHKeys:  sshKeys,
				Backups:  backups,
				IPv6:     ipv6,
				UserData: userData,
			})
			if err != nil {
				return fmt.Errorf("failed to create droplet: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Droplet %s created with ID %d\n", droplet.Name, droplet.ID)

			return nil
		},
	}

	cmd.Flags().StringVar(&region, "region", "", "region slug (required)")
	cmd.Flags().StringVar(&size, "size", "", "size slug (required)")
	cmd.Flags().StringVar(&image, "image", "", "image ID or slug (required)")
	cmd.Flags().StringSliceVar(&sshKeys, "ssh-keys", nil, "SSH key IDs or fingerprints")
	cmd.Flags().BoolVar(&backups, "backups", false, "enable backups")
	cmd.Flags().BoolVar(&ipv6, "ipv6", false, "enable IPv6")
	cmd.Flags().StringVar(&userData, "user-data", "", "cloud-init user data")

	_ = cmd.MarkFlagRequired("region")
	_ = cmd.MarkFlagRequired("size")
	_ = cmd.MarkFlagRequired("image")

	return cmd
}

func newDropletsDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete DROPLET_ID",
		Short: "Delete a droplet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dropletID, err := parseDropletID(args[0])
			if err != nil {
				return err
			}

			ctx := context.Background()

			client, err := CreateClient(ctx)
			if err != nil {
				return err
			}

			err = client.Droplets().Delete(ctx, dropletID)
			if err != nil {
				return fmt.Errorf("failed to delete droplet: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Droplet %d deleted\n", dropletID)

			return nil
		},
	}
}

func newDropletsActionsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "actions DROPLET_ID",
		Short: "List actions performed on a droplet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dropletID, err := parseDropletID(args[0])
			if err != nil {
				return err
			}

			ctx := context.Background()

			client, err := CreateClient(ctx)
			if err != nil {
				return err
			}

			actions, err := client.Droplets().Actions(ctx, dropletID)
			if err != nil {
				return fmt.Errorf("failed to list droplet actions: %w", err)
			}

			return renderOutput(actions, func() error {
				return renderActionsTable(actions)
			})
		},
	}
}

// dropletTrigger describes one droplet action trigger subcommand.
type dropletTrigger struct {
	use     string
	short   string
	trigger func(ocean.DropletsClient, context.Context, int) (*ocean.Action, error)
}

func dropletTriggers() []dropletTrigger {
	return []dropletTrigger{
		{
			use:   "reboot",
			short: "Reboot a droplet",
			trigger: func(c ocean.DropletsClient, ctx context.Context, id int) (*ocean.Action, error) {
				return c.Reboot(ctx, id)
			},
		},
		{
			use:   "power-cycle",
			short: "Power cycle a droplet",
			trigger: func(c ocean.DropletsClient, ctx context.Context, id int) (*ocean.Action, error) {
				return c.PowerCycle(ctx, id)
			},
		},
		{
			use:   "shutdown",
			short: "Shut a droplet down",
			trigger: func(c ocean.DropletsClient, ctx context.Context, id int) (*ocean.Action, error) {
				return c.Shutdown(ctx, id)
			},
		},
		{
			use:   "power-off",
			short: "Power a droplet off",
			trigger: func(c ocean.DropletsClient, ctx context.Context, id int) (*ocean.Action, error) {
				return c.PowerOff(ctx, id)
			},
		},
		{
			use:   "power-on",
			short: "Power a droplet on",
			trigger: func(c ocean.DropletsClient, ctx context.Context, id int) (*ocean.Action, error) {
				return c.PowerOn(ctx, id)
			},
		},
		{
			use:   "password-reset",
			short: "Reset a droplet's root password",
			trigger: func(c ocean.DropletsClient, ctx context.Context, id int) (*ocean.Action, error) {
				return c.PasswordReset(ctx, id)
			},
		},
	}
}

func newDropletTriggerCommand(definition dropletTrigger) *cobra.Command {
	return &cobra.Command{
		Use:   definition.use + " DROPLET_ID",
		Short: definition.short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dropletID, err := parseDropletID(args[0])
			if err != nil {
				return err
			}

			ctx := context.Background()

			client, err := CreateClient(ctx)
			if err != nil {
				return err
			}

			action, err := definition.trigger(client.Droplets(), ctx, dropletID)
			if err != nil {
				return fmt.Errorf("failed to trigger %s: %w", definition.use, err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Action %d (%s) is %s\n", action.ID, action.Type, action.Status)

			return nil
		},
	}
}
