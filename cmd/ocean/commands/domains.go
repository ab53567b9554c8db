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

// NewDomainsCommand creates the domains command group.
func NewDomainsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "domains",
		Aliases: []string{"domain"},
		Short:   "Manage domains",
		Long:    "List and manage DNS domains and their records",
	}

	cmd.AddCommand(newDomainsListCommand())
	cmd.AddCommand(newDomainsGetCommand())
	cmd.AddCommand(newDomainsCreateCommand())
	cmd.AddCommand(newDomainsDeleteCommand())
	cmd.AddCommand(newDomainRecordsCommand())

	return cmd
}

func newDomainsListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List domains",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			client, err := CreateClient(ctx)
			if err != nil {
				return err
			}

			domains, err := client.Domains().List(ctx)
			if err != nil {
				return fmt.Errorf("failed to list domains: %w", err)
			}

			return renderOutput(domains, func() error {
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Name", "TTL")

				for _, domain := range domains {
					_ = table.Append(domain.Name, strconv.Itoa(domain.TTL))
				}

				return table.Render()
			})
		},
	}
}

func newDomainsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get DOMAIN",
		Short: "Show a domain",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			client, err := CreateClient(ctx)
			if err != nil {
				return err
			}

			domain, err := client.Domains().Get(ctx, args[0])
			if err != nil {
				return fmt.Errorf("failed to get domain: %w", err)
			}

			return renderOutput(domain, func() error {
				fmt.Fprintf(cmd.OutOrStdout(), "Name: %s\nTTL: %d\n\n%s\n", domain.Name, domain.TTL, domain.ZoneFile)

				return nil
			})
		},
	}
}

func newDomainsCreateCommand() *cobra.Command {
	var ipAddress string

	cmd := &cobra.Command{
		Use:   "create DOMAIN",
		Short: "Create a domain",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			client, err := CreateClient(ctx)
			if err != nil {
				return err
			}

			domain, err := client.Domains().Create(ctx, &ocean.DomainCreateRequest{
				Name:      args[0],
				IPAddress: ipAddress,
			})
			if err != nil {
				return fmt.Errorf("failed to create domain: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Domain %s created\n", domain.Name)

			return nil
		},
	}

	cmd.Flags().StringVar(&ipAddress, "ip", "", "IP address for the apex A record (required)")
	_ = cmd.MarkFlagRequired("ip")

	return cmd
}

func newDomainsDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete DOMAIN",
		Short: "Delete a domain and all of its records",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			client, err := CreateClient(ctx)
			if err != nil {
				return err
			}

			err = client.Domains().Delete(ctx, args[0])
			if err != nil {
				return fmt.Errorf("failed to delete domain: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Domain %s deleted\n", args[0])

			return nil
		},
	}
}

// newDomainRecordsCommand creates the records sub-group.
func newDomainRecordsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "records",
		Aliases: []string{"record"},
		Short:   "Manage domain records",
	}

	cmd.AddCommand(newRecordsListCommand())
	cmd.AddCommand(newRecordsCreateCommand())
	cmd.AddCommand(newRecordsDeleteCommand())

	return cmd
}

func newRecordsListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list DOMAIN",
		Short: "List records in a domain",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			client, err := CreateClient(ctx)
			if err != nil {
				return err
			}

			records, err := client.Domains().Records(ctx, args[0])
			if err != nil {
				return fmt.Errorf("failed to list domain records: %w", err)
			}

			return renderOutput(records, func() error {
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("ID", "Type", "Name", "Data", "Priority")

				for _, record := range records {
					priority := NotAvailable
					if record.Priority != nil {
						priority = strconv.Itoa(*record.Priority)
					}

					_ = table.Append(strconv.Itoa(record.ID), record.Type, record.Name, record.Data, priority)
				}

				return table.Render()
			})
		},
	}
}

func newRecordsCreateCommand() *cobra.Command {
	var (
		recordType string
		name       string
		data       string
		priority   int
	)

	cmd := &cobra.Command{
		Use:   "create DOMAIN",
		Short: "Create a record in a domain",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			client, err := CreateClient(ctx)
			if err != nil {
				return err
			}

			request := &ocean.DomainRecordRequest{
				Type: recordType,
				Name: name,
				Data: data,
			}
			if cmd.Flags().Changed("priority") {
				request.Priority = &priority
			}

			record, err := client.Domains().CreateRecord(ctx, args[0], request)
			if err != nil {
				return fmt.Errorf("failed to create domain record: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Record %d (%s %s) created\n", record.ID, record.Type, record.Name)

			return nil
		},
	}

	cmd.Flags().StringVar(&recordType, "type", "", "record type: A, AAAA, CNAME, MX, TXT, SRV, NS (required)")
	cmd.Flags().StringVar(&name, "name", "", "record name (required)")
	cmd.Flags().StringVar(&data, "data", "", "record data (required)")
	cmd.Flags().IntVar(&priority, "priority", 0, "record priority (MX and SRV)")

	_ = cmd.MarkFlagRequired("type")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("data")

	return cmd
}

func newRecordsDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete DOMAIN RECORD_ID",
		Short: "Delete a record from a domain",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			recordID, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("%w: %q", ErrRecordIDRequired, args[1])
			}

			ctx := context.Background()

			client, err := CreateClient(ctx)
			if err != nil {
				return err
			}

			err = client.Domains().DeleteRecord(ctx, args[0], recordID)
			if err != nil {
				return fmt.Errorf("failed to delete domain record: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Record %d deleted from %s\n", recordID, args[0])

			return nil
		},
	}
}
