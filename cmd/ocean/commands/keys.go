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

// NewKeysCommand creates the keys command group.
func NewKeysCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "keys",
		Aliases: []string{"key", "ssh-keys"},
		Short:   "Manage SSH keys",
		Long:    "List and manage the SSH keys registered on the account",
	}

	cmd.AddCommand(newKeysListCommand())
	cmd.AddCommand(newKeysGetCommand())
	cmd.AddCommand(newKeysCreateCommand())
	cmd.AddCommand(newKeysRenameCommand())
	cmd.AddCommand(newKeysDeleteCommand())

	return cmd
}

func newKeysListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List SSH keys",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			client, err := CreateClient(ctx)
			if err != nil {
				return err
			}

			keys, err := client.Keys().List(ctx)
			if err != nil {
				return fmt.Errorf("failed to list keys: %w", err)
			}

			return renderOutput(keys, func() error {
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("ID", "Name", "Fingerprint")

				for _, key := range keys {
					_ = table.Append(strconv.Itoa(key.ID), key.Name, key.Fingerprint)
				}

				return table.Render()
			})
		},
	}
}

func newKeysGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get KEY_ID|FINGERPRINT",
		Short: "Show an SSH key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			client, err := CreateClient(ctx)
			if err != nil {
				return err
			}

			var key *ocean.Key
			if keyID, convErr := strconv.Atoi(args[0]); convErr == nil {
				key, err = client.Keys().Get(ctx, keyID)
			} else {
				key, err = client.Keys().GetByFingerprint(ctx, args[0])
			}

			if err != nil {
				return fmt.Errorf("failed to get key: %w", err)
			}

			return renderOutput(key, func() error {
				fmt.Fprintf(cmd.OutOrStdout(), "ID: %d\nName: %s\nFingerprint: %s\n\n%s\n",
					key.ID, key.Name, key.Fingerprint, key.PublicKey)

				return nil
			})
		},
	}
}

func newKeysCreateCommand() *cobra.Command {
	var publicKeyFile string

	cmd := &cobra.Command{
		Use:   "create NAME",
		Short: "Register an SSH key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			publicKey, err := os.ReadFile(publicKeyFile)
			if err != nil {
				return fmt.Errorf("failed to read public key file: %w", err)
			}

			ctx := context.Background()

			client, err := CreateClient(ctx)
			if err != nil {
				return err
			}

			key, err := client.Keys().Create(ctx, &ocean.KeyCreateRequest{
				Name:      args[0],
				PublicKey: string(publicKey),
			})
			if err != nil {
				return fmt.Errorf("failed to create key: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Key %d (%s) created\n", key.ID, key.Name)

			return nil
		},
	}

	cmd.Flags().StringVar(&publicKeyFile, "public-key-file", "", "path to the public key file (required)")
	_ = cmd.MarkFlagRequired("public-key-file")

	return cmd
}

func newKeysRenameCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "rename KEY_ID NEW_NAME",
		Short: "Rename an SSH key",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			keyID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("%w: %q", ErrKeyIDRequired, args[0])
			}

			ctx := context.Background()

			client, err := CreateClient(ctx)
			if err != nil {
				return err
			}

			key, err := client.Keys().Update(ctx, keyID, &ocean.KeyUpdateRequest{Name: args[1]})
			if err != nil {
				return fmt.Errorf("failed to rename key: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Key %d renamed to %s\n", key.ID, key.Name)

			return nil
		},
	}
}

func newKeysDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete KEY_ID",
		Short: "Delete an SSH key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			keyID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("%w: %q", ErrKeyIDRequired, args[0])
			}

			ctx := context.Background()

			client, err := CreateClient(ctx)
			if err != nil {
				return err
			}

			err = client.Keys().Delete(ctx, keyID)
			if err != nil {
				return fmt.Errorf("failed to delete key: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Key %d deleted\n", keyID)

			return nil
		},
	}
}
