package commands

import (
	"context"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
)

// NewAuthCommand creates the auth command group.
func NewAuthCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Manage authentication",
		Long:  "Store, inspect, and remove the access token used by the CLI",
	}

	cmd.AddCommand(newAuthLoginCommand())
	cmd.AddCommand(newAuthLogoutCommand())
	cmd.AddCommand(newAuthStatusCommand())

	return cmd
}

func newAuthLoginCommand() *cobra.Command {
	var token string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Store an access token",
		Long:  "Store an access token in the config file after verifying it against the API",
		RunE: func(cmd *cobra.Command, args []string) error {
			if token == "" {
				fmt.Fprint(os.Stderr, "Access token: ")

				tokenBytes, err := term.ReadPassword(int(syscall.Stdin))
				fmt.Fprintln(os.Stderr)

				if err != nil {
					return fmt.Errorf("reading token: %w", err)
				}

				token = strings.TrimSpace(string(tokenBytes))
			}

			if token == "" {
				return ErrTokenRequired
			}

			viper.Set("token", token)

			ctx := context.Background()

			client, err := CreateClient(ctx)
			if err != nil {
				return err
			}

			account, err := client.Account().Get(ctx)
			if err != nil {
				return fmt.Errorf("verifying token: %w", err)
			}

			err = viper.WriteConfig()
			if err != nil {
				// First login has no config file yet.
				err = viper.SafeWriteConfig()
				if err != nil {
					return fmt.Errorf("saving config: %w", err)
				}
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s\n", account.Email)

			return nil
		},
	}

	cmd.Flags().StringVar(&token, "token", "", "access token (prompted if omitted)")

	return cmd
}

func newAuthLogoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Remove the stored access token",
		RunE: func(cmd *cobra.Command, args []string) error {
			viper.Set("token", "")

			err := viper.WriteConfig()
			if err != nil {
				return fmt.Errorf("saving config: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Logged out")

			return nil
		},
	}
}

func newAuthStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the authenticated account",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			client, err := CreateClient(ctx)
			if err != nil {
				return err
			}

			account, err := client.Account().Get(ctx)
			if err != nil {
				return fmt.Errorf("fetching account: %w", err)
			}

			return renderOutput(account, func() error {
				_, err := fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s (status: %s, droplet limit: %d)\n",
					account.Email, account.Status, account.DropletLimit)

				return err
			})
		},
	}
}
