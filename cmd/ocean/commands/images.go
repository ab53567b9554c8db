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

// NewImagesCommand creates the images command group.
func NewImagesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "images",
		Aliases: []string{"image"},
		Short:   "Manage images",
		Long:    "List distribution images and manage snapshots and backups",
	}

	cmd.AddCommand(newImagesListCommand())
	cmd.AddCommand(newImagesGetCommand())
	cmd.AddCommand(newImagesRenameCommand())
	cmd.AddCommand(newImagesDeleteCommand())
	cmd.AddCommand(newImagesTransferCommand())

	return cmd
}

func newImagesListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List images",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			client, err := CreateClient(ctx)
			if err != nil {
				return err
			}

			images, err := client.Images().List(ctx)
			if err != nil {
				return fmt.Errorf("failed to list images: %w", err)
			}

			return renderOutput(images, func() error {
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("ID", "Slug", "Name", "Distribution", "Public")

				for _, image := range images {
					slug := NotAvailable
					if image.Slug != "" {
						slug = image.Slug
					}

					_ = table.Append(strconv.Itoa(image.ID), slug, image.Name,
						image.Distribution, formatBool(image.Public))
				}

				return table.Render()
			})
		},
	}
}

func newImagesGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get IMAGE_ID|SLUG",
		Short: "Show an image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			client, err := CreateClient(ctx)
			if err != nil {
				return err
			}

			var image *ocean.Image
			if imageID, convErr := strconv.Atoi(args[0]); convErr == nil {
				image, err = client.Images().Get(ctx, imageID)
			} else {
				image, err = client.Images().GetBySlug(ctx, args[0])
			}

			if err != nil {
				return fmt.Errorf("failed to get image: %w", err)
			}

			return renderOutput(image, func() error {
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Property", "Value")

				_ = table.Append("ID", strconv.Itoa(image.ID))
				_ = table.Append("Name", image.Name)
				_ = table.Append("Slug", image.Slug)
				_ = table.Append("Distribution", image.Distribution)
				_ = table.Append("Public", formatBool(image.Public))
				_ = table.Append("Regions", fmt.Sprintf("%v", image.Regions))

				return table.Render()
			})
		},
	}
}

func newImagesRenameCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "rename IMAGE_ID NEW_NAME",
		Short: "Rename an image",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			imageID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("%w: %q", ErrImageIDRequired, args[0])
			}

			ctx := context.Background()

			client, err := CreateClient(ctx)
			if err != nil {
				return err
			}

			image, err := client.Images().Update(ctx, imageID, &ocean.ImageUpdateRequest{Name: args[1]})
			if err != nil {
				return fmt.Errorf("failed to rename image: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Image %d renamed to %s\n", image.ID, image.Name)

			return nil
		},
	}
}

func newImagesDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete IMAGE_ID",
		Short: "Delete an image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			imageID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("%w: %q", ErrImageIDRequired, args[0])
			}

			ctx := context.Background()

			client, err := CreateClient(ctx)
			if err != nil {
				return err
			}

			err = client.Images().Delete(ctx, imageID)
			if err != nil {
				return fmt.Errorf("failed to delete image: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Image %d deleted\n", imageID)

			return nil
		},
	}
}

func newImagesTransferCommand() *cobra.Command {
	var region string

	cmd := &cobra.Command{
		Use:   "transfer IMAGE_ID",
		Short: "Transfer an image to another region",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			imageID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("%w: %q", ErrImageIDRequired, args[0])
			}

			ctx := context.Background()

			client, err := CreateClient(ctx)
			if err != nil {
				return err
			}

			action, err := client.Images().Transfer(ctx, imageID, region)
			if err != nil {
				return fmt.Errorf("failed to transfer image: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Transfer of image %d started (action %d, %s)\n",
				imageID, action.ID, action.Status)

			return nil
		},
	}

	cmd.Flags().StringVar(&region, "region", "", "destination region slug (required)")
	_ = cmd.MarkFlagRequired("region")

	return cmd
}
