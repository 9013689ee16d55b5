package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aanjelos/kaasi/internal/cli"
)

func categoriesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "Manage expense categories",
		Long:  `List, add, rename, and delete the categories used for expenses.`,
	}

	cmd.AddCommand(categoriesListCmd())
	cmd.AddCommand(categoriesAddCmd())
	cmd.AddCommand(categoriesRenameCmd())
	cmd.AddCommand(categoriesDeleteCmd())

	return cmd
}

func categoriesListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all categories",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			led, cleanup, err := openConfiguredLedger(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			for _, cat := range led.State().Categories {
				fmt.Println(cat)
			}
			return nil
		},
	}
}

func categoriesAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <name>",
		Short: "Add a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			led, cleanup, err := openConfiguredLedger(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if err := led.AddCategory(ctx, args[0]); err != nil && !reportSaveFailure(err) {
				return err
			}

			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("Added category %q", args[0])))
			return nil
		},
	}
}

func categoriesRenameCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rename <old> <new>",
		Short: "Rename a category",
		Long:  `Rename a category. Every transaction using the old name is updated.`,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			led, cleanup, err := openConfiguredLedger(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			updated, err := led.RenameCategory(ctx, args[0], args[1])
			if err != nil && !reportSaveFailure(err) {
				return err
			}

			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf(
				"Renamed %q to %q (%d transactions updated)", args[0], args[1], updated)))
			return nil
		},
	}
}

func categoriesDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete a category",
		Long: `Delete an unused category. Categories still referenced by
transactions, and the fallback category, cannot be removed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			led, cleanup, err := openConfiguredLedger(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if err := led.DeleteCategory(ctx, args[0]); err != nil && !reportSaveFailure(err) {
				return err
			}

			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("Deleted category %q", args[0])))
			return nil
		},
	}
}
