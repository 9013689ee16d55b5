package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aanjelos/kaasi/internal/cli"
)

const resetPhrase = "DELETE"

func resetCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Wipe all data",
		Long: `Delete the entire ledger. Everything is removed and the next run
starts from first-time setup. Export a backup first if in doubt.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			if !force && !cli.ConfirmPhrase(os.Stdin, os.Stdout,
				"This permanently deletes ALL data.", resetPhrase) {
				fmt.Println(cli.SubtleStyle.Render("Cancelled."))
				return nil
			}

			store, err := initStore(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if err := store.Wipe(ctx); err != nil {
				return err
			}

			fmt.Println(cli.SuccessStyle.Render("All data deleted. Run 'kaasi setup' to start over."))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "skip confirmation")

	return cmd
}
