package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aanjelos/kaasi/internal/backup"
	"github.com/aanjelos/kaasi/internal/cli"
)

func exportCmd() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the ledger to a JSON backup",
		Long:  `Write the full ledger state to a timestamped JSON file.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			led, cleanup, err := openLedger(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			path, err := backup.Export(led.State(), dir)
			if err != nil {
				return err
			}

			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("Exported to %s", path)))
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "directory to write the backup into")

	return cmd
}

func importCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import a JSON backup",
		Long: `Replace the entire ledger with the contents of a backup file. The
file is validated, merged over defaults, and repaired before anything
is written. Existing data is overwritten.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			state, err := backup.Import(args[0])
			if err != nil {
				return err
			}

			if !force && !cli.Confirm(os.Stdin, os.Stdout,
				"Importing replaces ALL current data. Continue?") {
				fmt.Println(cli.SubtleStyle.Render("Cancelled."))
				return nil
			}

			store, err := initStore(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if err := store.Save(ctx, state); err != nil {
				return err
			}

			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf(
				"Imported %d transactions across %d accounts",
				len(state.Transactions), len(state.Accounts))))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "skip confirmation")

	return cmd
}
