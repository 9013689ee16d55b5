package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/aanjelos/kaasi/internal/cli"
	"github.com/aanjelos/kaasi/internal/ledger"
	"github.com/aanjelos/kaasi/internal/model"
)

func accountsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "accounts",
		Short: "View and edit accounts",
		Long:  `List the four accounts or adjust their names and balances.`,
	}

	cmd.AddCommand(accountsListCmd())
	cmd.AddCommand(accountsEditCmd())

	return cmd
}

func accountsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List accounts and balances",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			led, cleanup, err := openConfiguredLedger(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer func() { _ = w.Flush() }()

			fmt.Fprintf(w, "%s\t%s\t%s\n",
				cli.HeaderStyle.Render("ID"),
				cli.HeaderStyle.Render("Name"),
				cli.HeaderStyle.Render("Balance"))
			for _, acc := range led.State().Accounts {
				fmt.Fprintf(w, "%s\t%s\t%s\n", acc.ID, acc.Name, cli.FormatBalance(acc.Balance))
			}

			return nil
		},
	}
}

func accountsEditCmd() *cobra.Command {
	var (
		name    string
		balance float64
	)

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Rename an account or set its balance",
		Long: `Set an account's display name and balance directly. The cash
account's name is fixed; only its balance can change. Unset flags keep
the current value.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			led, cleanup, err := openConfiguredLedger(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			acc := led.State().Account(args[0])
			if acc == nil {
				return fmt.Errorf("unknown account %q", args[0])
			}

			row := ledger.AccountUpdate{ID: acc.ID, Name: acc.Name, Balance: acc.Balance}
			if cmd.Flags().Changed("name") {
				row.Name = name
			}
			if cmd.Flags().Changed("balance") {
				row.Balance = balance
			}
			if acc.ID == model.AccountCash {
				row.Name = acc.Name
			}

			if err := led.UpdateAccounts(ctx, []ledger.AccountUpdate{row}); err != nil && !reportSaveFailure(err) {
				return err
			}

			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf(
				"%s: %s", row.Name, cli.FormatBalance(row.Balance))))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "new display name")
	cmd.Flags().Float64Var(&balance, "balance", 0, "new balance")

	return cmd
}
