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

func txCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tx",
		Short: "Record and manage transactions",
		Long:  `Add, edit, delete, and list income and expense transactions.`,
	}

	cmd.AddCommand(txAddCmd())
	cmd.AddCommand(txEditCmd())
	cmd.AddCommand(txDeleteCmd())
	cmd.AddCommand(txListCmd())

	return cmd
}

func txFlags(cmd *cobra.Command, in *ledger.TransactionInput, txType *string) {
	cmd.Flags().StringVar(txType, "type", "expense", "transaction type (income, expense)")
	cmd.Flags().Float64Var(&in.Amount, "amount", 0, "amount")
	cmd.Flags().StringVar(&in.Account, "account", "", "account id (cash, bank_1, bank_2, bank_3)")
	cmd.Flags().StringVar(&in.Category, "category", "", "expense category")
	cmd.Flags().StringVar(&in.Description, "desc", "", "description")
	cmd.Flags().StringVar(&in.Date, "date", model.Today(), "date (YYYY-MM-DD)")
}

func txAddCmd() *cobra.Command {
	var (
		in     ledger.TransactionInput
		txType string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a transaction",
		Long: `Record an income or expense transaction against an account.
Expenses require a category; income does not.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			led, cleanup, err := openConfiguredLedger(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			in.Type = model.TransactionType(txType)
			tx, err := led.RecordTransaction(ctx, in)
			if err != nil && !reportSaveFailure(err) {
				return err
			}

			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf(
				"Recorded %s of %s on %s", tx.Type, cli.FormatAmount(tx.Amount), accountName(led, tx.Account))))
			return nil
		},
	}

	txFlags(cmd, &in, &txType)
	_ = cmd.MarkFlagRequired("amount")
	_ = cmd.MarkFlagRequired("account")
	_ = cmd.MarkFlagRequired("desc")

	return cmd
}

func txEditCmd() *cobra.Command {
	var (
		in     ledger.TransactionInput
		txType string
	)

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a transaction",
		Long: `Replace a transaction's fields. The old entry's balance effect is
reversed and the new one applied in a single step.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			led, cleanup, err := openConfiguredLedger(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			in.Type = model.TransactionType(txType)
			tx, err := led.EditTransaction(ctx, args[0], in)
			if err != nil && !reportSaveFailure(err) {
				return err
			}

			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("Updated transaction %s", tx.ID)))
			return nil
		},
	}

	txFlags(cmd, &in, &txType)
	_ = cmd.MarkFlagRequired("amount")
	_ = cmd.MarkFlagRequired("account")
	_ = cmd.MarkFlagRequired("desc")

	return cmd
}

func txDeleteCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a transaction",
		Long:  `Delete a transaction and reverse its effect on the account balance.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			led, cleanup, err := openConfiguredLedger(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if !force && !cli.Confirm(os.Stdin, os.Stdout, "Delete this transaction and reverse its balance effect?") {
				fmt.Println(cli.SubtleStyle.Render("Cancelled."))
				return nil
			}

			if err := led.DeleteTransaction(ctx, args[0]); err != nil && !reportSaveFailure(err) {
				return err
			}

			fmt.Println(cli.SuccessStyle.Render("Transaction deleted."))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "skip confirmation")

	return cmd
}

func txListCmd() *cobra.Command {
	var (
		month   string
		account string
		limit   int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List transactions",
		Long:  `Display transactions, newest first, optionally filtered by month or account.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			led, cleanup, err := openConfiguredLedger(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			txs := filterTransactions(led.State().Transactions, month, account)
			if len(txs) == 0 {
				fmt.Println(cli.SubtleStyle.Render("No transactions found."))
				return nil
			}
			if limit > 0 && len(txs) > limit {
				txs = txs[:limit]
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer func() { _ = w.Flush() }()

			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
				cli.HeaderStyle.Render("Date"),
				cli.HeaderStyle.Render("Type"),
				cli.HeaderStyle.Render("Amount"),
				cli.HeaderStyle.Render("Account"),
				cli.HeaderStyle.Render("Category"),
				cli.HeaderStyle.Render("Description"))

			for i := range txs {
				t := &txs[i]
				cat := t.Category
				if cat == "" {
					cat = cli.SubtleStyle.Render("-")
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
					t.Date, t.Type, cli.FormatAmount(t.Amount), accountName(led, t.Account), cat, t.Description)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&month, "month", "", "filter by month (YYYY-MM)")
	cmd.Flags().StringVar(&account, "account", "", "filter by account id")
	cmd.Flags().IntVar(&limit, "limit", 0, "show at most this many entries")

	return cmd
}

// filterTransactions returns a newest-first copy matching the filters.
func filterTransactions(all []model.Transaction, month, account string) []model.Transaction {
	out := make([]model.Transaction, 0, len(all))
	for i := len(all) - 1; i >= 0; i-- {
		t := all[i]
		if month != "" && (len(t.Date) < 7 || t.Date[:7] != month) {
			continue
		}
		if account != "" && t.Account != account {
			continue
		}
		out = append(out, t)
	}
	return out
}

func accountName(led *ledger.Ledger, id string) string {
	if acc := led.State().Account(id); acc != nil {
		return acc.Name
	}
	return id
}
