package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/aanjelos/kaasi/internal/cli"
	"github.com/aanjelos/kaasi/internal/ledger"
)

func debtsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "debts",
		Short: "Track money you owe",
		Long:  `Record debts, pay them down, and see what is due.`,
	}

	cmd.AddCommand(debtsListCmd())
	cmd.AddCommand(debtsAddCmd())
	cmd.AddCommand(debtsEditCmd())
	cmd.AddCommand(debtsPayCmd())
	cmd.AddCommand(debtsDeleteCmd())

	return cmd
}

func debtsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List open debts",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			led, cleanup, err := openConfiguredLedger(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			debts := led.State().Debts
			if len(debts) == 0 {
				fmt.Println(cli.SubtleStyle.Render("No open debts."))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer func() { _ = w.Flush() }()

			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
				cli.HeaderStyle.Render("ID"),
				cli.HeaderStyle.Render("Who"),
				cli.HeaderStyle.Render("Why"),
				cli.HeaderStyle.Render("Remaining"),
				cli.HeaderStyle.Render("Original"),
				cli.HeaderStyle.Render("Due"))
			for i := range debts {
				d := &debts[i]
				due := d.DueDate
				if due == "" {
					due = cli.SubtleStyle.Render("-")
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
					d.ID, d.Who, d.Why, cli.FormatAmount(d.RemainingAmount),
					cli.FormatAmount(d.OriginalAmount), due)
			}

			return nil
		},
	}
}

func debtsAddCmd() *cobra.Command {
	var in ledger.DebtInput

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a debt",
		Long:  `Record money you owe. Balances do not change; only paying a debt moves cash.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			led, cleanup, err := openConfiguredLedger(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			debt, err := led.AddDebt(ctx, in)
			if err != nil && !reportSaveFailure(err) {
				return err
			}

			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf(
				"Owing %s to %s (%s)", cli.FormatAmount(debt.Amount), debt.Who, debt.ID)))
			return nil
		},
	}

	cmd.Flags().StringVar(&in.Who, "who", "", "who the money is owed to")
	cmd.Flags().StringVar(&in.Why, "why", "", "what the debt is for")
	cmd.Flags().Float64Var(&in.Amount, "amount", 0, "amount owed")
	cmd.Flags().StringVar(&in.DueDate, "due", "", "due date (YYYY-MM-DD, optional)")
	_ = cmd.MarkFlagRequired("who")
	_ = cmd.MarkFlagRequired("why")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

func debtsEditCmd() *cobra.Command {
	var in ledger.DebtEdit

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a debt's details",
		Long:  `Rewrite a debt's fields directly. No account balances are touched.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			led, cleanup, err := openConfiguredLedger(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			debt, err := led.EditDebt(ctx, args[0], in)
			if err != nil && !reportSaveFailure(err) {
				return err
			}

			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf(
				"Updated debt to %s: %s remaining", debt.Who, cli.FormatAmount(debt.RemainingAmount))))
			return nil
		},
	}

	cmd.Flags().StringVar(&in.Who, "who", "", "who the money is owed to")
	cmd.Flags().StringVar(&in.Why, "why", "", "what the debt is for")
	cmd.Flags().Float64Var(&in.OriginalAmount, "original", 0, "original amount")
	cmd.Flags().Float64Var(&in.RemainingAmount, "remaining", 0, "remaining amount")
	cmd.Flags().StringVar(&in.DueDate, "due", "", "due date (YYYY-MM-DD, optional)")
	_ = cmd.MarkFlagRequired("who")
	_ = cmd.MarkFlagRequired("why")
	_ = cmd.MarkFlagRequired("original")
	_ = cmd.MarkFlagRequired("remaining")

	return cmd
}

func debtsPayCmd() *cobra.Command {
	var in ledger.PayDebtInput

	cmd := &cobra.Command{
		Use:   "pay <id>",
		Short: "Pay down a debt",
		Long: `Debit an account toward a debt. The debt is removed once fully paid.
With --expense the payment also appears in the transaction log.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			led, cleanup, err := openConfiguredLedger(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			in.DebtID = args[0]
			if err := led.PayDebt(ctx, in); err != nil && !reportSaveFailure(err) {
				return err
			}

			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf(
				"Paid %s from %s", cli.FormatAmount(in.Amount), accountName(led, in.AccountID))))
			return nil
		},
	}

	cmd.Flags().Float64Var(&in.Amount, "amount", 0, "payment amount")
	cmd.Flags().StringVar(&in.AccountID, "account", "", "account to pay from")
	cmd.Flags().BoolVar(&in.LogAsExpense, "expense", false, "log the payment as an expense")
	cmd.Flags().StringVar(&in.Category, "category", "", "expense category (with --expense)")
	_ = cmd.MarkFlagRequired("amount")
	_ = cmd.MarkFlagRequired("account")

	return cmd
}

func debtsDeleteCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a debt record",
		Long: `Remove a debt record. Payments already made are final; deleting the
record does not refund any account.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			led, cleanup, err := openConfiguredLedger(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if !force && !cli.Confirm(os.Stdin, os.Stdout, "Delete this debt record? Past payments are not refunded.") {
				fmt.Println(cli.SubtleStyle.Render("Cancelled."))
				return nil
			}

			if err := led.DeleteDebt(ctx, args[0]); err != nil && !reportSaveFailure(err) {
				return err
			}

			fmt.Println(cli.SuccessStyle.Render("Debt deleted."))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "skip confirmation")

	return cmd
}
