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

func receivablesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "receivables",
		Short: "Track money owed to you",
		Long: `Record money you have lent out, in cash or on the credit card, and
log repayments as they come in.`,
	}

	cmd.AddCommand(receivablesListCmd())
	cmd.AddCommand(receivablesAddCmd())
	cmd.AddCommand(receivablesEditCmd())
	cmd.AddCommand(receivablesReceiveCmd())
	cmd.AddCommand(receivablesDeleteCmd())

	return cmd
}

func receivablesListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List open receivables",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			led, cleanup, err := openConfiguredLedger(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			recs := led.State().Receivables
			if len(recs) == 0 {
				fmt.Println(cli.SubtleStyle.Render("No open receivables."))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer func() { _ = w.Flush() }()

			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
				cli.HeaderStyle.Render("ID"),
				cli.HeaderStyle.Render("Who"),
				cli.HeaderStyle.Render("Why"),
				cli.HeaderStyle.Render("Remaining"),
				cli.HeaderStyle.Render("Type"),
				cli.HeaderStyle.Render("Given"))
			for i := range recs {
				r := &recs[i]
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
					r.ID, r.Who, r.Why, cli.FormatAmount(r.RemainingAmount), r.Type, r.DateGiven)
			}

			return nil
		},
	}
}

func receivableFlags(cmd *cobra.Command, who, why, date, rtype, source *string) {
	cmd.Flags().StringVar(who, "who", "", "who owes the money")
	cmd.Flags().StringVar(why, "why", "", "what it was for")
	cmd.Flags().StringVar(date, "date", model.Today(), "date given (YYYY-MM-DD)")
	cmd.Flags().StringVar(rtype, "type", "cash", "how it was given (cash, cc)")
	cmd.Flags().StringVar(source, "source", "", "source account id (cash type only)")
}

func receivablesAddCmd() *cobra.Command {
	var (
		in            ledger.ReceivableInput
		rtype, source string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a receivable",
		Long: `Record money given out. A cash receivable debits the chosen source
account; a credit-card receivable only creates the record, so book the
matching charge with 'kaasi cc charge' yourself.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			led, cleanup, err := openConfiguredLedger(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			in.Type = model.ReceivableType(rtype)
			in.SourceAccount = source
			rec, err := led.AddReceivable(ctx, in)
			if err != nil && !reportSaveFailure(err) {
				return err
			}

			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf(
				"%s owes you %s (%s)", rec.Who, cli.FormatAmount(rec.Amount), rec.ID)))
			return nil
		},
	}

	receivableFlags(cmd, &in.Who, &in.Why, &in.DateGiven, &rtype, &source)
	cmd.Flags().Float64Var(&in.Amount, "amount", 0, "amount given")
	_ = cmd.MarkFlagRequired("who")
	_ = cmd.MarkFlagRequired("why")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

func receivablesEditCmd() *cobra.Command {
	var (
		in            ledger.ReceivableEdit
		rtype, source string
	)

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a receivable",
		Long: `Rewrite a receivable. The original's side effects are reversed first:
a cash receivable's source account is refunded, a credit-card
receivable's linked charge is removed, then the new values apply.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			led, cleanup, err := openConfiguredLedger(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			in.Type = model.ReceivableType(rtype)
			in.SourceAccount = source
			rec, err := led.EditReceivable(ctx, args[0], in)
			if err != nil && !reportSaveFailure(err) {
				return err
			}

			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf(
				"Updated receivable from %s: %s remaining", rec.Who, cli.FormatAmount(rec.RemainingAmount))))
			return nil
		},
	}

	receivableFlags(cmd, &in.Who, &in.Why, &in.DateGiven, &rtype, &source)
	cmd.Flags().Float64Var(&in.OriginalAmount, "original", 0, "original amount")
	cmd.Flags().Float64Var(&in.RemainingAmount, "remaining", 0, "remaining amount")
	_ = cmd.MarkFlagRequired("who")
	_ = cmd.MarkFlagRequired("why")
	_ = cmd.MarkFlagRequired("original")
	_ = cmd.MarkFlagRequired("remaining")

	return cmd
}

func receivablesReceiveCmd() *cobra.Command {
	var (
		amount  float64
		account string
	)

	cmd := &cobra.Command{
		Use:   "receive <id>",
		Short: "Log a repayment",
		Long: `Credit a repayment to an account and reduce the receivable. The
record is removed once fully repaid.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			led, cleanup, err := openConfiguredLedger(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if err := led.ReceivePayment(ctx, args[0], amount, account); err != nil && !reportSaveFailure(err) {
				return err
			}

			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf(
				"Received %s into %s", cli.FormatAmount(amount), accountName(led, account))))
			return nil
		},
	}

	cmd.Flags().Float64Var(&amount, "amount", 0, "repayment amount")
	cmd.Flags().StringVar(&account, "account", "", "account to credit")
	_ = cmd.MarkFlagRequired("amount")
	_ = cmd.MarkFlagRequired("account")

	return cmd
}

func receivablesDeleteCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a receivable record",
		Long: `Remove a receivable record. Money already given out is not returned
to any account; a linked credit-card charge is removed with it.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			led, cleanup, err := openConfiguredLedger(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if !force && !cli.Confirm(os.Stdin, os.Stdout, "Delete this receivable? The money given out is not restored.") {
				fmt.Println(cli.SubtleStyle.Render("Cancelled."))
				return nil
			}

			if err := led.DeleteReceivable(ctx, args[0]); err != nil && !reportSaveFailure(err) {
				return err
			}

			fmt.Println(cli.SuccessStyle.Render("Receivable deleted."))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "skip confirmation")

	return cmd
}
