package main

import (
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/aanjelos/kaasi/internal/cli"
	"github.com/aanjelos/kaasi/internal/ledger"
	"github.com/aanjelos/kaasi/internal/model"
)

func ccCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cc",
		Short: "Manage the credit card",
		Long: `Track credit-card charges and payments. Charges do not touch account
balances; paying a charge debits the account the payment comes from.`,
	}

	cmd.AddCommand(ccLimitCmd())
	cmd.AddCommand(ccChargeCmd())
	cmd.AddCommand(ccEditCmd())
	cmd.AddCommand(ccPayCmd())
	cmd.AddCommand(ccDeleteCmd())
	cmd.AddCommand(ccListCmd())

	return cmd
}

func ccLimitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "limit <amount>",
		Short: "Set the credit limit",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			limit, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("invalid limit %q", args[0])
			}

			led, cleanup, err := openConfiguredLedger(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if err := led.SetCreditLimit(ctx, limit); err != nil && !reportSaveFailure(err) {
				return err
			}

			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf(
				"Credit limit set to %s", cli.FormatAmount(limit))))
			return nil
		},
	}
}

func ccChargeCmd() *cobra.Command {
	var in ledger.CCChargeInput

	cmd := &cobra.Command{
		Use:   "charge",
		Short: "Record a credit-card charge",
		Long:  `Record a charge on the card. No account balance changes until it is paid.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			led, cleanup, err := openConfiguredLedger(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			item, err := led.AddCCCharge(ctx, in)
			if err != nil && !reportSaveFailure(err) {
				return err
			}

			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf(
				"Charged %s: %s (%s)", cli.FormatAmount(item.Amount), item.Description, item.ID)))
			return nil
		},
	}

	cmd.Flags().Float64Var(&in.Amount, "amount", 0, "charge amount")
	cmd.Flags().StringVar(&in.Description, "desc", "", "description")
	cmd.Flags().StringVar(&in.Date, "date", model.Today(), "date (YYYY-MM-DD)")
	_ = cmd.MarkFlagRequired("amount")
	_ = cmd.MarkFlagRequired("desc")

	return cmd
}

func ccEditCmd() *cobra.Command {
	var in ledger.CCChargeInput

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a charge",
		Long: `Rewrite a charge's amount, description, and date. The paid amount is
clamped to the new total and the paid-off state recomputed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			led, cleanup, err := openConfiguredLedger(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			item, err := led.EditCCTransaction(ctx, args[0], in)
			if err != nil && !reportSaveFailure(err) {
				return err
			}

			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf(
				"Updated charge %s: %s remaining", item.ID, cli.FormatAmount(item.Remaining()))))
			return nil
		},
	}

	cmd.Flags().Float64Var(&in.Amount, "amount", 0, "charge amount")
	cmd.Flags().StringVar(&in.Description, "desc", "", "description")
	cmd.Flags().StringVar(&in.Date, "date", model.Today(), "date (YYYY-MM-DD)")
	_ = cmd.MarkFlagRequired("amount")
	_ = cmd.MarkFlagRequired("desc")

	return cmd
}

func ccPayCmd() *cobra.Command {
	var in ledger.PayCCInput

	cmd := &cobra.Command{
		Use:   "pay <id>",
		Short: "Pay toward a charge",
		Long: `Debit an account toward a charge. With --expense the payment is also
logged as a transaction linked to the charge.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			led, cleanup, err := openConfiguredLedger(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			in.ItemID = args[0]
			if err := led.PayCCItem(ctx, in); err != nil && !reportSaveFailure(err) {
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

func ccDeleteCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a charge",
		Long: `Remove a charge and any expense transactions linked to it. Money
already paid toward the charge is not refunded.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			led, cleanup, err := openConfiguredLedger(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if !force && !cli.Confirm(os.Stdin, os.Stdout, "Delete this charge and its linked payment log entries?") {
				fmt.Println(cli.SubtleStyle.Render("Cancelled."))
				return nil
			}

			if err := led.DeleteCCTransaction(ctx, args[0]); err != nil && !reportSaveFailure(err) {
				return err
			}

			fmt.Println(cli.SuccessStyle.Render("Charge deleted."))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "skip confirmation")

	return cmd
}

func ccListCmd() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List charges",
		Long:  `Display unpaid charges; --all includes the paid-off ones.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			led, cleanup, err := openConfiguredLedger(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			cc := led.State().CreditCard
			fmt.Printf("%s %s   %s %s\n",
				cli.HeaderStyle.Render("Outstanding:"), cli.FormatAmount(led.OutstandingCC()),
				cli.HeaderStyle.Render("Available:"), cli.FormatAmount(led.AvailableCredit()))

			shown := 0
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				cli.HeaderStyle.Render("ID"),
				cli.HeaderStyle.Render("Date"),
				cli.HeaderStyle.Render("Description"),
				cli.HeaderStyle.Render("Amount"),
				cli.HeaderStyle.Render("Remaining"))
			for i := range cc.Transactions {
				t := &cc.Transactions[i]
				if t.PaidOff && !all {
					continue
				}
				remaining := cli.FormatAmount(t.Remaining())
				if t.PaidOff {
					remaining = cli.SubtleStyle.Render("paid off")
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
					t.ID, t.Date, t.Description, cli.FormatAmount(t.Amount), remaining)
				shown++
			}
			_ = w.Flush()

			if shown == 0 {
				fmt.Println(cli.SubtleStyle.Render("No charges to show."))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "include paid-off charges")

	return cmd
}
