package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/aanjelos/kaasi/internal/cli"
	"github.com/aanjelos/kaasi/internal/ledger"
)

func installmentsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "installments",
		Short: "Manage installment plans",
		Long:  `Track fixed-term payment plans and pay them off a month at a time.`,
	}

	cmd.AddCommand(installmentsListCmd())
	cmd.AddCommand(installmentsAddCmd())
	cmd.AddCommand(installmentsEditCmd())
	cmd.AddCommand(installmentsPayCmd())
	cmd.AddCommand(installmentsDeleteCmd())

	return cmd
}

func installmentsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List active plans",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			led, cleanup, err := openConfiguredLedger(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			plans := led.State().Installments
			if len(plans) == 0 {
				fmt.Println(cli.SubtleStyle.Render("No active installment plans."))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer func() { _ = w.Flush() }()

			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				cli.HeaderStyle.Render("ID"),
				cli.HeaderStyle.Render("Description"),
				cli.HeaderStyle.Render("Monthly"),
				cli.HeaderStyle.Render("Progress"),
				cli.HeaderStyle.Render("Started"))
			for i := range plans {
				p := &plans[i]
				fmt.Fprintf(w, "%s\t%s\t%s\t%d/%d paid\t%s\n",
					p.ID, p.Description, cli.FormatAmount(p.MonthlyAmount),
					p.TotalMonths-p.MonthsLeft, p.TotalMonths, p.StartDate)
			}

			return nil
		},
	}
}

func installmentFlags(cmd *cobra.Command, in *ledger.InstallmentInput, monthsLeft *int) {
	cmd.Flags().StringVar(&in.Description, "desc", "", "what the plan is for")
	cmd.Flags().Float64Var(&in.FullAmount, "full-amount", 0, "total amount of the plan")
	cmd.Flags().IntVar(&in.TotalMonths, "months", 0, "total number of months")
	cmd.Flags().IntVar(monthsLeft, "months-left", 0, "months still unpaid (defaults to all)")
	cmd.Flags().StringVar(&in.StartDate, "start", "", "start date (YYYY-MM-DD)")
	_ = cmd.MarkFlagRequired("desc")
	_ = cmd.MarkFlagRequired("full-amount")
	_ = cmd.MarkFlagRequired("months")
	_ = cmd.MarkFlagRequired("start")
}

func installmentsAddCmd() *cobra.Command {
	var (
		in         ledger.InstallmentInput
		monthsLeft int
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Start an installment plan",
		Long: `Create a fixed-term plan. The monthly amount is the full amount
divided evenly over the total months.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			led, cleanup, err := openConfiguredLedger(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if cmd.Flags().Changed("months-left") {
				in.MonthsLeft = &monthsLeft
			}
			plan, err := led.AddInstallmentPlan(ctx, in)
			if err != nil && !reportSaveFailure(err) {
				return err
			}

			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf(
				"Plan %q: %s/month for %d months", plan.Description,
				cli.FormatAmount(plan.MonthlyAmount), plan.TotalMonths)))
			return nil
		},
	}

	installmentFlags(cmd, &in, &monthsLeft)

	return cmd
}

func installmentsEditCmd() *cobra.Command {
	var (
		in         ledger.InstallmentInput
		monthsLeft int
	)

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit an installment plan",
		Long: `Rewrite a plan's terms. The monthly amount is recomputed from the new
full amount and total months.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			led, cleanup, err := openConfiguredLedger(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if cmd.Flags().Changed("months-left") {
				in.MonthsLeft = &monthsLeft
			}
			plan, err := led.EditInstallmentPlan(ctx, args[0], in)
			if err != nil && !reportSaveFailure(err) {
				return err
			}

			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf(
				"Plan %q: %d months left", plan.Description, plan.MonthsLeft)))
			return nil
		},
	}

	installmentFlags(cmd, &in, &monthsLeft)

	return cmd
}

func installmentsPayCmd() *cobra.Command {
	var (
		account  string
		category string
	)

	cmd := &cobra.Command{
		Use:   "pay <id>",
		Short: "Pay one month of a plan",
		Long: `Debit an account for one monthly installment and log it as an
expense. The plan is removed after its final month.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			led, cleanup, err := openConfiguredLedger(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			tx, err := led.PayInstallmentMonth(ctx, args[0], account, category)
			if err != nil && !reportSaveFailure(err) {
				return err
			}

			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf(
				"Paid %s: %s", cli.FormatAmount(tx.Amount), tx.Description)))
			return nil
		},
	}

	cmd.Flags().StringVar(&account, "account", "", "account to pay from")
	cmd.Flags().StringVar(&category, "category", "", "expense category")
	_ = cmd.MarkFlagRequired("account")
	_ = cmd.MarkFlagRequired("category")

	return cmd
}

func installmentsDeleteCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an installment plan",
		Long:  `Remove a plan. Months already paid stay in the transaction log.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			led, cleanup, err := openConfiguredLedger(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if !force && !cli.Confirm(os.Stdin, os.Stdout, "Delete this installment plan?") {
				fmt.Println(cli.SubtleStyle.Render("Cancelled."))
				return nil
			}

			if err := led.DeleteInstallmentPlan(ctx, args[0]); err != nil && !reportSaveFailure(err) {
				return err
			}

			fmt.Println(cli.SuccessStyle.Render("Installment plan deleted."))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "skip confirmation")

	return cmd
}
