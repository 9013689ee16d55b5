package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/aanjelos/kaasi/internal/cli"
	"github.com/aanjelos/kaasi/internal/config"
	"github.com/aanjelos/kaasi/internal/ledger"
)

func dashboardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show the financial overview",
		Long: `Display account balances, net worth, open debts and receivables,
installment commitments, and the credit-card position.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			led, cleanup, err := openConfiguredLedger(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			sum := led.Summarize()

			fmt.Println(cli.TitleStyle.Render("Accounts"))
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			for _, acc := range sum.Accounts {
				fmt.Fprintf(w, "  %s\t%s\n", acc.Name, cli.FormatBalance(acc.Balance))
			}
			fmt.Fprintf(w, "  %s\t%s\n", cli.HeaderStyle.Render("Net worth"), cli.FormatBalance(sum.NetWorth))
			_ = w.Flush()

			fmt.Println()
			fmt.Println(cli.TitleStyle.Render("Commitments"))
			w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintf(w, "  You owe\t%s\n", cli.FormatAmount(sum.TotalOwed))
			fmt.Fprintf(w, "  Owed to you\t%s\n", cli.FormatAmount(sum.TotalOwing))
			fmt.Fprintf(w, "  Installments left\t%s\n", cli.FormatAmount(sum.InstallmentsLeft))
			_ = w.Flush()

			if led.State().Settings.ShowCCDashboardSection {
				fmt.Println()
				fmt.Println(cli.TitleStyle.Render("Credit card"))
				w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
				fmt.Fprintf(w, "  Limit\t%s\n", cli.FormatAmount(sum.CCLimit))
				fmt.Fprintf(w, "  Outstanding\t%s\n", cli.FormatAmount(sum.CCOutstanding))
				fmt.Fprintf(w, "  Available\t%s\n", cli.FormatAmount(sum.CCAvailable))
				_ = w.Flush()
			}

			if len(sum.DebtsDue) > 0 {
				fmt.Println()
				fmt.Println(cli.TitleStyle.Render("Debts due"))
				w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
				for _, d := range sum.DebtsDue {
					when := cli.SubtleStyle.Render("no due date")
					switch {
					case d.HasDays && d.DaysLeft < 0:
						when = cli.ErrorStyle.Render(fmt.Sprintf("%d days overdue", -d.DaysLeft))
					case d.HasDays && d.DaysLeft == 0:
						when = cli.WarningStyle.Render("due today")
					case d.HasDays:
						when = fmt.Sprintf("in %d days", d.DaysLeft)
					}
					fmt.Fprintf(w, "  %s (%s)\t%s\t%s\n", d.Who, d.Why, cli.FormatAmount(d.Remaining), when)
				}
				_ = w.Flush()
			}

			return nil
		},
	}
}

func monthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "month <YYYY-MM>",
		Short: "Show a monthly report",
		Long:  `Aggregate one calendar month: income, expenses, net, and a per-category breakdown.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			led, cleanup, err := openConfiguredLedger(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			report, err := led.ReportMonth(args[0])
			if err != nil {
				return err
			}

			fmt.Println(cli.TitleStyle.Render(report.Month))
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintf(w, "  Income\t%s\n", cli.FormatAmount(report.Income))
			fmt.Fprintf(w, "  Expenses\t%s\n", cli.FormatAmount(report.Expenses))
			fmt.Fprintf(w, "  Net\t%s\n", cli.FormatBalance(report.Net))
			_ = w.Flush()

			if len(report.ByCategory) > 0 {
				fmt.Println()
				fmt.Println(cli.TitleStyle.Render("By category"))
				w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
				for _, row := range report.ByCategory {
					fmt.Fprintf(w, "  %s\t%s\n", row.Category, cli.FormatAmount(row.Amount))
				}
				_ = w.Flush()
			}

			return nil
		},
	}
}

func statusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show data file health",
		Long:  `Report where the ledger lives, how big it is, and what it holds.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStore(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			size, err := store.Size(ctx)
			if err != nil {
				return err
			}

			led, err := ledger.Open(ctx, store)
			if err != nil {
				return err
			}
			s := led.State()

			dbPath := viper.GetString("database.path")
			if dbPath == "" {
				dbPath = config.DefaultDataPath
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer func() { _ = w.Flush() }()

			fmt.Fprintf(w, "Database\t%s\n", config.ExpandPath(dbPath))
			fmt.Fprintf(w, "Stored size\t%d bytes\n", size)
			fmt.Fprintf(w, "Setup done\t%t\n", s.Settings.InitialSetupDone)
			fmt.Fprintf(w, "Transactions\t%d\n", len(s.Transactions))
			fmt.Fprintf(w, "Categories\t%d\n", len(s.Categories))
			fmt.Fprintf(w, "Debts\t%d\n", len(s.Debts))
			fmt.Fprintf(w, "Receivables\t%d\n", len(s.Receivables))
			fmt.Fprintf(w, "Installments\t%d\n", len(s.Installments))
			fmt.Fprintf(w, "CC charges\t%d\n", len(s.CreditCard.Transactions))

			return nil
		},
	}
}
