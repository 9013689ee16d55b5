package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aanjelos/kaasi/internal/cli"
	"github.com/aanjelos/kaasi/internal/ledger"
	"github.com/aanjelos/kaasi/internal/model"
)

func setupCmd() *cobra.Command {
	var (
		names      []string
		balances   []string
		enableCC   bool
		ccLimit    float64
		categories []string
	)

	cmd := &cobra.Command{
		Use:   "setup",
		Short: "Run first-time setup",
		Long: `Initialize the ledger: name the three bank accounts, set opening
balances, and optionally enable the credit card. Runs once; wipe the
data to run it again.

  kaasi setup --name bank_1=Commercial --balance cash=2500 --balance bank_1=80000`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			led, cleanup, err := openLedger(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			in := ledger.SetupInput{
				AccountNames:    map[string]string{},
				OpeningBalances: map[string]float64{},
				EnableCC:        enableCC,
				CCLimit:         ccLimit,
				Categories:      categories,
			}
			for _, pair := range names {
				id, name, err := splitPair(pair)
				if err != nil {
					return err
				}
				in.AccountNames[id] = name
			}
			for _, pair := range balances {
				id, raw, err := splitPair(pair)
				if err != nil {
					return err
				}
				bal, err := strconv.ParseFloat(raw, 64)
				if err != nil {
					return fmt.Errorf("invalid balance %q for %s", raw, id)
				}
				in.OpeningBalances[id] = bal
			}

			if err := led.InitialSetup(ctx, in); err != nil && !reportSaveFailure(err) {
				return err
			}

			fmt.Println(cli.SuccessStyle.Render("Setup complete. Accounts:"))
			for _, acc := range led.State().Accounts {
				fmt.Printf("  %s (%s): %s\n", acc.Name, acc.ID, cli.FormatBalance(acc.Balance))
			}
			if enableCC {
				fmt.Printf("  Credit card enabled with a limit of %s\n", cli.FormatAmount(ccLimit))
			}
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&names, "name", nil,
		fmt.Sprintf("account name as id=name (ids: %s, %s, %s; cash is fixed)",
			model.AccountBank1, model.AccountBank2, model.AccountBank3))
	cmd.Flags().StringArrayVar(&balances, "balance", nil, "opening balance as id=amount")
	cmd.Flags().BoolVar(&enableCC, "cc", false, "enable the credit-card section")
	cmd.Flags().Float64Var(&ccLimit, "cc-limit", 0, "credit limit (with --cc)")
	cmd.Flags().StringArrayVar(&categories, "category", nil, "extra starting category (repeatable)")

	return cmd
}

func splitPair(pair string) (string, string, error) {
	parts := strings.SplitN(pair, "=", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("expected id=value, got %q", pair)
	}
	return parts[0], parts[1], nil
}
