package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aanjelos/kaasi/internal/cli"
)

func transferCmd() *cobra.Command {
	var (
		amount float64
		from   string
		to     string
	)

	cmd := &cobra.Command{
		Use:   "transfer",
		Short: "Move money between accounts",
		Long: `Move money from one account to another. Transfers are atomic and do
not appear in the transaction log; insufficient funds block them.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			led, cleanup, err := openConfiguredLedger(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if err := led.Transfer(ctx, amount, from, to); err != nil && !reportSaveFailure(err) {
				return err
			}

			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf(
				"Transferred %s from %s to %s",
				cli.FormatAmount(amount), accountName(led, from), accountName(led, to))))
			return nil
		},
	}

	cmd.Flags().Float64Var(&amount, "amount", 0, "amount to move")
	cmd.Flags().StringVar(&from, "from", "", "source account id")
	cmd.Flags().StringVar(&to, "to", "", "destination account id")
	_ = cmd.MarkFlagRequired("amount")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}
