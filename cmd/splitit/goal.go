package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/kmlxly/splitit-app-sub001/internal/cli"
	"github.com/kmlxly/splitit-app-sub001/internal/goals"
)

func goalCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "goal",
		Short: "Savings goal operations",
	}
	cmd.AddCommand(goalDepositCmd())
	return cmd
}

func goalDepositCmd() *cobra.Command {
	var amount float64

	cmd := &cobra.Command{
		Use:   "deposit [goal]",
		Short: "Move money into a savings goal",
		Long: `Deposit records a transfer into a named goal as a spending transaction,
so the money leaves the spendable balance the moment it is set aside.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			if amount <= 0 {
				return fmt.Errorf("deposit amount must be positive, got %v", amount)
			}

			store, err := initStore(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			deposit := goals.Deposit{Goal: args[0], Amount: amount}
			record := deposit.Transaction(time.Now())
			if err := store.Commit(ctx, record); err != nil {
				return err
			}

			prefs, err := loadPrefs(ctx, store)
			if err != nil {
				return err
			}
			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Deposited %s into %s",
				cli.FormatAmount(record.Amount, prefs), args[0])))
			return nil
		},
	}

	cmd.Flags().Float64VarP(&amount, "amount", "a", 0, "amount to deposit (required)")
	_ = cmd.MarkFlagRequired("amount")
	return cmd
}
