package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/kmlxly/splitit-app-sub001/internal/cli"
)

func budgetCmd() *cobra.Command {
	var month string

	cmd := &cobra.Command{
		Use:   "budget [limit]",
		Short: "Set or show a monthly spending budget",
		Long: `Budget with no arguments shows the month's limit. With an amount it sets
the limit; zero clears it.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			now := time.Now()

			yearMonth := now.Format("2006-01")
			if month != "" {
				parsed, err := time.Parse("2006-01", month)
				if err != nil {
					return fmt.Errorf("invalid month %q, expected YYYY-MM: %w", month, err)
				}
				yearMonth = parsed.Format("2006-01")
			}

			store, err := initStore(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			prefs, err := loadPrefs(ctx, store)
			if err != nil {
				return err
			}

			if len(args) == 0 {
				limit, ok, getErr := store.BudgetLimit(ctx, yearMonth)
				if getErr != nil {
					return getErr
				}
				if !ok {
					fmt.Println(cli.SubtleStyle.Render(fmt.Sprintf("No budget set for %s.", yearMonth)))
					return nil
				}
				fmt.Printf("Budget for %s: %s\n", yearMonth, cli.FormatAmount(-limit, prefs))
				return nil
			}

			limit, parseErr := strconv.ParseFloat(args[0], 64)
			if parseErr != nil {
				return fmt.Errorf("invalid budget amount %q: %w", args[0], parseErr)
			}

			if err := store.SetBudgetLimit(ctx, yearMonth, limit); err != nil {
				return err
			}
			if limit <= 0 {
				fmt.Println(cli.FormatSuccess(fmt.Sprintf("Cleared budget for %s", yearMonth)))
				return nil
			}
			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Budget for %s set to %s", yearMonth, cli.FormatAmount(-limit, prefs))))
			return nil
		},
	}

	cmd.Flags().StringVarP(&month, "month", "m", "", "month the budget applies to (YYYY-MM, default current)")
	return cmd
}
