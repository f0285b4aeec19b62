package main

import (
	"fmt"
	"math"
	"time"

	"github.com/spf13/cobra"

	"github.com/kmlxly/splitit-app-sub001/internal/cli"
	"github.com/kmlxly/splitit-app-sub001/internal/model"
)

func addCmd() *cobra.Command {
	var (
		amount   float64
		category string
		date     string
	)

	cmd := &cobra.Command{
		Use:   "add [title]",
		Short: "Record a transaction by hand",
		Long: `Add records a transaction without scanning anything. The amount is given
as a magnitude; the sign follows the category, so income is positive and
everything else is an expense.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			now := time.Now()

			cat, known := model.ParseCategory(category)
			if !known && category != "" {
				fmt.Println(cli.FormatWarning(fmt.Sprintf("Unknown category %q, using %s", category, cat)))
			}

			t := model.Transaction{
				ID:       model.NewID(now),
				Title:    args[0],
				Category: cat,
				Amount:   math.Abs(amount),
			}
			if !cat.IsIncome() {
				t.Amount = -t.Amount
			}

			when := now
			if date != "" {
				resolved, ok := model.ResolvePartialDate(date, now)
				if !ok {
					fmt.Println(cli.FormatWarning(fmt.Sprintf("Could not read date %q, using today", date)))
				} else {
					when = resolved
				}
			}
			t.SetDate(when)

			store, err := initStore(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			if err := store.Commit(ctx, t); err != nil {
				return err
			}

			prefs, err := loadPrefs(ctx, store)
			if err != nil {
				return err
			}
			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Recorded %s (%s)", t.Title, cli.FormatAmount(t.Amount, prefs))))
			return nil
		},
	}

	cmd.Flags().Float64VarP(&amount, "amount", "a", 0, "amount magnitude (required)")
	cmd.Flags().StringVarP(&category, "category", "c", "Other", "category (Food, Transport, Shopping, Bills, Utility, Income, Other)")
	cmd.Flags().StringVarP(&date, "date", "d", "", "date, e.g. \"12 Jan\" or \"12 Jan 2025\" (default today)")
	_ = cmd.MarkFlagRequired("amount")
	return cmd
}
