package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/kmlxly/splitit-app-sub001/internal/cli"
	"github.com/kmlxly/splitit-app-sub001/internal/model"
)

func listCmd() *cobra.Command {
	var month string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recorded transactions",
		Long: `List shows recorded transactions in their stored order, newest entries
last. With --month only that month is shown; records whose dates cannot be
resolved are always listed so nothing silently disappears.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStore(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			prefs, err := loadPrefs(ctx, store)
			if err != nil {
				return err
			}

			now := time.Now()
			var records []model.Transaction
			header := "All transactions"
			if month != "" {
				when, parseErr := time.Parse("2006-01", month)
				if parseErr != nil {
					return fmt.Errorf("invalid month %q, expected YYYY-MM: %w", month, parseErr)
				}
				records = store.FilterByMonth(when.Year(), when.Month(), now)
				header = when.Format("January 2006")
			} else {
				records = store.Transactions()
			}

			if len(records) == 0 {
				fmt.Println(cli.SubtleStyle.Render("No transactions recorded."))
				return nil
			}

			fmt.Println(cli.TitleStyle.Render(header))
			fmt.Println(cli.TableHeaderStyle.Render(fmt.Sprintf("%-12s  %-24s  %-10s  %s", "Date", "Title", "Category", "Amount")))
			for _, record := range records {
				fmt.Println(cli.FormatTransaction(record, prefs))
			}
			fmt.Printf("\n%d transactions  Sync: %s\n", len(records), store.Status())
			return nil
		},
	}

	cmd.Flags().StringVarP(&month, "month", "m", "", "restrict to a month (YYYY-MM)")
	return cmd
}
