package main

import (
	"fmt"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/kmlxly/splitit-app-sub001/internal/aggregate"
	"github.com/kmlxly/splitit-app-sub001/internal/cli"
	"github.com/kmlxly/splitit-app-sub001/internal/model"
)

func summaryCmd() *cobra.Command {
	var month string

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Show monthly spending totals",
		Long: `Summary totals a month's inflow and outflow, breaks the outflow down by
category and by day, and shows progress against the month's budget when one
is set.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			now := time.Now()

			when := now
			if month != "" {
				parsed, err := time.Parse("2006-01", month)
				if err != nil {
					return fmt.Errorf("invalid month %q, expected YYYY-MM: %w", month, err)
				}
				when = parsed
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

			records := store.FilterByMonth(when.Year(), when.Month(), now)
			summary := aggregate.Summarize(records, now)

			fmt.Println(cli.TitleStyle.Render(when.Format("January 2006")))
			fmt.Printf("Spent:    %s\n", cli.FormatAmount(-summary.TotalOutflow, prefs))
			fmt.Printf("Received: %s\n", cli.FormatAmount(summary.TotalInflow, prefs))

			if len(summary.CategoryOutflow) > 0 {
				fmt.Println()
				fmt.Println(cli.TableHeaderStyle.Render(fmt.Sprintf("%-10s  %s", "Category", "Spent")))
				categories := make([]model.Category, 0, len(summary.CategoryOutflow))
				for category := range summary.CategoryOutflow {
					categories = append(categories, category)
				}
				sort.Slice(categories, func(i, j int) bool {
					return summary.CategoryOutflow[categories[i]] > summary.CategoryOutflow[categories[j]]
				})
				for _, category := range categories {
					fmt.Printf("%-10s  %s\n", category, cli.FormatAmount(-summary.CategoryOutflow[category], prefs))
				}
			}

			limit, hasLimit, err := store.BudgetLimit(ctx, when.Format("2006-01"))
			if err != nil {
				return err
			}
			if hasLimit {
				if percent, ok := aggregate.BudgetProgress(limit, summary.TotalOutflow); ok {
					line := fmt.Sprintf("Budget: %.0f%% of %s used", percent, cli.FormatAmount(-limit, prefs))
					if percent >= 100 {
						fmt.Println(cli.FormatError(line))
					} else if percent >= 80 {
						fmt.Println(cli.FormatWarning(line))
					} else {
						fmt.Println(line)
					}
				}
			}

			fmt.Printf("\nSync: %s\n", store.Status())
			return nil
		},
	}

	cmd.Flags().StringVarP(&month, "month", "m", "", "month to summarize (YYYY-MM, default current)")
	return cmd
}
