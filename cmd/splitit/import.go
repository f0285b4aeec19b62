package main

import (
	"fmt"
	"os"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/kmlxly/splitit-app-sub001/internal/cli"
	"github.com/kmlxly/splitit-app-sub001/internal/common"
	"github.com/kmlxly/splitit-app-sub001/internal/extract"
	"github.com/kmlxly/splitit-app-sub001/internal/media"
	"github.com/kmlxly/splitit-app-sub001/internal/model"
	"github.com/kmlxly/splitit-app-sub001/internal/normalize"
)

func importCmd() *cobra.Command {
	var autoConfirm bool

	cmd := &cobra.Command{
		Use:   "import [statement...]",
		Short: "Import bank statement pages in bulk",
		Long: `Import extracts every transaction from one or more statement images or
PDFs. Each page may yield many rows; rows the model mangles beyond repair
are dropped and counted rather than aborting the page.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			client, err := initExtractClient(ctx)
			if err != nil {
				return err
			}

			bar := progressbar.NewOptions(len(args),
				progressbar.OptionSetWriter(os.Stderr),
				progressbar.OptionEnableColorCodes(true),
				progressbar.OptionShowCount(),
				progressbar.OptionSetWidth(40),
				progressbar.OptionSetDescription("[cyan]Extracting pages...[reset]"),
				progressbar.OptionSetTheme(progressbar.Theme{
					Saucer:        "[green]=[reset]",
					SaucerHead:    "[green]>[reset]",
					SaucerPadding: " ",
					BarStart:      "[",
					BarEnd:        "]",
				}),
				progressbar.OptionOnCompletion(func() {
					fmt.Fprintln(os.Stderr)
				}),
			)

			now := time.Now()
			var records []model.Transaction
			var warnings []string
			totalDropped := 0

			for _, path := range args {
				payload, encErr := media.Encode(path)
				if encErr != nil {
					return encErr
				}

				text, extErr := extractWithRetry(ctx, client, payload, extract.Instruction(true))
				if extErr != nil {
					return extErr
				}

				candidate, recErr := extract.Recover(text)
				if recErr != nil {
					return recErr
				}

				// Ids are derived from the base timestamp plus the row index,
				// so each page's base must clear the rows already collected.
				// A collision would upsert over an earlier page's row.
				results, dropped, normErr := normalize.Normalize(candidate, true, pageBase(now, len(records)))
				if normErr != nil {
					return normErr
				}
				totalDropped += dropped
				for _, result := range results {
					records = append(records, result.Transaction)
					warnings = append(warnings, result.Warnings...)
				}

				_ = bar.Add(1)
			}

			if len(records) == 0 {
				fmt.Println(cli.FormatWarning("No transactions found in the given pages."))
				return nil
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

			fmt.Println(cli.TitleStyle.Render(fmt.Sprintf("Extracted %d transactions", len(records))))
			for _, record := range records {
				fmt.Println(cli.FormatTransaction(record, prefs))
			}
			for _, warning := range warnings {
				fmt.Println(cli.FormatWarning(warning))
			}
			if totalDropped > 0 {
				fmt.Println(cli.FormatWarning(fmt.Sprintf("%d unreadable rows were skipped", totalDropped)))
			}

			if !autoConfirm {
				reader := cli.NewReader(os.Stdin)
				ok, confirmErr := reader.Confirm(ctx, fmt.Sprintf("Record all %d transactions?", len(records)))
				if confirmErr != nil {
					return confirmErr
				}
				if !ok {
					fmt.Println(cli.FormatWarning("Discarded."))
					return nil
				}
			}

			if err := ctx.Err(); err != nil {
				return err
			}

			if err := store.Commit(ctx, records...); err != nil {
				return err
			}

			common.LogInfo("statement import recorded", common.Fields{
				"pages":   len(args),
				"records": len(records),
				"dropped": totalDropped,
			})
			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Recorded %d transactions", len(records))))
			fmt.Printf("Sync: %s\n", store.Status())
			return nil
		},
	}

	cmd.Flags().BoolVarP(&autoConfirm, "yes", "y", false, "record without confirmation")
	return cmd
}

// pageBase returns the id base timestamp for a page, offset by the number
// of rows collected from earlier pages. Offsets are in milliseconds to
// match the id granularity.
func pageBase(now time.Time, collected int) time.Time {
	return now.Add(time.Duration(collected) * time.Millisecond)
}
