package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/kmlxly/splitit-app-sub001/internal/cli"
	"github.com/kmlxly/splitit-app-sub001/internal/common"
	"github.com/kmlxly/splitit-app-sub001/internal/extract"
	"github.com/kmlxly/splitit-app-sub001/internal/media"
	"github.com/kmlxly/splitit-app-sub001/internal/normalize"
)

func scanCmd() *cobra.Command {
	var autoConfirm bool

	cmd := &cobra.Command{
		Use:   "scan [image]",
		Short: "Scan a receipt photo into a transaction",
		Long: `Scan reads a receipt image, extracts the single transaction on it with
the model, and records it after your confirmation. Oversized photos are
downscaled before upload.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			payload, err := media.Encode(args[0])
			if err != nil {
				var readErr *media.ReadError
				if errors.As(err, &readErr) {
					fmt.Println(cli.FormatError(fmt.Sprintf("Cannot read %s: %v", readErr.Path, readErr.Err)))
					return err
				}
				return err
			}

			common.LogDebug("media encoded", common.Fields{
				"path":  args[0],
				"mime":  payload.MIMEType,
				"bytes": len(payload.Data),
			})

			client, err := initExtractClient(ctx)
			if err != nil {
				return err
			}

			text, err := extractWithRetry(ctx, client, payload, extract.Instruction(false))
			if err != nil {
				fmt.Println(cli.FormatError("Extraction failed. Check your connection and try again."))
				return err
			}

			candidate, err := extract.Recover(text)
			if err != nil {
				var malformed *extract.MalformedError
				if errors.As(err, &malformed) {
					fmt.Println(cli.FormatError("The model response could not be parsed as a transaction."))
				}
				return err
			}

			results, _, err := normalize.Normalize(candidate, false, time.Now())
			if err != nil {
				return err
			}
			common.LogDebug("candidate normalized", common.Fields{
				"warnings": len(results[0].Warnings),
			})

			store, err := initStore(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			prefs, err := loadPrefs(ctx, store)
			if err != nil {
				return err
			}

			result := results[0]
			fmt.Println(cli.TitleStyle.Render("Scanned transaction"))
			fmt.Println(cli.FormatTransaction(result.Transaction, prefs))
			for _, warning := range result.Warnings {
				fmt.Println(cli.FormatWarning(warning))
			}

			if !autoConfirm {
				reader := cli.NewReader(os.Stdin)
				ok, err := reader.Confirm(ctx, "Record this transaction?")
				if err != nil {
					return err
				}
				if !ok {
					fmt.Println(cli.FormatWarning("Discarded."))
					return nil
				}
			}

			// An interrupt during review means the result is discarded, not
			// half-committed.
			if err := ctx.Err(); err != nil {
				return err
			}

			if err := store.Commit(ctx, result.Transaction); err != nil {
				return err
			}
			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Recorded %s (%s)",
				result.Transaction.Title, cli.FormatAmount(result.Transaction.Amount, prefs))))
			fmt.Printf("Sync: %s\n", store.Status())
			return nil
		},
	}

	cmd.Flags().BoolVarP(&autoConfirm, "yes", "y", false, "record without confirmation")
	return cmd
}
