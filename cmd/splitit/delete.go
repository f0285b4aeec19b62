package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kmlxly/splitit-app-sub001/internal/cli"
	"github.com/kmlxly/splitit-app-sub001/internal/common"
)

func deleteCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete [id]",
		Short: "Delete a transaction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, err := initStore(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			record, ok := store.Get(args[0])
			if !ok {
				fmt.Println(cli.FormatError(fmt.Sprintf("No transaction with id %s", args[0])))
				return common.ErrNotFound
			}

			prefs, err := loadPrefs(ctx, store)
			if err != nil {
				return err
			}

			if !force {
				fmt.Println(cli.FormatTransaction(record, prefs))
				reader := cli.NewReader(os.Stdin)
				confirmed, confirmErr := reader.Confirm(ctx, "Delete this transaction?")
				if confirmErr != nil {
					return confirmErr
				}
				if !confirmed {
					fmt.Println(cli.FormatWarning("Kept."))
					return nil
				}
			}

			if err := store.Delete(ctx, args[0]); err != nil {
				if errors.Is(err, common.ErrNotFound) {
					fmt.Println(cli.FormatError("Transaction already gone."))
				}
				return err
			}
			fmt.Println(cli.FormatSuccess("Deleted."))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "delete without confirmation")
	return cmd
}
