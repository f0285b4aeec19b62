package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/kmlxly/splitit-app-sub001/internal/cli"
)

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Backfill canonical dates on old records",
		Long: `Migrate resolves the display labels of records written before canonical
dates existed and stamps them with YYYY-MM-DD dates. Records whose labels
cannot be read are left untouched. Running it again is harmless.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStore(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			migrated, err := store.MigrateLegacyDates(ctx, time.Now())
			if err != nil {
				return err
			}
			if migrated == 0 {
				fmt.Println(cli.SubtleStyle.Render("Nothing to migrate."))
				return nil
			}
			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Migrated %d records", migrated)))
			return nil
		},
	}
}
