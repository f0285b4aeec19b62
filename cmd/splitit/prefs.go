package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kmlxly/splitit-app-sub001/internal/cli"
)

func prefsCmd() *cobra.Command {
	var (
		ghost string
		dark  string
	)

	cmd := &cobra.Command{
		Use:   "prefs",
		Short: "Show or change display preferences",
		Long: `Prefs with no flags shows the current preferences. Ghost mode masks
amounts in every listing; dark mode is a hint for the rendering theme.`,
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

			changed := false
			if ghost != "" {
				prefs.GhostMode = ghost == "on"
				changed = true
			}
			if dark != "" {
				prefs.DarkMode = dark == "on"
				changed = true
			}

			if changed {
				if err := store.SavePreferences(ctx, prefs); err != nil {
					return err
				}
				cli.ApplyTheme(prefs.DarkMode)
				fmt.Println(cli.FormatSuccess("Preferences saved"))
			}

			fmt.Printf("Ghost mode: %s\n", onOff(prefs.GhostMode))
			fmt.Printf("Dark mode:  %s\n", onOff(prefs.DarkMode))
			return nil
		},
	}

	cmd.Flags().StringVar(&ghost, "ghost", "", "mask amounts in listings (on|off)")
	cmd.Flags().StringVar(&dark, "dark", "", "dark rendering theme (on|off)")
	return cmd
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
