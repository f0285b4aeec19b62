package cli

import (
	"fmt"

	"github.com/kmlxly/splitit-app-sub001/internal/model"
)

// currencyPrefix labels formatted amounts. Amounts are stored as plain
// numbers; no conversion happens anywhere in the system.
const currencyPrefix = "RM"

// FormatAmount renders a signed amount for display. Preferences are passed
// in explicitly: with ghost mode on, the magnitude is masked but the sign
// stays visible so lists keep their shape.
func FormatAmount(amount float64, prefs model.Preferences) string {
	sign := "-"
	if amount >= 0 {
		sign = "+"
	}
	if prefs.GhostMode {
		return fmt.Sprintf("%s%s••.••", sign, currencyPrefix)
	}
	magnitude := amount
	if magnitude < 0 {
		magnitude = -magnitude
	}
	return fmt.Sprintf("%s%s%.2f", sign, currencyPrefix, magnitude)
}

// FormatTransaction renders one transaction line for lists and review.
func FormatTransaction(t model.Transaction, prefs model.Preferences) string {
	date := t.DisplayDate
	if date == "" {
		date = t.OccurredOn
	}
	return fmt.Sprintf("%-12s  %-24s  %-10s  %s",
		date, truncate(t.Title, 24), t.Category, FormatAmount(t.Amount, prefs))
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 1 {
		return s[:max]
	}
	return s[:max-1] + "…"
}
