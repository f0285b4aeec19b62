package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kmlxly/splitit-app-sub001/internal/model"
)

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		prefs  model.Preferences
		want   string
	}{
		{name: "outflow", amount: -12.5, want: "-RM12.50"},
		{name: "inflow", amount: 3200, want: "+RM3200.00"},
		{name: "zero shows as inflow sign", amount: 0, want: "+RM0.00"},
		{name: "ghost mode masks magnitude", amount: -12.5, prefs: model.Preferences{GhostMode: true}, want: "-RM••.••"},
		{name: "ghost mode keeps inflow sign", amount: 100, prefs: model.Preferences{GhostMode: true}, want: "+RM••.••"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatAmount(tt.amount, tt.prefs))
		})
	}
}

func TestFormatTransaction(t *testing.T) {
	txn := model.Transaction{
		ID:          "1",
		Title:       "Kedai Kopi",
		Category:    model.CategoryFood,
		Amount:      -12.5,
		OccurredOn:  "2025-01-12",
		DisplayDate: "12 Jan 2025",
	}

	got := FormatTransaction(txn, model.Preferences{})
	assert.Contains(t, got, "12 Jan 2025")
	assert.Contains(t, got, "Kedai Kopi")
	assert.Contains(t, got, "Food")
	assert.Contains(t, got, "-RM12.50")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 24))
	assert.Len(t, []rune(truncate("a very long merchant name that keeps going", 24)), 24)
}
