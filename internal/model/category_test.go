package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCategory(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		want      Category
		wantKnown bool
	}{
		{name: "exact match", input: "Food", want: CategoryFood, wantKnown: true},
		{name: "case insensitive", input: "tRaNsPoRt", want: CategoryTransport, wantKnown: true},
		{name: "surrounding whitespace", input: "  Bills ", want: CategoryBills, wantKnown: true},
		{name: "income", input: "Income", want: CategoryIncome, wantKnown: true},
		{name: "unknown maps to catch-all", input: "Makan", want: CategoryOther, wantKnown: false},
		{name: "empty maps to catch-all", input: "", want: CategoryOther, wantKnown: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, known := ParseCategory(tt.input)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantKnown, known)
		})
	}
}

func TestCategoriesPassThrough(t *testing.T) {
	// Every enumerated category must survive a parse unchanged.
	for _, c := range Categories() {
		got, known := ParseCategory(string(c))
		assert.True(t, known)
		assert.Equal(t, c, got)
	}
}

func TestIsIncome(t *testing.T) {
	assert.True(t, CategoryIncome.IsIncome())
	for _, c := range Categories() {
		if c != CategoryIncome {
			assert.False(t, c.IsIncome(), "category %s", c)
		}
	}
}
