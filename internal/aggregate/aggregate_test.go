package aggregate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/kmlxly/splitit-app-sub001/internal/model"
)

var now = time.Date(2025, time.October, 20, 0, 0, 0, 0, time.UTC)

func outflow(id string, category model.Category, amount float64, day int) model.Transaction {
	t := model.Transaction{ID: id, Title: id, Category: category, Amount: -amount}
	t.SetDate(time.Date(2025, time.October, day, 0, 0, 0, 0, time.UTC))
	return t
}

func TestSummarize(t *testing.T) {
	income := model.Transaction{ID: "i", Title: "Salary", Category: model.CategoryIncome, Amount: 3000}
	income.SetDate(time.Date(2025, time.October, 1, 0, 0, 0, 0, time.UTC))

	records := []model.Transaction{
		outflow("a", model.CategoryFood, 10, 1),
		outflow("b", model.CategoryFood, 5, 1),
		outflow("c", model.CategoryTransport, 7.5, 3),
		income,
	}

	got := Summarize(records, now)

	assert.Equal(t, 22.5, got.TotalOutflow)
	assert.Equal(t, 3000.0, got.TotalInflow)
	assert.Equal(t, 15.0, got.DailyOutflow[1])
	assert.Equal(t, 7.5, got.DailyOutflow[3])
	assert.Equal(t, 15.0, got.CategoryOutflow[model.CategoryFood])
	assert.Equal(t, 7.5, got.CategoryOutflow[model.CategoryTransport])
}

func TestSummarize_Deterministic(t *testing.T) {
	records := []model.Transaction{
		outflow("a", model.CategoryFood, 10, 1),
		outflow("b", model.CategoryBills, 20, 2),
	}
	assert.Equal(t, Summarize(records, now), Summarize(records, now))
}

func TestSummarize_UnresolvableDateCountsInTotals(t *testing.T) {
	mystery := model.Transaction{ID: "m", Title: "Mystery", Category: model.CategoryOther, Amount: -9, DisplayDate: "???"}

	got := Summarize([]model.Transaction{mystery}, now)

	assert.Equal(t, 9.0, got.TotalOutflow)
	assert.Equal(t, 9.0, got.CategoryOutflow[model.CategoryOther])
	// No day bucket for a record without a resolvable date.
	assert.Empty(t, got.DailyOutflow)
}

func TestSummarize_Empty(t *testing.T) {
	got := Summarize(nil, now)
	assert.Zero(t, got.TotalOutflow)
	assert.Zero(t, got.TotalInflow)
	assert.Empty(t, got.DailyOutflow)
}

func TestBudgetProgress(t *testing.T) {
	tests := []struct {
		name    string
		limit   float64
		outflow float64
		want    float64
		wantOK  bool
	}{
		{name: "under limit", limit: 200, outflow: 50, want: 25, wantOK: true},
		{name: "at limit", limit: 100, outflow: 100, want: 100, wantOK: true},
		{name: "over limit clamps to 100", limit: 100, outflow: 150, want: 100, wantOK: true},
		{name: "zero limit has no ratio", limit: 0, outflow: 150, wantOK: false},
		{name: "negative limit has no ratio", limit: -10, outflow: 150, wantOK: false},
		{name: "zero outflow", limit: 100, outflow: 0, want: 0, wantOK: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := BudgetProgress(tt.limit, tt.outflow)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestBudgetProgress_NeverExceedsBounds(t *testing.T) {
	// Property check over a grid of limit/outflow pairs.
	for limit := 1.0; limit <= 500; limit += 37 {
		for outflow := 0.0; outflow <= 1000; outflow += 53 {
			got, ok := BudgetProgress(limit, outflow)
			assert.True(t, ok)
			assert.GreaterOrEqual(t, got, 0.0)
			assert.LessOrEqual(t, got, 100.0)
		}
	}
}
