// Package aggregate derives per-day and per-category totals from a month's
// transactions. Everything here is a pure function: no mutation, no I/O.
package aggregate

import (
	"time"

	"github.com/kmlxly/splitit-app-sub001/internal/model"
)

// MonthSummary holds the aggregates for one filtered month of records.
// Outflow totals are positive magnitudes.
type MonthSummary struct {
	// DailyOutflow maps day-of-month to total outflow, used for the
	// heat-map view. Records whose date cannot be resolved contribute to
	// the totals but not to any day bucket.
	DailyOutflow map[int]float64
	// CategoryOutflow maps category to total outflow.
	CategoryOutflow map[model.Category]float64
	// TotalOutflow is the month's spending as a positive magnitude.
	TotalOutflow float64
	// TotalInflow is the month's income.
	TotalInflow float64
}

// Summarize partitions a month's records by calendar day and by category.
// now feeds the shared date-resolution fallback for legacy records.
func Summarize(records []model.Transaction, now time.Time) MonthSummary {
	summary := MonthSummary{
		DailyOutflow:    make(map[int]float64),
		CategoryOutflow: make(map[model.Category]float64),
	}

	for _, t := range records {
		if t.Amount >= 0 {
			summary.TotalInflow += t.Amount
			continue
		}

		outflow := -t.Amount
		summary.TotalOutflow += outflow
		summary.CategoryOutflow[t.Category] += outflow

		if d, ok := t.EffectiveDate(now); ok {
			summary.DailyOutflow[d.Day()] += outflow
		}
	}

	return summary
}

// BudgetProgress returns the percentage of the monthly limit consumed by
// outflow, clamped to 100. The second return is false when no meaningful
// limit exists (zero or negative), in which case there is no ratio.
func BudgetProgress(limit, outflow float64) (float64, bool) {
	if limit <= 0 {
		return 0, false
	}
	ratio := outflow / limit * 100
	if ratio > 100 {
		ratio = 100
	}
	if ratio < 0 {
		ratio = 0
	}
	return ratio, true
}
