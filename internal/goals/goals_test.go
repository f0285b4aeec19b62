package goals

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/kmlxly/splitit-app-sub001/internal/model"
)

func TestDepositTransaction(t *testing.T) {
	now := time.Date(2025, time.October, 20, 14, 30, 0, 0, time.UTC)

	for _, amount := range []float64{250, -250} {
		got := Deposit{Goal: "Emergency fund", Amount: amount}.Transaction(now)

		assert.Equal(t, "Goal: Emergency fund", got.Title)
		assert.Equal(t, model.CategoryOther, got.Category)
		// Deposits are always outflow.
		assert.Equal(t, -250.0, got.Amount)
		assert.Equal(t, "2025-10-20", got.OccurredOn)
		assert.Equal(t, "20 Oct 2025", got.DisplayDate)
		assert.NotEmpty(t, got.ID)
	}
}
