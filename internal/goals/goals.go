// Package goals is the boundary with the savings-goal feature. A deposit
// into a goal takes money out of the spendable balance, so it injects a
// synthetic outflow transaction that is otherwise indistinguishable from a
// manually entered record.
package goals

import (
	"fmt"
	"math"
	"time"

	"github.com/kmlxly/splitit-app-sub001/internal/model"
)

// Deposit describes money moved into a named savings goal.
type Deposit struct {
	Goal   string
	Amount float64
}

// Transaction builds the canonical outflow record for a deposit. The amount
// is always negative regardless of the sign the caller passed.
func (d Deposit) Transaction(now time.Time) model.Transaction {
	t := model.Transaction{
		ID:       model.NewID(now),
		Title:    fmt.Sprintf("Goal: %s", d.Goal),
		Category: model.CategoryOther,
		Amount:   -math.Abs(d.Amount),
	}
	t.SetDate(time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC))
	return t
}
