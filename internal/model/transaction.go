// Package model defines the domain types shared across the ingestion
// pipeline, the transaction store, and the aggregation layer.
package model

import (
	"strconv"
	"time"
)

// Transaction is the canonical unit of financial activity. Instances are
// created by manual entry, by a confirmed scan, or by a savings-goal deposit;
// the store owns every committed instance.
type Transaction struct {
	// ID is unique and immutable once assigned. Ids are derived from
	// creation timestamps (unix milliseconds), which keeps them sortable
	// and collision-free within a session.
	ID string `json:"id"`
	// Title is a short non-empty label, usually the merchant name.
	Title string `json:"title"`
	// Category is always a member of the fixed enumeration.
	Category Category `json:"category"`
	// Amount follows the sign convention: negative = outflow, positive = inflow.
	Amount float64 `json:"amount"`
	// OccurredOn is the canonical machine-sortable date (YYYY-MM-DD).
	// Records written before this field existed leave it empty; their date
	// is recovered from DisplayDate.
	OccurredOn string `json:"occurredOn,omitempty"`
	// DisplayDate is the legacy human label ("12 Jan 2025"). Always derived
	// from the same resolved date as OccurredOn, never independently.
	DisplayDate string `json:"displayDate"`
}

// NewID returns a transaction id for the given creation time.
func NewID(t time.Time) string {
	return strconv.FormatInt(t.UnixMilli(), 10)
}

// BatchID returns the id for element i of a batch sharing one base
// timestamp. Offsetting by the index keeps ids unique within an ingestion
// even when the wall clock does not advance between elements.
func BatchID(base time.Time, i int) string {
	return strconv.FormatInt(base.UnixMilli()+int64(i), 10)
}

// EffectiveDate resolves the record's date using the fallback chain shared
// by month filtering and legacy migration: the canonical date when present
// and valid, otherwise the date recovered from the display label. The second
// return is false when neither resolves; callers must keep such records
// visible rather than hiding them.
func (t Transaction) EffectiveDate(now time.Time) (time.Time, bool) {
	if t.OccurredOn != "" {
		if d, err := time.Parse(canonicalLayout, t.OccurredOn); err == nil {
			return d, true
		}
	}
	if t.DisplayDate != "" {
		if d, ok := ResolvePartialDate(t.DisplayDate, now); ok {
			return d, true
		}
	}
	return time.Time{}, false
}

// SetDate assigns both date fields from a single resolved value.
func (t *Transaction) SetDate(d time.Time) {
	t.OccurredOn = Canonical(d)
	t.DisplayDate = DisplayLabel(d)
}

// ScanResult is an ephemeral, unconfirmed candidate produced by the
// ingestion pipeline. It carries the transaction shape plus review metadata
// and is mutable during user correction; it only becomes a Transaction when
// the user confirms the scan.
type ScanResult struct {
	Transaction
	// Warnings lists the coercions applied during normalization, e.g. an
	// unknown category mapped to Other.
	Warnings []string `json:"warnings,omitempty"`
}
