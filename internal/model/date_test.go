package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolvePartialDate(t *testing.T) {
	// Mid-October reference point so months both before and after "now"
	// exercise the year inference.
	now := time.Date(2025, time.October, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		raw    string
		want   time.Time
		wantOK bool
	}{
		{
			name:   "day month with explicit year",
			raw:    "12 Jan 2025",
			want:   time.Date(2025, time.January, 12, 0, 0, 0, 0, time.UTC),
			wantOK: true,
		},
		{
			name:   "two digit year expands to 2000s",
			raw:    "3 Mar 24",
			want:   time.Date(2024, time.March, 3, 0, 0, 0, 0, time.UTC),
			wantOK: true,
		},
		{
			name:   "no year, month before current month",
			raw:    "12 Jan",
			want:   time.Date(2025, time.January, 12, 0, 0, 0, 0, time.UTC),
			wantOK: true,
		},
		{
			name:   "no year, month equals current month",
			raw:    "1 Oct",
			want:   time.Date(2025, time.October, 1, 0, 0, 0, 0, time.UTC),
			wantOK: true,
		},
		{
			name:   "no year, month after current month rolls back a year",
			raw:    "5 Dec",
			want:   time.Date(2024, time.December, 5, 0, 0, 0, 0, time.UTC),
			wantOK: true,
		},
		{
			name:   "month before day order",
			raw:    "Jan 12 2025",
			want:   time.Date(2025, time.January, 12, 0, 0, 0, 0, time.UTC),
			wantOK: true,
		},
		{
			name:   "full month name",
			raw:    "7 September 2024",
			want:   time.Date(2024, time.September, 7, 0, 0, 0, 0, time.UTC),
			wantOK: true,
		},
		{
			name:   "comma separated",
			raw:    "Jan 12, 2025",
			want:   time.Date(2025, time.January, 12, 0, 0, 0, 0, time.UTC),
			wantOK: true,
		},
		{
			name:   "unknown month name",
			raw:    "12 Muharram",
			wantOK: false,
		},
		{
			name:   "day out of range",
			raw:    "32 Jan",
			wantOK: false,
		},
		{
			name:   "single token",
			raw:    "yesterday",
			wantOK: false,
		},
		{
			name:   "empty string",
			raw:    "",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ResolvePartialDate(tt.raw, now)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestResolvePartialDate_ExplicitYearExact(t *testing.T) {
	// With an explicit year the resolved date must equal that calendar
	// date regardless of the reference time.
	nows := []time.Time{
		time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, time.December, 31, 23, 59, 0, 0, time.UTC),
	}
	for _, now := range nows {
		got, ok := ResolvePartialDate("28 Feb 2022", now)
		require.True(t, ok)
		assert.Equal(t, time.Date(2022, time.February, 28, 0, 0, 0, 0, time.UTC), got)
	}
}

func TestDisplayLabelRoundTrip(t *testing.T) {
	// DisplayDate must always be derivable from the canonical date alone.
	dates := []time.Time{
		time.Date(2025, time.January, 2, 0, 0, 0, 0, time.UTC),
		time.Date(2024, time.December, 31, 0, 0, 0, 0, time.UTC),
		time.Date(2023, time.June, 15, 0, 0, 0, 0, time.UTC),
	}
	now := time.Date(2025, time.October, 1, 0, 0, 0, 0, time.UTC)

	for _, d := range dates {
		label := DisplayLabel(d)
		back, ok := ResolvePartialDate(label, now)
		require.True(t, ok, "label %q should parse", label)
		assert.Equal(t, d, back)
	}
}

func TestEffectiveDate(t *testing.T) {
	now := time.Date(2025, time.October, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		txn    Transaction
		want   time.Time
		wantOK bool
	}{
		{
			name:   "canonical date wins",
			txn:    Transaction{OccurredOn: "2025-03-09", DisplayDate: "1 Jan 2020"},
			want:   time.Date(2025, time.March, 9, 0, 0, 0, 0, time.UTC),
			wantOK: true,
		},
		{
			name:   "legacy record falls back to display label",
			txn:    Transaction{DisplayDate: "9 Mar 2025"},
			want:   time.Date(2025, time.March, 9, 0, 0, 0, 0, time.UTC),
			wantOK: true,
		},
		{
			name:   "invalid canonical falls back to display label",
			txn:    Transaction{OccurredOn: "not-a-date", DisplayDate: "9 Mar 2025"},
			want:   time.Date(2025, time.March, 9, 0, 0, 0, 0, time.UTC),
			wantOK: true,
		},
		{
			name:   "nothing resolvable",
			txn:    Transaction{DisplayDate: "???"},
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.txn.EffectiveDate(now)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestBatchID(t *testing.T) {
	base := time.Date(2025, time.May, 1, 10, 30, 0, 0, time.UTC)

	ids := map[string]bool{}
	for i := 0; i < 5; i++ {
		id := BatchID(base, i)
		assert.False(t, ids[id], "batch ids must be unique within one ingestion")
		ids[id] = true
	}
	assert.Equal(t, NewID(base), BatchID(base, 0))
}
