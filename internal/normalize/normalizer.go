// Package normalize validates and coerces extracted candidate fields into
// the canonical transaction shape.
package normalize

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/kmlxly/splitit-app-sub001/internal/model"
)

// fallbackTitle is used when the model returned no usable title. Title is
// advisory; a missing one must not sink the record.
const fallbackTitle = "Untitled"

// Normalize converts a recovered JSON candidate into scan results ready for
// user review. batch selects array handling for multi-transaction documents;
// single-document input yields exactly one record. now anchors both the
// year-inference heuristic and the generated ids.
//
// Every returned record is fully normalized: category inside the
// enumeration, amount sign forced by category, both date fields derived from
// one resolved date. Field-level problems are coerced and noted as warnings
// on the record; only a wholly-malformed batch element (not a JSON object)
// is dropped, and the rest proceed. dropped reports how many were.
func Normalize(candidate json.RawMessage, batch bool, now time.Time) (results []model.ScanResult, dropped int, err error) {
	items, dropped, err := decodeCandidates(candidate, batch)
	if err != nil {
		return nil, 0, err
	}

	base := now
	results = make([]model.ScanResult, 0, len(items))
	for i, obj := range items {
		r := normalizeOne(obj, now)
		if batch {
			r.ID = model.BatchID(base, i)
		} else {
			r.ID = model.NewID(base)
		}
		results = append(results, r)
	}

	return results, dropped, nil
}

// decodeCandidates shapes the raw candidate into a list of field maps,
// tolerating arity mismatches: a bare object under the batch template is
// treated as a one-element batch, and an array under the single template
// contributes its first element.
func decodeCandidates(candidate json.RawMessage, batch bool) ([]map[string]any, int, error) {
	var top any
	if err := json.Unmarshal(candidate, &top); err != nil {
		return nil, 0, fmt.Errorf("failed to decode candidate: %w", err)
	}

	switch v := top.(type) {
	case map[string]any:
		return []map[string]any{v}, 0, nil
	case []any:
		if len(v) == 0 {
			return nil, 0, fmt.Errorf("candidate array is empty")
		}
		if !batch {
			v = v[:1]
		}
		items := make([]map[string]any, 0, len(v))
		dropped := 0
		for _, item := range v {
			obj, ok := item.(map[string]any)
			if !ok {
				dropped++
				continue
			}
			items = append(items, obj)
		}
		if len(items) == 0 {
			return nil, 0, fmt.Errorf("candidate array holds no usable objects")
		}
		return items, dropped, nil
	default:
		return nil, 0, fmt.Errorf("candidate is %T, want object or array", top)
	}
}

func normalizeOne(obj map[string]any, now time.Time) model.ScanResult {
	var r model.ScanResult

	r.Title = stringField(obj, "title")
	if r.Title == "" {
		r.Title = fallbackTitle
		r.Warnings = append(r.Warnings, "missing title")
	}

	rawCategory := stringField(obj, "category")
	category, known := model.ParseCategory(rawCategory)
	r.Category = category
	if !known && rawCategory != "" {
		r.Warnings = append(r.Warnings, fmt.Sprintf("unknown category %q mapped to %s", rawCategory, model.CategoryOther))
	}

	magnitude, ok := amountField(obj)
	if !ok {
		r.Warnings = append(r.Warnings, "missing or unparseable amount, defaulted to 0")
	}
	// The model is instructed to return positive magnitudes; the sign is
	// always ours to apply, never the model's.
	if r.Category.IsIncome() {
		r.Amount = math.Abs(magnitude)
	} else {
		r.Amount = -math.Abs(magnitude)
	}

	rawDate := stringField(obj, "date")
	date, ok := model.ResolvePartialDate(rawDate, now)
	if !ok {
		// Soft failure so batch extraction continues for the other rows.
		date = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
		r.Warnings = append(r.Warnings, fmt.Sprintf("unparseable date %q, defaulted to today", rawDate))
	}
	r.SetDate(date)

	return r
}

func stringField(obj map[string]any, key string) string {
	v, ok := obj[key]
	if !ok || v == nil {
		return ""
	}
	s, ok := v.(string)
	if !ok {
		return ""
	}
	return strings.TrimSpace(s)
}

// amountField reads "amount" as a number or numeric string.
func amountField(obj map[string]any) (float64, bool) {
	v, ok := obj["amount"]
	if !ok || v == nil {
		return 0, false
	}
	switch val := v.(type) {
	case float64:
		return val, true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}
