package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/kmlxly/splitit-app-sub001/internal/common"
	"github.com/kmlxly/splitit-app-sub001/internal/model"
	"github.com/kmlxly/splitit-app-sub001/internal/service"
)

// Dataset keys. Each holds one whole serialized value.
const (
	keyTransactions = "transactions"
	keyPreferences  = "prefs"
	budgetKeyPrefix = "budget:"
)

// TransactionStore is the local-first record store. The in-memory collection
// is the working set; every mutation is followed by a best-effort durable
// write of the whole collection, with the sync status reporting how that
// went. A failed write never rolls back memory and never blocks further
// mutation.
//
// Commit and Delete are rejected until Load has completed. Because durable
// writes replace the whole collection, that guard is the only thing standing
// between an unhydrated store and overwriting real data with emptiness.
type TransactionStore struct {
	data     service.Dataset
	sessions service.SessionSource

	mu     sync.Mutex
	txns   []model.Transaction
	status model.SyncStatus
	loaded bool
}

// NewTransactionStore creates a store over the given dataset surface.
// sessions may be nil, in which case the store is permanently local-only.
func NewTransactionStore(data service.Dataset, sessions service.SessionSource) *TransactionStore {
	return &TransactionStore{
		data:     data,
		sessions: sessions,
		status:   model.SyncOffline,
	}
}

// Load hydrates the in-memory collection from durable storage. It must
// complete, even with zero records, before any commit is permitted.
func (s *TransactionStore) Load(ctx context.Context) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	value, found, err := s.data.Get(ctx, keyTransactions)
	if err != nil {
		return fmt.Errorf("failed to load transactions: %w", err)
	}

	txns := []model.Transaction{}
	if found && value != "" {
		if err := json.Unmarshal([]byte(value), &txns); err != nil {
			return fmt.Errorf("failed to decode stored transactions: %w", err)
		}
	}

	s.txns = txns
	s.loaded = true
	s.status = s.steadyState(ctx)
	return nil
}

// Close releases the underlying dataset.
func (s *TransactionStore) Close() error {
	return s.data.Close()
}

// Status returns the current sync status.
func (s *TransactionStore) Status() model.SyncStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

// Transactions returns a copy of the in-memory collection.
func (s *TransactionStore) Transactions() []model.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Transaction, len(s.txns))
	copy(out, s.txns)
	return out
}

// Get returns the transaction with the given id.
func (s *TransactionStore) Get(id string) (model.Transaction, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range s.txns {
		if t.ID == id {
			return t, true
		}
	}
	return model.Transaction{}, false
}

// Commit upserts records by id and writes the collection durably. Existing
// ids are replaced (last write wins); new ids append in order. Rejected
// before Load completes.
func (s *TransactionStore) Commit(ctx context.Context, records ...model.Transaction) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateTransactions(records); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.loaded {
		return fmt.Errorf("commit before load: %w", common.ErrNotLoaded)
	}

	for _, r := range records {
		s.upsertLocked(r)
	}

	return s.persistLocked(ctx)
}

func (s *TransactionStore) upsertLocked(r model.Transaction) {
	for i, t := range s.txns {
		if t.ID == r.ID {
			s.txns[i] = r
			return
		}
	}
	s.txns = append(s.txns, r)
}

// Delete removes the record with the given id. The caller is responsible
// for confirming the deletion with the user first; this is irreversible.
func (s *TransactionStore) Delete(ctx context.Context, id string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(id, "id"); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.loaded {
		return fmt.Errorf("delete before load: %w", common.ErrNotLoaded)
	}

	for i, t := range s.txns {
		if t.ID == id {
			s.txns = append(s.txns[:i], s.txns[i+1:]...)
			return s.persistLocked(ctx)
		}
	}
	return fmt.Errorf("transaction %s: %w", id, common.ErrNotFound)
}

// persistLocked writes the whole collection durably and walks the sync
// state machine: saving, then saved/offline depending on the remote
// session, or error on write failure. The in-memory working set is kept
// regardless of the outcome.
func (s *TransactionStore) persistLocked(ctx context.Context) error {
	s.status = model.SyncSaving

	encoded, err := json.Marshal(s.txns)
	if err != nil {
		s.status = model.SyncError
		return fmt.Errorf("failed to encode transactions: %w", err)
	}

	writeErr := common.WithRetry(ctx, func() error {
		return s.data.Put(ctx, keyTransactions, string(encoded))
	}, service.RetryOptions{MaxAttempts: 2, InitialDelay: 50 * time.Millisecond})
	if writeErr != nil {
		s.status = model.SyncError
		common.LogError(writeErr, "durable write failed, working set kept in memory", common.Fields{
			"records": len(s.txns),
		})
		return fmt.Errorf("failed to persist transactions: %w", writeErr)
	}

	s.status = s.steadyState(ctx)
	return nil
}

func (s *TransactionStore) steadyState(ctx context.Context) model.SyncStatus {
	if s.sessions != nil && s.sessions.HasSession(ctx) {
		return model.SyncSaved
	}
	return model.SyncOffline
}

// FilterByMonth returns the records falling in the given month, in stored
// order. Each record's date resolves through the shared fallback chain
// (canonical, then legacy display label); records whose date cannot be
// resolved at all are included unconditionally rather than silently hidden.
func (s *TransactionStore) FilterByMonth(year int, month time.Month, now time.Time) []model.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []model.Transaction
	for _, t := range s.txns {
		d, ok := t.EffectiveDate(now)
		if !ok {
			out = append(out, t)
			continue
		}
		if d.Year() == year && d.Month() == month {
			out = append(out, t)
		}
	}
	return out
}

// MigrateLegacyDates backfills the canonical date on records that predate
// it, deriving it from the display label with the same heuristic used at
// ingestion. Records whose label cannot be resolved are left untouched (the
// month-filter inclusion fallback keeps them visible). Returns the number
// of records migrated.
func (s *TransactionStore) MigrateLegacyDates(ctx context.Context, now time.Time) (int, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.loaded {
		return 0, fmt.Errorf("migrate before load: %w", common.ErrNotLoaded)
	}

	migrated := 0
	for i := range s.txns {
		if s.txns[i].OccurredOn != "" {
			continue
		}
		d, ok := model.ResolvePartialDate(s.txns[i].DisplayDate, now)
		if !ok {
			continue
		}
		s.txns[i].SetDate(d)
		migrated++
	}

	if migrated == 0 {
		return 0, nil
	}
	if err := s.persistLocked(ctx); err != nil {
		return migrated, err
	}
	return migrated, nil
}

// SetBudgetLimit stores the outflow ceiling for a calendar month
// (yearMonth is "YYYY-MM"). A limit of zero clears it.
func (s *TransactionStore) SetBudgetLimit(ctx context.Context, yearMonth string, limit float64) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(yearMonth, "yearMonth"); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.status = model.SyncSaving
	var err error
	if limit <= 0 {
		err = s.data.Delete(ctx, budgetKeyPrefix+yearMonth)
	} else {
		err = s.data.Put(ctx, budgetKeyPrefix+yearMonth, strconv.FormatFloat(limit, 'f', -1, 64))
	}
	if err != nil {
		s.status = model.SyncError
		return fmt.Errorf("failed to persist budget limit: %w", err)
	}
	s.status = s.steadyState(ctx)
	return nil
}

// BudgetLimit returns the stored limit for a month, if any.
func (s *TransactionStore) BudgetLimit(ctx context.Context, yearMonth string) (float64, bool, error) {
	if err := validateContext(ctx); err != nil {
		return 0, false, err
	}

	value, found, err := s.data.Get(ctx, budgetKeyPrefix+yearMonth)
	if err != nil {
		return 0, false, fmt.Errorf("failed to read budget limit: %w", err)
	}
	if !found {
		return 0, false, nil
	}
	limit, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, false, fmt.Errorf("corrupt budget limit %q: %w", value, err)
	}
	return limit, true, nil
}

// SavePreferences persists the user display flags.
func (s *TransactionStore) SavePreferences(ctx context.Context, prefs model.Preferences) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	encoded, err := json.Marshal(prefs)
	if err != nil {
		return fmt.Errorf("failed to encode preferences: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.status = model.SyncSaving
	if err := s.data.Put(ctx, keyPreferences, string(encoded)); err != nil {
		s.status = model.SyncError
		return fmt.Errorf("failed to persist preferences: %w", err)
	}
	s.status = s.steadyState(ctx)
	return nil
}

// Preferences returns the stored display flags, zero-valued when unset.
func (s *TransactionStore) Preferences(ctx context.Context) (model.Preferences, error) {
	if err := validateContext(ctx); err != nil {
		return model.Preferences{}, err
	}

	value, found, err := s.data.Get(ctx, keyPreferences)
	if err != nil {
		return model.Preferences{}, fmt.Errorf("failed to read preferences: %w", err)
	}
	if !found {
		return model.Preferences{}, nil
	}

	var prefs model.Preferences
	if err := json.Unmarshal([]byte(value), &prefs); err != nil {
		return model.Preferences{}, fmt.Errorf("corrupt preferences: %w", err)
	}
	return prefs, nil
}
