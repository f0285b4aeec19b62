// Package service defines the interfaces and shared option types the
// application's components are wired through.
package service

import (
	"context"
	"time"
)

// Dataset is the durable storage boundary: a key-value surface holding one
// serialized value per logical dataset (the transaction collection, budget
// limits, preference flags). Writes are whole-value replace, not row-level.
type Dataset interface {
	// Get returns the stored value for key and whether it exists.
	Get(ctx context.Context, key string) (string, bool, error)
	// Put replaces the stored value for key.
	Put(ctx context.Context, key, value string) error
	// Delete removes the stored value for key.
	Delete(ctx context.Context, key string) error
	Close() error
}

// SessionSource reports whether an authenticated remote session exists.
// The store only uses it to pick the steady sync state (saved vs offline);
// everything else about the remote account backend is outside this system.
type SessionSource interface {
	HasSession(ctx context.Context) bool
}

// RetryOptions configures retry behavior for operations.
type RetryOptions struct {
	MaxAttempts  int
	InitialDelay time.Duration
	MaxDelay     time.Duration
	Multiplier   float64
}
