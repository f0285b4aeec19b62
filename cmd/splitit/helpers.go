package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/viper"

	"github.com/kmlxly/splitit-app-sub001/internal/cli"
	"github.com/kmlxly/splitit-app-sub001/internal/common"
	"github.com/kmlxly/splitit-app-sub001/internal/config"
	"github.com/kmlxly/splitit-app-sub001/internal/extract"
	"github.com/kmlxly/splitit-app-sub001/internal/media"
	"github.com/kmlxly/splitit-app-sub001/internal/model"
	"github.com/kmlxly/splitit-app-sub001/internal/service"
	"github.com/kmlxly/splitit-app-sub001/internal/storage"
)

// viperSessions reports a signed-in session from configuration. The CLI has
// no interactive login flow, so "session.active" stands in for the account
// state the sync status reflects.
type viperSessions struct{}

func (viperSessions) HasSession(_ context.Context) bool {
	return viper.GetBool("session.active")
}

// loadPrefs reads the stored display flags and applies the theme they
// select, so every command renders with the user's palette.
func loadPrefs(ctx context.Context, store *storage.TransactionStore) (model.Preferences, error) {
	prefs, err := store.Preferences(ctx)
	if err != nil {
		return model.Preferences{}, err
	}
	cli.ApplyTheme(prefs.DarkMode)
	return prefs, nil
}

// initStore opens the local dataset and hydrates the working set.
func initStore(ctx context.Context) (*storage.TransactionStore, error) {
	dbPath := viper.GetString("database.path")
	if dbPath == "" {
		dbPath = config.DefaultDataPath()
	}
	dbPath = config.ExpandPath(dbPath)

	data, err := storage.NewSQLiteDataset(dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset: %w", err)
	}

	store := storage.NewTransactionStore(data, viperSessions{})
	if err := store.Load(ctx); err != nil {
		_ = data.Close()
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}
	return store, nil
}

// initExtractClient builds the model client from configuration. The API key
// comes from gemini.api_key or the SPLITIT_GEMINI_API_KEY environment
// variable.
func initExtractClient(ctx context.Context) (*extract.Client, error) {
	apiKey := viper.GetString("gemini.api_key")
	if apiKey == "" {
		return nil, common.NewUserError(
			"No API key configured. Set gemini.api_key in your config file or export SPLITIT_GEMINI_API_KEY.",
			common.ErrMissingConfig,
		)
	}
	cfg := extract.Config{
		APIKey:        apiKey,
		Model:         viper.GetString("gemini.model"),
		FallbackModel: viper.GetString("gemini.fallback_model"),
	}
	return extract.NewClient(ctx, cfg)
}

// extractWithRetry runs one extraction attempt with a short retry on
// transport failures. Each scan run gets a unique id so its attempts can be
// correlated in the logs.
func extractWithRetry(ctx context.Context, client *extract.Client, payload media.Payload, instruction string) (string, error) {
	runID := uuid.New().String()
	var text string
	err := common.WithRetry(ctx, func() error {
		var invokeErr error
		text, invokeErr = client.Extract(ctx, payload, instruction)
		if invokeErr == nil {
			return nil
		}
		var transportErr *extract.TransportError
		if errors.As(invokeErr, &transportErr) {
			common.LogInfo("extraction transport failed, will retry", common.Fields{
				"run_id": runID,
				"error":  transportErr.Err.Error(),
			})
			return &common.RetryableError{Err: invokeErr, Retryable: true}
		}
		return &common.RetryableError{Err: invokeErr, Retryable: false}
	}, service.RetryOptions{
		MaxAttempts:  3,
		InitialDelay: time.Second,
		MaxDelay:     10 * time.Second,
		Multiplier:   2.0,
	})
	if err != nil {
		return "", err
	}
	common.LogDebug("extraction completed", common.Fields{"run_id": runID})
	return text, nil
}
