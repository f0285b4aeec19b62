// Package storage implements the local-first transaction store and its
// durable key-value dataset surface.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

// SQLiteDataset implements service.Dataset over a local SQLite database.
// Each logical dataset (the transaction collection, budget limits,
// preference flags) lives under one key; writes replace the whole value.
type SQLiteDataset struct {
	db     *sql.DB
	dbPath string
}

// NewSQLiteDataset opens (creating if needed) the dataset database at dbPath.
func NewSQLiteDataset(dbPath string) (*SQLiteDataset, error) {
	if err := validateString(dbPath, "dbPath"); err != nil {
		return nil, err
	}

	if dbPath != ":memory:" {
		dir := filepath.Dir(dbPath)
		if err := os.MkdirAll(dir, 0750); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite doesn't benefit from multiple connections
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	s := &SQLiteDataset{db: db, dbPath: dbPath}
	if err := s.migrate(); err != nil {
		_ = db.Close()
		return nil, err
	}

	return s, nil
}

func (s *SQLiteDataset) migrate() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS datasets (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL,
			updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to migrate datasets table: %w", err)
	}
	return nil
}

// Get returns the stored value for key and whether it exists.
func (s *SQLiteDataset) Get(ctx context.Context, key string) (string, bool, error) {
	if err := validateContext(ctx); err != nil {
		return "", false, err
	}
	if err := validateString(key, "key"); err != nil {
		return "", false, err
	}

	var value string
	err := s.db.QueryRowContext(ctx, "SELECT value FROM datasets WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read dataset %q: %w", key, err)
	}
	return value, true, nil
}

// Put replaces the whole stored value for key.
func (s *SQLiteDataset) Put(ctx context.Context, key, value string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(key, "key"); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO datasets (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP
	`, key, value)
	if err != nil {
		return fmt.Errorf("failed to write dataset %q: %w", key, err)
	}
	return nil
}

// Delete removes the stored value for key.
func (s *SQLiteDataset) Delete(ctx context.Context, key string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(key, "key"); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx, "DELETE FROM datasets WHERE key = ?", key)
	if err != nil {
		return fmt.Errorf("failed to delete dataset %q: %w", key, err)
	}
	return nil
}

// Close closes the database connection.
func (s *SQLiteDataset) Close() error {
	return s.db.Close()
}
