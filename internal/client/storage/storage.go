// Package storage persists client state (session tokens, the serialized
// current user, UI preferences) in a local sqlite database, keyed by fixed
// names. The session manager is the only writer of the session keys; other
// components must treat them as read-only.
package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"

	"github.com/avendano-dev/backoffice/internal/client/storage/migrations"
	"github.com/avendano-dev/backoffice/internal/dbx"
)

// Fixed keys of the persisted client state.
const (
	KeyAccessToken      = "access_token"
	KeyRefreshToken     = "refresh_token"
	KeyUser             = "user"
	KeySidebarCollapsed = "sidebar_collapsed"
)

// Repository is a small key/value store over the state table.
type Repository interface {
	// Get returns the value for key, or nil when the key is absent.
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	// SetMany writes all pairs in a single transaction; either every key is
	// written or none is.
	SetMany(ctx context.Context, pairs map[string][]byte) error
	Delete(ctx context.Context, key string) error
	// DeleteMany removes all listed keys in a single transaction.
	DeleteMany(ctx context.Context, keys []string) error
}

// Open opens (creating if needed) the state database at dsn and applies
// pending migrations.
func Open(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open state db: %w", err)
	}
	if err := runMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to migrate state db: %w", err)
	}
	return db, nil
}

func runMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return err
	}
	return goose.UpContext(ctx, db, ".")
}

type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := r.db.QueryRowContext(ctx, `SELECT value FROM state WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get state[%s]: %w", key, err)
	}
	return value, nil
}

func (r *SQLiteRepository) Set(ctx context.Context, key string, value []byte) error {
	return set(ctx, r.db, key, value)
}

func (r *SQLiteRepository) SetMany(ctx context.Context, pairs map[string][]byte) error {
	return dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		for key, value := range pairs {
			if err := set(ctx, tx, key, value); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *SQLiteRepository) Delete(ctx context.Context, key string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM state WHERE key = ?`, key)
	if err != nil {
		return fmt.Errorf("failed to delete state[%s]: %w", key, err)
	}
	return nil
}

func (r *SQLiteRepository) DeleteMany(ctx context.Context, keys []string) error {
	return dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		for _, key := range keys {
			if _, err := tx.ExecContext(ctx, `DELETE FROM state WHERE key = ?`, key); err != nil {
				return fmt.Errorf("failed to delete state[%s]: %w", key, err)
			}
		}
		return nil
	})
}

func set(ctx context.Context, db dbx.DBTX, key string, value []byte) error {
	_, err := db.ExecContext(ctx, `
		INSERT INTO state (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("failed to set state[%s]: %w", key, err)
	}
	return nil
}
