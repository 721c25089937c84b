package credentials

import (
	"context"
	"database/sql"
	"fmt"

	"healthchat/internal/dbx"
)

// SQLiteBackend keeps credentials in the local sqlite database, one row per
// key. It is the plain (unsealed) persistent store.
type SQLiteBackend struct {
	db dbx.DBTX
}

func NewSQLiteBackend(db dbx.DBTX) *SQLiteBackend {
	return &SQLiteBackend{db: db}
}

func (b *SQLiteBackend) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := b.db.QueryRowContext(ctx, `SELECT value FROM credentials WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get credentials[%s]: %w", key, err)
	}
	return value, nil
}

func (b *SQLiteBackend) Set(ctx context.Context, key string, value []byte) error {
	_, err := b.db.ExecContext(ctx, `
		INSERT INTO credentials (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("failed to set credentials[%s]: %w", key, err)
	}
	return nil
}

func (b *SQLiteBackend) Delete(ctx context.Context, key string) error {
	_, err := b.db.ExecContext(ctx, `DELETE FROM credentials WHERE key = ?`, key)
	if err != nil {
		return fmt.Errorf("failed to delete credentials[%s]: %w", key, err)
	}
	return nil
}
