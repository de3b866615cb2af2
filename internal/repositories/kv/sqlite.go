package kv

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"

	"moodlog/internal/dbx"
	"moodlog/internal/migrations"
)

// SQLiteStorage implements Storage over a kv table using a DBTX
// (either *sql.DB or *sql.Tx).
type SQLiteStorage struct {
	db dbx.DBTX
}

// NewSQLiteStorage returns a SQLiteStorage bound to the given DBTX.
func NewSQLiteStorage(db dbx.DBTX) *SQLiteStorage {
	return &SQLiteStorage{db: db}
}

// Open opens the sqlite database at dsn and applies the embedded goose
// migrations. The caller owns the returned handle.
func Open(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("sqlite3"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to set goose dialect: %w", err)
	}
	if err := goose.UpContext(ctx, db, "."); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return db, nil
}

func (s *SQLiteStorage) Load(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := s.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load kv[%s]: %w", key, err)
	}
	return value, nil
}

func (s *SQLiteStorage) Save(ctx context.Context, key string, value []byte) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO kv (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("failed to save kv[%s]: %w", key, err)
	}
	return nil
}

func (s *SQLiteStorage) Delete(ctx context.Context, key string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM kv WHERE key = ?`, key)
	if err != nil {
		return fmt.Errorf("failed to delete kv[%s]: %w", key, err)
	}
	return nil
}
