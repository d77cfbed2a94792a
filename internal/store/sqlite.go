package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"staffhub/internal/observability"

	_ "modernc.org/sqlite"
)

// SQLiteStore is a RecordStore backed by an embedded SQLite database. This is
// the local single-writer deployment: one file on disk, no external service.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens (creating if needed) the database at path and runs the
// schema migration. Use ":memory:" for an ephemeral store.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// Single connection; SQLite allows one writer at a time.
	db.SetMaxOpenConns(1)
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}
	if err := migrate(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &SQLiteStore{db: db}, nil
}

func migrate(db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS records(
			collection TEXT NOT NULL,
			id TEXT NOT NULL,
			data BLOB NOT NULL,
			PRIMARY KEY(collection, id)
		);`,
		`CREATE TABLE IF NOT EXISTS singletons(
			key TEXT PRIMARY KEY,
			data BLOB NOT NULL
		);`,
	}
	ctx := context.Background()
	for _, s := range stmts {
		if _, err := db.ExecContext(ctx, s); err != nil {
			return err
		}
	}
	return nil
}

func (s *SQLiteStore) ReadAll(ctx context.Context, collection string) ([][]byte, error) {
	defer observability.ObserveStoreOp("sqlite", "read_all", time.Now())

	rows, err := s.db.QueryContext(ctx,
		`SELECT data FROM records WHERE collection = ? ORDER BY id`, collection)
	if err != nil {
		observability.StoreErrors.WithLabelValues("sqlite", "read_all").Inc()
		return nil, err
	}
	defer rows.Close()

	var records [][]byte
	for rows.Next() {
		var data []byte
		if err := rows.Scan(&data); err != nil {
			return nil, err
		}
		records = append(records, data)
	}
	return records, rows.Err()
}

func (s *SQLiteStore) ReadOne(ctx context.Context, collection, id string) ([]byte, error) {
	defer observability.ObserveStoreOp("sqlite", "read_one", time.Now())

	var data []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT data FROM records WHERE collection = ? AND id = ?`, collection, id).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNoRecord
	}
	if err != nil {
		observability.StoreErrors.WithLabelValues("sqlite", "read_one").Inc()
		return nil, err
	}
	return data, nil
}

func (s *SQLiteStore) Write(ctx context.Context, collection, id string, data []byte) error {
	defer observability.ObserveStoreOp("sqlite", "write", time.Now())

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO records(collection, id, data) VALUES(?, ?, ?)
		 ON CONFLICT(collection, id) DO UPDATE SET data = excluded.data`,
		collection, id, data)
	if err != nil {
		observability.StoreErrors.WithLabelValues("sqlite", "write").Inc()
	}
	return err
}

func (s *SQLiteStore) Remove(ctx context.Context, collection, id string) error {
	defer observability.ObserveStoreOp("sqlite", "remove", time.Now())

	_, err := s.db.ExecContext(ctx,
		`DELETE FROM records WHERE collection = ? AND id = ?`, collection, id)
	if err != nil {
		observability.StoreErrors.WithLabelValues("sqlite", "remove").Inc()
	}
	return err
}

func (s *SQLiteStore) GetSingleton(ctx context.Context, key string) ([]byte, error) {
	var data []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT data FROM singletons WHERE key = ?`, key).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNoRecord
	}
	return data, err
}

func (s *SQLiteStore) SetSingleton(ctx context.Context, key string, data []byte) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO singletons(key, data) VALUES(?, ?)
		 ON CONFLICT(key) DO UPDATE SET data = excluded.data`, key, data)
	return err
}

func (s *SQLiteStore) RemoveSingleton(ctx context.Context, key string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM singletons WHERE key = ?`, key)
	return err
}

func (s *SQLiteStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
