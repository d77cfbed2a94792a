// Package testutil provides shared helpers for tests.
package testutil

import (
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"staffhub/internal/store"
)

// NewStore returns a record store backed by an in-process miniredis
// instance. The store and server are torn down with the test.
func NewStore(t *testing.T) *store.RedisStore {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	st := store.NewRedisStoreWithClient(client, "test")
	t.Cleanup(func() { st.Close() })
	return st
}

// NewSQLiteStore returns a record store backed by a sqlite file in a
// temporary directory.
func NewSQLiteStore(t *testing.T) *store.SQLiteStore {
	t.Helper()
	st, err := store.NewSQLiteStore(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open sqlite store: %v", err)
	}
	t.Cleanup(func() { st.Close() })
	return st
}
