// Package store defines the record store boundary: four named collections
// and one singleton key, each holding UTF-8 JSON documents addressed by a
// stable string id. Writes are per-record upserts; there are no
// full-collection rewrites. All operations are synchronous and total.
package store

import (
	"context"
	"errors"
)

// Collection names and singleton keys.
const (
	CollectionUsers         = "users"
	CollectionPosts         = "posts"
	CollectionTrainings     = "trainings"
	CollectionRegistrations = "registrations"

	KeySession = "session"
)

// ErrNoRecord is returned by ReadOne and GetSingleton when the addressed
// record is absent.
var ErrNoRecord = errors.New("store: record not found")

// RecordStore is the persistence boundary for the application. Implementations
// must treat record bodies as opaque bytes.
type RecordStore interface {
	// ReadAll returns every record in the collection. Order is unspecified;
	// callers impose their own ordering after decoding.
	ReadAll(ctx context.Context, collection string) ([][]byte, error)
	// ReadOne returns the record with the given id, or ErrNoRecord.
	ReadOne(ctx context.Context, collection, id string) ([]byte, error)
	// Write upserts the record under (collection, id).
	Write(ctx context.Context, collection, id string, data []byte) error
	// Remove deletes the record. Removing an absent record is not an error.
	Remove(ctx context.Context, collection, id string) error

	// GetSingleton returns the singleton value under key, or ErrNoRecord.
	GetSingleton(ctx context.Context, key string) ([]byte, error)
	// SetSingleton upserts the singleton value under key.
	SetSingleton(ctx context.Context, key string, data []byte) error
	// RemoveSingleton deletes the singleton. Absence is not an error.
	RemoveSingleton(ctx context.Context, key string) error

	// Ping verifies the backing store is reachable.
	Ping(ctx context.Context) error
	Close() error
}
