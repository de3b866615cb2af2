// Package kv implements the durable key/value storage behind the moodlog
// collections. The core persists three blobs (entries, medications, reminder
// configuration), loads them once at startup and saves after every mutation.
package kv

import "context"

// Collection keys. Each holds one JSON-encoded collection.
const (
	KeyEntries     = "entries"
	KeyMedications = "medications"
	KeyReminders   = "reminders"
)

// Storage is the persistence capability consumed by the services. Load
// returns (nil, nil) for an absent key.
type Storage interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
