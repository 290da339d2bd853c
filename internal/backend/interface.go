package backend

import (
	"context"
	"time"

	"fintrack/internal/storage"
)

// CleanupFunc releases resources owned by a backend.
type CleanupFunc func() error

// Result contains the store instance and optional cleanup function.
type Result struct {
	Store   storage.TransactionStore
	Cleanup CleanupFunc
}

// Factory creates transaction stores based on configuration.
type Factory interface {
	CreateBackend(ctx context.Context, config Config) (*Result, error)
}

// Config holds backend creation settings.
type Config struct {
	Type Type

	// Mongo specific
	MongoURI        string
	MongoDatabase   string
	MongoCollection string
	MongoTimeout    time.Duration

	// SQLite specific
	SQLiteDBPath string
}

// Type selects the storage backend.
type Type string

const (
	MongoBackend  Type = "mongo"
	SQLiteBackend Type = "sqlite"
	MemoryBackend Type = "memory"
)

func (t Type) String() string {
	return string(t)
}

// IsValid returns true if the backend type is recognized.
func (t Type) IsValid() bool {
	switch t {
	case MongoBackend, SQLiteBackend, MemoryBackend:
		return true
	default:
		return false
	}
}
