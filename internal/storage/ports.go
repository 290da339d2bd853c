package storage

import (
	"context"
	"errors"

	"fintrack/internal/core"
)

// ErrNotFound reports an operation against an id that is not in the store.
var ErrNotFound = errors.New("transaction not found")

// TransactionStore is the persistence contract for the single transaction
// collection. List always returns records ordered by date descending, then
// by id descending within equal dates, so repeated listings with no
// intervening mutation are identical.
type TransactionStore interface {
	// Insert persists a new record and returns it with its assigned id.
	Insert(ctx context.Context, tx core.Transaction) (core.Transaction, error)
	// List returns every record, date descending.
	List(ctx context.Context) ([]core.Transaction, error)
	// Replace swaps the entire record matching tx.ID. Returns ErrNotFound
	// when no record matches.
	Replace(ctx context.Context, tx core.Transaction) (core.Transaction, error)
	// Delete removes the record with the given id and reports whether a
	// record was removed. Deleting an absent id is a no-op, not an error.
	Delete(ctx context.Context, id string) (bool, error)
}
