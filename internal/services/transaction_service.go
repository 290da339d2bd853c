package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"fintrack/internal/amqp"
	"fintrack/internal/core"
	"fintrack/internal/storage"
)

// ErrValidation marks a request rejected at the service boundary. Callers
// match it with errors.Is and translate it to a 400-class response.
var ErrValidation = errors.New("invalid transaction")

// ChangePublisher emits transaction change events after mutations. The AMQP
// client satisfies it; a nil publisher disables events.
type ChangePublisher interface {
	PublishChange(ctx context.Context, op, id string) error
}

// TransactionService implements the CRUD contract over a TransactionStore.
// Every read normalizes categories once at this boundary; mutations publish
// best-effort change events.
type TransactionService struct {
	store     storage.TransactionStore
	publisher ChangePublisher
}

func NewTransactionService(store storage.TransactionStore, publisher ChangePublisher) *TransactionService {
	return &TransactionService{store: store, publisher: publisher}
}

// List returns all transactions ordered by date descending, with missing or
// unknown categories normalized to the default label.
func (s *TransactionService) List(ctx context.Context) ([]core.Transaction, error) {
	items, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	for i := range items {
		items[i].Category = core.NormalizeCategory(items[i].Category)
	}
	return items, nil
}

// Create validates and persists a new transaction, returning it with its
// assigned id.
func (s *TransactionService) Create(ctx context.Context, tx core.Transaction) (core.Transaction, error) {
	if err := tx.Validate(); err != nil {
		return core.Transaction{}, fmt.Errorf("%w: %s", ErrValidation, err)
	}

	created, err := s.store.Insert(ctx, tx)
	if err != nil {
		return core.Transaction{}, fmt.Errorf("create transaction: %w", err)
	}

	slog.InfoContext(ctx, "Transaction created",
		"id", created.ID,
		"amount", created.Amount,
		"date", created.Date,
		"category", created.Category)

	s.publish(ctx, amqp.OpCreated, created.ID)
	return created, nil
}

// Update replaces the entire record matching tx.ID. An unknown id surfaces
// storage.ErrNotFound rather than degrading to a silent no-op.
func (s *TransactionService) Update(ctx context.Context, tx core.Transaction) (core.Transaction, error) {
	if tx.ID == "" {
		return core.Transaction{}, fmt.Errorf("%w: missing id", ErrValidation)
	}
	if err := tx.Validate(); err != nil {
		return core.Transaction{}, fmt.Errorf("%w: %s", ErrValidation, err)
	}

	updated, err := s.store.Replace(ctx, tx)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return core.Transaction{}, err
		}
		return core.Transaction{}, fmt.Errorf("update transaction %s: %w", tx.ID, err)
	}

	slog.InfoContext(ctx, "Transaction updated", "id", updated.ID)

	s.publish(ctx, amqp.OpUpdated, updated.ID)
	return updated, nil
}

// Delete removes the record with the given id. Absent ids no-op, and no
// change event is published for them.
func (s *TransactionService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return nil
	}
	deleted, err := s.store.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete transaction %s: %w", id, err)
	}
	if !deleted {
		return nil
	}

	slog.InfoContext(ctx, "Transaction deleted", "id", id)

	s.publish(ctx, amqp.OpDeleted, id)
	return nil
}

// publish sends a change event; failures are logged and never fail the
// originating request.
func (s *TransactionService) publish(ctx context.Context, op, id string) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishChange(ctx, op, id); err != nil {
		slog.ErrorContext(ctx, "Failed to publish change event",
			"op", op, "id", id, "error", err)
	}
}
