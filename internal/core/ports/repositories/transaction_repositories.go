package repositories

import (
	"context"

	"github.com/paisatrack/paisa_tracker_app/internal/core/domain"
)

// TransactionReader defines read operations for the persisted transaction relation.
type TransactionReader interface {
	// ListAll retrieves the full relation ordered by date descending.
	ListAll(ctx context.Context) ([]domain.Transaction, error)
}

// TransactionWriter defines write operations for the persisted transaction relation.
type TransactionWriter interface {
	// Save persists a transaction with insert-or-replace semantics keyed by ID.
	// A later write with the same ID replaces the prior row, never duplicates it.
	Save(ctx context.Context, txn domain.Transaction) error

	// Update rewrites the mutable fields of the row matching txn.ID. ID and
	// Source are never changed. Zero rows affected is not an error.
	Update(ctx context.Context, txn domain.Transaction) error

	// Delete removes the row matching id. Zero rows affected is not an error.
	Delete(ctx context.Context, id string) error
}

// TransactionRepositoryFacade combines all transaction repository interfaces.
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}
