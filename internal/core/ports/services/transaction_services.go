package services

import (
	"context"

	"github.com/paisatrack/paisa_tracker_app/internal/core/domain"
)

// FilterOptions constrains the cached view. All present constraints are
// conjunctive; a nil field imposes no constraint.
type FilterOptions struct {
	Month    *string // local calendar year-month of the date, "2006-01"
	Category *string
	Bank     *string
}

// TransactionReaderSvc defines read operations over the cached view.
type TransactionReaderSvc interface {
	// Filter synchronously evaluates the options against the current cache.
	// It performs no I/O.
	Filter(opts FilterOptions) []domain.Transaction
}

// TransactionWriterSvc defines mutations against the store. Persistence errors
// propagate to the caller; the cache is only touched after a confirmed write.
type TransactionWriterSvc interface {
	// Load replaces the in-memory cache wholesale from the persisted relation.
	// It is the authoritative resync path after suspected divergence.
	Load(ctx context.Context) error

	// Add upserts the transaction and places it at the front of the cache if
	// newly seen, or replaces the existing cache entry in place.
	Add(ctx context.Context, txn domain.Transaction) error

	// Remove deletes by id. The cache entry is removed even when no row
	// existed; callers must treat the store as advisory for absent ids.
	Remove(ctx context.Context, id string) error

	// Edit updates all mutable fields of the row matching txn.ID and replaces
	// the matching cache entry in place, preserving cache order.
	Edit(ctx context.Context, txn domain.Transaction) error
}

// TransactionSvcFacade combines the store's read and write surfaces.
type TransactionSvcFacade interface {
	TransactionReaderSvc
	TransactionWriterSvc
}

// IngestionSvc accepts inbound message events for asynchronous processing.
type IngestionSvc interface {
	// Enqueue hands a message to the ingestion queue. It returns an error only
	// when the queue is unavailable or ctx is done; a full buffer drops the
	// message.
	Enqueue(ctx context.Context, msg domain.SMSMessage) error
}
