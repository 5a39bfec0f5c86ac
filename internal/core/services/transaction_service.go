package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/paisatrack/paisa_tracker_app/internal/core/domain"
	portsrepo "github.com/paisatrack/paisa_tracker_app/internal/core/ports/repositories"
	portssvc "github.com/paisatrack/paisa_tracker_app/internal/core/ports/services"
)

// TransactionService is the local store: it owns the persisted relation
// through its repository and maintains a derived, disposable in-memory cache
// ordered newest-first. The cache is rebuildable at any time via Load.
//
// The mutex guards memory safety only. Semantically the cache keeps the
// original last-write-wins discipline between interleaved mutations; Load is
// the only guaranteed resynchronization point.
type TransactionService struct {
	repo portsrepo.TransactionRepositoryFacade

	mu    sync.RWMutex
	cache []domain.Transaction
}

// NewTransactionService creates the store service around a repository.
func NewTransactionService(repo portsrepo.TransactionRepositoryFacade) *TransactionService {
	return &TransactionService{repo: repo}
}

// Load fetches the full relation ordered by date descending and replaces the
// cache wholesale.
func (s *TransactionService) Load(ctx context.Context) error {
	txns, err := s.repo.ListAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to load transactions: %w", err)
	}

	s.mu.Lock()
	s.cache = txns
	s.mu.Unlock()
	return nil
}

// Add upserts the transaction, then updates the cache: front insert when the
// id is newly seen, in-place replacement otherwise. The cache is only touched
// after the write is confirmed.
func (s *TransactionService) Add(ctx context.Context, txn domain.Transaction) error {
	if err := s.repo.Save(ctx, txn); err != nil {
		return fmt.Errorf("failed to add transaction: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.cache {
		if s.cache[i].ID == txn.ID {
			s.cache[i] = txn
			return nil
		}
	}
	s.cache = append([]domain.Transaction{txn}, s.cache...)
	return nil
}

// Remove deletes the row matching id; affecting zero rows is not an error. The
// cache entry is removed unconditionally, so a spurious call can leave the
// cache asserting a deletion that never touched the relation. Callers treat
// the store as advisory for absent ids and resync with Load.
func (s *TransactionService) Remove(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to remove transaction: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.cache {
		if s.cache[i].ID == id {
			s.cache = append(s.cache[:i], s.cache[i+1:]...)
			return nil
		}
	}
	return nil
}

// Edit updates all mutable fields of the row matching txn.ID, then replaces
// the matching cache entry in place, preserving cache order. ID and Source are
// never written.
func (s *TransactionService) Edit(ctx context.Context, txn domain.Transaction) error {
	if err := s.repo.Update(ctx, txn); err != nil {
		return fmt.Errorf("failed to edit transaction: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.cache {
		if s.cache[i].ID == txn.ID {
			// Source stays whatever the cache already holds.
			txn.Source = s.cache[i].Source
			s.cache[i] = txn
			return nil
		}
	}
	return nil
}

// Filter evaluates the options against the current cache. It is synchronous
// and performs no I/O; all present constraints are conjunctive.
func (s *TransactionService) Filter(opts portssvc.FilterOptions) []domain.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Transaction, 0, len(s.cache))
	for _, txn := range s.cache {
		if opts.Month != nil && domain.MonthKey(txn.Date) != *opts.Month {
			continue
		}
		if opts.Category != nil && txn.Category != *opts.Category {
			continue
		}
		if opts.Bank != nil && txn.Bank != *opts.Bank {
			continue
		}
		out = append(out, txn)
	}
	return out
}

var _ portssvc.TransactionSvcFacade = (*TransactionService)(nil)
