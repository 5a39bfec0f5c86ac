package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/paisatrack/paisa_tracker_app/internal/core/domain"
	portsrepo "github.com/paisatrack/paisa_tracker_app/internal/core/ports/repositories"
)

type PgxTransactionRepository struct {
	pool *pgxpool.Pool
}

// NewPgxTransactionRepository creates a new repository for transaction data.
func NewPgxTransactionRepository(pool *pgxpool.Pool) portsrepo.TransactionRepositoryFacade {
	return &PgxTransactionRepository{pool: pool}
}

// Save upserts a transaction keyed by id. Insert-or-replace is the load-bearing
// mechanism that makes concurrent duplicate ingestion safe at the storage
// layer: the ingestion consumer and user edits may target the same id.
func (r *PgxTransactionRepository) Save(ctx context.Context, txn domain.Transaction) error {
	query := `
		INSERT INTO transactions (id, amount, type, date, bank, description, category, source)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (id) DO UPDATE SET
			amount = EXCLUDED.amount,
			type = EXCLUDED.type,
			date = EXCLUDED.date,
			bank = EXCLUDED.bank,
			description = EXCLUDED.description,
			category = EXCLUDED.category,
			source = EXCLUDED.source;
	`

	_, err := r.pool.Exec(ctx, query,
		txn.ID,
		txn.Amount,
		string(txn.Type),
		txn.Date,
		txn.Bank,
		txn.Description,
		txn.Category,
		string(txn.Source),
	)
	if err != nil {
		return fmt.Errorf("failed to save transaction %s: %w", txn.ID, err)
	}
	return nil
}

// Update rewrites the mutable fields of the row matching txn.ID. ID and Source
// are deliberately absent from the SET list. A missing row is a no-op.
func (r *PgxTransactionRepository) Update(ctx context.Context, txn domain.Transaction) error {
	query := `
		UPDATE transactions
		SET amount = $2, type = $3, date = $4, bank = $5, description = $6, category = $7
		WHERE id = $1;
	`

	_, err := r.pool.Exec(ctx, query,
		txn.ID,
		txn.Amount,
		string(txn.Type),
		txn.Date,
		txn.Bank,
		txn.Description,
		txn.Category,
	)
	if err != nil {
		return fmt.Errorf("failed to update transaction %s: %w", txn.ID, err)
	}
	return nil
}

// Delete removes the row matching id. Zero rows affected is not an error.
func (r *PgxTransactionRepository) Delete(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM transactions WHERE id = $1;`, id)
	if err != nil {
		return fmt.Errorf("failed to delete transaction %s: %w", id, err)
	}
	return nil
}

// ListAll retrieves the full relation ordered by date descending. The id
// tiebreak keeps the ordering stable across reloads.
func (r *PgxTransactionRepository) ListAll(ctx context.Context) ([]domain.Transaction, error) {
	query := `
		SELECT id, amount, type, date, bank, description, category, source
		FROM transactions
		ORDER BY date DESC, id;
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	txns, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Transaction, error) {
		var txn domain.Transaction
		var txnType, source string
		err := row.Scan(
			&txn.ID,
			&txn.Amount,
			&txnType,
			&txn.Date,
			&txn.Bank,
			&txn.Description,
			&txn.Category,
			&source,
		)
		txn.Type = domain.TransactionType(txnType)
		txn.Source = domain.TransactionSource(source)
		return txn, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan transactions: %w", err)
	}

	if txns == nil {
		return []domain.Transaction{}, nil
	}
	return txns, nil
}
