package postgres

import (
	"context"
	"fmt"

	"proxy-admin-panel/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// LedgerRepo implements ports.LedgerRepository. The balance_ledger table is
// append-only; there is no update or delete path.
type LedgerRepo struct {
	pool Pool
}

// NewLedgerRepo creates a new LedgerRepo.
func NewLedgerRepo(pool Pool) *LedgerRepo {
	return &LedgerRepo{pool: pool}
}

// Append inserts a ledger entry within a transaction and assigns its sequence
// number. The bigserial seq column gives the per-table append order.
func (r *LedgerRepo) Append(ctx context.Context, tx pgx.Tx, e *domain.LedgerEntry) error {
	query := `INSERT INTO balance_ledger (id, account_id, before_balance, after_balance, diff, remark, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING seq`

	err := tx.QueryRow(ctx, query,
		e.ID, e.AccountID, e.Before, e.After, e.Diff, e.Remark, e.CreatedAt,
	).Scan(&e.Seq)
	if err != nil {
		return fmt.Errorf("insert ledger entry: %w", err)
	}
	return nil
}

// ListByAccount returns the account's entries in append order.
func (r *LedgerRepo) ListByAccount(ctx context.Context, accountID int64) ([]domain.LedgerEntry, error) {
	query := `SELECT id, account_id, before_balance, after_balance, diff, remark, seq, created_at
		FROM balance_ledger WHERE account_id = $1 ORDER BY seq`

	rows, err := r.pool.Query(ctx, query, accountID)
	if err != nil {
		return nil, fmt.Errorf("list ledger entries: %w", err)
	}
	defer rows.Close()

	var entries []domain.LedgerEntry
	for rows.Next() {
		var e domain.LedgerEntry
		if err := rows.Scan(&e.ID, &e.AccountID, &e.Before, &e.After, &e.Diff, &e.Remark, &e.Seq, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan ledger entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list ledger entries: %w", err)
	}
	return entries, nil
}
