package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"proxy-admin-panel/internal/core/domain"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

const accountColumns = `id, email, display_name, uuid, password_hash, balance,
	is_admin, is_banned, banned_reason, remark, ref_by,
	bandwidth_cap, bandwidth_used, created_at, updated_at, deactivated_at`

// AccountRepo implements ports.AccountDirectory.
type AccountRepo struct {
	pool Pool
}

// NewAccountRepo creates a new AccountRepo.
func NewAccountRepo(pool Pool) *AccountRepo {
	return &AccountRepo{pool: pool}
}

func scanAccount(row pgx.Row) (*domain.Account, error) {
	a := &domain.Account{}
	err := row.Scan(
		&a.ID, &a.Email, &a.DisplayName, &a.UUID, &a.PasswordHash, &a.Balance,
		&a.IsAdmin, &a.IsBanned, &a.BannedReason, &a.Remark, &a.RefBy,
		&a.BandwidthCap, &a.BandwidthUsed, &a.CreatedAt, &a.UpdatedAt, &a.DeactivatedAt,
	)
	if err != nil {
		return nil, err
	}
	return a, nil
}

// FindByID fetches an account by its numeric id.
func (r *AccountRepo) FindByID(ctx context.Context, id int64) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE id = $1`

	a, err := scanAccount(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get account by id: %w", err)
	}
	return a, nil
}

// FindByEmail fetches an account by email. Emails are unique and compared
// case-sensitively.
func (r *AccountRepo) FindByEmail(ctx context.Context, email string) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE email = $1`

	a, err := scanAccount(r.pool.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get account by email: %w", err)
	}
	return a, nil
}

// Create inserts a new account and assigns its generated id.
func (r *AccountRepo) Create(ctx context.Context, a *domain.Account) error {
	query := `INSERT INTO accounts (email, display_name, uuid, password_hash, balance,
			is_admin, is_banned, banned_reason, remark, ref_by,
			bandwidth_cap, bandwidth_used, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING id`

	err := r.pool.QueryRow(ctx, query,
		a.Email, a.DisplayName, a.UUID, a.PasswordHash, a.Balance,
		a.IsAdmin, a.IsBanned, a.BannedReason, a.Remark, a.RefBy,
		a.BandwidthCap, a.BandwidthUsed, a.CreatedAt, a.UpdatedAt,
	).Scan(&a.ID)
	if err != nil {
		return fmt.Errorf("insert account: %w", err)
	}
	return nil
}

// Save persists every mutable field of the account. The balance column is
// deliberately excluded: it only changes through UpdateBalance.
func (r *AccountRepo) Save(ctx context.Context, a *domain.Account) error {
	query := `UPDATE accounts SET email = $1, display_name = $2, uuid = $3, password_hash = $4,
			is_admin = $5, is_banned = $6, banned_reason = $7, remark = $8, ref_by = $9,
			bandwidth_cap = $10, bandwidth_used = $11, updated_at = $12
		WHERE id = $13`

	tag, err := r.pool.Exec(ctx, query,
		a.Email, a.DisplayName, a.UUID, a.PasswordHash,
		a.IsAdmin, a.IsBanned, a.BannedReason, a.Remark, a.RefBy,
		a.BandwidthCap, a.BandwidthUsed, a.UpdatedAt, a.ID,
	)
	if err != nil {
		return fmt.Errorf("update account: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("account not found: %d", a.ID)
	}
	return nil
}

// List returns every account, active or not, ordered by id.
func (r *AccountRepo) List(ctx context.Context) ([]domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts ORDER BY id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}
	defer rows.Close()

	var accounts []domain.Account
	for rows.Next() {
		a, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("scan account: %w", err)
		}
		accounts = append(accounts, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}
	return accounts, nil
}

// Deactivate marks the account as logically deleted. The row and its ledger
// history stay.
func (r *AccountRepo) Deactivate(ctx context.Context, id int64, at time.Time) error {
	query := `UPDATE accounts SET deactivated_at = $1, updated_at = $1 WHERE id = $2 AND deactivated_at IS NULL`

	tag, err := r.pool.Exec(ctx, query, at, id)
	if err != nil {
		return fmt.Errorf("deactivate account: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("account not found or already deactivated: %d", id)
	}
	return nil
}

// FindByIDForUpdate fetches an account by id with pessimistic locking.
// This MUST be called within a transaction.
func (r *AccountRepo) FindByIDForUpdate(ctx context.Context, tx pgx.Tx, id int64) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE id = $1 FOR UPDATE`

	a, err := scanAccount(tx.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get account for update: %w", err)
	}
	return a, nil
}

// UpdateBalance writes the new balance within a transaction.
func (r *AccountRepo) UpdateBalance(ctx context.Context, tx pgx.Tx, id int64, balance decimal.Decimal) error {
	query := `UPDATE accounts SET balance = $1, updated_at = NOW() WHERE id = $2`

	tag, err := tx.Exec(ctx, query, balance, id)
	if err != nil {
		return fmt.Errorf("update account balance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("account not found: %d", id)
	}
	return nil
}
