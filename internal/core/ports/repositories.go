package ports

import (
	"context"
	"time"

	"proxy-admin-panel/internal/core/domain"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=repositories.go -destination=mocks/repositories.go -package=mocks

// AccountDirectory is the keyed record store for user accounts. Consumed by
// this core, implemented by the postgres adapter.
// Lookup methods return (nil, nil) when no record exists.
type AccountDirectory interface {
	FindByID(ctx context.Context, id int64) (*domain.Account, error)
	FindByEmail(ctx context.Context, email string) (*domain.Account, error)
	Create(ctx context.Context, a *domain.Account) error // assigns a.ID
	Save(ctx context.Context, a *domain.Account) error
	List(ctx context.Context) ([]domain.Account, error)
	Deactivate(ctx context.Context, id int64, at time.Time) error
	// Transaction-scoped methods for the ledger-write-then-balance-update pair.
	FindByIDForUpdate(ctx context.Context, tx pgx.Tx, id int64) (*domain.Account, error)
	UpdateBalance(ctx context.Context, tx pgx.Tx, id int64, balance decimal.Decimal) error
}

// LedgerRepository persists balance ledger entries. Append-only; entries for
// one account come back in append order.
type LedgerRepository interface {
	Append(ctx context.Context, tx pgx.Tx, e *domain.LedgerEntry) error // assigns e.Seq
	ListByAccount(ctx context.Context, accountID int64) ([]domain.LedgerEntry, error)
}

// AuditRepository persists admin action logs.
type AuditRepository interface {
	Create(ctx context.Context, entry *domain.AdminActionLog) error
}

// DBTransactor provides database transaction management.
type DBTransactor interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// RevocationStore marks all sessions of an account as revoked from a point in
// time (logout, password change). Implemented on Redis.
type RevocationStore interface {
	// RevokeAll invalidates every credential issued at or before now.
	RevokeAll(ctx context.Context, accountID int64, ttl time.Duration) error
	// RevokedAt returns the Unix time of the revocation mark, or 0 if none.
	RevokedAt(ctx context.Context, accountID int64) (int64, error)
}
