package ports

import (
	"context"
	"time"

	"proxy-admin-panel/internal/core/domain"

	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=services.go -destination=mocks/services.go -package=mocks

// HashService handles password hashing (Argon2id).
type HashService interface {
	Hash(password string) (string, error)
	Verify(password string, hash string) (bool, error)
}

// TagService derives the tamper-evident session tags. Both derivations are
// pure: deterministic for identical inputs, infeasible to forge without the
// secret material.
type TagService interface {
	// SessionTag binds a credential to the account's current password hash and
	// expiry; changing either invalidates every previously issued tag.
	SessionTag(passwordHash string, expiresAt int64) string
	// OriginTag binds a credential to the caller's network origin.
	OriginTag(origin string, accountID int64, expiresAt int64) string
	// Equal compares two tags in constant time.
	Equal(a, b string) bool
}

// SessionService mints, serializes and verifies session credentials and
// implements the impersonation switch/return transitions.
type SessionService interface {
	Mint(account *domain.Account, origin string, now time.Time) *domain.SessionToken
	// Verify fails closed: any expiry, session-tag or origin-tag mismatch
	// invalidates the whole token.
	Verify(token *domain.SessionToken, passwordHash, origin string, now time.Time) error
	// Impersonate mints a credential for target carrying caller's token as
	// Previous. Rejects nested impersonation and self-targets.
	Impersonate(callerToken *domain.SessionToken, target *domain.Account, origin string, now time.Time) (*domain.SessionToken, error)
	// Restore pops the Previous token, returning the token unchanged when no
	// impersonation layer exists.
	Restore(token *domain.SessionToken) *domain.SessionToken
	Encode(token *domain.SessionToken) (string, error)
	Decode(credential string) (*domain.SessionToken, error)
	Lifetime() time.Duration
}

// LedgerService owns every balance mutation: no component changes an
// account's balance without going through it.
type LedgerService interface {
	// PlanChange computes the ledger entry for a requested balance, or nil
	// when requested equals current (no zero-diff entries).
	PlanChange(accountID int64, current, requested decimal.Decimal, now time.Time) *domain.LedgerEntry
	// ApplyBalanceChange durably appends the entry and commits the new balance
	// as one transaction, serialized per account.
	ApplyBalanceChange(ctx context.Context, accountID int64, requested decimal.Decimal) (*domain.LedgerEntry, decimal.Decimal, error)
	History(ctx context.Context, accountID int64) ([]domain.LedgerEntry, error)
}

// Registrar is the external registration collaborator.
type Registrar interface {
	Register(ctx context.Context, req RegisterRequest) (*domain.Account, error)
}

// RegisterRequest holds input for account registration.
type RegisterRequest struct {
	Role           domain.AccountRole
	Email          string
	Password       string
	RefBy          int64
	InitialBalance decimal.Decimal
}

// AuthService defines login/logout against the directory.
type AuthService interface {
	// Login returns the minted token and its encoded cookie value.
	Login(ctx context.Context, email, password, origin string) (*domain.SessionToken, string, error)
	Logout(ctx context.Context, token *domain.SessionToken) error
}

// AccountAdminService is the panel's account management surface.
type AccountAdminService interface {
	Create(ctx context.Context, req CreateAccountRequest) (*CreateAccountResult, error)
	Update(ctx context.Context, id int64, fields domain.FieldUpdate) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]domain.AccountView, error)
	Impersonate(ctx context.Context, callerToken *domain.SessionToken, targetID int64, origin string) (*domain.SessionToken, string, error)
	// InvalidateSessionsFor revokes every outstanding credential of an account.
	InvalidateSessionsFor(ctx context.Context, id int64) error
}

// CreateAccountRequest holds validated input for account creation.
type CreateAccountRequest struct {
	Email    string
	Password string // empty = generate a random one
	RefBy    int64
	Balance  decimal.Decimal
}

// CreateAccountResult reports the created account; GeneratedPassword is set
// only when the panel generated one, and shown exactly once.
type CreateAccountResult struct {
	Account           *domain.Account
	GeneratedPassword string
}

// AuditService records admin actions (fire-and-forget).
type AuditService interface {
	Log(ctx context.Context, entry *domain.AdminActionLog)
}
