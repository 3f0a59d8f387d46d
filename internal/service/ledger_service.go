package service

import (
	"context"
	"fmt"
	"time"

	"proxy-admin-panel/internal/core/domain"
	"proxy-admin-panel/internal/core/ports"
	"proxy-admin-panel/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// Ledger remarks for admin-driven balance changes.
const (
	RemarkBalanceAdded    = "balance added by admin"
	RemarkBalanceDeducted = "balance deducted by admin"
)

// LedgerEngine implements ports.LedgerService. Every balance mutation goes
// through ApplyBalanceChange, which appends the ledger entry and commits the
// new balance in one database transaction, serialized per account by a row
// lock.
type LedgerEngine struct {
	accounts   ports.AccountDirectory
	entries    ports.LedgerRepository
	transactor ports.DBTransactor
	log        zerolog.Logger
}

// NewLedgerEngine creates a new LedgerEngine.
func NewLedgerEngine(
	accounts ports.AccountDirectory,
	entries ports.LedgerRepository,
	transactor ports.DBTransactor,
	log zerolog.Logger,
) *LedgerEngine {
	return &LedgerEngine{
		accounts:   accounts,
		entries:    entries,
		transactor: transactor,
		log:        log,
	}
}

// PlanChange computes the ledger entry for a requested balance. Returns nil
// when requested equals current: the ledger never records a zero diff.
func (s *LedgerEngine) PlanChange(accountID int64, current, requested decimal.Decimal, now time.Time) *domain.LedgerEntry {
	if requested.Equal(current) {
		return nil
	}

	diff := requested.Sub(current)
	remark := RemarkBalanceAdded
	if diff.IsNegative() {
		remark = RemarkBalanceDeducted
	}

	return &domain.LedgerEntry{
		ID:        uuid.New(),
		AccountID: accountID,
		Before:    current,
		After:     requested,
		Diff:      diff,
		Remark:    remark,
		CreatedAt: now,
	}
}

// ApplyBalanceChange sets the account's balance to requested, appending the
// ledger entry before the balance row is touched. A failed append aborts the
// whole change; a no-op request writes nothing. Returns the appended entry
// (nil for a no-op) and the resulting balance.
func (s *LedgerEngine) ApplyBalanceChange(ctx context.Context, accountID int64, requested decimal.Decimal) (*domain.LedgerEntry, decimal.Decimal, error) {
	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, decimal.Zero, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	account, err := s.accounts.FindByIDForUpdate(ctx, dbTx, accountID)
	if err != nil {
		return nil, decimal.Zero, apperror.InternalError(fmt.Errorf("lock account: %w", err))
	}
	if account == nil {
		return nil, decimal.Zero, apperror.ErrUnknownAccount(accountID)
	}

	entry := s.PlanChange(accountID, account.Balance, requested, time.Now().UTC())
	if entry == nil {
		return nil, account.Balance, nil
	}

	if err := s.entries.Append(ctx, dbTx, entry); err != nil {
		return nil, decimal.Zero, apperror.ErrLedgerWriteFailed(fmt.Errorf("append ledger entry: %w", err))
	}

	if err := s.accounts.UpdateBalance(ctx, dbTx, accountID, requested); err != nil {
		return nil, decimal.Zero, apperror.InternalError(fmt.Errorf("update balance: %w", err))
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, decimal.Zero, apperror.ErrLedgerWriteFailed(fmt.Errorf("commit tx: %w", err))
	}

	s.log.Info().
		Int64("account_id", accountID).
		Str("before", entry.Before.String()).
		Str("after", entry.After.String()).
		Str("diff", entry.Diff.String()).
		Msg("balance changed")

	return entry, requested, nil
}

// History returns the account's ledger entries in append order.
func (s *LedgerEngine) History(ctx context.Context, accountID int64) ([]domain.LedgerEntry, error) {
	entries, err := s.entries.ListByAccount(ctx, accountID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list ledger entries: %w", err))
	}
	return entries, nil
}
