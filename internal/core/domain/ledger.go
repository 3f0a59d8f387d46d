package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LedgerEntry is an immutable record of one balance mutation. Entries are
// append-only; nothing in this codebase updates or deletes one.
type LedgerEntry struct {
	ID        uuid.UUID       `json:"id"`
	AccountID int64           `json:"account_id"`
	Before    decimal.Decimal `json:"before"`
	After     decimal.Decimal `json:"after"`
	Diff      decimal.Decimal `json:"diff"` // always After - Before, exactly
	Remark    string          `json:"remark"`
	Seq       int64           `json:"seq"` // assigned by storage, monotonic per append order
	CreatedAt time.Time       `json:"created_at"`
}

// Consistent reports whether the recorded diff equals After - Before.
func (e *LedgerEntry) Consistent() bool {
	return e.Diff.Equal(e.After.Sub(e.Before))
}
