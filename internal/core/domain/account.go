package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AccountRole distinguishes plain users from panel administrators at
// registration time.
type AccountRole string

const (
	AccountRoleUser  AccountRole = "user"
	AccountRoleAdmin AccountRole = "admin"
)

// Account represents a proxy service user account. Persistence, business rules
// and session handling live in separate components; this is plain data.
type Account struct {
	ID            int64           `json:"id"`
	Email         string          `json:"email"` // unique, case-sensitive
	DisplayName   string          `json:"display_name"`
	UUID          uuid.UUID       `json:"uuid"`
	PasswordHash  string          `json:"-"` // Argon2id, never expose
	Balance       decimal.Decimal `json:"balance"`
	IsAdmin       bool            `json:"is_admin"`
	IsBanned      bool            `json:"is_banned"`
	BannedReason  string          `json:"banned_reason,omitempty"`
	Remark        string          `json:"remark,omitempty"`
	RefBy         int64           `json:"ref_by"`             // referrer account id, 0 = none
	BandwidthCap  int64           `json:"bandwidth_cap"`      // raw bytes
	BandwidthUsed int64           `json:"bandwidth_used"`     // raw bytes
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
	DeactivatedAt *time.Time      `json:"deactivated_at,omitempty"` // logical delete marker
}

// IsActive reports whether the account may authenticate.
func (a *Account) IsActive() bool {
	return a.DeactivatedAt == nil && !a.IsBanned
}

// FieldUpdate enumerates the account fields an admin edit may change. A nil
// pointer means "leave unchanged". There is deliberately no way to express an
// unknown field.
type FieldUpdate struct {
	Email        *string
	DisplayName  *string
	Password     *string // plaintext; rehashed on apply, empty string ignored
	Balance      *decimal.Decimal
	IsAdmin      *bool
	IsBanned     *bool
	BannedReason *string
	Remark       *string
	RefBy        *int64
	BandwidthGB  *decimal.Decimal // admin edits the cap in GB; stored as raw bytes
	UUID         *uuid.UUID
}
