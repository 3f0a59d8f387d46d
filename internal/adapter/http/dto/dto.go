package dto

import (
	"fmt"

	"proxy-admin-panel/internal/core/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LoginRequest is the request body for panel login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse is the response body for successful login. The credential
// itself travels in the session cookie.
type LoginResponse struct {
	AccountID int64  `json:"account_id"`
	Email     string `json:"email"`
	ExpiresAt int64  `json:"expires_at"` // Unix timestamp
}

// CreateAccountRequest is the request body for admin account creation.
// Password is optional; the panel generates one when it is empty.
type CreateAccountRequest struct {
	Email    string          `json:"email" binding:"required,email"`
	Password string          `json:"password" binding:"omitempty,min=8,max=128"`
	RefBy    int64           `json:"ref_by"`
	Balance  decimal.Decimal `json:"balance"`
}

// CreateAccountResponse reports the created account. GeneratedPassword is
// present only when the panel generated one; it is shown exactly once.
type CreateAccountResponse struct {
	ID                int64  `json:"id"`
	Email             string `json:"email"`
	UUID              string `json:"uuid"`
	GeneratedPassword string `json:"generated_password,omitempty"`
}

// UpdateAccountRequest is the request body for admin account edits. Every
// field is optional; absent fields are left untouched. There is no way to
// address a field this struct does not name.
type UpdateAccountRequest struct {
	Email        *string          `json:"email" binding:"omitempty,email"`
	DisplayName  *string          `json:"display_name" binding:"omitempty,max=100"`
	Password     *string          `json:"password" binding:"omitempty,max=128"`
	Balance      *decimal.Decimal `json:"balance"`
	IsAdmin      *bool            `json:"is_admin"`
	IsBanned     *bool            `json:"is_banned"`
	BannedReason *string          `json:"banned_reason" binding:"omitempty,max=255"`
	Remark       *string          `json:"remark" binding:"omitempty,max=255"`
	RefBy        *int64           `json:"ref_by"`
	BandwidthGB  *decimal.Decimal `json:"bandwidth_gb"`
	UUID         *string          `json:"uuid" binding:"omitempty,uuid"`
}

// FieldUpdate converts the request into the domain change set.
func (r *UpdateAccountRequest) FieldUpdate() (domain.FieldUpdate, error) {
	fields := domain.FieldUpdate{
		Email:        r.Email,
		DisplayName:  r.DisplayName,
		Password:     r.Password,
		Balance:      r.Balance,
		IsAdmin:      r.IsAdmin,
		IsBanned:     r.IsBanned,
		BannedReason: r.BannedReason,
		Remark:       r.Remark,
		RefBy:        r.RefBy,
		BandwidthGB:  r.BandwidthGB,
	}
	if r.UUID != nil {
		id, err := uuid.Parse(*r.UUID)
		if err != nil {
			return domain.FieldUpdate{}, fmt.Errorf("parsing uuid: %w", err)
		}
		fields.UUID = &id
	}
	return fields, nil
}

// ImpersonateResponse reports the session switch.
type ImpersonateResponse struct {
	ActingAsID    int64  `json:"acting_as_id"`
	ActingAsEmail string `json:"acting_as_email"`
	ExpiresAt     int64  `json:"expires_at"`
}

// SessionResponse reports the current session subject after a return.
type SessionResponse struct {
	AccountID int64  `json:"account_id"`
	Email     string `json:"email"`
	ExpiresAt int64  `json:"expires_at"`
}

// LedgerEntryResponse is one row of an account's balance history.
type LedgerEntryResponse struct {
	ID        string `json:"id"`
	Before    string `json:"before"`
	After     string `json:"after"`
	Diff      string `json:"diff"`
	Remark    string `json:"remark"`
	Seq       int64  `json:"seq"`
	CreatedAt string `json:"created_at"`
}
