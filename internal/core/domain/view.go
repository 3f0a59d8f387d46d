package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// bytesPerGB is 2^30; the panel displays bandwidth in binary gigabytes.
var bytesPerGB = decimal.NewFromInt(1 << 30)

// AccountView is the listing projection of an account: raw byte quantities
// rendered in display units, no secrets, decoupled from the persistence shape.
type AccountView struct {
	ID             int64     `json:"id"`
	Email          string    `json:"email"`
	DisplayName    string    `json:"display_name"`
	UUID           string    `json:"uuid"`
	Balance        string    `json:"balance"`
	IsAdmin        bool      `json:"is_admin"`
	IsBanned       bool      `json:"is_banned"`
	RefBy          int64     `json:"ref_by"`
	BandwidthCapGB string    `json:"bandwidth_cap_gb"`
	BandwidthUsedGB string   `json:"bandwidth_used_gb"`
	CreatedAt      time.Time `json:"created_at"`
	Deactivated    bool      `json:"deactivated"`
}

// BytesToGB converts a raw byte count to gigabytes with two decimals.
// Rounding is half-up (decimal.Round ties away from zero; byte counts are
// non-negative, so ties round up): 2147483648 B -> "2.00".
func BytesToGB(bytes int64) string {
	return decimal.NewFromInt(bytes).Div(bytesPerGB).Round(2).StringFixed(2)
}

// GBToBytes converts an admin-entered gigabyte figure to raw bytes.
func GBToBytes(gb decimal.Decimal) int64 {
	return gb.Mul(bytesPerGB).IntPart()
}

// ProjectAccount maps a stored account onto its display projection. Pure
// transform, no side effects.
func ProjectAccount(a *Account) AccountView {
	return AccountView{
		ID:              a.ID,
		Email:           a.Email,
		DisplayName:     a.DisplayName,
		UUID:            a.UUID.String(),
		Balance:         a.Balance.StringFixed(2),
		IsAdmin:         a.IsAdmin,
		IsBanned:        a.IsBanned,
		RefBy:           a.RefBy,
		BandwidthCapGB:  BytesToGB(a.BandwidthCap),
		BandwidthUsedGB: BytesToGB(a.BandwidthUsed),
		CreatedAt:       a.CreatedAt,
		Deactivated:     a.DeactivatedAt != nil,
	}
}
