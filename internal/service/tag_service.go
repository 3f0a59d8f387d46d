package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// HMACTagService implements ports.TagService using HMAC-SHA256.
//
// The session tag is keyed by the account's current password hash, so a
// password change invalidates every outstanding credential without any
// server-side bookkeeping. The origin tag is keyed by a server secret and
// binds the credential to the network origin it was minted for.
type HMACTagService struct {
	secret []byte
}

// NewHMACTagService creates a tag service keyed with the server secret.
func NewHMACTagService(secret string) *HMACTagService {
	return &HMACTagService{secret: []byte(secret)}
}

// SessionTag derives the verification tag for (password hash, expiry).
// Returns lowercase hex.
func (s *HMACTagService) SessionTag(passwordHash string, expiresAt int64) string {
	mac := hmac.New(sha256.New, []byte(passwordHash))
	fmt.Fprintf(mac, "session|%d", expiresAt)
	return hex.EncodeToString(mac.Sum(nil))
}

// OriginTag derives the tag binding a credential to (origin, account, expiry).
func (s *HMACTagService) OriginTag(origin string, accountID int64, expiresAt int64) string {
	mac := hmac.New(sha256.New, s.secret)
	fmt.Fprintf(mac, "origin|%s|%d|%d", origin, accountID, expiresAt)
	return hex.EncodeToString(mac.Sum(nil))
}

// Equal compares two tags in constant time.
func (s *HMACTagService) Equal(a, b string) bool {
	return hmac.Equal([]byte(a), []byte(b))
}
