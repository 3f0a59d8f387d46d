package domain

// SessionToken is the structured session credential carried in the panel
// cookie. Previous holds the admin's own token while impersonating a user;
// only one level of nesting is ever minted.
type SessionToken struct {
	SubjectID    int64         `json:"uid"`
	SubjectEmail string        `json:"email"`
	SessionTag   string        `json:"key"`    // derived from password hash + expiry
	OriginTag    string        `json:"origin"` // derived from network origin + id + expiry
	ExpiresAt    int64         `json:"expires_at"` // Unix seconds, absolute
	Previous     *SessionToken `json:"previous,omitempty"`
}

// Expired reports whether the token's lifetime has elapsed at the given Unix
// time.
func (t *SessionToken) Expired(nowUnix int64) bool {
	return nowUnix >= t.ExpiresAt
}

// Impersonating reports whether this token was minted by an impersonation
// switch and still carries a way back.
func (t *SessionToken) Impersonating() bool {
	return t.Previous != nil
}
