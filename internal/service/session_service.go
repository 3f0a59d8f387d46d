package service

import (
	"fmt"
	"time"

	"proxy-admin-panel/internal/core/domain"
	"proxy-admin-panel/internal/core/ports"
	"proxy-admin-panel/pkg/apperror"

	"github.com/golang-jwt/jwt/v5"
)

// SessionTokenService implements ports.SessionService. Credentials are
// serialized as HS256 JWTs; the impersonation return path carries the
// caller's own encoded credential in the "prev" claim, one level deep.
type SessionTokenService struct {
	tags     ports.TagService
	secret   []byte
	lifetime time.Duration
	issuer   string
}

// NewSessionTokenService creates a new session token service.
func NewSessionTokenService(tags ports.TagService, secret string, lifetime time.Duration, issuer string) *SessionTokenService {
	return &SessionTokenService{
		tags:     tags,
		secret:   []byte(secret),
		lifetime: lifetime,
		issuer:   issuer,
	}
}

// Lifetime returns the fixed credential lifetime.
func (s *SessionTokenService) Lifetime() time.Duration {
	return s.lifetime
}

// Mint issues a fresh token for the account, bound to the caller's origin.
func (s *SessionTokenService) Mint(account *domain.Account, origin string, now time.Time) *domain.SessionToken {
	expiresAt := now.Add(s.lifetime).Unix()
	return &domain.SessionToken{
		SubjectID:    account.ID,
		SubjectEmail: account.Email,
		SessionTag:   s.tags.SessionTag(account.PasswordHash, expiresAt),
		OriginTag:    s.tags.OriginTag(origin, account.ID, expiresAt),
		ExpiresAt:    expiresAt,
	}
}

// Verify checks a token against the subject's current secret material and the
// caller's origin. Fails closed: expiry, session tag and origin tag must all
// hold, or the token is worthless.
func (s *SessionTokenService) Verify(token *domain.SessionToken, passwordHash, origin string, now time.Time) error {
	if token == nil {
		return apperror.ErrInvalidSession()
	}
	if token.Expired(now.Unix()) {
		return apperror.ErrInvalidSession()
	}
	if !s.tags.Equal(s.tags.SessionTag(passwordHash, token.ExpiresAt), token.SessionTag) {
		return apperror.ErrInvalidSession()
	}
	if !s.tags.Equal(s.tags.OriginTag(origin, token.SubjectID, token.ExpiresAt), token.OriginTag) {
		return apperror.ErrInvalidSession()
	}
	return nil
}

// Impersonate mints a token for target that embeds the caller's token as the
// return path. Impersonating while already impersonating is rejected rather
// than overwriting the embedded return token.
func (s *SessionTokenService) Impersonate(callerToken *domain.SessionToken, target *domain.Account, origin string, now time.Time) (*domain.SessionToken, error) {
	if callerToken == nil {
		return nil, apperror.ErrInvalidSession()
	}
	if callerToken.Impersonating() {
		return nil, apperror.ErrNestedImpersonation()
	}
	if target.ID == callerToken.SubjectID {
		return nil, apperror.ErrInvalidTarget()
	}

	token := s.Mint(target, origin, now)
	token.Previous = callerToken
	return token, nil
}

// Restore pops the impersonation layer, returning the exact embedded token:
// same tags, same expiry, nothing re-minted. Without a previous layer the
// token comes back unchanged.
func (s *SessionTokenService) Restore(token *domain.SessionToken) *domain.SessionToken {
	if token == nil || token.Previous == nil {
		return token
	}
	return token.Previous
}

// Encode serializes a token (and its nested previous token) as a signed JWT.
func (s *SessionTokenService) Encode(token *domain.SessionToken) (string, error) {
	claims := jwt.MapClaims{
		"uid":    token.SubjectID,
		"email":  token.SubjectEmail,
		"key":    token.SessionTag,
		"origin": token.OriginTag,
		"exp":    token.ExpiresAt,
		"iss":    s.issuer,
	}

	if token.Previous != nil {
		prev, err := s.Encode(token.Previous)
		if err != nil {
			return "", fmt.Errorf("encoding previous token: %w", err)
		}
		claims["prev"] = prev
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}
	return signed, nil
}

// Decode parses and validates a serialized credential, rebuilding the nested
// previous token when present. A signature failure at either level invalidates
// the whole credential. Expiry is only enforced on the outer token: the
// embedded return token was minted earlier and may lapse while the
// impersonation session is still live; its expiry is judged by Verify once it
// is restored.
func (s *SessionTokenService) Decode(credential string) (*domain.SessionToken, error) {
	return s.decode(credential, false)
}

func (s *SessionTokenService) decode(credential string, embedded bool) (*domain.SessionToken, error) {
	keyfunc := func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	}

	var opts []jwt.ParserOption
	if embedded {
		opts = append(opts, jwt.WithoutClaimsValidation())
	}

	parsed, err := jwt.Parse(credential, keyfunc, opts...)
	if err != nil {
		return nil, fmt.Errorf("parsing credential: %w", err)
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok || !parsed.Valid {
		return nil, fmt.Errorf("invalid credential claims")
	}

	uid, ok := claims["uid"].(float64)
	if !ok {
		return nil, fmt.Errorf("missing subject claim")
	}
	exp, ok := claims["exp"].(float64)
	if !ok {
		return nil, fmt.Errorf("missing expiry claim")
	}

	email, _ := claims["email"].(string)
	key, _ := claims["key"].(string)
	origin, _ := claims["origin"].(string)

	token := &domain.SessionToken{
		SubjectID:    int64(uid),
		SubjectEmail: email,
		SessionTag:   key,
		OriginTag:    origin,
		ExpiresAt:    int64(exp),
	}

	if prev, ok := claims["prev"].(string); ok && prev != "" {
		previous, err := s.decode(prev, true)
		if err != nil {
			return nil, fmt.Errorf("decoding previous token: %w", err)
		}
		token.Previous = previous
	}

	return token, nil
}
