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
)

type authService struct {
	accounts    ports.AccountDirectory
	hashSvc     ports.HashService
	sessionSvc  ports.SessionService
	revocations ports.RevocationStore
	auditSvc    ports.AuditService
	log         zerolog.Logger
}

// NewAuthService creates the login/logout service.
func NewAuthService(
	accounts ports.AccountDirectory,
	hashSvc ports.HashService,
	sessionSvc ports.SessionService,
	revocations ports.RevocationStore,
	auditSvc ports.AuditService,
	log zerolog.Logger,
) ports.AuthService {
	return &authService{
		accounts:    accounts,
		hashSvc:     hashSvc,
		sessionSvc:  sessionSvc,
		revocations: revocations,
		auditSvc:    auditSvc,
		log:         log,
	}
}

// Login authenticates the account and mints a session credential bound to
// origin. Unknown email and wrong password are indistinguishable to the
// caller.
func (s *authService) Login(ctx context.Context, email, password, origin string) (*domain.SessionToken, string, error) {
	account, err := s.accounts.FindByEmail(ctx, email)
	if err != nil {
		return nil, "", apperror.InternalError(fmt.Errorf("looking up account: %w", err))
	}
	if account == nil {
		return nil, "", apperror.ErrInvalidCredentials()
	}

	ok, err := s.hashSvc.Verify(password, account.PasswordHash)
	if err != nil {
		return nil, "", apperror.InternalError(fmt.Errorf("verifying password: %w", err))
	}
	if !ok {
		return nil, "", apperror.ErrInvalidCredentials()
	}

	if !account.IsActive() {
		return nil, "", apperror.ErrAccountBanned()
	}

	token := s.sessionSvc.Mint(account, origin, time.Now().UTC())
	credential, err := s.sessionSvc.Encode(token)
	if err != nil {
		return nil, "", apperror.InternalError(fmt.Errorf("encoding credential: %w", err))
	}

	s.auditSvc.Log(ctx, &domain.AdminActionLog{
		ID:        uuid.New(),
		ActorID:   account.ID,
		Action:    domain.AdminActionLogin,
		IPAddress: origin,
		CreatedAt: time.Now().UTC(),
	})

	s.log.Info().Int64("account_id", account.ID).Msg("login succeeded")
	return token, credential, nil
}

// Logout revokes every outstanding credential of the token's subject.
func (s *authService) Logout(ctx context.Context, token *domain.SessionToken) error {
	if token == nil {
		return apperror.ErrInvalidSession()
	}
	if err := s.revocations.RevokeAll(ctx, token.SubjectID, s.sessionSvc.Lifetime()); err != nil {
		return apperror.InternalError(fmt.Errorf("revoking sessions: %w", err))
	}
	return nil
}
