package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"regexp"
	"time"

	"proxy-admin-panel/internal/core/domain"
	"proxy-admin-panel/internal/core/ports"
	"proxy-admin-panel/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

type adminService struct {
	accounts    ports.AccountDirectory
	hashSvc     ports.HashService
	sessionSvc  ports.SessionService
	ledger      ports.LedgerService
	registrar   ports.Registrar
	revocations ports.RevocationStore
	auditSvc    ports.AuditService
	log         zerolog.Logger
}

// NewAccountAdminService creates the panel's account management service.
func NewAccountAdminService(
	accounts ports.AccountDirectory,
	hashSvc ports.HashService,
	sessionSvc ports.SessionService,
	ledger ports.LedgerService,
	registrar ports.Registrar,
	revocations ports.RevocationStore,
	auditSvc ports.AuditService,
	log zerolog.Logger,
) ports.AccountAdminService {
	return &adminService{
		accounts:    accounts,
		hashSvc:     hashSvc,
		sessionSvc:  sessionSvc,
		ledger:      ledger,
		registrar:   registrar,
		revocations: revocations,
		auditSvc:    auditSvc,
		log:         log,
	}
}

// Create registers a new account. An empty password means the panel generates
// one; the plaintext is returned exactly once and never stored.
func (s *adminService) Create(ctx context.Context, req ports.CreateAccountRequest) (*ports.CreateAccountResult, error) {
	if !emailPattern.MatchString(req.Email) {
		return nil, apperror.ErrInvalidEmail()
	}

	existing, err := s.accounts.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("checking email: %w", err))
	}
	if existing != nil {
		return nil, apperror.ErrDuplicateEmail()
	}

	password := req.Password
	generated := ""
	if password == "" {
		generated, err = generatePassword(8)
		if err != nil {
			return nil, apperror.InternalError(fmt.Errorf("generating password: %w", err))
		}
		password = generated
	}

	account, err := s.registrar.Register(ctx, ports.RegisterRequest{
		Role:           domain.AccountRoleUser,
		Email:          req.Email,
		Password:       password,
		RefBy:          req.RefBy,
		InitialBalance: req.Balance,
	})
	if err != nil {
		return nil, err
	}

	s.auditSvc.Log(ctx, &domain.AdminActionLog{
		ID:        uuid.New(),
		Action:    domain.AdminActionCreateUser,
		TargetID:  account.ID,
		Details:   account.Email,
		CreatedAt: time.Now().UTC(),
	})

	s.log.Info().Int64("account_id", account.ID).Msg("account created")
	return &ports.CreateAccountResult{Account: account, GeneratedPassword: generated}, nil
}

// Update applies the given field changes to the account. Balance goes through
// the ledger; a password change revokes every outstanding session. Fields not
// named in the update are left untouched.
func (s *adminService) Update(ctx context.Context, id int64, fields domain.FieldUpdate) error {
	account, err := s.accounts.FindByID(ctx, id)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("loading account: %w", err))
	}
	if account == nil {
		return apperror.ErrUnknownAccount(id)
	}

	if fields.Email != nil && *fields.Email != account.Email {
		if !emailPattern.MatchString(*fields.Email) {
			return apperror.ErrInvalidEmail()
		}
		existing, err := s.accounts.FindByEmail(ctx, *fields.Email)
		if err != nil {
			return apperror.InternalError(fmt.Errorf("checking email: %w", err))
		}
		if existing != nil && existing.ID != id {
			return apperror.ErrDuplicateEmail()
		}
		account.Email = *fields.Email
	}

	passwordChanged := false
	if fields.Password != nil && *fields.Password != "" {
		hash, err := s.hashSvc.Hash(*fields.Password)
		if err != nil {
			return apperror.InternalError(fmt.Errorf("hashing password: %w", err))
		}
		account.PasswordHash = hash
		passwordChanged = true
	}

	if fields.Balance != nil && !fields.Balance.Equal(account.Balance) {
		if _, _, err := s.ledger.ApplyBalanceChange(ctx, id, *fields.Balance); err != nil {
			return err
		}
		account.Balance = *fields.Balance
	}

	if fields.DisplayName != nil {
		account.DisplayName = *fields.DisplayName
	}
	if fields.IsAdmin != nil {
		account.IsAdmin = *fields.IsAdmin
	}
	if fields.IsBanned != nil {
		account.IsBanned = *fields.IsBanned
	}
	if fields.BannedReason != nil {
		account.BannedReason = *fields.BannedReason
	}
	if fields.Remark != nil {
		account.Remark = *fields.Remark
	}
	if fields.RefBy != nil {
		account.RefBy = *fields.RefBy
	}
	if fields.BandwidthGB != nil {
		account.BandwidthCap = domain.GBToBytes(*fields.BandwidthGB)
	}
	if fields.UUID != nil {
		account.UUID = *fields.UUID
	}

	account.UpdatedAt = time.Now().UTC()
	if err := s.accounts.Save(ctx, account); err != nil {
		return apperror.ErrPersistence(fmt.Errorf("saving account: %w", err))
	}

	if passwordChanged {
		// The session tags are keyed by the old hash and are already dead;
		// the revocation mark covers clients holding unexpired credentials.
		if err := s.InvalidateSessionsFor(ctx, id); err != nil {
			s.log.Warn().Err(err).Int64("account_id", id).Msg("failed to set revocation mark")
		}
	}

	s.auditSvc.Log(ctx, &domain.AdminActionLog{
		ID:        uuid.New(),
		Action:    domain.AdminActionUpdateUser,
		TargetID:  id,
		CreatedAt: time.Now().UTC(),
	})
	return nil
}

// Delete logically removes the account and revokes its sessions. The record
// and its ledger history are kept.
func (s *adminService) Delete(ctx context.Context, id int64) error {
	account, err := s.accounts.FindByID(ctx, id)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("loading account: %w", err))
	}
	if account == nil {
		return apperror.ErrUnknownAccount(id)
	}

	if err := s.accounts.Deactivate(ctx, id, time.Now().UTC()); err != nil {
		return apperror.ErrPersistence(fmt.Errorf("deactivating account: %w", err))
	}

	if err := s.InvalidateSessionsFor(ctx, id); err != nil {
		s.log.Warn().Err(err).Int64("account_id", id).Msg("failed to set revocation mark")
	}

	s.auditSvc.Log(ctx, &domain.AdminActionLog{
		ID:        uuid.New(),
		Action:    domain.AdminActionDeleteUser,
		TargetID:  id,
		CreatedAt: time.Now().UTC(),
	})

	s.log.Info().Int64("account_id", id).Msg("account deactivated")
	return nil
}

// List returns every account in its display projection.
func (s *adminService) List(ctx context.Context) ([]domain.AccountView, error) {
	accounts, err := s.accounts.List(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("listing accounts: %w", err))
	}

	views := make([]domain.AccountView, 0, len(accounts))
	for i := range accounts {
		views = append(views, domain.ProjectAccount(&accounts[i]))
	}
	return views, nil
}

// Impersonate switches the calling admin's session to the target account,
// embedding the admin's own credential as the return path.
func (s *adminService) Impersonate(ctx context.Context, callerToken *domain.SessionToken, targetID int64, origin string) (*domain.SessionToken, string, error) {
	if callerToken == nil {
		return nil, "", apperror.ErrInvalidSession()
	}

	caller, err := s.accounts.FindByID(ctx, callerToken.SubjectID)
	if err != nil {
		return nil, "", apperror.InternalError(fmt.Errorf("loading caller: %w", err))
	}
	if caller == nil {
		return nil, "", apperror.ErrInvalidSession()
	}
	if err := s.sessionSvc.Verify(callerToken, caller.PasswordHash, origin, time.Now().UTC()); err != nil {
		return nil, "", err
	}
	if !caller.IsAdmin {
		return nil, "", apperror.ErrAdminRequired()
	}

	target, err := s.accounts.FindByID(ctx, targetID)
	if err != nil {
		return nil, "", apperror.InternalError(fmt.Errorf("loading target: %w", err))
	}
	if target == nil {
		return nil, "", apperror.ErrUnknownAccount(targetID)
	}

	token, err := s.sessionSvc.Impersonate(callerToken, target, origin, time.Now().UTC())
	if err != nil {
		return nil, "", err
	}
	credential, err := s.sessionSvc.Encode(token)
	if err != nil {
		return nil, "", apperror.InternalError(fmt.Errorf("encoding credential: %w", err))
	}

	s.auditSvc.Log(ctx, &domain.AdminActionLog{
		ID:        uuid.New(),
		ActorID:   caller.ID,
		Action:    domain.AdminActionImpersonate,
		TargetID:  targetID,
		IPAddress: origin,
		CreatedAt: time.Now().UTC(),
	})

	s.log.Info().Int64("admin_id", caller.ID).Int64("target_id", targetID).Msg("impersonation started")
	return token, credential, nil
}

// InvalidateSessionsFor revokes every outstanding credential of an account.
func (s *adminService) InvalidateSessionsFor(ctx context.Context, id int64) error {
	if err := s.revocations.RevokeAll(ctx, id, s.sessionSvc.Lifetime()); err != nil {
		return apperror.InternalError(fmt.Errorf("revoking sessions: %w", err))
	}
	return nil
}

// generatePassword returns a random hex password of 2*n characters.
func generatePassword(n int) (string, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
