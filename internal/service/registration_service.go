package service

import (
	"context"
	"fmt"
	"time"

	"proxy-admin-panel/internal/core/domain"
	"proxy-admin-panel/internal/core/ports"
	"proxy-admin-panel/pkg/apperror"

	"github.com/google/uuid"
)

// Default bandwidth cap for freshly registered accounts: 10 GiB.
const defaultBandwidthCap = int64(10) << 30

type registrar struct {
	accounts ports.AccountDirectory
	hashSvc  ports.HashService
}

// NewRegistrar creates the registration collaborator the panel hands new
// accounts to.
func NewRegistrar(accounts ports.AccountDirectory, hashSvc ports.HashService) ports.Registrar {
	return &registrar{accounts: accounts, hashSvc: hashSvc}
}

// Register builds and persists a new account record. The caller is expected
// to have validated the email and checked it for uniqueness.
func (s *registrar) Register(ctx context.Context, req ports.RegisterRequest) (*domain.Account, error) {
	passwordHash, err := s.hashSvc.Hash(req.Password)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("hashing password: %w", err))
	}

	now := time.Now().UTC()
	account := &domain.Account{
		Email:        req.Email,
		UUID:         uuid.New(),
		PasswordHash: passwordHash,
		Balance:      req.InitialBalance,
		IsAdmin:      req.Role == domain.AccountRoleAdmin,
		RefBy:        req.RefBy,
		BandwidthCap: defaultBandwidthCap,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.accounts.Create(ctx, account); err != nil {
		return nil, apperror.ErrPersistence(fmt.Errorf("creating account: %w", err))
	}
	return account, nil
}
