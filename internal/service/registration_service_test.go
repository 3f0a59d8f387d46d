package service

import (
	"context"
	"errors"
	"testing"

	"proxy-admin-panel/internal/core/domain"
	"proxy-admin-panel/internal/core/ports"
	"proxy-admin-panel/internal/core/ports/mocks"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestRegistrar_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	accounts := mocks.NewMockAccountDirectory(ctrl)
	hashSvc := mocks.NewMockHashService(ctrl)
	svc := NewRegistrar(accounts, hashSvc)

	ctx := context.Background()
	hashSvc.EXPECT().Hash("secret").Return("argon-hash", nil)
	accounts.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, a *domain.Account) error {
			assert.Equal(t, "new@example.com", a.Email)
			assert.Equal(t, "argon-hash", a.PasswordHash)
			assert.True(t, a.Balance.Equal(decimal.NewFromInt(20)))
			assert.False(t, a.IsAdmin)
			assert.Equal(t, int64(3), a.RefBy)
			assert.NotEqual(t, uuid.Nil, a.UUID)
			assert.Equal(t, defaultBandwidthCap, a.BandwidthCap)
			a.ID = 10
			return nil
		})

	account, err := svc.Register(ctx, ports.RegisterRequest{
		Role:           domain.AccountRoleUser,
		Email:          "new@example.com",
		Password:       "secret",
		RefBy:          3,
		InitialBalance: decimal.NewFromInt(20),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(10), account.ID)
}

func TestRegistrar_Register_AdminRole(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	accounts := mocks.NewMockAccountDirectory(ctrl)
	hashSvc := mocks.NewMockHashService(ctrl)
	svc := NewRegistrar(accounts, hashSvc)

	ctx := context.Background()
	hashSvc.EXPECT().Hash("secret").Return("argon-hash", nil)
	accounts.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, a *domain.Account) error {
			assert.True(t, a.IsAdmin)
			return nil
		})

	_, err := svc.Register(ctx, ports.RegisterRequest{
		Role:     domain.AccountRoleAdmin,
		Email:    "root@example.com",
		Password: "secret",
	})
	require.NoError(t, err)
}

func TestRegistrar_Register_PersistenceFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	accounts := mocks.NewMockAccountDirectory(ctrl)
	hashSvc := mocks.NewMockHashService(ctrl)
	svc := NewRegistrar(accounts, hashSvc)

	ctx := context.Background()
	hashSvc.EXPECT().Hash("secret").Return("argon-hash", nil)
	accounts.EXPECT().Create(ctx, gomock.Any()).Return(errors.New("unique violation"))

	_, err := svc.Register(ctx, ports.RegisterRequest{Email: "new@example.com", Password: "secret"})
	assertAppError(t, err, "SYS_001")
}
