package postgres

import (
	"context"
	"testing"
	"time"

	"proxy-admin-panel/internal/core/domain"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAccount() *domain.Account {
	now := time.Now().UTC().Truncate(time.Microsecond)
	return &domain.Account{
		ID:            1,
		Email:         "user@example.com",
		DisplayName:   "user",
		UUID:          uuid.New(),
		PasswordHash:  "$argon2id$hash",
		Balance:       decimal.NewFromInt(100),
		RefBy:         0,
		BandwidthCap:  10 << 30,
		BandwidthUsed: 1 << 30,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func accountRepoColumns() []string {
	return []string{
		"id", "email", "display_name", "uuid", "password_hash", "balance",
		"is_admin", "is_banned", "banned_reason", "remark", "ref_by",
		"bandwidth_cap", "bandwidth_used", "created_at", "updated_at", "deactivated_at",
	}
}

func accountRow(a *domain.Account) *pgxmock.Rows {
	return pgxmock.NewRows(accountRepoColumns()).AddRow(
		a.ID, a.Email, a.DisplayName, a.UUID, a.PasswordHash, a.Balance,
		a.IsAdmin, a.IsBanned, a.BannedReason, a.Remark, a.RefBy,
		a.BandwidthCap, a.BandwidthUsed, a.CreatedAt, a.UpdatedAt, a.DeactivatedAt,
	)
}

func TestAccountRepo_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewAccountRepo(mock)
	a := newTestAccount()
	a.ID = 0

	mock.ExpectQuery("INSERT INTO accounts").
		WithArgs(a.Email, a.DisplayName, a.UUID, a.PasswordHash, a.Balance,
			a.IsAdmin, a.IsBanned, a.BannedReason, a.Remark, a.RefBy,
			a.BandwidthCap, a.BandwidthUsed, a.CreatedAt, a.UpdatedAt).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(42)))

	err = repo.Create(context.Background(), a)
	require.NoError(t, err)
	assert.Equal(t, int64(42), a.ID, "generated id is assigned")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountRepo_FindByID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewAccountRepo(mock)
	a := newTestAccount()

	mock.ExpectQuery("SELECT .+ FROM accounts WHERE id").
		WithArgs(a.ID).
		WillReturnRows(accountRow(a))

	result, err := repo.FindByID(context.Background(), a.ID)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, a.Email, result.Email)
	assert.True(t, result.Balance.Equal(a.Balance))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountRepo_FindByID_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewAccountRepo(mock)

	mock.ExpectQuery("SELECT .+ FROM accounts WHERE id").
		WithArgs(int64(99)).
		WillReturnRows(pgxmock.NewRows(accountRepoColumns()))

	result, err := repo.FindByID(context.Background(), 99)
	require.NoError(t, err)
	assert.Nil(t, result, "missing row maps to (nil, nil)")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountRepo_FindByEmail(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewAccountRepo(mock)
	a := newTestAccount()

	mock.ExpectQuery("SELECT .+ FROM accounts WHERE email").
		WithArgs(a.Email).
		WillReturnRows(accountRow(a))

	result, err := repo.FindByEmail(context.Background(), a.Email)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, a.ID, result.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountRepo_Save(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewAccountRepo(mock)
	a := newTestAccount()

	mock.ExpectExec("UPDATE accounts SET email").
		WithArgs(a.Email, a.DisplayName, a.UUID, a.PasswordHash,
			a.IsAdmin, a.IsBanned, a.BannedReason, a.Remark, a.RefBy,
			a.BandwidthCap, a.BandwidthUsed, a.UpdatedAt, a.ID).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	assert.NoError(t, repo.Save(context.Background(), a))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountRepo_Save_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewAccountRepo(mock)
	a := newTestAccount()

	mock.ExpectExec("UPDATE accounts SET email").
		WithArgs(a.Email, a.DisplayName, a.UUID, a.PasswordHash,
			a.IsAdmin, a.IsBanned, a.BannedReason, a.Remark, a.RefBy,
			a.BandwidthCap, a.BandwidthUsed, a.UpdatedAt, a.ID).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err = repo.Save(context.Background(), a)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "account not found")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountRepo_List(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewAccountRepo(mock)
	a := newTestAccount()
	b := newTestAccount()
	b.ID = 2
	b.Email = "second@example.com"

	rows := pgxmock.NewRows(accountRepoColumns()).
		AddRow(a.ID, a.Email, a.DisplayName, a.UUID, a.PasswordHash, a.Balance,
			a.IsAdmin, a.IsBanned, a.BannedReason, a.Remark, a.RefBy,
			a.BandwidthCap, a.BandwidthUsed, a.CreatedAt, a.UpdatedAt, a.DeactivatedAt).
		AddRow(b.ID, b.Email, b.DisplayName, b.UUID, b.PasswordHash, b.Balance,
			b.IsAdmin, b.IsBanned, b.BannedReason, b.Remark, b.RefBy,
			b.BandwidthCap, b.BandwidthUsed, b.CreatedAt, b.UpdatedAt, b.DeactivatedAt)

	mock.ExpectQuery("SELECT .+ FROM accounts ORDER BY id").
		WillReturnRows(rows)

	accounts, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, accounts, 2)
	assert.Equal(t, "second@example.com", accounts[1].Email)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountRepo_Deactivate(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewAccountRepo(mock)
	at := time.Now().UTC()

	mock.ExpectExec("UPDATE accounts SET deactivated_at").
		WithArgs(at, int64(1)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	assert.NoError(t, repo.Deactivate(context.Background(), 1, at))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountRepo_FindByIDForUpdate(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewAccountRepo(mock)
	a := newTestAccount()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT .+ FROM accounts WHERE id .+ FOR UPDATE").
		WithArgs(a.ID).
		WillReturnRows(accountRow(a))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	result, err := repo.FindByIDForUpdate(context.Background(), tx, a.ID)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, a.ID, result.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountRepo_UpdateBalance(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewAccountRepo(mock)
	balance := decimal.NewFromInt(150)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE accounts SET balance").
		WithArgs(balance, int64(1)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	assert.NoError(t, repo.UpdateBalance(context.Background(), tx, 1, balance))
	assert.NoError(t, mock.ExpectationsWereMet())
}
