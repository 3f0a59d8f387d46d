package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"proxy-admin-panel/internal/core/domain"
	"proxy-admin-panel/internal/core/ports/mocks"
	"proxy-admin-panel/pkg/apperror"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type ledgerTestDeps struct {
	svc        *LedgerEngine
	accounts   *mocks.MockAccountDirectory
	entries    *mocks.MockLedgerRepository
	transactor *mocks.MockDBTransactor
	ctrl       *gomock.Controller
}

func setupLedgerEngine(t *testing.T) *ledgerTestDeps {
	ctrl := gomock.NewController(t)
	d := &ledgerTestDeps{
		accounts:   mocks.NewMockAccountDirectory(ctrl),
		entries:    mocks.NewMockLedgerRepository(ctrl),
		transactor: mocks.NewMockDBTransactor(ctrl),
		ctrl:       ctrl,
	}
	d.svc = NewLedgerEngine(d.accounts, d.entries, d.transactor, zerolog.Nop())
	return d
}

// mockTx implements pgx.Tx for testing
type mockTx struct {
	pgx.Tx
	commitErr error
}

func (m *mockTx) Rollback(_ context.Context) error { return nil }
func (m *mockTx) Commit(_ context.Context) error   { return m.commitErr }

// ==================== PlanChange Tests ====================

func TestLedgerEngine_PlanChange_Credit(t *testing.T) {
	d := setupLedgerEngine(t)
	defer d.ctrl.Finish()

	now := time.Now().UTC()
	entry := d.svc.PlanChange(1, decimal.NewFromInt(100), decimal.NewFromInt(150), now)
	require.NotNil(t, entry)
	assert.Equal(t, int64(1), entry.AccountID)
	assert.True(t, entry.Diff.Equal(decimal.NewFromInt(50)))
	assert.Equal(t, RemarkBalanceAdded, entry.Remark)
	assert.True(t, entry.Consistent())
	assert.Equal(t, now, entry.CreatedAt)
}

func TestLedgerEngine_PlanChange_Debit(t *testing.T) {
	d := setupLedgerEngine(t)
	defer d.ctrl.Finish()

	entry := d.svc.PlanChange(1, decimal.NewFromInt(100), decimal.NewFromInt(60), time.Now().UTC())
	require.NotNil(t, entry)
	assert.True(t, entry.Diff.Equal(decimal.NewFromInt(-40)))
	assert.Equal(t, RemarkBalanceDeducted, entry.Remark)
	assert.True(t, entry.Consistent())
}

func TestLedgerEngine_PlanChange_NoOp(t *testing.T) {
	d := setupLedgerEngine(t)
	defer d.ctrl.Finish()

	// Equal values never produce an entry, whatever the scale.
	assert.Nil(t, d.svc.PlanChange(1, decimal.NewFromInt(100), decimal.NewFromInt(100), time.Now().UTC()))
	assert.Nil(t, d.svc.PlanChange(1, decimal.NewFromInt(100), decimal.RequireFromString("100.00"), time.Now().UTC()))
}

// ==================== ApplyBalanceChange Tests ====================

func TestLedgerEngine_ApplyBalanceChange_Success(t *testing.T) {
	d := setupLedgerEngine(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tx := &mockTx{}
	account := &domain.Account{ID: 1, Balance: decimal.NewFromInt(100)}

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.accounts.EXPECT().FindByIDForUpdate(ctx, tx, int64(1)).Return(account, nil)
	d.entries.EXPECT().Append(ctx, tx, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ pgx.Tx, e *domain.LedgerEntry) error {
			assert.True(t, e.Before.Equal(decimal.NewFromInt(100)))
			assert.True(t, e.After.Equal(decimal.NewFromInt(150)))
			assert.True(t, e.Consistent())
			e.Seq = 7
			return nil
		})
	d.accounts.EXPECT().UpdateBalance(ctx, tx, int64(1), decimal.NewFromInt(150)).Return(nil)

	entry, balance, err := d.svc.ApplyBalanceChange(ctx, 1, decimal.NewFromInt(150))
	require.NoError(t, err)
	require.NotNil(t, entry)
	assert.Equal(t, int64(7), entry.Seq)
	assert.True(t, balance.Equal(decimal.NewFromInt(150)))
}

func TestLedgerEngine_ApplyBalanceChange_UnknownAccount(t *testing.T) {
	d := setupLedgerEngine(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tx := &mockTx{}

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.accounts.EXPECT().FindByIDForUpdate(ctx, tx, int64(99)).Return(nil, nil)

	entry, _, err := d.svc.ApplyBalanceChange(ctx, 99, decimal.NewFromInt(10))
	assert.Nil(t, entry)
	assertAppError(t, err, "VAL_003")
}

func TestLedgerEngine_ApplyBalanceChange_NoOp(t *testing.T) {
	d := setupLedgerEngine(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tx := &mockTx{}
	account := &domain.Account{ID: 1, Balance: decimal.NewFromInt(100)}

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.accounts.EXPECT().FindByIDForUpdate(ctx, tx, int64(1)).Return(account, nil)
	// No Append, no UpdateBalance, no Commit.

	entry, balance, err := d.svc.ApplyBalanceChange(ctx, 1, decimal.NewFromInt(100))
	require.NoError(t, err)
	assert.Nil(t, entry)
	assert.True(t, balance.Equal(decimal.NewFromInt(100)))
}

func TestLedgerEngine_ApplyBalanceChange_AppendFails(t *testing.T) {
	d := setupLedgerEngine(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tx := &mockTx{}
	account := &domain.Account{ID: 1, Balance: decimal.NewFromInt(100)}

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.accounts.EXPECT().FindByIDForUpdate(ctx, tx, int64(1)).Return(account, nil)
	d.entries.EXPECT().Append(ctx, tx, gomock.Any()).Return(errors.New("disk full"))
	// A failed append aborts the change before the balance row is touched.

	entry, _, err := d.svc.ApplyBalanceChange(ctx, 1, decimal.NewFromInt(150))
	assert.Nil(t, entry)
	assertAppError(t, err, "LGR_001")
}

func TestLedgerEngine_ApplyBalanceChange_CommitFails(t *testing.T) {
	d := setupLedgerEngine(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tx := &mockTx{commitErr: errors.New("connection lost")}
	account := &domain.Account{ID: 1, Balance: decimal.NewFromInt(100)}

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.accounts.EXPECT().FindByIDForUpdate(ctx, tx, int64(1)).Return(account, nil)
	d.entries.EXPECT().Append(ctx, tx, gomock.Any()).Return(nil)
	d.accounts.EXPECT().UpdateBalance(ctx, tx, int64(1), decimal.NewFromInt(150)).Return(nil)

	entry, _, err := d.svc.ApplyBalanceChange(ctx, 1, decimal.NewFromInt(150))
	assert.Nil(t, entry)
	assertAppError(t, err, "LGR_001")
}

func TestLedgerEngine_History(t *testing.T) {
	d := setupLedgerEngine(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	entries := []domain.LedgerEntry{{AccountID: 1, Seq: 1}, {AccountID: 1, Seq: 2}}

	d.entries.EXPECT().ListByAccount(ctx, int64(1)).Return(entries, nil)

	got, err := d.svc.History(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, entries, got)
}

// ==================== Helper ====================

func assertAppError(t *testing.T, err error, expectedCode string) {
	t.Helper()
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, expectedCode, appErr.Code)
}
