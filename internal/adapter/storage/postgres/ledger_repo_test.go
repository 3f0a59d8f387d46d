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

func newTestEntry() *domain.LedgerEntry {
	return &domain.LedgerEntry{
		ID:        uuid.New(),
		AccountID: 1,
		Before:    decimal.NewFromInt(100),
		After:     decimal.NewFromInt(150),
		Diff:      decimal.NewFromInt(50),
		Remark:    "balance added by admin",
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}
}

func TestLedgerRepo_Append(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewLedgerRepo(mock)
	e := newTestEntry()

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO balance_ledger").
		WithArgs(e.ID, e.AccountID, e.Before, e.After, e.Diff, e.Remark, e.CreatedAt).
		WillReturnRows(pgxmock.NewRows([]string{"seq"}).AddRow(int64(7)))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	err = repo.Append(context.Background(), tx, e)
	require.NoError(t, err)
	assert.Equal(t, int64(7), e.Seq, "storage assigns the sequence number")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLedgerRepo_ListByAccount(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewLedgerRepo(mock)
	first := newTestEntry()
	first.Seq = 1
	second := newTestEntry()
	second.Seq = 2
	second.Before = decimal.NewFromInt(150)
	second.After = decimal.NewFromInt(110)
	second.Diff = decimal.NewFromInt(-40)
	second.Remark = "balance deducted by admin"

	rows := pgxmock.NewRows([]string{"id", "account_id", "before_balance", "after_balance", "diff", "remark", "seq", "created_at"}).
		AddRow(first.ID, first.AccountID, first.Before, first.After, first.Diff, first.Remark, first.Seq, first.CreatedAt).
		AddRow(second.ID, second.AccountID, second.Before, second.After, second.Diff, second.Remark, second.Seq, second.CreatedAt)

	mock.ExpectQuery("SELECT .+ FROM balance_ledger WHERE account_id .+ ORDER BY seq").
		WithArgs(int64(1)).
		WillReturnRows(rows)

	entries, err := repo.ListByAccount(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, int64(1), entries[0].Seq)
	assert.Equal(t, int64(2), entries[1].Seq)
	assert.True(t, entries[1].Diff.Equal(decimal.NewFromInt(-40)))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAuditRepo_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewAuditRepo(mock)
	entry := &domain.AdminActionLog{
		ID:        uuid.New(),
		ActorID:   1,
		Action:    domain.AdminActionUpdateUser,
		TargetID:  7,
		IPAddress: "10.0.0.1",
		CreatedAt: time.Now().UTC(),
	}

	mock.ExpectExec("INSERT INTO admin_action_logs").
		WithArgs(entry.ID, entry.ActorID, entry.Action, entry.TargetID,
			entry.Details, entry.IPAddress, entry.CreatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	assert.NoError(t, repo.Create(context.Background(), entry))
	assert.NoError(t, mock.ExpectationsWereMet())
}
