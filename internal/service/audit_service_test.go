package service

import (
	"context"
	"testing"
	"time"

	"proxy-admin-panel/internal/core/domain"
	"proxy-admin-panel/internal/core/ports/mocks"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"go.uber.org/mock/gomock"
)

func TestAuditService_Log_PersistsToRepo(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAuditRepository(ctrl)
	svc := NewAuditService(mockRepo, zerolog.Nop())

	done := make(chan struct{})
	mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, entry *domain.AdminActionLog) error {
			if entry.Action != domain.AdminActionImpersonate {
				t.Errorf("expected IMPERSONATE, got %s", entry.Action)
			}
			close(done)
			return nil
		},
	)

	svc.Log(context.Background(), &domain.AdminActionLog{
		ID:        uuid.New(),
		ActorID:   1,
		Action:    domain.AdminActionImpersonate,
		TargetID:  7,
		IPAddress: "127.0.0.1",
		CreatedAt: time.Now(),
	})

	select {
	case <-done:
		// OK
	case <-time.After(2 * time.Second):
		t.Fatal("admin action log not persisted in time")
	}
}

func TestAuditService_Log_NilRepo(t *testing.T) {
	svc := NewAuditService(nil, zerolog.Nop())

	// Should not panic
	svc.Log(context.Background(), &domain.AdminActionLog{
		ID:        uuid.New(),
		ActorID:   1,
		Action:    domain.AdminActionLogin,
		IPAddress: "127.0.0.1",
		CreatedAt: time.Now(),
	})

	time.Sleep(50 * time.Millisecond) // let goroutine run
}
