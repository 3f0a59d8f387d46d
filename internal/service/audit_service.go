package service

import (
	"context"

	"proxy-admin-panel/internal/core/domain"
	"proxy-admin-panel/internal/core/ports"

	"github.com/rs/zerolog"
)

type auditService struct {
	repo ports.AuditRepository
	log  zerolog.Logger
}

// NewAuditService creates a new audit service.
// If repo is nil, audit entries are only written to the logger.
func NewAuditService(repo ports.AuditRepository, log zerolog.Logger) ports.AuditService {
	return &auditService{repo: repo, log: log}
}

// Log records an admin action asynchronously (fire-and-forget).
func (s *auditService) Log(ctx context.Context, entry *domain.AdminActionLog) {
	go func() {
		s.log.Info().
			Str("action", string(entry.Action)).
			Int64("actor_id", entry.ActorID).
			Int64("target_id", entry.TargetID).
			Str("ip", entry.IPAddress).
			Msg("admin action")

		if s.repo != nil {
			if err := s.repo.Create(context.Background(), entry); err != nil {
				s.log.Warn().Err(err).Str("action", string(entry.Action)).Msg("failed to persist admin action log")
			}
		}
	}()
}
