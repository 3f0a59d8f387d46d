package postgres

import (
	"context"
	"fmt"

	"proxy-admin-panel/internal/core/domain"
)

// AuditRepo implements ports.AuditRepository.
type AuditRepo struct {
	pool Pool
}

// NewAuditRepo creates a new AuditRepo.
func NewAuditRepo(pool Pool) *AuditRepo {
	return &AuditRepo{pool: pool}
}

// Create inserts an admin action log entry.
func (r *AuditRepo) Create(ctx context.Context, entry *domain.AdminActionLog) error {
	query := `INSERT INTO admin_action_logs (id, actor_id, action, target_id, details, ip_address, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.pool.Exec(ctx, query,
		entry.ID, entry.ActorID, entry.Action, entry.TargetID,
		entry.Details, entry.IPAddress, entry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert admin action log: %w", err)
	}
	return nil
}
