package domain

import (
	"time"

	"github.com/google/uuid"
)

// AdminAction is the kind of audited panel operation.
type AdminAction string

const (
	AdminActionCreateUser  AdminAction = "CREATE_USER"
	AdminActionUpdateUser  AdminAction = "UPDATE_USER"
	AdminActionDeleteUser  AdminAction = "DELETE_USER"
	AdminActionImpersonate AdminAction = "IMPERSONATE"
	AdminActionLogin       AdminAction = "LOGIN"
)

// AdminActionLog records one audited admin operation. Distinct from the
// balance ledger: this is operational telemetry, not a money record.
type AdminActionLog struct {
	ID        uuid.UUID   `json:"id"`
	ActorID   int64       `json:"actor_id"`
	Action    AdminAction `json:"action"`
	TargetID  int64       `json:"target_id,omitempty"`
	Details   string      `json:"details,omitempty"`
	IPAddress string      `json:"ip_address"`
	CreatedAt time.Time   `json:"created_at"`
}
