package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// AuditEvent records one mutating operation against the stores.
type AuditEvent struct {
	ID         uuid.UUID       `json:"id"`
	Action     string          `json:"action"`
	EntityType string          `json:"entity_type"`
	EntityKey  string          `json:"entity_key"`
	Changes    json.RawMessage `json:"changes,omitempty"`
	Metadata   json.RawMessage `json:"metadata,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
}
