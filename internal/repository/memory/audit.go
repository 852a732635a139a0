package memory

import (
	"context"
	"sync"

	"github.com/auroraskincare/clinic/internal/model"
)

// AuditStore keeps audit events in append order.
type AuditStore struct {
	mu     sync.Mutex
	events []*model.AuditEvent
}

func NewAuditStore() *AuditStore {
	return &AuditStore{}
}

func (s *AuditStore) Create(ctx context.Context, event *model.AuditEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.events = append(s.events, event)
	return nil
}

func (s *AuditStore) List(ctx context.Context) ([]*model.AuditEvent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*model.AuditEvent, len(s.events))
	copy(out, s.events)
	return out, nil
}
