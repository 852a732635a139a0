package audit

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/auroraskincare/clinic/internal/model"
	"github.com/auroraskincare/clinic/internal/repository"
)

type Service struct {
	repo repository.AuditRepository
}

func NewService(repo repository.AuditRepository) *Service {
	return &Service{repo: repo}
}

type LogOptions struct {
	Changes  interface{}
	Metadata interface{}
}

// Log creates an audit event for one mutating operation.
func (s *Service) Log(ctx context.Context, action, entityType, entityKey string, opts *LogOptions) error {
	var changes, metadata json.RawMessage
	var err error

	if opts != nil {
		if opts.Changes != nil {
			changes, err = json.Marshal(opts.Changes)
			if err != nil {
				return err
			}
		}
		if opts.Metadata != nil {
			metadata, err = json.Marshal(opts.Metadata)
			if err != nil {
				return err
			}
		}
	}

	event := &model.AuditEvent{
		ID:         uuid.New(),
		Action:     action,
		EntityType: entityType,
		EntityKey:  entityKey,
		Changes:    changes,
		Metadata:   metadata,
		CreatedAt:  time.Now(),
	}

	return s.repo.Create(ctx, event)
}

func (s *Service) List(ctx context.Context) ([]*model.AuditEvent, error) {
	return s.repo.List(ctx)
}
