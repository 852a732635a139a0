package doctor

import (
	"context"
	"errors"
	"fmt"

	"github.com/auroraskincare/clinic/internal/model"
	"github.com/auroraskincare/clinic/internal/repository"
	"github.com/auroraskincare/clinic/internal/service/audit"
	apperrors "github.com/auroraskincare/clinic/pkg/errors"
	"github.com/auroraskincare/clinic/pkg/logger"
)

type Service struct {
	repo    repository.DoctorRepository
	auditor *audit.Service
	logger  *logger.Logger
}

func NewService(repo repository.DoctorRepository, auditor *audit.Service, log *logger.Logger) *Service {
	return &Service{
		repo:    repo,
		auditor: auditor,
		logger:  log,
	}
}

// Register adds a doctor. The menu has no path here; the seed loader
// uses it at startup, and employee IDs stay unique either way.
func (s *Service) Register(ctx context.Context, doctor *model.Doctor) error {
	if doctor.Name == "" || doctor.EmployeeID == "" {
		return apperrors.Validation("doctor name and employee ID are required", nil)
	}

	if err := s.repo.Create(ctx, doctor); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return apperrors.Conflict(fmt.Sprintf("doctor with employee ID %s already registered", doctor.EmployeeID), err)
		}
		return fmt.Errorf("failed to register doctor: %w", err)
	}

	s.auditor.Log(ctx, "register", "doctor", doctor.EmployeeID, &audit.LogOptions{
		Changes: doctor,
	})
	s.logger.Info("doctor registered", "employee_id", doctor.EmployeeID)

	return nil
}

// Search matches name or employee ID case-insensitively and returns the
// first match in seed order.
func (s *Service) Search(ctx context.Context, query string) (*model.Doctor, error) {
	doctor, err := s.repo.Search(ctx, query)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NotFound("doctor", err)
		}
		return nil, fmt.Errorf("failed to search doctors: %w", err)
	}
	s.logger.Debug("doctor search", "query", query)
	return doctor, nil
}

func (s *Service) List(ctx context.Context) ([]*model.Doctor, error) {
	doctors, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list doctors: %w", err)
	}
	return doctors, nil
}
