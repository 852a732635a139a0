package patient

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/auroraskincare/clinic/internal/model"
	"github.com/auroraskincare/clinic/internal/repository"
	"github.com/auroraskincare/clinic/internal/service/audit"
	apperrors "github.com/auroraskincare/clinic/pkg/errors"
	"github.com/auroraskincare/clinic/pkg/logger"
	"github.com/auroraskincare/clinic/pkg/metrics"
)

type Service struct {
	repo     repository.PatientRepository
	validate *validator.Validate
	auditor  *audit.Service
	metrics  *metrics.Metrics
	logger   *logger.Logger
}

func NewService(repo repository.PatientRepository, auditor *audit.Service, m *metrics.Metrics, log *logger.Logger) *Service {
	return &Service{
		repo:     repo,
		validate: validator.New(),
		auditor:  auditor,
		metrics:  m,
		logger:   log,
	}
}

// Register validates the request (non-empty fields only), enforces NIC
// uniqueness and appends the patient to the registry.
func (s *Service) Register(ctx context.Context, req *model.RegisterPatientRequest) (*model.Patient, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, apperrors.Validation("all fields are required", err)
	}

	patient := &model.Patient{
		Name:          req.Name,
		Email:         req.Email,
		ContactNumber: req.ContactNumber,
		NIC:           req.NIC,
	}

	if err := s.repo.Create(ctx, patient); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, apperrors.Conflict(fmt.Sprintf("patient with NIC %s already registered", req.NIC), err)
		}
		return nil, fmt.Errorf("failed to register patient: %w", err)
	}

	s.auditor.Log(ctx, "register", "patient", patient.NIC, &audit.LogOptions{
		Changes: patient,
	})
	s.metrics.PatientsRegistered.Inc()
	s.logger.Info("patient registered", "nic", patient.NIC)

	return patient, nil
}

// FindByNIC is an exact, case-sensitive lookup.
func (s *Service) FindByNIC(ctx context.Context, nic string) (*model.Patient, error) {
	patient, err := s.repo.GetByNIC(ctx, nic)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NotFound("patient", err)
		}
		return nil, fmt.Errorf("failed to look up patient: %w", err)
	}
	return patient, nil
}

// Search matches name or NIC case-insensitively and returns the first
// match in registration order.
func (s *Service) Search(ctx context.Context, query string) (*model.Patient, error) {
	patient, err := s.repo.Search(ctx, query)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NotFound("patient", err)
		}
		return nil, fmt.Errorf("failed to search patients: %w", err)
	}
	s.logger.Debug("patient search", "query", query)
	return patient, nil
}

func (s *Service) List(ctx context.Context) ([]*model.Patient, error) {
	patients, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list patients: %w", err)
	}
	return patients, nil
}
