package appointment

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/auroraskincare/clinic/internal/model"
	"github.com/auroraskincare/clinic/internal/repository"
	"github.com/auroraskincare/clinic/internal/service/audit"
	apperrors "github.com/auroraskincare/clinic/pkg/errors"
	"github.com/auroraskincare/clinic/pkg/logger"
	"github.com/auroraskincare/clinic/pkg/metrics"
)

type Service struct {
	repo    repository.AppointmentRepository
	auditor *audit.Service
	metrics *metrics.Metrics
	logger  *logger.Logger
}

func NewService(repo repository.AppointmentRepository, auditor *audit.Service, m *metrics.Metrics, log *logger.Logger) *Service {
	return &Service{
		repo:    repo,
		auditor: auditor,
		metrics: m,
		logger:  log,
	}
}

// Book creates a BOOKED appointment with the next sequential ID. The
// caller passes already-resolved references; there is deliberately no
// conflict check, so the same doctor and slot can be double-booked.
func (s *Service) Book(ctx context.Context, date, timeSlot string, patient *model.Patient, doctor *model.Doctor, treatment model.Treatment) (*model.Appointment, error) {
	if patient == nil {
		return nil, apperrors.Validation("patient is required", nil)
	}
	if doctor == nil {
		return nil, apperrors.Validation("doctor is required", nil)
	}
	if treatment.ID == 0 {
		return nil, apperrors.Validation("treatment is required", nil)
	}

	apt := &model.Appointment{
		Date:            date,
		Time:            timeSlot,
		Status:          model.AppointmentStatusBooked,
		Patient:         patient,
		Doctor:          doctor,
		Treatment:       treatment,
		RegistrationFee: model.RegistrationFee,
	}

	if err := s.repo.Create(ctx, apt); err != nil {
		return nil, fmt.Errorf("failed to book appointment: %w", err)
	}

	s.auditor.Log(ctx, "book", "appointment", strconv.Itoa(apt.ID), &audit.LogOptions{
		Changes: apt,
	})
	s.metrics.AppointmentsBooked.Inc()
	s.logger.Info("appointment booked", "id", apt.ID, "date", apt.Date, "time", apt.Time)

	return apt, nil
}

// Update changes exactly the date and time fields. Status is not
// consulted: a canceled appointment can still be rescheduled on paper,
// matching the historical behaviour.
func (s *Service) Update(ctx context.Context, id int, newDate, newTime string) (*model.Appointment, error) {
	apt, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}

	apt.Date = newDate
	apt.Time = newTime

	s.auditor.Log(ctx, "update", "appointment", strconv.Itoa(id), &audit.LogOptions{
		Changes: map[string]string{"date": newDate, "time": newTime},
	})
	s.logger.Info("appointment updated", "id", id, "date", newDate, "time", newTime)

	return apt, nil
}

// Cancel sets CANCELED unconditionally; calling it twice leaves the
// appointment CANCELED.
func (s *Service) Cancel(ctx context.Context, id int) error {
	apt, err := s.get(ctx, id)
	if err != nil {
		return err
	}

	apt.Status = model.AppointmentStatusCanceled

	s.auditor.Log(ctx, "cancel", "appointment", strconv.Itoa(id), &audit.LogOptions{
		Changes: map[string]model.AppointmentStatus{"status": apt.Status},
	})
	s.metrics.AppointmentsCancelled.Inc()
	s.logger.Info("appointment canceled", "id", id)

	return nil
}

// Complete moves a BOOKED appointment to COMPLETED. Both CANCELED and
// COMPLETED are terminal for this transition.
func (s *Service) Complete(ctx context.Context, id int) error {
	apt, err := s.get(ctx, id)
	if err != nil {
		return err
	}

	if apt.Status != model.AppointmentStatusBooked {
		return apperrors.Conflict(fmt.Sprintf("appointment %d is %s", id, apt.Status), nil)
	}
	apt.Status = model.AppointmentStatusCompleted

	s.auditor.Log(ctx, "complete", "appointment", strconv.Itoa(id), &audit.LogOptions{
		Changes: map[string]model.AppointmentStatus{"status": apt.Status},
	})
	s.metrics.AppointmentsCompleted.Inc()
	s.logger.Info("appointment completed", "id", id)

	return nil
}

// FindByID returns the appointment with the exact ID. IDs are issued
// from 1, so anything non-positive is not found by construction.
func (s *Service) FindByID(ctx context.Context, id int) (*model.Appointment, error) {
	return s.get(ctx, id)
}

// FindByPatientName returns every appointment whose patient name
// matches case-insensitively, in booking order. Unlike FindByID this
// yields all matches: one patient can hold several appointments.
func (s *Service) FindByPatientName(ctx context.Context, name string) ([]*model.Appointment, error) {
	appointments, err := s.repo.FindByPatientName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to search appointments: %w", err)
	}
	return appointments, nil
}

// ListByDate returns every appointment whose date token matches
// exactly (case-sensitive), in booking order.
func (s *Service) ListByDate(ctx context.Context, date string) ([]*model.Appointment, error) {
	appointments, err := s.repo.ListByDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}
	return appointments, nil
}

func (s *Service) get(ctx context.Context, id int) (*model.Appointment, error) {
	if id <= 0 {
		return nil, apperrors.NotFound("appointment", nil)
	}
	apt, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NotFound("appointment", err)
		}
		return nil, fmt.Errorf("failed to get appointment: %w", err)
	}
	return apt, nil
}
