package repository

import (
	"context"
	"errors"

	"github.com/auroraskincare/clinic/internal/model"
)

// Sentinel errors returned by store implementations. Services translate
// these into the user-facing error taxonomy.
var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("duplicate natural key")
)

// All repository interfaces in one file
type (
	// PatientRepository stores patients in registration order.
	PatientRepository interface {
		Create(ctx context.Context, patient *model.Patient) error
		GetByNIC(ctx context.Context, nic string) (*model.Patient, error)
		Search(ctx context.Context, query string) (*model.Patient, error)
		List(ctx context.Context) ([]*model.Patient, error)
	}

	// DoctorRepository stores doctors; the seed list is loaded through
	// Create at startup.
	DoctorRepository interface {
		Create(ctx context.Context, doctor *model.Doctor) error
		Search(ctx context.Context, query string) (*model.Doctor, error)
		List(ctx context.Context) ([]*model.Doctor, error)
	}

	// AppointmentRepository owns the appointment ID counter: Create
	// assigns the next sequential ID.
	AppointmentRepository interface {
		Create(ctx context.Context, appointment *model.Appointment) error
		Get(ctx context.Context, id int) (*model.Appointment, error)
		FindByPatientName(ctx context.Context, name string) ([]*model.Appointment, error)
		ListByDate(ctx context.Context, date string) ([]*model.Appointment, error)
		List(ctx context.Context) ([]*model.Appointment, error)
	}

	// TreatmentRepository is the fixed catalog; it is immutable after
	// seeding.
	TreatmentRepository interface {
		Get(ctx context.Context, id int) (model.Treatment, error)
		List(ctx context.Context) ([]model.Treatment, error)
	}

	AuditRepository interface {
		Create(ctx context.Context, event *model.AuditEvent) error
		List(ctx context.Context) ([]*model.AuditEvent, error)
	}
)
