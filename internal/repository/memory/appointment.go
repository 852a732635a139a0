package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/auroraskincare/clinic/internal/model"
	"github.com/auroraskincare/clinic/internal/repository"
)

// AppointmentStore owns the ID counter. IDs start at 1, are assigned
// under the lock and never reused, so they stay strictly increasing
// with no gaps for the process lifetime.
type AppointmentStore struct {
	mu           sync.Mutex
	nextID       int
	appointments []*model.Appointment
}

func NewAppointmentStore() *AppointmentStore {
	return &AppointmentStore{nextID: 1}
}

func (s *AppointmentStore) Create(ctx context.Context, appointment *model.Appointment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	appointment.ID = s.nextID
	s.nextID++
	s.appointments = append(s.appointments, appointment)
	return nil
}

func (s *AppointmentStore) Get(ctx context.Context, id int) (*model.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, a := range s.appointments {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, repository.ErrNotFound
}

// FindByPatientName matches the patient's name case-insensitively and
// returns every match in booking order.
func (s *AppointmentStore) FindByPatientName(ctx context.Context, name string) ([]*model.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []*model.Appointment
	for _, a := range s.appointments {
		if strings.EqualFold(a.Patient.Name, name) {
			out = append(out, a)
		}
	}
	return out, nil
}

// ListByDate matches the date token exactly (case-sensitive) and
// returns every match in booking order.
func (s *AppointmentStore) ListByDate(ctx context.Context, date string) ([]*model.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []*model.Appointment
	for _, a := range s.appointments {
		if a.Date == date {
			out = append(out, a)
		}
	}
	return out, nil
}

func (s *AppointmentStore) List(ctx context.Context) ([]*model.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*model.Appointment, len(s.appointments))
	copy(out, s.appointments)
	return out, nil
}
