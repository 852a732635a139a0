package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/auroraskincare/clinic/internal/model"
	"github.com/auroraskincare/clinic/internal/repository"
)

// PatientStore keeps patients in registration order. All lookups are
// linear scans; the store is small and lives for the process lifetime.
type PatientStore struct {
	mu       sync.Mutex
	patients []*model.Patient
}

func NewPatientStore() *PatientStore {
	return &PatientStore{}
}

// Create appends the patient. NICs identify one physical identity card,
// so uniqueness is enforced case-insensitively.
func (s *PatientStore) Create(ctx context.Context, patient *model.Patient) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range s.patients {
		if strings.EqualFold(p.NIC, patient.NIC) {
			return repository.ErrDuplicate
		}
	}
	s.patients = append(s.patients, patient)
	return nil
}

// GetByNIC matches exactly and case-sensitively, first match wins.
func (s *PatientStore) GetByNIC(ctx context.Context, nic string) (*model.Patient, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range s.patients {
		if p.NIC == nic {
			return p, nil
		}
	}
	return nil, repository.ErrNotFound
}

// Search matches name or NIC case-insensitively, first match in
// registration order.
func (s *PatientStore) Search(ctx context.Context, query string) (*model.Patient, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range s.patients {
		if strings.EqualFold(p.Name, query) || strings.EqualFold(p.NIC, query) {
			return p, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s *PatientStore) List(ctx context.Context) ([]*model.Patient, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*model.Patient, len(s.patients))
	copy(out, s.patients)
	return out, nil
}
