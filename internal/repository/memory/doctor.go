package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/auroraskincare/clinic/internal/model"
	"github.com/auroraskincare/clinic/internal/repository"
)

// DoctorStore keeps doctors in seed order.
type DoctorStore struct {
	mu      sync.Mutex
	doctors []*model.Doctor
}

func NewDoctorStore() *DoctorStore {
	return &DoctorStore{}
}

func (s *DoctorStore) Create(ctx context.Context, doctor *model.Doctor) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, d := range s.doctors {
		if strings.EqualFold(d.EmployeeID, doctor.EmployeeID) {
			return repository.ErrDuplicate
		}
	}
	s.doctors = append(s.doctors, doctor)
	return nil
}

// Search matches name or employee ID case-insensitively, first match in
// seed order.
func (s *DoctorStore) Search(ctx context.Context, query string) (*model.Doctor, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, d := range s.doctors {
		if strings.EqualFold(d.Name, query) || strings.EqualFold(d.EmployeeID, query) {
			return d, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s *DoctorStore) List(ctx context.Context) ([]*model.Doctor, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*model.Doctor, len(s.doctors))
	copy(out, s.doctors)
	return out, nil
}
