package memory

import (
	"context"

	"github.com/auroraskincare/clinic/internal/model"
	"github.com/auroraskincare/clinic/internal/repository"
)

// TreatmentStore is the fixed catalog. It is seeded once and never
// mutated, so no lock is needed.
type TreatmentStore struct {
	treatments []model.Treatment
}

func NewTreatmentStore(treatments []model.Treatment) *TreatmentStore {
	out := make([]model.Treatment, len(treatments))
	copy(out, treatments)
	return &TreatmentStore{treatments: out}
}

func (s *TreatmentStore) Get(ctx context.Context, id int) (model.Treatment, error) {
	for _, t := range s.treatments {
		if t.ID == id {
			return t, nil
		}
	}
	return model.Treatment{}, repository.ErrNotFound
}

func (s *TreatmentStore) List(ctx context.Context) ([]model.Treatment, error) {
	out := make([]model.Treatment, len(s.treatments))
	copy(out, s.treatments)
	return out, nil
}
