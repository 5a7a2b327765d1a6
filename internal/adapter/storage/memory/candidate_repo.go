package memory

import (
	"context"
	"sort"

	"donation-ledger/internal/core/domain"

	"github.com/google/uuid"
)

// CandidateRepo implements ports.CandidateRepository.
type CandidateRepo struct {
	s *Store
}

func (r *CandidateRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Candidate, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	c, ok := r.s.candidates[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

// ListActive returns active candidates, newest first.
func (r *CandidateRepo) ListActive(_ context.Context) ([]domain.Candidate, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]domain.Candidate, 0, len(r.s.candidates))
	for _, c := range r.s.candidates {
		if c.IsActive {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}
