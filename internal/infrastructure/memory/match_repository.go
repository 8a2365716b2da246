package memory

import (
	"context"
	"sort"

	"github.com/JpabloRR1/API-BUSQUEDA-EMPLEO/internal/domain/entity"
	"github.com/JpabloRR1/API-BUSQUEDA-EMPLEO/internal/domain/repository"
)

type MatchRepository struct {
	s *Store
}

func NewMatchRepository(s *Store) *MatchRepository {
	return &MatchRepository{s: s}
}

func (r *MatchRepository) Upsert(_ context.Context, m *entity.Match) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	now := r.s.Now()
	for _, existing := range r.s.matches {
		if existing.CandidateID == m.CandidateID && existing.OfferID == m.OfferID {
			existing.Score = m.Score
			existing.UpdatedAt = now
			*m = *existing
			return nil
		}
	}
	if _, ok := r.s.offers[m.OfferID]; !ok {
		return repository.ErrNotFound
	}
	m.ID = r.s.nextID()
	m.Status = entity.MatchPending
	m.CreatedAt = now
	m.UpdatedAt = now
	stored := *m
	r.s.matches[m.ID] = &stored
	return nil
}

func (r *MatchRepository) GetByID(_ context.Context, id string) (*entity.Match, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	m, ok := r.s.matches[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *m
	return &cp, nil
}

func (r *MatchRepository) ListByCandidate(_ context.Context, candidateID string) ([]entity.Match, error) {
	out := r.filter(func(m *entity.Match) bool { return m.CandidateID == candidateID })
	sort.Slice(out, func(i, j int) bool { return r.s.ord[out[i].ID] > r.s.ord[out[j].ID] })
	return out, nil
}

func (r *MatchRepository) ListByOffer(_ context.Context, offerID string) ([]entity.Match, error) {
	out := r.filter(func(m *entity.Match) bool { return m.OfferID == offerID })
	sort.Slice(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		return r.s.ord[out[i].ID] < r.s.ord[out[j].ID]
	})
	return out, nil
}

func (r *MatchRepository) filter(keep func(*entity.Match) bool) []entity.Match {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]entity.Match, 0)
	for _, m := range r.s.matches {
		if keep(m) {
			out = append(out, *m)
		}
	}
	return out
}

func (r *MatchRepository) UpdateStatus(_ context.Context, id string, status entity.MatchStatus) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	m, ok := r.s.matches[id]
	if !ok {
		return repository.ErrNotFound
	}
	m.Status = status
	m.UpdatedAt = r.s.Now()
	return nil
}

var _ repository.MatchRepository = (*MatchRepository)(nil)
