package memory

import (
	"context"
	"sort"

	"github.com/JpabloRR1/API-BUSQUEDA-EMPLEO/internal/domain/entity"
	"github.com/JpabloRR1/API-BUSQUEDA-EMPLEO/internal/domain/repository"
)

type OfferRepository struct {
	s *Store
}

func NewOfferRepository(s *Store) *OfferRepository {
	return &OfferRepository{s: s}
}

func (r *OfferRepository) Create(_ context.Context, o *entity.Offer) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	owner, ok := r.s.users[o.OrganizationID]
	if !ok || !owner.IsOrganization() {
		return repository.ErrOwnerNotOrganization
	}
	o.ID = r.s.nextID()
	o.CreatedAt = r.s.Now()
	stored := *o
	r.s.offers[o.ID] = &stored
	return nil
}

func (r *OfferRepository) GetByID(_ context.Context, id string) (*entity.Offer, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	o, ok := r.s.offers[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *o
	return &cp, nil
}

// newestFirst mirrors ORDER BY created_at DESC with insertion order as tiebreak.
func (r *OfferRepository) newestFirst(a, b string) bool {
	return r.s.ord[a] > r.s.ord[b]
}

func (r *OfferRepository) ListActive(_ context.Context) ([]entity.OfferListing, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]entity.OfferListing, 0)
	for _, o := range r.s.offers {
		if !o.Active {
			continue
		}
		l := entity.OfferListing{Offer: *o}
		if owner, ok := r.s.users[o.OrganizationID]; ok {
			l.OrganizationName = owner.Name
		}
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool { return r.newestFirst(out[i].ID, out[j].ID) })
	return out, nil
}

func (r *OfferRepository) ListByOrganization(_ context.Context, organizationID string) ([]entity.Offer, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]entity.Offer, 0)
	for _, o := range r.s.offers {
		if o.OrganizationID == organizationID {
			out = append(out, *o)
		}
	}
	sort.Slice(out, func(i, j int) bool { return r.newestFirst(out[i].ID, out[j].ID) })
	return out, nil
}

func (r *OfferRepository) SetActive(_ context.Context, id, organizationID string, active bool) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	o, ok := r.s.offers[id]
	if !ok || o.OrganizationID != organizationID {
		return repository.ErrNotFound
	}
	o.Active = active
	return nil
}

var _ repository.OfferRepository = (*OfferRepository)(nil)
