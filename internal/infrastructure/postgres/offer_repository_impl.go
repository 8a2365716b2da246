package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/JpabloRR1/API-BUSQUEDA-EMPLEO/internal/domain/entity"
	"github.com/JpabloRR1/API-BUSQUEDA-EMPLEO/internal/domain/repository"
)

type OfferRepository struct {
	db DBTX
}

func NewOfferRepository(db DBTX) *OfferRepository {
	return &OfferRepository{db: db}
}

const offerColumns = `o.id, o.organization_id, o.title, o.description, o.category, o.required_skills, o.location, o.active, o.created_at`

func offerTargets(o *entity.Offer) []any {
	return []any{&o.ID, &o.OrganizationID, &o.Title, &o.Description, &o.Category, &o.RequiredSkills, &o.Location, &o.Active, &o.CreatedAt}
}

// Create inserts the offer only when its owner is an organization; the
// check and the insert run as one statement.
func (r *OfferRepository) Create(ctx context.Context, o *entity.Offer) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO offers (organization_id, title, description, category, required_skills, location, active)
		SELECT u.id, $2, $3, $4, $5, $6, $7
		FROM users u
		WHERE u.id = $1 AND u.role = 'organization'
		RETURNING id, created_at
	`, o.OrganizationID, o.Title, o.Description, string(o.Category), o.RequiredSkills, o.Location, o.Active).
		Scan(&o.ID, &o.CreatedAt)
	if err != nil {
		if errors.Is(lookupErr(err), repository.ErrNotFound) {
			return repository.ErrOwnerNotOrganization
		}
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *OfferRepository) GetByID(ctx context.Context, id string) (*entity.Offer, error) {
	var o entity.Offer
	err := r.db.QueryRow(ctx, `
		SELECT `+offerColumns+`
		FROM offers o
		WHERE o.id = $1
	`, id).Scan(offerTargets(&o)...)
	if err != nil {
		if errors.Is(lookupErr(err), repository.ErrNotFound) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return &o, nil
}

func (r *OfferRepository) ListActive(ctx context.Context) ([]entity.OfferListing, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+offerColumns+`, u.name
		FROM offers o
		JOIN users u ON u.id = o.organization_id
		WHERE o.active
		ORDER BY o.created_at DESC, o.id
	`)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	out := make([]entity.OfferListing, 0)
	for rows.Next() {
		var l entity.OfferListing
		if err := rows.Scan(append(offerTargets(&l.Offer), &l.OrganizationName)...); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		out = append(out, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return out, nil
}

func (r *OfferRepository) ListByOrganization(ctx context.Context, organizationID string) ([]entity.Offer, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+offerColumns+`
		FROM offers o
		WHERE o.organization_id = $1
		ORDER BY o.created_at DESC, o.id
	`, organizationID)
	if err != nil {
		if errors.Is(lookupErr(err), repository.ErrNotFound) {
			return []entity.Offer{}, nil
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return collectOffers(rows)
}

func collectOffers(rows pgx.Rows) ([]entity.Offer, error) {
	defer rows.Close()
	out := make([]entity.Offer, 0)
	for rows.Next() {
		var o entity.Offer
		if err := rows.Scan(offerTargets(&o)...); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		out = append(out, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return out, nil
}

func (r *OfferRepository) SetActive(ctx context.Context, id, organizationID string, active bool) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE offers
		SET active = $3
		WHERE id = $1 AND organization_id = $2
	`, id, organizationID, active)
	if err != nil {
		if errors.Is(lookupErr(err), repository.ErrNotFound) {
			return repository.ErrNotFound
		}
		return fmt.Errorf("db error: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

var _ repository.OfferRepository = (*OfferRepository)(nil)
