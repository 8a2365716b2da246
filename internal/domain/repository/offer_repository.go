package repository

import (
	"context"

	"github.com/JpabloRR1/API-BUSQUEDA-EMPLEO/internal/domain/entity"
)

type OfferRepository interface {
	// Create fails with ErrOwnerNotOrganization unless OrganizationID
	// references an existing organization user.
	Create(ctx context.Context, o *entity.Offer) error
	GetByID(ctx context.Context, id string) (*entity.Offer, error)
	ListActive(ctx context.Context) ([]entity.OfferListing, error)
	ListByOrganization(ctx context.Context, organizationID string) ([]entity.Offer, error)
	// SetActive returns ErrNotFound when no offer with id belongs to organizationID.
	SetActive(ctx context.Context, id, organizationID string, active bool) error
}
