package application

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/JpabloRR1/API-BUSQUEDA-EMPLEO/internal/domain/entity"
	repo "github.com/JpabloRR1/API-BUSQUEDA-EMPLEO/internal/domain/repository"
	"github.com/JpabloRR1/API-BUSQUEDA-EMPLEO/pkg/helpers"
)

// OfferCache holds the active-offer listing between writes.
type OfferCache interface {
	GetActive(ctx context.Context) ([]entity.OfferListing, bool, error)
	SetActive(ctx context.Context, offers []entity.OfferListing) error
	Invalidate(ctx context.Context) error
}

// OfferSearcher is a full-text index over offer listings.
type OfferSearcher interface {
	Index(ctx context.Context, l entity.OfferListing) error
	Search(ctx context.Context, q string, size int) ([]entity.OfferListing, error)
}

type OfferInput struct {
	Title          string
	Description    string
	Category       entity.OfferCategory
	RequiredSkills string
	Location       string
}

// DirectoryService is the query layer over users and offers plus the small
// set of offer writes organizations perform. Cache and Search are optional.
type DirectoryService struct {
	Users  repo.UserRepository
	Offers repo.OfferRepository
	Cache  OfferCache
	Search OfferSearcher
	Logger *logrus.Logger
}

func NewDirectoryService(users repo.UserRepository, offers repo.OfferRepository, cache OfferCache, search OfferSearcher, logger *logrus.Logger) *DirectoryService {
	return &DirectoryService{Users: users, Offers: offers, Cache: cache, Search: search, Logger: logger}
}

func (s *DirectoryService) ListActiveOffers(ctx context.Context) ([]entity.OfferListing, error) {
	if s.Cache != nil {
		cached, ok, err := s.Cache.GetActive(ctx)
		if err != nil {
			helpers.LogWarn(s.Logger, "offer cache read failed", err, nil)
		} else if ok {
			return cached, nil
		}
	}
	offers, err := s.Offers.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("list active offers: %w", err)
	}
	if s.Cache != nil {
		if err := s.Cache.SetActive(ctx, offers); err != nil {
			helpers.LogWarn(s.Logger, "offer cache write failed", err, nil)
		}
	}
	return offers, nil
}

// ListOffersByOrganization includes inactive offers.
func (s *DirectoryService) ListOffersByOrganization(ctx context.Context, organizationID string) ([]entity.Offer, error) {
	offers, err := s.Offers.ListByOrganization(ctx, organizationID)
	if err != nil {
		return nil, fmt.Errorf("list organization offers: %w", err)
	}
	return offers, nil
}

func (s *DirectoryService) ListUsers(ctx context.Context) ([]entity.User, error) {
	users, err := s.Users.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

func (s *DirectoryService) GetUser(ctx context.Context, id string) (*entity.User, error) {
	u, err := s.Users.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}

// GetOrganization returns ErrOrganizationNotFound unless id is an organization.
func (s *DirectoryService) GetOrganization(ctx context.Context, id string) (*entity.User, error) {
	u, err := s.Users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrOrganizationNotFound
		}
		return nil, fmt.Errorf("get organization: %w", err)
	}
	if !u.IsOrganization() {
		return nil, ErrOrganizationNotFound
	}
	return u, nil
}

func (s *DirectoryService) GetOffer(ctx context.Context, id string) (*entity.Offer, error) {
	o, err := s.Offers.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrOfferNotFound
		}
		return nil, fmt.Errorf("get offer: %w", err)
	}
	return o, nil
}

func (s *DirectoryService) CreateOffer(ctx context.Context, organizationID string, in OfferInput) (*entity.Offer, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" || !in.Category.Valid() {
		return nil, ErrInvalidOffer
	}
	o := &entity.Offer{
		OrganizationID: organizationID,
		Title:          title,
		Description:    strings.TrimSpace(in.Description),
		Category:       in.Category,
		RequiredSkills: strings.TrimSpace(in.RequiredSkills),
		Location:       strings.TrimSpace(in.Location),
		Active:         true,
	}
	if err := s.Offers.Create(ctx, o); err != nil {
		if errors.Is(err, repo.ErrOwnerNotOrganization) {
			return nil, ErrOrganizationNotFound
		}
		return nil, fmt.Errorf("create offer: %w", err)
	}

	s.offerChanged(ctx, o)
	helpers.LogInfo(s.Logger, "offer created", logrus.Fields{"offer_id": o.ID, "organization_id": organizationID})
	return o, nil
}

// SetOfferActive toggles an offer owned by organizationID.
func (s *DirectoryService) SetOfferActive(ctx context.Context, organizationID, offerID string, active bool) (*entity.Offer, error) {
	if err := s.Offers.SetActive(ctx, offerID, organizationID, active); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrOfferNotFound
		}
		return nil, fmt.Errorf("set offer active: %w", err)
	}
	o, err := s.GetOffer(ctx, offerID)
	if err != nil {
		return nil, err
	}
	s.offerChanged(ctx, o)
	return o, nil
}

// SearchOffers returns an empty result when no search backend is configured.
func (s *DirectoryService) SearchOffers(ctx context.Context, q string, size int) ([]entity.OfferListing, error) {
	q = strings.TrimSpace(q)
	if s.Search == nil || q == "" {
		return []entity.OfferListing{}, nil
	}
	out, err := s.Search.Search(ctx, q, size)
	if err != nil {
		return nil, fmt.Errorf("search offers: %w", err)
	}
	return out, nil
}

// offerChanged drops the cached listing and reindexes o. Failures are logged.
func (s *DirectoryService) offerChanged(ctx context.Context, o *entity.Offer) {
	if s.Cache != nil {
		if err := s.Cache.Invalidate(ctx); err != nil {
			helpers.LogWarn(s.Logger, "offer cache invalidate failed", err, logrus.Fields{"offer_id": o.ID})
		}
	}
	if s.Search == nil {
		return
	}
	l := entity.OfferListing{Offer: *o}
	if owner, err := s.Users.GetByID(ctx, o.OrganizationID); err == nil {
		l.OrganizationName = owner.Name
	}
	if err := s.Search.Index(ctx, l); err != nil {
		helpers.LogWarn(s.Logger, "offer index failed", err, logrus.Fields{"offer_id": o.ID})
	}
}
