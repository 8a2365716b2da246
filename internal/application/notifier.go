package application

import (
	"context"

	"github.com/JpabloRR1/API-BUSQUEDA-EMPLEO/internal/domain/entity"
)

// Notifier is told about events users should hear about. Implementations
// must not block the request for long and their errors are only logged.
type Notifier interface {
	UserRegistered(ctx context.Context, u *entity.User) error
	MatchDecided(ctx context.Context, candidate *entity.User, offer entity.OfferListing, m *entity.Match) error
}

type NopNotifier struct{}

func (NopNotifier) UserRegistered(context.Context, *entity.User) error { return nil }
func (NopNotifier) MatchDecided(context.Context, *entity.User, entity.OfferListing, *entity.Match) error {
	return nil
}
