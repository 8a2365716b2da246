package repository

import (
	"context"

	"github.com/JpabloRR1/API-BUSQUEDA-EMPLEO/internal/domain/entity"
)

type MatchRepository interface {
	// Upsert inserts a pending match or refreshes the score of the existing
	// (candidate, offer) pair, leaving its status alone.
	Upsert(ctx context.Context, m *entity.Match) error
	GetByID(ctx context.Context, id string) (*entity.Match, error)
	ListByCandidate(ctx context.Context, candidateID string) ([]entity.Match, error)
	ListByOffer(ctx context.Context, offerID string) ([]entity.Match, error)
	UpdateStatus(ctx context.Context, id string, status entity.MatchStatus) error
}
