package repository

import (
	"context"
	"time"

	"github.com/JpabloRR1/API-BUSQUEDA-EMPLEO/internal/domain/entity"
)

type SessionRepository interface {
	Create(ctx context.Context, s *entity.Session) error
	// FindUser returns the owner of the session with tokenHash when it
	// expires strictly after now, ErrNotFound otherwise.
	FindUser(ctx context.Context, tokenHash string, now time.Time) (*entity.User, error)
	// Delete is a no-op for unknown hashes.
	Delete(ctx context.Context, tokenHash string) error
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}
