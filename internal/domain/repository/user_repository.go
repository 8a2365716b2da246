package repository

import (
	"context"

	"github.com/JpabloRR1/API-BUSQUEDA-EMPLEO/internal/domain/entity"
)

// UserRepository defines the interface for user-related database operations.
type UserRepository interface {
	// Create stores u with the given password hash and fills ID and CreatedAt.
	// It returns ErrEmailTaken when the storage unique index rejects the email.
	Create(ctx context.Context, u *entity.User, passwordHash string) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetCredentialByEmail(ctx context.Context, email string) (*entity.UserCredential, error)
	List(ctx context.Context) ([]entity.User, error)
}
