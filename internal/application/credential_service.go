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

// RegisterInput carries a new account. Program, Term and Skills are only
// kept for candidates.
type RegisterInput struct {
	Email    string
	Password string
	Name     string
	Role     entity.Role
	Program  string
	Term     int
	Skills   string
}

// CredentialService persists users and checks passwords. It is the only
// code that handles plaintext passwords.
type CredentialService struct {
	Users      repo.UserRepository
	BcryptCost int
	Notifier   Notifier
	Logger     *logrus.Logger

	// compared against on unknown emails so every miss costs one bcrypt run
	dummyHash string
}

func NewCredentialService(users repo.UserRepository, bcryptCost int, notifier Notifier, logger *logrus.Logger) *CredentialService {
	if notifier == nil {
		notifier = NopNotifier{}
	}
	return &CredentialService{
		Users:      users,
		BcryptCost: bcryptCost,
		Notifier:   notifier,
		Logger:     logger,
		dummyHash:  dummyDigest(bcryptCost),
	}
}

func (s *CredentialService) Register(ctx context.Context, in RegisterInput) (*entity.User, error) {
	if strings.TrimSpace(in.Email) == "" || in.Password == "" || in.Term < 0 {
		return nil, ErrInvalidProfile
	}
	profile, ok := entity.NewProfile(in.Role, strings.TrimSpace(in.Program), in.Term, strings.TrimSpace(in.Skills))
	if !ok {
		return nil, ErrInvalidProfile
	}
	hash, err := helpers.HashPasswordWithCost(in.Password, s.BcryptCost)
	if err != nil {
		if errors.Is(err, helpers.ErrPasswordTooLong) {
			return nil, ErrInvalidProfile
		}
		return nil, fmt.Errorf("hash password: %w", err)
	}

	u := &entity.User{
		Identity: entity.Identity{Email: in.Email, Name: strings.TrimSpace(in.Name)},
		Profile:  profile,
	}
	if err := s.Users.Create(ctx, u, hash); err != nil {
		if errors.Is(err, repo.ErrEmailTaken) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	if nErr := s.Notifier.UserRegistered(ctx, u); nErr != nil {
		helpers.LogWarn(s.Logger, "welcome notification failed", nErr, logrus.Fields{"user_id": u.ID})
	}
	return u, nil
}

// VerifyCredentials returns the user only when the password matches. Unknown
// emails and wrong passwords both yield ErrInvalidCredentials after one
// bcrypt comparison.
func (s *CredentialService) VerifyCredentials(ctx context.Context, email, password string) (*entity.User, error) {
	cred, err := s.Users.GetCredentialByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			helpers.CompareHashAndPassword(s.dummyHash, password)
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("lookup credential: %w", err)
	}
	if !helpers.CompareHashAndPassword(cred.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}
	u := cred.User
	return &u, nil
}

func (s *CredentialService) ListUsers(ctx context.Context) ([]entity.User, error) {
	users, err := s.Users.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// dummyDigest hashes a random secret at the configured cost.
func dummyDigest(cost int) string {
	secret, err := helpers.NewToken(16)
	if err != nil {
		secret = "unused-dummy-password"
	}
	hash, _ := helpers.HashPasswordWithCost(secret, cost)
	return hash
}
