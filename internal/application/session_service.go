package application

import (
	"context"
	"errors"
	"expvar"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/JpabloRR1/API-BUSQUEDA-EMPLEO/internal/domain/entity"
	repo "github.com/JpabloRR1/API-BUSQUEDA-EMPLEO/internal/domain/repository"
	"github.com/JpabloRR1/API-BUSQUEDA-EMPLEO/pkg/helpers"
)

var (
	loginSuccess = expvar.NewInt("auth_login_success")
	loginFailure = expvar.NewInt("auth_login_failure")
	logouts      = expvar.NewInt("auth_logout")
)

const DefaultSessionTTL = 24 * time.Hour

type LoginResult struct {
	Token     string
	IssuedAt  time.Time
	ExpiresAt time.Time
	User      *entity.User
}

// SessionService issues, resolves and revokes opaque session tokens. One
// instance is built at startup and shared by every request.
type SessionService struct {
	Credentials *CredentialService
	Sessions    repo.SessionRepository
	Clock       helpers.Clock
	TTL         time.Duration
	Logger      *logrus.Logger
}

func NewSessionService(creds *CredentialService, sessions repo.SessionRepository, clock helpers.Clock, ttl time.Duration, logger *logrus.Logger) *SessionService {
	if clock == nil {
		clock = helpers.SystemClock{}
	}
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &SessionService{Credentials: creds, Sessions: sessions, Clock: clock, TTL: ttl, Logger: logger}
}

func (s *SessionService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	u, err := s.Credentials.VerifyCredentials(ctx, email, password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			loginFailure.Add(1)
		}
		return nil, err
	}

	token, err := helpers.NewSessionToken()
	if err != nil {
		return nil, fmt.Errorf("generate token: %w", err)
	}
	now := s.Clock.Now()
	sess := &entity.Session{
		TokenHash: helpers.HashToken(token),
		UserID:    u.ID,
		ExpiresAt: now.Add(s.TTL),
		CreatedAt: now,
	}
	if err := s.Sessions.Create(ctx, sess); err != nil {
		return nil, fmt.Errorf("store session: %w", err)
	}

	loginSuccess.Add(1)
	helpers.LogInfo(s.Logger, "user logged in", logrus.Fields{"user_id": u.ID, "role": u.Role().String()})
	return &LoginResult{Token: token, IssuedAt: now, ExpiresAt: sess.ExpiresAt, User: u}, nil
}

// Resolve returns the session owner. Unknown, revoked and expired tokens all
// yield ErrNoActiveSession.
func (s *SessionService) Resolve(ctx context.Context, token string) (*entity.User, error) {
	if token == "" {
		return nil, ErrNoActiveSession
	}
	u, err := s.Sessions.FindUser(ctx, helpers.HashToken(token), s.Clock.Now())
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrNoActiveSession
		}
		return nil, fmt.Errorf("resolve session: %w", err)
	}
	return u, nil
}

// Logout is idempotent.
func (s *SessionService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	if err := s.Sessions.Delete(ctx, helpers.HashToken(token)); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	logouts.Add(1)
	return nil
}

func (s *SessionService) PurgeExpired(ctx context.Context) (int64, error) {
	n, err := s.Sessions.DeleteExpired(ctx, s.Clock.Now())
	if err != nil {
		return 0, fmt.Errorf("purge sessions: %w", err)
	}
	if n > 0 {
		helpers.LogInfo(s.Logger, "expired sessions purged", logrus.Fields{"count": n})
	}
	return n, nil
}
