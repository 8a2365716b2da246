package memory

import (
	"context"
	"errors"
	"time"

	"github.com/JpabloRR1/API-BUSQUEDA-EMPLEO/internal/domain/entity"
	"github.com/JpabloRR1/API-BUSQUEDA-EMPLEO/internal/domain/repository"
)

var errDuplicateToken = errors.New("session token hash already stored")

type SessionRepository struct {
	s *Store
}

func NewSessionRepository(s *Store) *SessionRepository {
	return &SessionRepository{s: s}
}

func (r *SessionRepository) Create(_ context.Context, sess *entity.Session) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.sessions[sess.TokenHash]; ok {
		return errDuplicateToken
	}
	if _, ok := r.s.users[sess.UserID]; !ok {
		return repository.ErrNotFound
	}
	r.s.sessions[sess.TokenHash] = *sess
	return nil
}

func (r *SessionRepository) FindUser(_ context.Context, tokenHash string, now time.Time) (*entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	sess, ok := r.s.sessions[tokenHash]
	if !ok || !sess.ActiveAt(now) {
		return nil, repository.ErrNotFound
	}
	c, ok := r.s.users[sess.UserID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	u := c.User
	return &u, nil
}

func (r *SessionRepository) Delete(_ context.Context, tokenHash string) error {
	r.s.mu.Lock()
	delete(r.s.sessions, tokenHash)
	r.s.mu.Unlock()
	return nil
}

func (r *SessionRepository) DeleteExpired(_ context.Context, now time.Time) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var n int64
	for h, sess := range r.s.sessions {
		if !sess.ActiveAt(now) {
			delete(r.s.sessions, h)
			n++
		}
	}
	return n, nil
}

var _ repository.SessionRepository = (*SessionRepository)(nil)
