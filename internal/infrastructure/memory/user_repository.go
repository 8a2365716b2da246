package memory

import (
	"context"
	"sort"

	"github.com/JpabloRR1/API-BUSQUEDA-EMPLEO/internal/domain/entity"
	"github.com/JpabloRR1/API-BUSQUEDA-EMPLEO/internal/domain/repository"
)

type UserRepository struct {
	s *Store
}

func NewUserRepository(s *Store) *UserRepository {
	return &UserRepository{s: s}
}

func (r *UserRepository) Create(_ context.Context, u *entity.User, passwordHash string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, taken := r.s.emails[u.Email]; taken {
		return repository.ErrEmailTaken
	}
	u.ID = r.s.nextID()
	u.CreatedAt = r.s.Now()
	r.s.users[u.ID] = &entity.UserCredential{User: *u, PasswordHash: passwordHash}
	r.s.emails[u.Email] = u.ID
	return nil
}

func (r *UserRepository) GetByID(_ context.Context, id string) (*entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	c, ok := r.s.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	u := c.User
	return &u, nil
}

func (r *UserRepository) GetCredentialByEmail(_ context.Context, email string) (*entity.UserCredential, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	id, ok := r.s.emails[email]
	if !ok {
		return nil, repository.ErrNotFound
	}
	c := *r.s.users[id]
	return &c, nil
}

func (r *UserRepository) List(_ context.Context) ([]entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]entity.User, 0, len(r.s.users))
	for _, c := range r.s.users {
		out = append(out, c.User)
	}
	sort.Slice(out, func(i, j int) bool { return r.s.ord[out[i].ID] < r.s.ord[out[j].ID] })
	return out, nil
}

var _ repository.UserRepository = (*UserRepository)(nil)
