// Package memory provides map-backed repositories for tests and local runs
// without Postgres. They honour the same uniqueness and ownership rules as the
// SQL implementations.
package memory

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/JpabloRR1/API-BUSQUEDA-EMPLEO/internal/domain/entity"
)

// Store holds every table so repositories can join across them.
type Store struct {
	mu sync.RWMutex

	users    map[string]*entity.UserCredential
	emails   map[string]string // email -> user id
	sessions map[string]entity.Session
	offers   map[string]*entity.Offer
	matches  map[string]*entity.Match

	seq int64 // insertion order, keeps listings stable
	ord map[string]int64

	Now   func() time.Time
	NewID func() string
}

func NewStore() *Store {
	return &Store{
		users:    make(map[string]*entity.UserCredential),
		emails:   make(map[string]string),
		sessions: make(map[string]entity.Session),
		offers:   make(map[string]*entity.Offer),
		matches:  make(map[string]*entity.Match),
		ord:      make(map[string]int64),
		Now:      func() time.Time { return time.Now().UTC() },
		NewID:    uuid.NewString,
	}
}

// nextID must be called with mu held.
func (s *Store) nextID() string {
	id := s.NewID()
	s.seq++
	s.ord[id] = s.seq
	return id
}
