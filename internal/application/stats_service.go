package application

import (
	"context"
	"strings"

	"github.com/JpabloRR1/API-BUSQUEDA-EMPLEO/internal/domain/entity"
)

type StatsService struct {
	Directory *DirectoryService
}

func NewStatsService(dir *DirectoryService) *StatsService {
	return &StatsService{Directory: dir}
}

// UserStats counts users by role, and candidates by program and term.
// Candidates without a program count as UnspecifiedProgram, without a term as 0.
func (s *StatsService) UserStats(ctx context.Context) (entity.UserStats, error) {
	users, err := s.Directory.ListUsers(ctx)
	if err != nil {
		return entity.UserStats{}, err
	}
	st := entity.UserStats{ByProgram: map[string]int{}, ByTerm: map[int]int{}}
	for i := range users {
		u := &users[i]
		st.Total++
		cp, ok := u.Candidate()
		if !ok {
			st.Organizations++
			continue
		}
		st.Candidates++
		program := strings.TrimSpace(cp.Program)
		if program == "" {
			program = entity.UnspecifiedProgram
		}
		st.ByProgram[program]++
		st.ByTerm[cp.Term]++
	}
	return st, nil
}

// OfferStats covers active offers only.
func (s *StatsService) OfferStats(ctx context.Context) (entity.OfferStats, error) {
	offers, err := s.Directory.ListActiveOffers(ctx)
	if err != nil {
		return entity.OfferStats{}, err
	}
	st := entity.OfferStats{ByCategory: map[entity.OfferCategory]int{}, ByLocation: map[string]int{}}
	for _, o := range offers {
		st.Total++
		st.ByCategory[o.Category]++
		st.ByLocation[strings.TrimSpace(o.Location)]++
	}
	return st, nil
}
