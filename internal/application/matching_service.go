package application

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/JpabloRR1/API-BUSQUEDA-EMPLEO/internal/domain/compatibility"
	"github.com/JpabloRR1/API-BUSQUEDA-EMPLEO/internal/domain/entity"
	repo "github.com/JpabloRR1/API-BUSQUEDA-EMPLEO/internal/domain/repository"
	"github.com/JpabloRR1/API-BUSQUEDA-EMPLEO/pkg/helpers"
)

// Evaluation is a candidate scored against one offer. Score is rounded to
// two decimals.
type Evaluation struct {
	Offer   entity.OfferListing `json:"offer"`
	Score   float64             `json:"score"`
	Matched []string            `json:"matched"`
	Gaps    []string            `json:"gaps"`
}

func newEvaluation(l entity.OfferListing, skills string) Evaluation {
	res := compatibility.Evaluate(skills, l.RequiredSkills)
	return Evaluation{Offer: l, Score: compatibility.Round(res.Score), Matched: res.Matched, Gaps: res.Gaps}
}

// MatchingService applies the compatibility engine to directory data and
// records applications.
type MatchingService struct {
	Directory *DirectoryService
	Matches   repo.MatchRepository
	Notifier  Notifier
	Logger    *logrus.Logger
}

func NewMatchingService(dir *DirectoryService, matches repo.MatchRepository, notifier Notifier, logger *logrus.Logger) *MatchingService {
	if notifier == nil {
		notifier = NopNotifier{}
	}
	return &MatchingService{Directory: dir, Matches: matches, Notifier: notifier, Logger: logger}
}

// Score is the raw engine score for two comma-separated skill lists.
func (s *MatchingService) Score(candidateSkills, requiredSkills string) float64 {
	return compatibility.Score(candidateSkills, requiredSkills)
}

func (s *MatchingService) SkillGaps(candidateSkills, requiredSkills string) []string {
	return compatibility.SkillGaps(candidateSkills, requiredSkills)
}

func candidateSkills(u *entity.User) (string, error) {
	cp, ok := u.Candidate()
	if !ok {
		return "", ErrRoleMismatch
	}
	return cp.Skills, nil
}

func (s *MatchingService) listing(ctx context.Context, o *entity.Offer) entity.OfferListing {
	l := entity.OfferListing{Offer: *o}
	if owner, err := s.Directory.GetUser(ctx, o.OrganizationID); err == nil {
		l.OrganizationName = owner.Name
	}
	return l
}

func (s *MatchingService) EvaluateOffer(ctx context.Context, candidate *entity.User, offerID string) (*Evaluation, error) {
	skills, err := candidateSkills(candidate)
	if err != nil {
		return nil, err
	}
	o, err := s.Directory.GetOffer(ctx, offerID)
	if err != nil {
		return nil, err
	}
	ev := newEvaluation(s.listing(ctx, o), skills)
	return &ev, nil
}

// Recommend scores every active offer, best first. Ties are ordered by title.
// limit <= 0 returns all of them.
func (s *MatchingService) Recommend(ctx context.Context, candidate *entity.User, limit int) ([]Evaluation, error) {
	skills, err := candidateSkills(candidate)
	if err != nil {
		return nil, err
	}
	offers, err := s.Directory.ListActiveOffers(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]Evaluation, 0, len(offers))
	for _, l := range offers {
		out = append(out, newEvaluation(l, skills))
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		return out[i].Offer.Title < out[j].Offer.Title
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// Apply records a pending application with the current score. Applying again
// refreshes the score and keeps the decision.
func (s *MatchingService) Apply(ctx context.Context, candidate *entity.User, offerID string) (*entity.Match, error) {
	skills, err := candidateSkills(candidate)
	if err != nil {
		return nil, err
	}
	o, err := s.Directory.GetOffer(ctx, offerID)
	if err != nil {
		return nil, err
	}
	if !o.Active {
		return nil, ErrOfferInactive
	}
	m := &entity.Match{
		CandidateID: candidate.ID,
		OfferID:     o.ID,
		Score:       compatibility.Round(compatibility.Score(skills, o.RequiredSkills)),
	}
	if err := s.Matches.Upsert(ctx, m); err != nil {
		return nil, fmt.Errorf("record match: %w", err)
	}
	helpers.LogInfo(s.Logger, "candidate applied", logrus.Fields{"match_id": m.ID, "offer_id": o.ID, "score": m.Score})
	return m, nil
}

// Decide accepts or rejects an application to one of org's offers and tells
// the candidate.
func (s *MatchingService) Decide(ctx context.Context, org *entity.User, matchID string, status entity.MatchStatus) (*entity.Match, error) {
	if !org.IsOrganization() {
		return nil, ErrRoleMismatch
	}
	if status != entity.MatchAccepted && status != entity.MatchRejected {
		return nil, ErrInvalidStatus
	}
	m, err := s.Matches.GetByID(ctx, matchID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrMatchNotFound
		}
		return nil, fmt.Errorf("get match: %w", err)
	}
	o, err := s.Directory.GetOffer(ctx, m.OfferID)
	if err != nil {
		return nil, err
	}
	if o.OrganizationID != org.ID {
		return nil, ErrMatchNotFound
	}
	if err := s.Matches.UpdateStatus(ctx, m.ID, status); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrMatchNotFound
		}
		return nil, fmt.Errorf("update match: %w", err)
	}
	m.Status = status

	if cand, cErr := s.Directory.GetUser(ctx, m.CandidateID); cErr == nil {
		if nErr := s.Notifier.MatchDecided(ctx, cand, s.listing(ctx, o), m); nErr != nil {
			helpers.LogWarn(s.Logger, "decision notification failed", nErr, logrus.Fields{"match_id": m.ID})
		}
	} else {
		helpers.LogWarn(s.Logger, "candidate lookup failed", cErr, logrus.Fields{"match_id": m.ID})
	}
	return m, nil
}

func (s *MatchingService) ListCandidateMatches(ctx context.Context, candidate *entity.User) ([]entity.Match, error) {
	if !candidate.IsCandidate() {
		return nil, ErrRoleMismatch
	}
	out, err := s.Matches.ListByCandidate(ctx, candidate.ID)
	if err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}
	return out, nil
}

// ListOfferMatches lists applications to an offer owned by org, best score first.
func (s *MatchingService) ListOfferMatches(ctx context.Context, org *entity.User, offerID string) ([]entity.Match, error) {
	if !org.IsOrganization() {
		return nil, ErrRoleMismatch
	}
	o, err := s.Directory.GetOffer(ctx, offerID)
	if err != nil {
		return nil, err
	}
	if o.OrganizationID != org.ID {
		return nil, ErrOfferNotFound
	}
	out, err := s.Matches.ListByOffer(ctx, o.ID)
	if err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}
	return out, nil
}
