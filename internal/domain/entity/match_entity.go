package entity

import "time"

type MatchStatus string

const (
	MatchPending  MatchStatus = "pending"
	MatchAccepted MatchStatus = "accepted"
	MatchRejected MatchStatus = "rejected"
)

func (s MatchStatus) Valid() bool {
	return s == MatchPending || s == MatchAccepted || s == MatchRejected
}

// Match records a candidate's application to an offer together with the
// compatibility score computed when they applied.
type Match struct {
	ID          string      `json:"id"`
	CandidateID string      `json:"candidate_id"`
	OfferID     string      `json:"offer_id"`
	Score       float64     `json:"score"`
	Status      MatchStatus `json:"status"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}
