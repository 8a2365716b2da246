package entity

// UnspecifiedProgram labels candidates that did not state a program.
const UnspecifiedProgram = "Unspecified"

type UserStats struct {
	Total         int            `json:"total"`
	Candidates    int            `json:"candidates"`
	Organizations int            `json:"organizations"`
	ByProgram     map[string]int `json:"by_program"`
	ByTerm        map[int]int    `json:"by_term"`
}

// ProgramPercentage is the share of all users enrolled in program.
func (s UserStats) ProgramPercentage(program string) float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.ByProgram[program]) / float64(s.Total) * 100
}

type OfferStats struct {
	Total      int                   `json:"total"`
	ByCategory map[OfferCategory]int `json:"by_category"`
	ByLocation map[string]int        `json:"by_location"`
}

func (s OfferStats) CategoryPercentage(c OfferCategory) float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.ByCategory[c]) / float64(s.Total) * 100
}
