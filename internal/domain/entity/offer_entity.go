package entity

import "time"

type OfferCategory string

const (
	CategoryPractice         OfferCategory = "practice"
	CategoryJob              OfferCategory = "job"
	CategoryVolunteerService OfferCategory = "volunteer-service"
)

var categoryDisplay = map[OfferCategory]string{
	CategoryPractice:         "Professional Practice",
	CategoryJob:              "Job",
	CategoryVolunteerService: "Volunteer Service",
}

func (c OfferCategory) Valid() bool {
	_, ok := categoryDisplay[c]
	return ok
}

// Display returns a human readable label, or the raw value for unknown categories.
func (c OfferCategory) Display() string {
	if s, ok := categoryDisplay[c]; ok {
		return s
	}
	return string(c)
}

// Offer is an opportunity posted by an organization.
type Offer struct {
	ID             string        `json:"id"`
	OrganizationID string        `json:"organization_id"`
	Title          string        `json:"title"`
	Description    string        `json:"description"`
	Category       OfferCategory `json:"category"`
	RequiredSkills string        `json:"required_skills"`
	Location       string        `json:"location"`
	Active         bool          `json:"active"`
	CreatedAt      time.Time     `json:"created_at"`
}

// OfferListing is an offer joined with its owner's display name.
type OfferListing struct {
	Offer
	OrganizationName string `json:"organization_name"`
}
