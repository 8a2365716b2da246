package handlers

import (
	"time"

	"github.com/JpabloRR1/API-BUSQUEDA-EMPLEO/internal/domain/entity"
)

// userDTO is the public shape of a user. Candidate fields are omitted for
// organizations.
type userDTO struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	Program   *string   `json:"program,omitempty"`
	Term      *int      `json:"term,omitempty"`
	Skills    *string   `json:"skills,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func toUserDTO(u *entity.User) userDTO {
	d := userDTO{ID: u.ID, Email: u.Email, Name: u.Name, Role: u.Role().String(), CreatedAt: u.CreatedAt}
	if cp, ok := u.Candidate(); ok {
		d.Program, d.Term, d.Skills = &cp.Program, &cp.Term, &cp.Skills
	}
	return d
}

type offerDTO struct {
	entity.Offer
	CategoryLabel string `json:"category_label"`
}

func toOfferDTOs(offers []entity.Offer) []offerDTO {
	out := make([]offerDTO, 0, len(offers))
	for _, o := range offers {
		out = append(out, offerDTO{Offer: o, CategoryLabel: o.Category.Display()})
	}
	return out
}

type listingDTO struct {
	entity.OfferListing
	CategoryLabel string `json:"category_label"`
}

func toListingDTOs(offers []entity.OfferListing) []listingDTO {
	out := make([]listingDTO, 0, len(offers))
	for _, o := range offers {
		out = append(out, listingDTO{OfferListing: o, CategoryLabel: o.Category.Display()})
	}
	return out
}
