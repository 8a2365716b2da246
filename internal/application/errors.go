package application

import "errors"

// Expected outcomes. Callers branch on these with errors.Is; anything else
// returned by a service is a fault.
var (
	ErrInvalidCredentials   = errors.New("invalid email or password")
	ErrAlreadyExists        = errors.New("email already registered")
	ErrNoActiveSession      = errors.New("no active session")
	ErrInvalidProfile       = errors.New("invalid profile")
	ErrOfferNotFound        = errors.New("offer not found")
	ErrOrganizationNotFound = errors.New("organization not found")
	ErrRoleMismatch         = errors.New("role not allowed")
	ErrOfferInactive        = errors.New("offer is not active")
	ErrMatchNotFound        = errors.New("match not found")
	ErrInvalidStatus        = errors.New("invalid match status")
	ErrInvalidOffer         = errors.New("invalid offer")
)
