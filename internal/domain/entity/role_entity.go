package entity

// Role fixes which profile attributes a user carries.
// It is chosen at registration and never changes.
type Role string

const (
	RoleCandidate    Role = "candidate"
	RoleOrganization Role = "organization"
)

func (r Role) Valid() bool {
	return r == RoleCandidate || r == RoleOrganization
}

func (r Role) String() string { return string(r) }
