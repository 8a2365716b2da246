package entity

import (
	"time"
)

// Identity is the part of a user record shared by every role.
type Identity struct {
	ID        string
	Email     string
	Name      string
	CreatedAt time.Time
}

// Profile is the role-specific half of a user. Only CandidateProfile and
// OrganizationProfile implement it.
type Profile interface {
	Role() Role
	isProfile()
}

// CandidateProfile holds the attributes that only make sense for candidates.
// Term is zero when the candidate did not state it.
type CandidateProfile struct {
	Program string
	Term    int
	Skills  string // raw comma-separated list
}

func (CandidateProfile) Role() Role { return RoleCandidate }
func (CandidateProfile) isProfile() {}

// OrganizationProfile carries nothing beyond the identity.
type OrganizationProfile struct{}

func (OrganizationProfile) Role() Role { return RoleOrganization }
func (OrganizationProfile) isProfile() {}

// User is the aggregate root for the user domain.
// It never carries the password digest; see UserCredential.
type User struct {
	Identity
	Profile Profile
}

func (u *User) Role() Role {
	if u == nil || u.Profile == nil {
		return ""
	}
	return u.Profile.Role()
}

// Candidate returns the candidate profile when the user is a candidate.
func (u *User) Candidate() (CandidateProfile, bool) {
	if u == nil {
		return CandidateProfile{}, false
	}
	p, ok := u.Profile.(CandidateProfile)
	return p, ok
}

func (u *User) IsCandidate() bool    { return u.Role() == RoleCandidate }
func (u *User) IsOrganization() bool { return u.Role() == RoleOrganization }

// NewProfile builds the profile variant for role. The candidate fields are
// ignored for organizations.
func NewProfile(role Role, program string, term int, skills string) (Profile, bool) {
	switch role {
	case RoleCandidate:
		return CandidateProfile{Program: program, Term: term, Skills: skills}, true
	case RoleOrganization:
		return OrganizationProfile{}, true
	default:
		return nil, false
	}
}

// UserCredential pairs a stored user with its bcrypt password hash.
// Only the credential store handles it.
type UserCredential struct {
	User
	PasswordHash string
}
