package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProfile(t *testing.T) {
	p, ok := NewProfile(RoleCandidate, "Data Science", 8, "Python, SQL")
	require.True(t, ok)
	assert.Equal(t, CandidateProfile{Program: "Data Science", Term: 8, Skills: "Python, SQL"}, p)

	p, ok = NewProfile(RoleOrganization, "ignored", 3, "ignored")
	require.True(t, ok)
	assert.Equal(t, OrganizationProfile{}, p)

	_, ok = NewProfile("admin", "", 0, "")
	assert.False(t, ok)
}

func TestUserRoleFollowsProfile(t *testing.T) {
	u := &User{Profile: CandidateProfile{Skills: "Go"}}
	assert.Equal(t, RoleCandidate, u.Role())
	assert.True(t, u.IsCandidate())
	cp, ok := u.Candidate()
	assert.True(t, ok)
	assert.Equal(t, "Go", cp.Skills)

	org := &User{Profile: OrganizationProfile{}}
	assert.True(t, org.IsOrganization())
	_, ok = org.Candidate()
	assert.False(t, ok)

	var none *User
	assert.Equal(t, Role(""), none.Role())
}

func TestSessionActiveAt(t *testing.T) {
	exp := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	s := Session{ExpiresAt: exp}
	assert.True(t, s.ActiveAt(exp.Add(-time.Nanosecond)))
	assert.False(t, s.ActiveAt(exp))
	assert.False(t, s.ActiveAt(exp.Add(time.Second)))
}

func TestOfferCategoryDisplay(t *testing.T) {
	assert.Equal(t, "Professional Practice", CategoryPractice.Display())
	assert.Equal(t, "Volunteer Service", CategoryVolunteerService.Display())
	assert.Equal(t, "other", OfferCategory("other").Display())
	assert.False(t, OfferCategory("other").Valid())
}

func TestStatsPercentages(t *testing.T) {
	us := UserStats{Total: 4, ByProgram: map[string]int{"Data Science": 1}}
	assert.InDelta(t, 25.0, us.ProgramPercentage("Data Science"), 1e-9)
	assert.Zero(t, UserStats{}.ProgramPercentage("x"))

	os := OfferStats{Total: 3, ByCategory: map[OfferCategory]int{CategoryJob: 2}}
	assert.InDelta(t, 66.666, os.CategoryPercentage(CategoryJob), 0.001)
	assert.Zero(t, OfferStats{}.CategoryPercentage(CategoryJob))
}
