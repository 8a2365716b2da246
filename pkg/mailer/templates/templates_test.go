package templates

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JpabloRR1/API-BUSQUEDA-EMPLEO/config"
)

func TestRenderWelcome(t *testing.T) {
	cfg := &config.Config{CompanyName: "UNRC", OffersURL: "http://offers.test"}
	data := NewWelcomeData(cfg, "María López", "maria@test.mx", WithRole("candidate"), WithTime(time.Now()))

	subject, text, html, err := Render(Welcome, data)
	require.NoError(t, err)
	assert.Equal(t, "Welcome to UNRC", subject)
	assert.Contains(t, text, "candidate account for maria@test.mx")
	assert.Contains(t, text, "http://offers.test")
	assert.Contains(t, html, "María López")
}

func TestRenderWelcome_Organization(t *testing.T) {
	data := NewWelcomeData(nil, "Data Insights", "hr@data.mx", WithRole("organization"))

	subject, text, _, err := Render(Welcome, data)
	require.NoError(t, err)
	assert.Equal(t, "Welcome to the platform", subject)
	assert.Contains(t, text, "publish offers")
}

func TestRenderMatchDecision(t *testing.T) {
	data := NewMatchDecisionData(nil, "Carlos", "carlos@test.mx",
		WithOffer("Data Analyst", "Data Insights"),
		WithDecision("accepted", 66.666),
	)

	subject, text, html, err := Render(MatchDecision, data)
	require.NoError(t, err)
	assert.Equal(t, "Your application to Data Analyst was accepted", subject)
	assert.Contains(t, text, "66.67%")
	assert.Contains(t, html, "Data Insights")
}

func TestRenderUnknownTemplate(t *testing.T) {
	_, _, _, err := Render("nope", map[string]any{})
	assert.Error(t, err)
}
