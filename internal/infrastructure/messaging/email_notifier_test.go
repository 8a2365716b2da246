package messaging

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JpabloRR1/API-BUSQUEDA-EMPLEO/config"
	"github.com/JpabloRR1/API-BUSQUEDA-EMPLEO/internal/application"
	"github.com/JpabloRR1/API-BUSQUEDA-EMPLEO/internal/domain/entity"
	"github.com/JpabloRR1/API-BUSQUEDA-EMPLEO/pkg/mailer"
	mailtpl "github.com/JpabloRR1/API-BUSQUEDA-EMPLEO/pkg/mailer/templates"
)

type capturePublisher struct {
	jobs []mailer.EmailJob
	err  error
}

func (p *capturePublisher) PublishJSON(_ context.Context, body any) error {
	if p.err != nil {
		return p.err
	}
	p.jobs = append(p.jobs, body.(mailer.EmailJob))
	return nil
}

var _ application.Notifier = (*EmailNotifier)(nil)

func newNotifier(pub Publisher) *EmailNotifier {
	n := NewEmailNotifier(pub, &config.Config{CompanyName: "UNRC", OffersURL: "http://offers.test"})
	n.now = func() time.Time { return time.Date(2025, 6, 1, 9, 30, 0, 0, time.UTC) }
	return n
}

func TestEmailNotifier_UserRegistered(t *testing.T) {
	pub := &capturePublisher{}
	n := newNotifier(pub)

	u := &entity.User{Identity: entity.Identity{Email: "ana@test.mx", Name: "Ana"}, Profile: entity.CandidateProfile{}}
	require.NoError(t, n.UserRegistered(context.Background(), u))
	require.Len(t, pub.jobs, 1)

	job := pub.jobs[0]
	assert.True(t, job.Valid())
	assert.Equal(t, "ana@test.mx", job.To)
	assert.Equal(t, mailtpl.Welcome, job.Template)
	assert.Equal(t, "candidate", job.Data["Role"])
	assert.Equal(t, "UNRC", job.Data["CompanyName"])

	subject, text, _, err := mailtpl.Render(job.Template, job.Data)
	require.NoError(t, err)
	assert.Equal(t, "Welcome to UNRC", subject)
	assert.Contains(t, text, "ana@test.mx")
}

func TestEmailNotifier_MatchDecided(t *testing.T) {
	pub := &capturePublisher{}
	n := newNotifier(pub)

	cand := &entity.User{Identity: entity.Identity{Email: "carlos@test.mx", Name: "Carlos"}, Profile: entity.CandidateProfile{}}
	offer := entity.OfferListing{Offer: entity.Offer{Title: "Data Analyst"}, OrganizationName: "Data Insights"}
	m := &entity.Match{Status: entity.MatchRejected, Score: 33.33}

	require.NoError(t, n.MatchDecided(context.Background(), cand, offer, m))
	require.Len(t, pub.jobs, 1)
	job := pub.jobs[0]
	assert.Equal(t, mailtpl.MatchDecision, job.Template)
	assert.Equal(t, "Data Insights", job.Data["OrganizationName"])
	assert.Equal(t, "rejected", job.Data["Status"])
}

func TestEmailNotifier_PublishError(t *testing.T) {
	boom := errors.New("channel closed")
	n := newNotifier(&capturePublisher{err: boom})

	err := n.UserRegistered(context.Background(), &entity.User{Identity: entity.Identity{Email: "a@b.c"}, Profile: entity.OrganizationProfile{}})
	assert.ErrorIs(t, err, boom)
}
