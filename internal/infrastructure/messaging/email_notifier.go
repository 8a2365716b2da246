package messaging

import (
	"context"
	"time"

	"github.com/JpabloRR1/API-BUSQUEDA-EMPLEO/config"
	"github.com/JpabloRR1/API-BUSQUEDA-EMPLEO/internal/domain/entity"
	"github.com/JpabloRR1/API-BUSQUEDA-EMPLEO/pkg/mailer"
	mailtpl "github.com/JpabloRR1/API-BUSQUEDA-EMPLEO/pkg/mailer/templates"
)

// Publisher puts a JSON document on a queue. *RabbitPublisher implements it.
type Publisher interface {
	PublishJSON(ctx context.Context, body any) error
}

// EmailNotifier turns domain events into email jobs for cmd/email_worker.
type EmailNotifier struct {
	pub Publisher
	cfg *config.Config
	now func() time.Time
}

func NewEmailNotifier(pub Publisher, cfg *config.Config) *EmailNotifier {
	return &EmailNotifier{pub: pub, cfg: cfg, now: time.Now}
}

func (n *EmailNotifier) publish(ctx context.Context, job mailer.EmailJob) error {
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	return n.pub.PublishJSON(c, job)
}

func (n *EmailNotifier) UserRegistered(ctx context.Context, u *entity.User) error {
	return n.publish(ctx, mailer.EmailJob{
		To:       u.Email,
		Template: mailtpl.Welcome,
		Data: mailtpl.NewWelcomeData(n.cfg, u.Name, u.Email,
			mailtpl.WithRole(u.Role().String()),
			mailtpl.WithTime(n.now()),
		),
	})
}

func (n *EmailNotifier) MatchDecided(ctx context.Context, candidate *entity.User, offer entity.OfferListing, m *entity.Match) error {
	return n.publish(ctx, mailer.EmailJob{
		To:       candidate.Email,
		Template: mailtpl.MatchDecision,
		Data: mailtpl.NewMatchDecisionData(n.cfg, candidate.Name, candidate.Email,
			mailtpl.WithOffer(offer.Title, offer.OrganizationName),
			mailtpl.WithDecision(string(m.Status), m.Score),
			mailtpl.WithTime(n.now()),
		),
	})
}
