package templates

import (
	"time"

	"github.com/JpabloRR1/API-BUSQUEDA-EMPLEO/config"
)

// Option pattern
type Option func(*EmailData)

func WithTime(t time.Time) Option {
	return func(d *EmailData) {
		utc := t.UTC()
		d.TimeAt = utc
		d.Time = utc.Format("02 January 2006, 15:04")
	}
}

func WithRole(role string) Option { return func(d *EmailData) { d.Role = role } }

func WithOffer(title, organization string) Option {
	return func(d *EmailData) {
		d.OfferTitle = title
		d.OrganizationName = organization
	}
}

func WithDecision(status string, score float64) Option {
	return func(d *EmailData) {
		d.Status = status
		d.Score = score
	}
}

// NewBaseEmailData fills the common fields from config, then applies opts.
func NewBaseEmailData(cfg *config.Config, typ string, name, email string, opts ...Option) EmailData {
	d := EmailData{
		Name:  name,
		Email: email,
		Type:  typ,
	}
	if cfg != nil {
		d.CompanyName = cfg.CompanyName
		d.AppName = cfg.AppName
		d.SupportURL = cfg.SupportURL
		d.OffersURL = cfg.OffersURL
	}
	for _, opt := range opts {
		opt(&d)
	}
	return d
}

func NewWelcomeData(cfg *config.Config, name, email string, opts ...Option) map[string]any {
	return ToMap(NewBaseEmailData(cfg, Welcome, name, email, opts...))
}

func NewMatchDecisionData(cfg *config.Config, name, email string, opts ...Option) map[string]any {
	return ToMap(NewBaseEmailData(cfg, MatchDecision, name, email, opts...))
}
