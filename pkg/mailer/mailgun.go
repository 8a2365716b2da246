package mailer

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	mg "github.com/mailgun/mailgun-go/v4"
)

const sendTimeout = 10 * time.Second

// ErrNoRecipient is returned before any API call when the address is blank.
var ErrNoRecipient = errors.New("email has no recipient")

// Sender delivers a rendered email.
type Sender interface {
	Send(ctx context.Context, to, subject, text, html string) error
}

// Mailgun sends through one Mailgun client built at startup.
type Mailgun struct {
	client mg.Mailgun
	from   string
}

func NewMailgun(domain, apiKey, from string) *Mailgun {
	return &Mailgun{client: mg.NewMailgun(domain, apiKey), from: from}
}

// Send delivers a plain-text message, with html as the alternative body when set.
func (m *Mailgun) Send(ctx context.Context, to, subject, text, html string) error {
	to = strings.TrimSpace(to)
	if to == "" {
		return ErrNoRecipient
	}
	msg := m.client.NewMessage(m.from, subject, text, to)
	if html != "" {
		msg.SetHtml(html)
	}
	c, cancel := context.WithTimeout(ctx, sendTimeout)
	defer cancel()
	if _, _, err := m.client.Send(c, msg); err != nil {
		return fmt.Errorf("mailgun send to %s: %w", to, err)
	}
	return nil
}

var _ Sender = (*Mailgun)(nil)
