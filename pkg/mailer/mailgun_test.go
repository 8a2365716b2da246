package mailer

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMailgunSend_RequiresRecipient(t *testing.T) {
	m := NewMailgun("mg.example.test", "key-test", "UNRC <no-reply@example.test>")
	err := m.Send(context.Background(), "   ", "subject", "text", "")
	assert.ErrorIs(t, err, ErrNoRecipient)
}

func TestEmailJobValid(t *testing.T) {
	assert.True(t, EmailJob{To: "a@b.c", Template: "welcome"}.Valid())
	assert.True(t, EmailJob{To: "a@b.c", Subject: "s", HTML: "<p>h</p>"}.Valid())
	assert.False(t, EmailJob{Template: "welcome"}.Valid())
	assert.False(t, EmailJob{To: "a@b.c", Subject: "s"}.Valid())
}
