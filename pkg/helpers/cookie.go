package helpers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type Manager struct {
	Name   string
	Domain string
	Secure bool
}

func NewCookie(name, domain string, secure bool) *Manager {
	if name == "" {
		name = "session_token"
	}
	return &Manager{Name: name, Domain: domain, Secure: secure}
}

// SetSession stores the session token in an HttpOnly cookie that lives as
// long as the session. issued and exp come from the same clock.
func (m *Manager) SetSession(c *gin.Context, token string, issued, exp time.Time) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(m.Name, token, MaxAge(issued, exp), "/", m.Domain, m.Secure, true)
}

func (m *Manager) Clear(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(m.Name, "", -1, "/", m.Domain, m.Secure, true)
}

// MaxAge is the cookie lifetime in whole seconds, never negative.
func MaxAge(issued, exp time.Time) int {
	sec := int(exp.Sub(issued).Seconds())
	if sec < 0 {
		return 0
	}
	return sec
}
