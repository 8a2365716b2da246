package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("SESSION_TTL", "")
	t.Setenv("BCRYPT_COST", "")

	cfg := Load()

	assert.Equal(t, 24*time.Hour, cfg.SessionTTL)
	assert.Equal(t, "session_token", cfg.SessionCookieName)
	assert.Equal(t, 10, cfg.BcryptCost)
	assert.False(t, cfg.MailSendEnabled)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("SESSION_TTL", "2h")
	t.Setenv("BCRYPT_COST", "4")
	t.Setenv("MAIL_SEND_ENABLED", "true")
	t.Setenv("DB_USER", "app")
	t.Setenv("DB_PASSWORD", "pw")
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_PORT", "5433")
	t.Setenv("DB_NAME", "jobs")
	t.Setenv("DB_SSLMODE", "require")

	cfg := Load()

	assert.Equal(t, 2*time.Hour, cfg.SessionTTL)
	assert.Equal(t, 4, cfg.BcryptCost)
	assert.True(t, cfg.MailSendEnabled)
	assert.Equal(t, "postgres://app:pw@db:5433/jobs?sslmode=require", cfg.PostgresDSN())
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("SESSION_TTL", "forever")
	t.Setenv("BCRYPT_COST", "high")
	t.Setenv("COOKIE_SECURE", "maybe")

	cfg := Load()

	assert.Equal(t, 24*time.Hour, cfg.SessionTTL)
	assert.Equal(t, 10, cfg.BcryptCost)
	assert.False(t, cfg.CookieSecure)
}

func TestSplitLists(t *testing.T) {
	cfg := &Config{
		CORSAllowedOrigins: " http://a.test, ,http://b.test ",
		ElasticsearchAddrs: "",
	}
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSOrigins())
	assert.Empty(t, cfg.ESAddrs())
}
