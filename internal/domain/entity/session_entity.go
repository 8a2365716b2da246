package entity

import "time"

// Session proves a prior successful login. Storage only ever sees the
// SHA-256 digest of the token handed to the client.
type Session struct {
	TokenHash string
	UserID    string
	ExpiresAt time.Time
	CreatedAt time.Time
}

// ActiveAt reports whether the session is still valid at now.
func (s Session) ActiveAt(now time.Time) bool {
	return now.Before(s.ExpiresAt)
}
