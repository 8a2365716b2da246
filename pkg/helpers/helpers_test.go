package helpers

import (
	"encoding/base64"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPasswordWithCost("secret123", bcrypt.MinCost)
	require.NoError(t, err)
	assert.NotEqual(t, "secret123", hash)
	assert.True(t, CompareHashAndPassword(hash, "secret123"))
	assert.False(t, CompareHashAndPassword(hash, "wrong"))
	assert.False(t, CompareHashAndPassword("not-a-hash", "secret123"))
}

func TestHashPasswordWithCost_OutOfRangeUsesDefault(t *testing.T) {
	hash, err := HashPasswordWithCost("pw", 1)
	require.NoError(t, err)
	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.DefaultCost, cost)
}

func TestNewSessionToken(t *testing.T) {
	a, err := NewSessionToken()
	require.NoError(t, err)
	b, err := NewSessionToken()
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
	raw, err := base64.RawURLEncoding.DecodeString(a)
	require.NoError(t, err)
	assert.Len(t, raw, SessionTokenBytes)
}

func TestHashToken(t *testing.T) {
	assert.Equal(t, HashToken("abc"), HashToken("abc"))
	assert.NotEqual(t, HashToken("abc"), HashToken("abd"))
	assert.NotEqual(t, "abc", HashToken("abc"))
}

func TestManualClock(t *testing.T) {
	start := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	c := NewManualClock(start)
	assert.Equal(t, start, c.Now())

	c.Advance(90 * time.Minute)
	assert.Equal(t, start.Add(90*time.Minute), c.Now())

	c.Set(start)
	assert.Equal(t, start, c.Now())
}

func TestHashPasswordWithCost_TooLong(t *testing.T) {
	_, err := HashPasswordWithCost(strings.Repeat("x", MaxPasswordBytes+1), bcrypt.MinCost)
	assert.ErrorIs(t, err, ErrPasswordTooLong)

	_, err = HashPasswordWithCost(strings.Repeat("x", MaxPasswordBytes), bcrypt.MinCost)
	assert.NoError(t, err)
}

func TestMaxAge(t *testing.T) {
	issued := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 3600, MaxAge(issued, issued.Add(time.Hour)))
	assert.Equal(t, 0, MaxAge(issued, issued.Add(-time.Minute)))
}
