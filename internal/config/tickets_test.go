package config

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTicketsRoundTrip(t *testing.T) {
	tickets := NewTicketsWithSecret([]byte("secret"), time.Hour)

	token, err := tickets.Issue("abc")
	require.NoError(t, err)

	claims, err := tickets.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "abc", claims.SessionId)
}

func TestTicketsRejectForeignSignature(t *testing.T) {
	token, err := NewTicketsWithSecret([]byte("other"), time.Hour).Issue("abc")
	require.NoError(t, err)

	_, err = NewTicketsWithSecret([]byte("secret"), time.Hour).Parse(token)
	assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)
}

func TestTicketsExpire(t *testing.T) {
	tickets := NewTicketsWithSecret([]byte("secret"), -time.Minute)
	token, err := tickets.Issue("abc")
	require.NoError(t, err)

	_, err = tickets.Parse(token)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestNewTicketsNeedsSecret(t *testing.T) {
	t.Setenv("DEVELOPMENT", "0")
	t.Setenv("TICKET_SECRET", "")
	_, err := NewTickets()
	assert.Error(t, err)

	t.Setenv("DEVELOPMENT", "1")
	_, err = NewTickets()
	assert.NoError(t, err)
}

func TestCookieTicket(t *testing.T) {
	c := &Cookies{}

	r := httptest.NewRequest("GET", "/", nil)
	_, ok := c.Ticket(r)
	assert.False(t, ok)

	r.Header.Set("Authorization", "Bearer xyz")
	token, ok := c.Ticket(r)
	assert.True(t, ok)
	assert.Equal(t, "xyz", token)

	w := httptest.NewRecorder()
	c.SetTicket(w, "from-cookie", time.Hour)
	r = httptest.NewRequest("GET", "/", nil)
	r.AddCookie(w.Result().Cookies()[0])
	token, ok = c.Ticket(r)
	assert.True(t, ok)
	assert.Equal(t, "from-cookie", token)
}

func TestSessionsConfig(t *testing.T) {
	t.Setenv("SESSION_TTL", "")
	t.Setenv("SWEEP_INTERVAL", "30s")
	s, err := NewSessions()
	require.NoError(t, err)
	assert.Equal(t, time.Hour, s.TTL)
	assert.Equal(t, 30*time.Second, s.SweepInterval)

	t.Setenv("SESSION_TTL", "soon")
	_, err = NewSessions()
	assert.Error(t, err)
}
