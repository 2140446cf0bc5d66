package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const devTicketSecret = "sweeper-development-secret"

// TicketClaims grant their bearer the right to play one game session.
type TicketClaims struct {
	SessionId string `json:"session_id"`
	jwt.RegisteredClaims
}

type Tickets struct {
	secret        []byte
	signingMethod jwt.SigningMethod
	lifetime      time.Duration
}

func loadTicketSecret() ([]byte, error) {
	secret, ok := os.LookupEnv("TICKET_SECRET")
	if ok && secret != "" {
		return []byte(secret), nil
	}
	secretPath, ok := os.LookupEnv("TICKET_SECRET_FILE")
	if ok {
		b, err := os.ReadFile(secretPath)
		if err != nil {
			return nil, fmt.Errorf("unable to read ticket secret: %w", err)
		}
		return []byte(strings.TrimSpace(string(b))), nil
	}
	if Development() {
		return []byte(devTicketSecret), nil
	}
	return nil, fmt.Errorf("no TICKET_SECRET or TICKET_SECRET_FILE env variable set")
}

func NewTickets() (*Tickets, error) {
	secret, err := loadTicketSecret()
	if err != nil {
		return nil, err
	}
	lifetime, err := durationEnv("TICKET_LIFETIME", time.Hour*24)
	if err != nil {
		return nil, err
	}
	return NewTicketsWithSecret(secret, lifetime), nil
}

func NewTicketsWithSecret(secret []byte, lifetime time.Duration) *Tickets {
	return &Tickets{
		secret:        secret,
		signingMethod: jwt.SigningMethodHS256,
		lifetime:      lifetime,
	}
}

func (t *Tickets) Lifetime() time.Duration {
	return t.lifetime
}

func (t *Tickets) Issue(sessionId string) (string, error) {
	now := time.Now()
	claims := &TicketClaims{
		SessionId: sessionId,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.lifetime)),
		},
	}
	return jwt.NewWithClaims(t.signingMethod, claims).SignedString(t.secret)
}

func (t *Tickets) Parse(tokenString string) (*TicketClaims, error) {
	token, err := jwt.ParseWithClaims(
		tokenString,
		&TicketClaims{},
		func(token *jwt.Token) (interface{}, error) {
			return t.secret, nil
		},
		jwt.WithValidMethods([]string{t.signingMethod.Alg()}),
	)
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*TicketClaims)
	if !ok || claims.SessionId == "" {
		return nil, errors.New("malformed claims")
	}
	return claims, nil
}
