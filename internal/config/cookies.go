package config

import (
	"net/http"
	"os"
	"strings"
	"time"
)

const TicketCookie = "ticket"

type Cookies struct {
	Secure   bool
	SameSite http.SameSite
}

func NewCookies() (*Cookies, error) {
	secure := !Development()
	if s, ok := os.LookupEnv("COOKIES_SECURE"); ok {
		secure = s != "0"
	}

	sameSite := http.SameSiteStrictMode
	switch strings.ToUpper(os.Getenv("COOKIES_SAMESITE")) {
	case "DEFAULT":
		sameSite = http.SameSiteDefaultMode
	case "LAX":
		sameSite = http.SameSiteLaxMode
	case "NONE":
		sameSite = http.SameSiteNoneMode
	}

	return &Cookies{Secure: secure, SameSite: sameSite}, nil
}

func (c *Cookies) SetTicket(w http.ResponseWriter, ticket string, lifetime time.Duration) {
	http.SetCookie(w, &http.Cookie{
		Name:     TicketCookie,
		Path:     "/",
		Value:    ticket,
		Expires:  time.Now().Add(lifetime),
		HttpOnly: true,
		Secure:   c.Secure,
		SameSite: c.SameSite,
	})
}

// Ticket looks for a ticket in the Authorization header first, then in the
// ticket cookie.
func (c *Cookies) Ticket(r *http.Request) (string, bool) {
	if auth := r.Header.Get("Authorization"); auth != "" {
		token, ok := strings.CutPrefix(auth, "Bearer ")
		return token, ok && token != ""
	}
	cookie, err := r.Cookie(TicketCookie)
	if err != nil || cookie.Value == "" {
		return "", false
	}
	return cookie.Value, true
}
