package middleware

import (
	"context"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vancomm/sweeper/internal/config"
)

type CtxKey int

const (
	CtxTicketClaims CtxKey = iota
)

// Tickets puts the claims of a valid game ticket into the request context.
// Requests without one pass through untouched; handlers decide whether a
// ticket is required.
func Tickets(log logrus.FieldLogger, cookies *config.Cookies, tickets *config.Tickets) Middleware {
	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := cookies.Ticket(r)
			if !ok {
				h.ServeHTTP(w, r)
				return
			}
			claims, err := tickets.Parse(token)
			if err != nil {
				log.WithError(err).Debug("ignoring invalid ticket")
				h.ServeHTTP(w, r)
				return
			}
			ctx := context.WithValue(r.Context(), CtxTicketClaims, claims)
			h.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func TicketClaims(ctx context.Context) (*config.TicketClaims, bool) {
	claims, ok := ctx.Value(CtxTicketClaims).(*config.TicketClaims)
	return claims, ok
}
