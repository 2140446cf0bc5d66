package handlers

import (
	"errors"
	"math/rand/v2"
	"net/http"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/vancomm/sweeper/internal/config"
	"github.com/vancomm/sweeper/internal/middleware"
	"github.com/vancomm/sweeper/internal/mines"
	"github.com/vancomm/sweeper/internal/session"
)

type GameHandler struct {
	log     logrus.FieldLogger
	store   session.Store
	cookies *config.Cookies
	tickets *config.Tickets
	ws      *config.WebSocket

	mu  sync.Mutex // guards rnd
	rnd *rand.Rand
}

func NewGameHandler(
	log logrus.FieldLogger,
	store session.Store,
	cookies *config.Cookies,
	tickets *config.Tickets,
	ws *config.WebSocket,
	rnd *rand.Rand,
) *GameHandler {
	return &GameHandler{
		log:     log,
		store:   store,
		cookies: cookies,
		tickets: tickets,
		ws:      ws,
		rnd:     rnd,
	}
}

func (g *GameHandler) Status(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

func (g *GameHandler) Levels(w http.ResponseWriter, r *http.Request) {
	sendJSONOrLog(w, g.log, http.StatusOK, mines.Levels())
}

// fail maps an error to a status code. Caller errors carry their message;
// anything else is logged and hidden.
func (g *GameHandler) fail(w http.ResponseWriter, err error) {
	var ce *mines.ConfigError
	switch {
	case errors.Is(err, mines.ErrIndexOutOfRange),
		errors.Is(err, mines.ErrUnknownLevel),
		errors.As(err, &ce):
		sendJSONOrLog(w, g.log, http.StatusBadRequest, wrapError(err))
	case errors.Is(err, session.ErrNotFound):
		sendJSONOrLog(w, g.log, http.StatusNotFound, wrapError(err))
	default:
		g.log.WithError(err).Error("unable to handle game request")
		w.WriteHeader(http.StatusInternalServerError)
	}
}

func (g *GameHandler) newSession(level mines.Level) (*session.Session, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return session.New(level, g.rnd)
}

func (g *GameHandler) NewGame(w http.ResponseWriter, r *http.Request) {
	var params NewGameParams
	if err := decoder.Decode(&params, r.URL.Query()); err != nil {
		sendJSONOrLog(w, g.log, http.StatusBadRequest, wrapError(err))
		return
	}
	if params.Level == "" {
		params.Level = mines.Easy.Name
	}

	level, err := mines.ParseLevel(params.Level)
	if err != nil {
		g.fail(w, err)
		return
	}

	s, err := g.newSession(level)
	if err != nil {
		g.fail(w, err)
		return
	}
	if err := g.store.Save(r.Context(), s); err != nil {
		g.fail(w, err)
		return
	}

	ticket, err := g.tickets.Issue(s.ID())
	if err != nil {
		g.fail(w, err)
		return
	}
	g.cookies.SetTicket(w, ticket, g.tickets.Lifetime())
	w.Header().Set("X-Game-Ticket", ticket)

	g.log.WithFields(logrus.Fields{
		"session": s.ID(),
		"level":   level.Name,
		"seed":    level.Seed(),
	}).Info("new game")

	sendJSONOrLog(w, g.log, http.StatusCreated, NewGameResponse{
		GameDTO: NewGameDTO(s.Snapshot()),
		Ticket:  ticket,
	})
}

func (g *GameHandler) Fetch(w http.ResponseWriter, r *http.Request) {
	s, err := g.store.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		g.fail(w, err)
		return
	}
	sendJSONOrLog(w, g.log, http.StatusOK, NewGameDTO(s.Snapshot()))
}

// authorize checks that the request carries a ticket for session id.
func (g *GameHandler) authorize(w http.ResponseWriter, r *http.Request, id string) bool {
	claims, ok := middleware.TicketClaims(r.Context())
	if !ok {
		if token := r.URL.Query().Get("ticket"); token != "" {
			claims, ok = g.parseTicket(token)
		}
	}
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return false
	}
	if claims.SessionId != id {
		w.WriteHeader(http.StatusForbidden)
		return false
	}
	return true
}

func (g *GameHandler) parseTicket(token string) (*config.TicketClaims, bool) {
	claims, err := g.tickets.Parse(token)
	if err != nil {
		g.log.WithError(err).Debug("ignoring invalid ticket")
		return nil, false
	}
	return claims, true
}

// load fetches the session a mutating request addresses.
func (g *GameHandler) load(w http.ResponseWriter, r *http.Request) (*session.Session, bool) {
	id := r.PathValue("id")
	if !g.authorize(w, r, id) {
		return nil, false
	}
	s, err := g.store.Get(r.Context(), id)
	if err != nil {
		g.fail(w, err)
		return nil, false
	}
	return s, true
}

func (g *GameHandler) Reveal(w http.ResponseWriter, r *http.Request) {
	var params IndexParams
	if err := decoder.Decode(&params, r.URL.Query()); err != nil {
		sendJSONOrLog(w, g.log, http.StatusBadRequest, wrapError(err))
		return
	}
	s, ok := g.load(w, r)
	if !ok {
		return
	}

	outcome, err := s.Reveal(params.Index)
	if err != nil {
		g.fail(w, err)
		return
	}
	g.log.WithFields(logrus.Fields{
		"session": s.ID(),
		"index":   params.Index,
		"outcome": outcome,
	}).Debug("reveal")

	sendJSONOrLog(w, g.log, http.StatusOK, NewGameDTO(s.Snapshot()))
}

func (g *GameHandler) Flag(w http.ResponseWriter, r *http.Request) {
	var params FlagParams
	if err := decoder.Decode(&params, r.URL.Query()); err != nil {
		sendJSONOrLog(w, g.log, http.StatusBadRequest, wrapError(err))
		return
	}
	s, ok := g.load(w, r)
	if !ok {
		return
	}

	var err error
	if params.Value == nil {
		err = s.ToggleFlag(params.Index)
	} else {
		err = s.Flag(params.Index, *params.Value)
	}
	if err != nil {
		g.fail(w, err)
		return
	}

	sendJSONOrLog(w, g.log, http.StatusOK, NewGameDTO(s.Snapshot()))
}

func (g *GameHandler) Resign(w http.ResponseWriter, r *http.Request) {
	s, ok := g.load(w, r)
	if !ok {
		return
	}
	if _, err := s.Resign(); err != nil {
		g.fail(w, err)
		return
	}
	sendJSONOrLog(w, g.log, http.StatusOK, NewGameDTO(s.Snapshot()))
}

// Discard drops a session, e.g. when the player starts over.
func (g *GameHandler) Discard(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if !g.authorize(w, r, id) {
		return
	}
	if err := g.store.Delete(r.Context(), id); err != nil {
		g.fail(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
