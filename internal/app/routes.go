package app

import (
	"github.com/vancomm/sweeper/internal/handlers"
)

func (a *App) loadRoutes() {
	game := handlers.NewGameHandler(
		a.log, a.store, a.cookies, a.tickets, a.ws, createRand(),
	)

	a.router.HandleFunc("GET /status", game.Status)
	a.router.HandleFunc("GET /levels", game.Levels)
	a.router.HandleFunc("POST /game", game.NewGame)
	a.router.HandleFunc("GET /game/{id}", game.Fetch)
	a.router.HandleFunc("DELETE /game/{id}", game.Discard)
	a.router.HandleFunc("POST /game/{id}/reveal", game.Reveal)
	a.router.HandleFunc("POST /game/{id}/flag", game.Flag)
	a.router.HandleFunc("POST /game/{id}/resign", game.Resign)
	a.router.HandleFunc("GET /game/{id}/connect", game.ConnectWS)
}
