package app

import (
	"context"
	"errors"
	"fmt"
	"hash/maphash"
	"math/rand/v2"
	"net"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/vancomm/sweeper/internal/config"
	"github.com/vancomm/sweeper/internal/middleware"
	"github.com/vancomm/sweeper/internal/session"
)

type App struct {
	log      *logrus.Logger
	router   *http.ServeMux
	store    session.Store
	cookies  *config.Cookies
	tickets  *config.Tickets
	ws       *config.WebSocket
	sessions *config.Sessions
}

func createRand() *rand.Rand {
	return rand.New(rand.NewPCG(
		new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
	))
}

// New reads the environment and assembles the application.
func New(log *logrus.Logger) (*App, error) {
	cookies, err := config.NewCookies()
	if err != nil {
		return nil, fmt.Errorf("unable to read cookies config: %w", err)
	}
	tickets, err := config.NewTickets()
	if err != nil {
		return nil, fmt.Errorf("unable to read tickets config: %w", err)
	}
	ws, err := config.NewWebSocket()
	if err != nil {
		return nil, fmt.Errorf("unable to read websocket config: %w", err)
	}
	sessions, err := config.NewSessions()
	if err != nil {
		return nil, fmt.Errorf("unable to read sessions config: %w", err)
	}

	a := &App{
		log:      log,
		router:   http.NewServeMux(),
		store:    session.NewMemoryStore(),
		cookies:  cookies,
		tickets:  tickets,
		ws:       ws,
		sessions: sessions,
	}
	a.loadRoutes()
	return a, nil
}

func (a *App) Handler() http.Handler {
	return middleware.Wrap(
		a.router,
		middleware.Tickets(a.log, a.cookies, a.tickets),
		middleware.Recover(a.log),
		middleware.Logging(a.log),
		middleware.Cors(),
	)
}

// Run serves on addr until ctx is cancelled, sweeping idle sessions on the
// side.
func (a *App) Run(ctx context.Context, addr string) error {
	server := &http.Server{
		Addr:         addr,
		Handler:      a.Handler(),
		ReadTimeout:  time.Second * 15,
		WriteTimeout: time.Second * 15,
		IdleTimeout:  time.Second * 60,
		BaseContext: func(l net.Listener) context.Context {
			return ctx
		},
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		a.log.Infof("ready to serve @ %s", addr)
		err := server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	})
	g.Go(func() error {
		<-gCtx.Done()
		sCtx, cancel := context.WithTimeout(context.Background(), time.Second*15)
		defer cancel()
		return server.Shutdown(sCtx)
	})
	g.Go(func() error {
		return a.sweep(gCtx)
	})

	return g.Wait()
}

func (a *App) sweep(ctx context.Context) error {
	ticker := time.NewTicker(a.sessions.SweepInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case now := <-ticker.C:
			n, err := a.store.Sweep(ctx, now.Add(-a.sessions.TTL))
			if err != nil && !errors.Is(err, context.Canceled) {
				return fmt.Errorf("unable to sweep sessions: %w", err)
			}
			if n > 0 {
				a.log.WithField("count", n).Debug("swept idle sessions")
			}
		}
	}
}
