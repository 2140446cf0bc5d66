package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/vancomm/sweeper/internal/app"
	"github.com/vancomm/sweeper/internal/config"
	"github.com/vancomm/sweeper/internal/logging"
	"github.com/vancomm/sweeper/internal/mines"
	"github.com/vancomm/sweeper/internal/session"
)

func main() {
	log := logrus.New()

	if err := config.Load(); err != nil {
		log.Fatal(err)
	}

	logCfg, err := config.NewLogging()
	if err != nil {
		log.Fatal("unable to read logging config: ", err)
	}
	configured, err := logging.New(logCfg)
	if err != nil {
		log.Fatal(err)
	}
	log = configured
	mines.Log = log
	session.Log = log

	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt, syscall.SIGTERM,
	)
	defer stop()

	a, err := app.New(log)
	if err != nil {
		log.Fatal(err)
	}

	log.WithField("development", config.Development()).Info("starting up")

	if err := a.Run(ctx, config.Addr()); err != nil {
		log.Error("exit reason: ", err)
		os.Exit(1)
	}
	log.Info("shut down")
}
