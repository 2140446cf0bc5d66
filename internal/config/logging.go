package config

import (
	"os"

	"github.com/sirupsen/logrus"
)

type Logging struct {
	Level logrus.Level
	File  string
	JSON  bool
}

func NewLogging() (*Logging, error) {
	level := logrus.InfoLevel
	if Development() {
		level = logrus.DebugLevel
	}
	if s, ok := os.LookupEnv("LOG_LEVEL"); ok && s != "" {
		var err error
		if level, err = logrus.ParseLevel(s); err != nil {
			return nil, err
		}
	}
	return &Logging{
		Level: level,
		File:  os.Getenv("LOG_FILE"),
		JSON:  !Development(),
	}, nil
}
