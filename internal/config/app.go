package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Load reads a .env file into the environment if one exists. Variables that
// are already set win.
func Load(filenames ...string) error {
	err := godotenv.Load(filenames...)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("unable to load env file: %w", err)
	}
	return nil
}

func Addr() string {
	addr, ok := os.LookupEnv("APP_ADDR")
	if !ok || addr == "" {
		return ":8080"
	}
	return addr
}

type Sessions struct {
	TTL           time.Duration
	SweepInterval time.Duration
}

func NewSessions() (*Sessions, error) {
	ttl, err := durationEnv("SESSION_TTL", time.Hour)
	if err != nil {
		return nil, err
	}
	interval, err := durationEnv("SWEEP_INTERVAL", time.Minute)
	if err != nil {
		return nil, err
	}
	return &Sessions{TTL: ttl, SweepInterval: interval}, nil
}

func durationEnv(key string, fallback time.Duration) (time.Duration, error) {
	s, ok := os.LookupEnv(key)
	if !ok || s == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("unable to parse %s: %w", key, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%s must be positive, got %s", key, d)
	}
	return d, nil
}
