package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vancomm/sweeper/internal/config"
)

func TestNewWritesLogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sweeper.log")

	log, err := New(&config.Logging{Level: logrus.InfoLevel, File: path, JSON: true})
	require.NoError(t, err)
	assert.Equal(t, logrus.InfoLevel, log.GetLevel())

	log.WithField("session", "abc").Info("game finished")
	log.Debug("not written")

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"session":"abc"`)
	assert.NotContains(t, string(b), "not written")
}

func TestNewTextFormatter(t *testing.T) {
	log, err := New(&config.Logging{Level: logrus.DebugLevel})
	require.NoError(t, err)
	assert.IsType(t, &logrus.TextFormatter{}, log.Formatter)
}
