package mines

import "errors"

var (
	ErrIndexOutOfRange = errors.New("cell index out of range")
	ErrUnknownLevel    = errors.New("unknown level")
)

// ConfigError reports board parameters that cannot produce a game.
type ConfigError struct {
	message string
}

// [ConfigError] implements [error]
func (e *ConfigError) Error() string {
	return "invalid configuration: " + e.message
}
