package session

import (
	"io"

	"github.com/rs/zerolog"
)

// Config is passed to a Backend when creating a session.
type Config struct {
	// Logger receives debug output.
	Logger zerolog.Logger
	// Stdout receives output printed by evaluated code.
	Stdout io.Writer
}

// Option configures session creation.
type Option func(c *Config)

func newConfig(opts []Option) Config {
	c := Config{
		Logger: zerolog.Nop(),
		Stdout: io.Discard,
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// WithLogger assigns the session logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Config) {
		c.Logger = logger
	}
}

// WithStdout directs printed output of evaluated code to w.
func WithStdout(w io.Writer) Option {
	return func(c *Config) {
		c.Stdout = w
	}
}
