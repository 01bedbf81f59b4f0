package nxcube

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
)

// Option configures a Cube.
type Option func(*config)

type config struct {
	moveHistory bool
	logger      *log.Logger
	seed        int64
	seeded      bool
}

func defaultConfig() *config {
	return &config{
		moveHistory: true,
	}
}

// WithMoveHistory enables or disables move history tracking.
// When enabled (default), every applied token is kept and returned by History.
// Disable this for long searches to reduce memory usage.
func WithMoveHistory(enabled bool) Option {
	return func(c *config) {
		c.moveHistory = enabled
	}
}

// WithLogger sets the logger used for debug output of applied moves.
// By default nothing is logged.
func WithLogger(l *log.Logger) Option {
	return func(c *config) {
		c.logger = l
	}
}

// WithSeed makes Scramble reproducible.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.seed = seed
		c.seeded = true
	}
}

func (c *config) newLogger() *log.Logger {
	if c.logger != nil {
		return c.logger
	}
	return log.New(io.Discard)
}

func (c *config) newRand() *rand.Rand {
	seed := c.seed
	if !c.seeded {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
