package testutil

import (
	"testing"

	"github.com/rs/zerolog"
)

// NewTestLogger creates a debug-level logger that writes to t.Log, so log
// output is only shown for failing or verbose tests.
func NewTestLogger(t *testing.T) zerolog.Logger {
	return zerolog.New(zerolog.NewTestWriter(t)).Level(zerolog.DebugLevel)
}
