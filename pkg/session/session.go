package session

import (
	"io"

	"github.com/stackb/inspect/pkg/scope"
)

// Session is a live interpreter whose global variables form a scope.
// Sessions are not safe for concurrent use.
type Session interface {
	scope.Accessor

	// ID uniquely identifies the session in logs.
	ID() string

	// Backend is the name of the backend that created the session.
	Backend() string

	// Exec evaluates src in the session.  Bindings created by src are added
	// to the scope and remain visible to later calls.
	Exec(filename string, src io.Reader) error

	// Names returns the bound variable names in lexical order.
	Names() []string
}

// Backend creates sessions.
type Backend interface {
	// Name is the unique name of the backend, used in configuration.
	Name() string

	// NewSession creates a new, empty session.
	NewSession(cfg Config) (Session, error)
}
