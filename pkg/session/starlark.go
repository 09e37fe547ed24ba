package session

import (
	"bytes"
	"fmt"
	"io"
	"sort"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"go.starlark.net/starlark"
	"go.starlark.net/starlarkstruct"
	"go.starlark.net/syntax"
)

const starlarkBackendName = "starlark"

func init() {
	if err := GlobalBackendRegistry().AddBackend(&starlarkBackend{}); err != nil {
		panic(err)
	}
}

type starlarkBackend struct{}

// Name implements part of the Backend interface.
func (b *starlarkBackend) Name() string {
	return starlarkBackendName
}

// NewSession implements part of the Backend interface.
func (b *starlarkBackend) NewSession(cfg Config) (Session, error) {
	return NewStarlark(cfg), nil
}

var starlarkFileOptions = &syntax.FileOptions{
	Set:             true,
	While:           true,
	TopLevelControl: true,
	GlobalReassign:  true,
	Recursion:       true,
}

// Starlark is a session backed by a starlark thread.  Globals persist across
// calls to Exec.
type Starlark struct {
	id     string
	logger zerolog.Logger
	// predeclared builtins, visible to every chunk.
	predeclared starlark.StringDict
	// globals accumulated from every chunk.
	globals starlark.StringDict
	thread  *starlark.Thread
}

// NewStarlark creates an empty starlark session.  `struct` and `module` are
// predeclared so that sessions can construct objects.
func NewStarlark(cfg Config) *Starlark {
	id := uuid.NewString()
	logger := cfg.Logger.With().Str("session", id).Str("backend", starlarkBackendName).Logger()
	stdout := cfg.Stdout
	if stdout == nil {
		stdout = io.Discard
	}
	return &Starlark{
		id:     id,
		logger: logger,
		predeclared: starlark.StringDict{
			"struct": starlark.NewBuiltin("struct", starlarkstruct.Make),
			"module": starlark.NewBuiltin("module", starlarkstruct.MakeModule),
		},
		globals: starlark.StringDict{},
		thread: &starlark.Thread{
			Name: id,
			Print: func(_ *starlark.Thread, msg string) {
				fmt.Fprintln(stdout, msg)
			},
		},
	}
}

// ID implements part of the Session interface.
func (s *Starlark) ID() string {
	return s.id
}

// Backend implements part of the Session interface.
func (s *Starlark) Backend() string {
	return starlarkBackendName
}

// Exec implements part of the Session interface.
func (s *Starlark) Exec(filename string, src io.Reader) error {
	data, err := io.ReadAll(src)
	if err != nil {
		return err
	}

	env := make(starlark.StringDict, len(s.predeclared)+len(s.globals))
	for name, value := range s.predeclared {
		env[name] = value
	}
	for name, value := range s.globals {
		env[name] = value
	}

	_, prog, err := starlark.SourceProgramOptions(starlarkFileOptions, filename, bytes.NewReader(data), env.Has)
	if err != nil {
		return fmt.Errorf("%s: %w", filename, err)
	}

	// globals are left unfrozen so later chunks may mutate them.
	state, err := prog.Init(s.thread, env)
	// bindings made before a failure are kept, as in an interactive shell.
	for name, value := range state {
		s.globals[name] = value
	}
	if err != nil {
		if evalErr, ok := err.(*starlark.EvalError); ok {
			s.logger.Debug().Str("file", filename).Str("backtrace", evalErr.Backtrace()).Msg("eval error")
		}
		return fmt.Errorf("%s: %w", filename, err)
	}

	s.logger.Debug().Str("file", filename).Int("bindings", len(state)).Msg("exec")
	return nil
}

// Lookup implements part of the scope.Accessor interface.
func (s *Starlark) Lookup(name string) (any, bool) {
	value, ok := s.globals[name]
	if !ok || value == nil {
		return nil, false
	}
	return value, true
}

// Bindings implements part of the scope.Accessor interface.
func (s *Starlark) Bindings() map[string]any {
	all := make(map[string]any, len(s.globals))
	for name, value := range s.globals {
		if value != nil {
			all[name] = value
		}
	}
	return all
}

// Names returns the bound names in lexical order.
func (s *Starlark) Names() []string {
	names := make([]string, 0, len(s.globals))
	for name, value := range s.globals {
		if value != nil {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}
