package session

import (
	"context"
	"fmt"
	"io"
	"reflect"
	"sort"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/traefik/yaegi/interp"
	"github.com/traefik/yaegi/stdlib"
)

const yaegiBackendName = "yaegi"

func init() {
	if err := GlobalBackendRegistry().AddBackend(&yaegiBackend{}); err != nil {
		panic(err)
	}
}

type yaegiBackend struct{}

// Name implements part of the Backend interface.
func (b *yaegiBackend) Name() string {
	return yaegiBackendName
}

// NewSession implements part of the Backend interface.
func (b *yaegiBackend) NewSession(cfg Config) (Session, error) {
	return NewYaegi(cfg)
}

// Yaegi is a session backed by a Go interpreter.  Global variables of the
// interpreted main package form the scope.
type Yaegi struct {
	id     string
	logger zerolog.Logger
	interp *interp.Interpreter
}

// NewYaegi creates an empty Go session with the standard library available.
func NewYaegi(cfg Config) (*Yaegi, error) {
	id := uuid.NewString()
	stdout := cfg.Stdout
	if stdout == nil {
		stdout = io.Discard
	}
	i := interp.New(interp.Options{
		Stdout: stdout,
		Stderr: stdout,
	})
	if err := i.Use(stdlib.Symbols); err != nil {
		return nil, fmt.Errorf("failed to load stdlib: %w", err)
	}
	return &Yaegi{
		id:     id,
		logger: cfg.Logger.With().Str("session", id).Str("backend", yaegiBackendName).Logger(),
		interp: i,
	}, nil
}

// ID implements part of the Session interface.
func (s *Yaegi) ID() string {
	return s.id
}

// Backend implements part of the Session interface.
func (s *Yaegi) Backend() string {
	return yaegiBackendName
}

// Exec implements part of the Session interface.  Panics raised by the
// interpreter while compiling or running src are returned as errors.
func (s *Yaegi) Exec(filename string, src io.Reader) error {
	data, err := io.ReadAll(src)
	if err != nil {
		return err
	}
	if _, err := s.interp.EvalWithContext(context.Background(), string(data)); err != nil {
		return fmt.Errorf("%s: %w", filename, err)
	}
	s.logger.Debug().Str("file", filename).Msg("exec")
	return nil
}

// Lookup implements part of the scope.Accessor interface.
func (s *Yaegi) Lookup(name string) (any, bool) {
	value, ok := s.interp.Globals()[name]
	if !ok {
		return nil, false
	}
	return goValue(value), true
}

// Bindings implements part of the scope.Accessor interface.
func (s *Yaegi) Bindings() map[string]any {
	globals := s.interp.Globals()
	all := make(map[string]any, len(globals))
	for name, value := range globals {
		all[name] = goValue(value)
	}
	return all
}

// Names returns the bound names in lexical order.
func (s *Yaegi) Names() []string {
	globals := s.interp.Globals()
	names := make([]string, 0, len(globals))
	for name := range globals {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// goValue unwraps v when possible, leaving interpreter-internal values as a
// reflect.Value.
func goValue(v reflect.Value) any {
	if !v.IsValid() {
		return nil
	}
	if v.CanInterface() {
		return v.Interface()
	}
	return v
}
