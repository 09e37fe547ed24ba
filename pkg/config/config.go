package config

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/stackb/inspect/pkg/render"
	"github.com/stackb/inspect/pkg/session"
)

const (
	DefaultBackend  = "starlark"
	DefaultFormat   = render.FormatText
	DefaultLogLevel = "warn"
)

var defineNameRe = regexp.MustCompile(`^\w+$`)

// Config holds the settings of an inspect invocation.  Values come from an
// optional yaml file and are overridden by command line flags.
type Config struct {
	// Backend names the session backend ("starlark", "yaegi").
	Backend string `yaml:"backend"`
	// Sessions is a list of doublestar patterns of files to execute in the
	// session before resolving targets.
	Sessions []string `yaml:"sessions"`
	// Defines are extra scope variables, given as literals.  They shadow
	// session variables of the same name.
	Defines map[string]string `yaml:"defines"`
	// Format is the output format ("text", "json", "debug").
	Format string `yaml:"format"`
	// LogLevel is a zerolog level name.
	LogLevel string `yaml:"log_level"`
	// Opaque makes `reflect` show plain values instead of failing.
	Opaque bool `yaml:"opaque"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Backend:  DefaultBackend,
		Format:   DefaultFormat,
		LogLevel: DefaultLogLevel,
		Defines:  map[string]string{},
	}
}

// Load reads the yaml file at path on top of the defaults.  An empty path
// returns the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if cfg.Defines == nil {
		cfg.Defines = map[string]string{}
	}
	return cfg, nil
}

// Validate checks that the backend and format are known and that every
// define has a valid variable name.
func (c *Config) Validate() error {
	var errs []error
	if _, ok := session.GlobalBackendRegistry().Backend(c.Backend); !ok {
		errs = append(errs, fmt.Errorf("unknown backend %q (want one of %v)", c.Backend, session.BackendNames()))
	}
	if _, err := render.New(c.Format); err != nil {
		errs = append(errs, err)
	}
	for name := range c.Defines {
		if !defineNameRe.MatchString(name) {
			errs = append(errs, fmt.Errorf("invalid define name %q", name))
		}
	}
	return errors.Join(errs...)
}

// ParseDefine splits a "name=value" flag value.
func ParseDefine(s string) (name, value string, err error) {
	name, value, ok := strings.Cut(s, "=")
	if !ok {
		return "", "", fmt.Errorf("invalid define %q (want name=value)", s)
	}
	return strings.TrimPrefix(strings.TrimSpace(name), "$"), value, nil
}

// DefineValue converts a define literal to a scope value: integers,
// floats and booleans are converted, anything else stays a string.
func DefineValue(literal string) any {
	if i, err := strconv.ParseInt(literal, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(literal, 64); err == nil {
		return f
	}
	if b, err := strconv.ParseBool(literal); err == nil {
		return b
	}
	return literal
}

// DefineValues converts all defines to scope values.
func (c *Config) DefineValues() map[string]any {
	values := make(map[string]any, len(c.Defines))
	for name, literal := range c.Defines {
		values[name] = DefineValue(literal)
	}
	return values
}
