package main

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/stackb/inspect/pkg/config"
	"github.com/stackb/inspect/pkg/logger"
	"github.com/stackb/inspect/pkg/render"
	"github.com/stackb/inspect/pkg/scope"
	"github.com/stackb/inspect/pkg/session"
	"github.com/stackb/inspect/pkg/target"
)

// app holds the streams and flag values shared by all commands.
type app struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	configFile string
	backend    string
	sessions   []string
	defines    []string
	format     string
	logLevel   string
	opaque     bool

	env *env
}

// env is the state built from the configuration before a command runs.
type env struct {
	cfg      *config.Config
	logger   zerolog.Logger
	session  session.Session
	defines  *scope.MapScope
	scope    scope.Accessor
	resolver *target.Resolver
	renderer render.Renderer
}

func newRootCommand(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	a := &app{
		stdin:  stdin,
		stdout: stdout,
		stderr: stderr,
	}

	root := &cobra.Command{
		Use:   executableName,
		Short: "Resolve class, function, variable and member references in a live session",
		Long: `inspect classifies target specifiers such as Foo, Foo\Bar::baz, $obj,
$obj->prop, $obj::CONST and Foo::$bar, and resolves them against the
variables of an interpreter session loaded from --session files.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Name() == "version" {
				return nil
			}
			return a.setup(cmd)
		},
	}
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	flags := root.PersistentFlags()
	flags.StringVar(&a.configFile, "config", "", "yaml configuration file")
	flags.StringVar(&a.backend, "backend", config.DefaultBackend, fmt.Sprintf("session backend %v", session.BackendNames()))
	flags.StringArrayVar(&a.sessions, "session", nil, "doublestar pattern of files to execute in the session (repeatable, replaces the config file list)")
	flags.StringArrayVar(&a.defines, "define", nil, "extra scope variable as name=value (repeatable)")
	flags.StringVar(&a.format, "format", config.DefaultFormat, fmt.Sprintf("output format %v", render.Formats()))
	flags.StringVar(&a.logLevel, "log-level", config.DefaultLogLevel, "log level")
	flags.BoolVar(&a.opaque, "opaque", false, "let reflect show plain values instead of failing")

	root.AddCommand(
		newTargetCommand(a),
		newReflectCommand(a),
		newVarsCommand(a),
		newReplCommand(a),
		newVersionCommand(a),
	)

	return root
}

// loadConfig reads the config file and applies flags given on the command
// line on top of it.
func (a *app) loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(a.configFile)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("backend") {
		cfg.Backend = a.backend
	}
	if flags.Changed("session") {
		cfg.Sessions = a.sessions
	}
	if flags.Changed("format") {
		cfg.Format = a.format
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = a.logLevel
	}
	if flags.Changed("opaque") {
		cfg.Opaque = a.opaque
	}
	for _, define := range a.defines {
		name, value, err := config.ParseDefine(define)
		if err != nil {
			return nil, err
		}
		cfg.Defines[name] = value
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := a.loadConfig(cmd)
	if err != nil {
		return err
	}

	log, err := logger.New(a.stderr, cfg.LogLevel)
	if err != nil {
		return err
	}

	sess, err := session.New(cfg.Backend,
		session.WithLogger(log),
		session.WithStdout(a.stdout),
	)
	if err != nil {
		return err
	}
	files, err := session.LoadFiles(sess, cfg.Sessions)
	if err != nil {
		return err
	}
	log.Debug().Str("session", sess.ID()).Strs("files", files).Strs("names", sess.Names()).Msg("session loaded")

	renderer, err := render.New(cfg.Format)
	if err != nil {
		return err
	}

	defines := scope.NewMapScope(cfg.DefineValues())
	chain := scope.NewChainScope(defines, sess)

	a.env = &env{
		cfg:     cfg,
		logger:  log,
		session: sess,
		defines: defines,
		scope:   chain,
		resolver: target.NewResolver(chain,
			target.WithLogger(log),
			target.WithOpaqueValues(cfg.Opaque),
		),
		renderer: renderer,
	}
	return nil
}
