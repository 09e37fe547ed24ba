package main

import (
	"bufio"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"go.starlark.net/starlark"

	"github.com/stackb/inspect/pkg/target"
)

const (
	replPrompt       = "> "
	replContinuation = ". "
	replFilename     = "<repl>"
)

const replHelp = `:target SPEC   resolve a class, function, variable or member
:reflect SPEC  resolve a whole class, function or instance
:shape SPEC    show how SPEC is classified
:vars          list variables in scope
:help          show this help
:quit          leave the shell
Any other input is evaluated in the session.  A line ending in ':' starts a
block that ends at the next empty line.  A line with unclosed brackets
starts a block that ends when they are closed.
`

func newReplCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Evaluate code in the session and resolve targets interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runRepl()
		},
	}
}

func (a *app) runRepl() error {
	scanner := bufio.NewScanner(a.stdin)
	var block replBlock

	fmt.Fprint(a.stdout, replPrompt)
	for scanner.Scan() {
		line := scanner.Text()

		if block.open() {
			if block.add(line) {
				fmt.Fprint(a.stdout, replContinuation)
				continue
			}
			a.replEval(block.String())
			block = replBlock{}
			fmt.Fprint(a.stdout, replPrompt)
			continue
		}

		trimmed := strings.TrimSpace(line)
		switch {
		case trimmed == "":
		case strings.HasPrefix(trimmed, ":"):
			if quit := a.replCommand(trimmed); quit {
				return nil
			}
		case strings.HasSuffix(trimmed, ":") || bracketDepth(line) > 0:
			block = replBlock{indented: strings.HasSuffix(trimmed, ":")}
			block.add(line)
			fmt.Fprint(a.stdout, replContinuation)
			continue
		default:
			a.replEval(line)
		}
		fmt.Fprint(a.stdout, replPrompt)
	}
	if block.open() {
		a.replEval(block.String())
	}
	return scanner.Err()
}

// replBlock collects the lines of a multi-line statement.  An indented
// block (a line ending in ':') ends at an empty line once its brackets are
// balanced; a bracketed block ends on the line that balances them.
type replBlock struct {
	lines    []string
	depth    int
	indented bool
}

func (b *replBlock) open() bool {
	return len(b.lines) > 0
}

// add appends line to the block.  It reports whether the block is still
// open; the line that closes an indented block is not kept.
func (b *replBlock) add(line string) bool {
	if b.indented && b.depth <= 0 && strings.TrimSpace(line) == "" {
		return false
	}
	b.lines = append(b.lines, line)
	b.depth += bracketDepth(line)
	return b.indented || b.depth > 0
}

func (b *replBlock) String() string {
	return strings.Join(b.lines, "\n")
}

// bracketDepth returns the number of brackets line opens minus the number it
// closes.  Brackets inside quotes are not excluded.
func bracketDepth(line string) (depth int) {
	for _, r := range line {
		switch r {
		case '{', '(', '[':
			depth++
		case '}', ')', ']':
			depth--
		}
	}
	return
}

// replCommand runs a `:command` line.  It reports whether the shell should
// exit.
func (a *app) replCommand(line string) bool {
	name, arg, _ := strings.Cut(line, " ")
	arg = strings.TrimSpace(arg)

	var err error
	switch name {
	case ":quit", ":q", ":exit":
		return true
	case ":help", ":h":
		fmt.Fprint(a.stdout, replHelp)
	case ":target", ":t":
		err = a.runTarget([]string{arg})
	case ":reflect", ":r":
		err = a.runReflect([]string{arg})
	case ":shape":
		err = a.replShape(arg)
	case ":vars":
		err = a.runVars()
	default:
		err = fmt.Errorf("unknown command %s (try :help)", name)
	}
	if err != nil {
		a.replError(err)
	}
	return false
}

func (a *app) replShape(raw string) error {
	shape, err := target.Classify(raw)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.stdout, "%v %v\n", shape.Type, shape.Kinds())
	return nil
}

func (a *app) replEval(src string) {
	if err := a.env.session.Exec(replFilename, strings.NewReader(src+"\n")); err != nil {
		a.replError(err)
	}
}

func (a *app) replError(err error) {
	fmt.Fprintf(a.stderr, "error: %v\n", err)
	a.env.logger.Debug().Err(err).Msg("repl")

	var evalErr *starlark.EvalError
	if errors.As(err, &evalErr) && a.env.logger.GetLevel() <= zerolog.DebugLevel {
		fmt.Fprintln(a.stderr, evalErr.Backtrace())
	}
}
