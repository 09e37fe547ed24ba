package main

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestRepl(t *testing.T) {
	for name, tc := range map[string]struct {
		args       []string
		input      []string
		wantOut    []string
		wantErrOut []string
	}{
		"degenerate": {},
		"shape": {
			input:   []string{":shape $obj::CONST", ":shape Foo::$bar"},
			wantOut: []string{"instance_member constant|method\n", "class_static_member property|static_property\n"},
		},
		"scope is live": {
			input: []string{
				":target $obj",
				`obj = struct(name = "widget")`,
				":target $obj->name",
			},
			wantOut: []string{
				"member:  name\nkinds:   method|property\n",
			},
			wantErrOut: []string{"error: Undefined variable: $obj\n"},
		},
		"print": {
			input:   []string{"x = 40 + 2", "print(x)"},
			wantOut: []string{"42\n"},
		},
		"block": {
			input: []string{
				"def make():",
				"    return struct(kind = 'made')",
				"",
				"made = make()",
				":reflect $made",
			},
			wantOut: []string{"reflect: instance\n"},
		},
		"errors do not end the session": {
			input: []string{
				"1 // 0",
				":target not valid",
				":bogus",
				":vars",
				"y = 1",
				":vars",
			},
			wantOut: []string{"$y  int  1\n"},
			wantErrOut: []string{
				"division by zero",
				"error: Unknown target: not valid\n",
				"error: unknown command :bogus (try :help)\n",
			},
		},
		"quit": {
			input:   []string{":quit", ":target Foo"},
			wantOut: []string{"> "},
		},
		"help": {
			input:   []string{":help"},
			wantOut: []string{":target SPEC"},
		},
		"yaegi": {
			args: []string{"--backend", "yaegi"},
			input: []string{
				"type Widget struct{ Name string }",
				`var w = &Widget{Name: "widget"}`,
				":target $w::$Count",
			},
			wantOut: []string{"member:  Count\nkinds:   static_property\n"},
		},
		"yaegi block": {
			args: []string{"--backend", "yaegi"},
			input: []string{
				"type Widget struct {",
				"\tName string",
				"}",
				"func newWidget(name string) *Widget {",
				"\treturn &Widget{Name: name}",
				"}",
				`var w = newWidget("widget")`,
				":reflect $w",
			},
			wantOut: []string{". . > ", "reflect: instance\n"},
		},
		"yaegi errors do not end the session": {
			args: []string{"--backend", "yaegi"},
			input: []string{
				"func mk() int {",
				"\treturn 1",
				"}}",
				"var n = 1",
				":reflect $n",
			},
			wantErrOut: []string{
				"error: <repl>: ",
				"error: Unable to inspect a non-object: $n\n",
			},
		},
		"bracketed block": {
			input: []string{
				"items = [",
				"    1,",
				"    2,",
				"]",
				"print(len(items))",
			},
			wantOut: []string{"> . . . > 2\n"},
		},
		"backtrace at debug level": {
			args:       []string{"--log-level", "debug"},
			input:      []string{"def div(a, b):", "    return a // b", "", "div(1, 0)"},
			wantErrOut: []string{"error: <repl>:", "Traceback (most recent call last):\n", "in div\n"},
		},
		"no backtrace by default": {
			input:      []string{"1 // 0"},
			wantErrOut: []string{"error: <repl>:"},
		},
	} {
		t.Run(name, func(t *testing.T) {
			args := append(append([]string{}, tc.args...), "repl")
			stdin := strings.Join(tc.input, "\n")
			out, errOut, err := runInspect(t, stdin, args...)
			require.NoError(t, err)
			for _, want := range tc.wantOut {
				if !strings.Contains(out, want) {
					t.Errorf("expected stdout to contain %q:\n%s", want, out)
				}
			}
			for _, want := range tc.wantErrOut {
				if !strings.Contains(errOut, want) {
					t.Errorf("expected stderr to contain %q:\n%s", want, errOut)
				}
			}
			if strings.Contains(errOut, "Traceback") && !strings.Contains(strings.Join(tc.args, " "), "debug") {
				t.Errorf("unexpected backtrace:\n%s", errOut)
			}
			if len(tc.wantErrOut) == 0 {
				if diff := cmp.Diff("", errOut); diff != "" {
					t.Errorf("stderr (-want +got):\n%s", diff)
				}
			}
		})
	}
}

func TestReplQuitStopsReading(t *testing.T) {
	out, _, err := runInspect(t, ":quit\n:target Foo\n", "repl")
	require.NoError(t, err)
	if strings.Contains(out, "subject:") {
		t.Errorf("input after :quit was processed:\n%s", out)
	}
}
