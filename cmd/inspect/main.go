// inspect resolves target specifiers (`Foo`, `$obj->prop`, `Foo::$bar`)
// against a live interpreter session.
package main

import (
	"fmt"
	"os"
)

const executableName = "inspect"

var version = "dev"

func main() {
	cmd := newRootCommand(os.Stdin, os.Stdout, os.Stderr)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s: error: %v\n", executableName, err)
		os.Exit(1)
	}
}
