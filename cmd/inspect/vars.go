package main

import (
	"github.com/spf13/cobra"

	"github.com/stackb/inspect/pkg/render"
	"github.com/stackb/inspect/pkg/scope"
)

func newVarsCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "vars",
		Short: "List the variables in scope; inspectable objects are marked with *",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runVars()
		},
	}
}

func (a *app) runVars() error {
	all := a.env.scope.Bindings()
	bindings := make([]render.Binding, 0, len(all))
	for name, value := range all {
		bindings = append(bindings, render.Binding{
			Name:        name,
			Value:       value,
			Inspectable: scope.IsObject(value),
		})
	}
	render.SortBindings(bindings)
	return a.env.renderer.Bindings(a.stdout, bindings)
}
