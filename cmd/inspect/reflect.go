package main

import (
	"github.com/spf13/cobra"
)

func newReflectCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "reflect SPEC...",
		Short: "Resolve a whole class, function or instance",
		Long: `Resolves each specifier to a class or function name, or to the object
bound to a variable.  Member specifiers are rejected.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runReflect(args)
		},
	}
}

func (a *app) runReflect(args []string) error {
	for _, raw := range args {
		rf, err := a.env.resolver.ResolveReflectable(raw)
		if err != nil {
			return err
		}
		if err := a.env.renderer.Reflectable(a.stdout, raw, rf); err != nil {
			return err
		}
	}
	return nil
}
