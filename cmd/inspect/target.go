package main

import (
	"github.com/spf13/cobra"
)

func newTargetCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "target SPEC...",
		Short: "Resolve class, function, variable or member specifiers",
		Long: `Resolves each specifier to a subject, an optional member name and the
set of member kinds it may refer to:

  Foo, Foo\Bar      class or function
  $obj              variable
  Foo::bar          constant or method
  Foo::$bar         static property
  $obj->bar         method or property
  $obj::BAR         constant or method
  $obj::$bar        static property`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runTarget(args)
		},
	}
}

func (a *app) runTarget(args []string) error {
	for _, raw := range args {
		desc, err := a.env.resolver.ResolveTarget(raw)
		if err != nil {
			return err
		}
		if err := a.env.renderer.Descriptor(a.stdout, raw, desc); err != nil {
			return err
		}
	}
	return nil
}
