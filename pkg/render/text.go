package render

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/stackb/inspect/pkg/target"
)

// Text renders human readable output.
type Text struct{}

// Descriptor implements part of the Renderer interface.
func (r *Text) Descriptor(w io.Writer, raw string, d target.Descriptor) error {
	tw := tabwriter.NewWriter(w, 0, 4, 1, ' ', 0)
	fmt.Fprintf(tw, "target:\t%s\n", raw)
	fmt.Fprintf(tw, "subject:\t%s\n", subjectText(d.Subject))
	if d.HasMember() {
		fmt.Fprintf(tw, "member:\t%s\n", d.Member)
		fmt.Fprintf(tw, "kinds:\t%v\n", d.Kinds)
	}
	return tw.Flush()
}

// Reflectable implements part of the Renderer interface.
func (r *Text) Reflectable(w io.Writer, raw string, rf target.Reflectable) error {
	tw := tabwriter.NewWriter(w, 0, 4, 1, ' ', 0)
	fmt.Fprintf(tw, "target:\t%s\n", raw)
	fmt.Fprintf(tw, "reflect:\t%v\n", rf.Type)
	switch rf.Type {
	case target.ReflectableName:
		fmt.Fprintf(tw, "name:\t%s\n", rf.Name)
	default:
		typ, repr := Describe(rf.Value)
		fmt.Fprintf(tw, "value:\t$%s = %s (%s)\n", rf.Variable, repr, typ)
	}
	return tw.Flush()
}

// Bindings implements part of the Renderer interface.
func (r *Text) Bindings(w io.Writer, bindings []Binding) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, b := range bindings {
		typ, repr := Describe(b.Value)
		mark := ""
		if b.Inspectable {
			mark = "*"
		}
		fmt.Fprintf(tw, "$%s%s\t%s\t%s\n", b.Name, mark, typ, repr)
	}
	return tw.Flush()
}

func subjectText(s target.Subject) string {
	if !s.IsValue() {
		return s.Name
	}
	typ, repr := Describe(s.Value)
	return fmt.Sprintf("$%s = %s (%s)", s.Variable, repr, typ)
}
