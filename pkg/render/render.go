package render

import (
	"fmt"
	"io"
	"sort"

	"github.com/stackb/inspect/pkg/target"
)

const (
	FormatText  = "text"
	FormatJSON  = "json"
	FormatDebug = "debug"
)

// Formats returns the names of the supported output formats.
func Formats() []string {
	return []string{FormatDebug, FormatJSON, FormatText}
}

// Binding is a scope variable as listed by Renderer.Bindings.
type Binding struct {
	Name        string
	Value       any
	Inspectable bool
}

// Renderer writes resolution results for a user.
type Renderer interface {
	// Descriptor writes the resolution of raw by Resolver.ResolveTarget.
	Descriptor(w io.Writer, raw string, d target.Descriptor) error
	// Reflectable writes the resolution of raw by
	// Resolver.ResolveReflectable.
	Reflectable(w io.Writer, raw string, r target.Reflectable) error
	// Bindings writes a listing of scope variables.
	Bindings(w io.Writer, bindings []Binding) error
}

// New returns the renderer for the named format.
func New(format string) (Renderer, error) {
	switch format {
	case FormatText, "":
		return &Text{}, nil
	case FormatJSON:
		return &JSON{}, nil
	case FormatDebug:
		return NewDebug(), nil
	}
	return nil, fmt.Errorf("unknown output format %q (want one of %v)", format, Formats())
}

// SortBindings orders bindings by name.
func SortBindings(bindings []Binding) {
	sort.Slice(bindings, func(i, j int) bool {
		return bindings[i].Name < bindings[j].Name
	})
}
