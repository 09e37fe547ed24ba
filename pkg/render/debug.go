package render

import (
	"fmt"
	"io"

	"github.com/davecgh/go-spew/spew"

	"github.com/stackb/inspect/pkg/target"
)

// Debug dumps the full result structures, including scope values.
type Debug struct {
	config *spew.ConfigState
}

// NewDebug constructs a Debug renderer with bounded depth so that cyclic or
// very large scope values stay readable.
func NewDebug() *Debug {
	return &Debug{
		config: &spew.ConfigState{
			Indent:                  "  ",
			MaxDepth:                4,
			DisablePointerAddresses: true,
			DisableCapacities:       true,
			SortKeys:                true,
			DisableMethods:          true,
		},
	}
}

// Descriptor implements part of the Renderer interface.
func (r *Debug) Descriptor(w io.Writer, raw string, d target.Descriptor) error {
	fmt.Fprintf(w, "# %s\n", raw)
	r.config.Fdump(w, d)
	return nil
}

// Reflectable implements part of the Renderer interface.
func (r *Debug) Reflectable(w io.Writer, raw string, rf target.Reflectable) error {
	fmt.Fprintf(w, "# %s\n", raw)
	r.config.Fdump(w, rf)
	return nil
}

// Bindings implements part of the Renderer interface.
func (r *Debug) Bindings(w io.Writer, bindings []Binding) error {
	r.config.Fdump(w, bindings)
	return nil
}
