package scope

// Accessor is the view of an interactive session that target resolution
// depends on.
type Accessor interface {
	// Lookup returns the value currently bound to name.  If there is no such
	// binding `(nil, false)` is returned.  The value is live: it reflects the
	// state of the session at the time of the call.
	Lookup(name string) (any, bool)

	// Bindings returns all current bindings, keyed by variable name.
	Bindings() map[string]any
}
