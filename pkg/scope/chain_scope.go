package scope

// ChainScope implements Accessor over a chain of scopes.  Earlier scopes
// shadow later ones.
type ChainScope struct {
	chain []Accessor
}

func NewChainScope(chain ...Accessor) *ChainScope {
	return &ChainScope{
		chain: chain,
	}
}

// Lookup implements part of the Accessor interface.
func (r *ChainScope) Lookup(name string) (any, bool) {
	for _, next := range r.chain {
		if value, ok := next.Lookup(name); ok {
			return value, true
		}
	}
	return nil, false
}

// Bindings implements part of the Accessor interface.
func (r *ChainScope) Bindings() map[string]any {
	all := make(map[string]any)
	for i := len(r.chain) - 1; i >= 0; i-- {
		for name, value := range r.chain[i].Bindings() {
			all[name] = value
		}
	}
	return all
}
