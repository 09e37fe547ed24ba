package scope

import (
	"github.com/dghubble/trie"
)

// MapScope implements Accessor over a fixed set of bindings, such as values
// given on the command line.
type MapScope struct {
	bindings *trie.RuneTrie
}

// NewMapScope constructs a new MapScope holding the given bindings.
func NewMapScope(bindings map[string]any) *MapScope {
	s := &MapScope{
		bindings: trie.NewRuneTrie(),
	}
	for name, value := range bindings {
		s.Put(name, value)
	}
	return s
}

// Put binds name to value, replacing any previous binding.
func (s *MapScope) Put(name string, value any) {
	s.bindings.Put(name, &binding{value})
}

// Lookup implements part of the Accessor interface.
func (s *MapScope) Lookup(name string) (any, bool) {
	if name == "" {
		return nil, false
	}
	b, ok := s.bindings.Get(name).(*binding)
	if !ok {
		return nil, false
	}
	return b.value, true
}

// Bindings implements part of the Accessor interface.
func (s *MapScope) Bindings() map[string]any {
	all := make(map[string]any)
	s.bindings.Walk(func(key string, value interface{}) error {
		all[key] = value.(*binding).value
		return nil
	})
	return all
}

// binding boxes a value so that a nil value can still be stored in the trie,
// which treats a nil value as "no entry".
type binding struct {
	value any
}
