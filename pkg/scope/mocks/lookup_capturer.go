package mocks

import (
	"testing"

	mock "github.com/stretchr/testify/mock"
)

// LookupCapturer records the names passed to Accessor.Lookup and answers
// from a fixed set of bindings.
type LookupCapturer struct {
	Accessor *Accessor
	Got      []string
	bindings map[string]interface{}
}

func (c *LookupCapturer) capture(name string) bool {
	c.Got = append(c.Got, name)
	return true
}

func (c *LookupCapturer) lookup(name string) (interface{}, bool) {
	value, ok := c.bindings[name]
	return value, ok
}

func NewLookupCapturer(t *testing.T, bindings map[string]interface{}) *LookupCapturer {
	c := &LookupCapturer{
		Accessor: NewAccessor(t),
		bindings: bindings,
	}

	c.Accessor.
		On("Lookup", mock.MatchedBy(c.capture)).
		Maybe().
		Return(c.lookup, false)

	return c
}
