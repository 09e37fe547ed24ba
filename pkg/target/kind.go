package target

import "strings"

// Kind is a set of member kinds that a target may refer to.  The bit values
// are stable: downstream consumers test membership with a bitwise AND.
type Kind uint8

const (
	// KindConstant is a class constant.
	KindConstant Kind = 1 << iota
	// KindMethod is an instance or static method.
	KindMethod
	// KindProperty is an instance property.
	KindProperty
	// KindStaticProperty is a static property.
	KindStaticProperty
)

// KindNone is the empty set.
const KindNone Kind = 0

var kindNames = []struct {
	kind Kind
	name string
}{
	{KindConstant, "constant"},
	{KindMethod, "method"},
	{KindProperty, "property"},
	{KindStaticProperty, "static_property"},
}

// Has reports whether every kind in other is also in k.
func (k Kind) Has(other Kind) bool {
	return k&other == other
}

// Kinds returns the individual kinds in k, lowest bit first.
func (k Kind) Kinds() (kinds []Kind) {
	for _, kn := range kindNames {
		if k&kn.kind != 0 {
			kinds = append(kinds, kn.kind)
		}
	}
	return
}

// Names returns the names of the individual kinds in k.
func (k Kind) Names() (names []string) {
	for _, kn := range kindNames {
		if k&kn.kind != 0 {
			names = append(names, kn.name)
		}
	}
	return
}

// String implements fmt.Stringer
func (k Kind) String() string {
	if k == KindNone {
		return "none"
	}
	return strings.Join(k.Names(), "|")
}
