package target

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// Priority orders the shape matchers.  Lower values are tried first and the
// first match wins.  New grammars must be given their own priority rather
// than relying on declaration order.
type Priority int

const (
	PriorityClassOrFunction Priority = 10 * (iota + 1)
	PriorityVariable
	PriorityClassMember
	PriorityClassStaticMember
	PriorityInstanceMember
	PriorityInstanceStaticMember
)

var (
	// Foo, Foo\Bar, \Foo\bar_baz
	classOrFunctionRe = regexp.MustCompile(`^[\\\w]+$`)
	// $foo
	variableRe = regexp.MustCompile(`^\$(\w+)$`)
	// Foo::BAR, Foo\Bar::baz
	classMemberRe = regexp.MustCompile(`^([\\\w]+)::(\w+)$`)
	// Foo::$bar
	classStaticMemberRe = regexp.MustCompile(`^([\\\w]+)::\$(\w+)$`)
	// $foo->bar, $foo::BAR
	instanceMemberRe = regexp.MustCompile(`^\$(\w+)(::|->)(\w+)$`)
	// $foo::$bar
	instanceStaticMemberRe = regexp.MustCompile(`^\$(\w+)::\$(\w+)$`)
)

// matcher recognizes a single shape.
type matcher struct {
	priority Priority
	shape    ShapeType
	re       *regexp.Regexp
	// build constructs the shape from the submatches of re.
	build func(m []string) Shape
}

// matchers is sorted by priority at init.
var matchers = mustSortMatchers([]*matcher{
	{
		priority: PriorityClassOrFunction,
		shape:    ShapeClassOrFunction,
		re:       classOrFunctionRe,
		build: func(m []string) Shape {
			return Shape{Type: ShapeClassOrFunction, Subject: m[0]}
		},
	},
	{
		priority: PriorityVariable,
		shape:    ShapeVariable,
		re:       variableRe,
		build: func(m []string) Shape {
			return Shape{Type: ShapeVariable, Subject: m[1]}
		},
	},
	{
		priority: PriorityClassMember,
		shape:    ShapeClassMember,
		re:       classMemberRe,
		build: func(m []string) Shape {
			return Shape{Type: ShapeClassMember, Subject: m[1], Member: m[2]}
		},
	},
	{
		priority: PriorityClassStaticMember,
		shape:    ShapeClassStaticMember,
		re:       classStaticMemberRe,
		build: func(m []string) Shape {
			return Shape{Type: ShapeClassStaticMember, Subject: m[1], Member: m[2]}
		},
	},
	{
		priority: PriorityInstanceMember,
		shape:    ShapeInstanceMember,
		re:       instanceMemberRe,
		build: func(m []string) Shape {
			access := AccessDoubleColon
			if m[2] == "->" {
				access = AccessArrow
			}
			return Shape{Type: ShapeInstanceMember, Subject: m[1], Member: m[3], Access: access}
		},
	},
	{
		priority: PriorityInstanceStaticMember,
		shape:    ShapeInstanceStaticMember,
		re:       instanceStaticMemberRe,
		build: func(m []string) Shape {
			return Shape{Type: ShapeInstanceStaticMember, Subject: m[1], Member: m[2]}
		},
	},
})

func mustSortMatchers(ms []*matcher) []*matcher {
	sort.Slice(ms, func(i, j int) bool {
		return ms[i].priority < ms[j].priority
	})
	for i := 1; i < len(ms); i++ {
		if ms[i].priority == ms[i-1].priority {
			panic(fmt.Sprintf("duplicate target matcher priority %d (%v, %v)", ms[i].priority, ms[i-1].shape, ms[i].shape))
		}
	}
	return ms
}

// Classify determines the shape of the given target specifier.  Leading and
// trailing whitespace is ignored.  If no shape matches, an
// *UnknownTargetError is returned.
func Classify(raw string) (Shape, error) {
	value := strings.TrimSpace(raw)
	for _, m := range matchers {
		if match := m.re.FindStringSubmatch(value); match != nil {
			return m.build(match), nil
		}
	}
	return Shape{}, &UnknownTargetError{Raw: value}
}
