package target

import "fmt"

// ShapeType is the syntactic shape of a target specifier.
type ShapeType int

const (
	ShapeUnknown ShapeType = iota
	// ShapeClassOrFunction is a bare or namespaced name: `Foo`, `Foo\Bar`.
	ShapeClassOrFunction
	// ShapeVariable is a scope variable: `$foo`.
	ShapeVariable
	// ShapeClassMember is a constant or method of a class: `Foo::bar`.
	ShapeClassMember
	// ShapeClassStaticMember is a static property of a class: `Foo::$bar`.
	ShapeClassStaticMember
	// ShapeInstanceMember is a member of a scope variable: `$foo->bar` or
	// `$foo::bar`.
	ShapeInstanceMember
	// ShapeInstanceStaticMember is a static property reached through a scope
	// variable: `$foo::$bar`.
	ShapeInstanceStaticMember
)

var shapeTypeNames = map[ShapeType]string{
	ShapeUnknown:              "unknown",
	ShapeClassOrFunction:      "class_or_function",
	ShapeVariable:             "variable",
	ShapeClassMember:          "class_member",
	ShapeClassStaticMember:    "class_static_member",
	ShapeInstanceMember:       "instance_member",
	ShapeInstanceStaticMember: "instance_static_member",
}

// String implements fmt.Stringer
func (t ShapeType) String() string {
	if name, ok := shapeTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("ShapeType(%d)", int(t))
}

// Access is the member access operator of an instance member.
type Access int

const (
	AccessNone Access = iota
	// AccessArrow is `->`: a method or property of the instance.
	AccessArrow
	// AccessDoubleColon is `::`: a constant or method of the instance's
	// class.
	AccessDoubleColon
)

// String implements fmt.Stringer
func (a Access) String() string {
	switch a {
	case AccessArrow:
		return "->"
	case AccessDoubleColon:
		return "::"
	}
	return ""
}

// Shape is the classification of a target specifier.
type Shape struct {
	// Type is the kind of shape matched.
	Type ShapeType
	// Subject is the class or function name, or the variable name without
	// the leading `$`.
	Subject string
	// Member is the member name without any leading `$`, or empty.
	Member string
	// Access is the operator of an instance member.
	Access Access
}

// IsVariable reports whether the subject of the shape is a scope variable.
func (s Shape) IsVariable() bool {
	switch s.Type {
	case ShapeVariable, ShapeInstanceMember, ShapeInstanceStaticMember:
		return true
	}
	return false
}

// Kinds returns the candidate member kinds for the shape.
func (s Shape) Kinds() Kind {
	switch s.Type {
	case ShapeClassMember:
		return KindConstant | KindMethod
	case ShapeClassStaticMember:
		return KindStaticProperty | KindProperty
	case ShapeInstanceMember:
		if s.Access == AccessArrow {
			return KindMethod | KindProperty
		}
		return KindConstant | KindMethod
	case ShapeInstanceStaticMember:
		return KindStaticProperty
	}
	return KindNone
}

// String implements fmt.Stringer
func (s Shape) String() string {
	switch s.Type {
	case ShapeClassOrFunction:
		return s.Subject
	case ShapeVariable:
		return "$" + s.Subject
	case ShapeClassMember:
		return s.Subject + "::" + s.Member
	case ShapeClassStaticMember:
		return s.Subject + "::$" + s.Member
	case ShapeInstanceMember:
		return "$" + s.Subject + s.Access.String() + s.Member
	case ShapeInstanceStaticMember:
		return "$" + s.Subject + "::$" + s.Member
	}
	return ""
}
