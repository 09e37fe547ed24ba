package target

// ReflectableType says how a Reflectable should be inspected.
type ReflectableType int

const (
	ReflectableUnknown ReflectableType = iota
	// ReflectableName is a class or function to be reflected by name.
	ReflectableName
	// ReflectableInstance is a live object to be reflected as an instance.
	ReflectableInstance
	// ReflectableOpaque is a plain value that is shown but not reflected.
	ReflectableOpaque
)

// String implements fmt.Stringer
func (t ReflectableType) String() string {
	switch t {
	case ReflectableName:
		return "name"
	case ReflectableInstance:
		return "instance"
	case ReflectableOpaque:
		return "opaque"
	}
	return "unknown"
}

// Reflectable is a whole class, function or instance, without a member.
type Reflectable struct {
	Type ReflectableType
	// Name is set for ReflectableName.
	Name string
	// Variable is the scope variable for ReflectableInstance and
	// ReflectableOpaque.
	Variable string
	// Value is the live scope value for ReflectableInstance and
	// ReflectableOpaque.
	Value any
}

// String implements fmt.Stringer
func (r Reflectable) String() string {
	if r.Type == ReflectableName {
		return r.Name
	}
	return "$" + r.Variable
}
