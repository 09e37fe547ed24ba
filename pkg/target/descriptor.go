package target

// Subject is what a target refers to: either a class or function name, or a
// value taken from the scope.
type Subject struct {
	// Name is the class or function name.  Empty when the subject is a
	// value.
	Name string
	// Variable is the scope variable the value was read from.  Empty when
	// the subject is a name.
	Variable string
	// Value is the live scope value.  It is owned by the scope and is only
	// valid while the current command runs.
	Value any
}

// IsValue reports whether the subject was read from the scope.
func (s Subject) IsValue() bool {
	return s.Variable != ""
}

// String implements fmt.Stringer
func (s Subject) String() string {
	if s.IsValue() {
		return "$" + s.Variable
	}
	return s.Name
}

// Descriptor is the result of resolving a target specifier that may name a
// member.  Kinds narrows the member to a set of candidates; which one
// actually exists is for the reflection layer to decide.
type Descriptor struct {
	// Subject is the class, function or instance the member belongs to.
	Subject Subject
	// Member is the member name, or empty if the specifier names the subject
	// itself.
	Member string
	// Kinds is the set of member kinds the specifier may refer to.
	Kinds Kind
}

// HasMember reports whether the descriptor names a member.
func (d Descriptor) HasMember() bool {
	return d.Member != ""
}

// String implements fmt.Stringer
func (d Descriptor) String() string {
	if !d.HasMember() {
		return d.Subject.String()
	}
	return d.Subject.String() + " " + d.Member + " <" + d.Kinds.String() + ">"
}
