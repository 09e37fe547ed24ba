package target

import "fmt"

// NotInspectableError is returned when a `$name` reference is bound to a
// plain value where an object is required.
type NotInspectableError struct {
	// Name is the variable name without the leading `$`.
	Name string
}

func (e *NotInspectableError) Error() string {
	return fmt.Sprintf("Unable to inspect a non-object: $%s", e.Name)
}
