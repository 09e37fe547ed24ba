package target

import "fmt"

// UnsupportedTargetError is returned when a target specifier is well formed
// but its shape cannot be used by the requested operation, such as a member
// reference where only a whole class or instance is accepted.
type UnsupportedTargetError struct {
	// Raw is the trimmed specifier.
	Raw string
	// Shape is the shape that was matched.
	Shape ShapeType
}

func (e *UnsupportedTargetError) Error() string {
	return fmt.Sprintf("Unsupported target: %s (%v)", e.Raw, e.Shape)
}
