package target

import "fmt"

// UnknownTargetError is returned when a target specifier matches none of the
// recognized shapes.
type UnknownTargetError struct {
	// Raw is the trimmed specifier.
	Raw string
}

func (e *UnknownTargetError) Error() string {
	return fmt.Sprintf("Unknown target: %s", e.Raw)
}
