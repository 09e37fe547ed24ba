package target

import "fmt"

// UnresolvedVariableError is returned when a `$name` reference has no binding
// in the current scope.
type UnresolvedVariableError struct {
	// Name is the variable name without the leading `$`.
	Name string
}

func (e *UnresolvedVariableError) Error() string {
	return fmt.Sprintf("Undefined variable: $%s", e.Name)
}
