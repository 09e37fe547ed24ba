package render

import (
	"fmt"
	"reflect"
	"unicode/utf8"

	"go.starlark.net/starlark"
)

// maxValueLen bounds the length of a value representation.
const maxValueLen = 80

// Describe returns the type name and a short representation of a scope
// value.
func Describe(v any) (typ, repr string) {
	switch t := v.(type) {
	case nil:
		return "nil", "nil"
	case starlark.Value:
		return t.Type(), truncate(t.String())
	case reflect.Value:
		if !t.IsValid() {
			return "nil", "nil"
		}
		return t.Type().String(), truncate(fmt.Sprintf("%+v", t))
	}
	return fmt.Sprintf("%T", v), truncate(fmt.Sprintf("%+v", v))
}

// truncate shortens s to at most maxValueLen bytes without splitting a
// UTF-8 sequence.
func truncate(s string) string {
	if len(s) <= maxValueLen {
		return s
	}
	n := maxValueLen - 3
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n] + "..."
}
