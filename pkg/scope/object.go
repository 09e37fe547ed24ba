package scope

import (
	"reflect"

	"go.starlark.net/starlark"
)

// Object is implemented by values that know whether they can be inspected
// as objects.
type Object interface {
	IsObject() bool
}

// IsObject reports whether v is an object-like value: something with members
// that can be inspected, as opposed to a plain value such as a number, a
// string or a collection.
func IsObject(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case Object:
		return t.IsObject()
	case starlark.Value:
		return isStarlarkObject(t)
	case reflect.Value:
		return isGoObject(t)
	}
	return isGoObject(reflect.ValueOf(v))
}

func isStarlarkObject(v starlark.Value) bool {
	switch v.(type) {
	case starlark.NoneType,
		starlark.Bool,
		starlark.Int,
		starlark.Float,
		starlark.String,
		starlark.Bytes,
		starlark.Tuple,
		*starlark.List,
		*starlark.Dict,
		*starlark.Set:
		return false
	}
	if _, ok := v.(starlark.HasAttrs); ok {
		return true
	}
	_, ok := v.(starlark.Callable)
	return ok
}

func isGoObject(v reflect.Value) bool {
	if !v.IsValid() {
		return false
	}
	switch v.Kind() {
	case reflect.Struct:
		return true
	case reflect.Func:
		return !v.IsNil()
	case reflect.Pointer, reflect.Interface:
		if v.IsNil() {
			return false
		}
		return isGoObject(v.Elem())
	}
	return false
}
