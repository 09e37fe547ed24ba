package target

import (
	"strings"

	"github.com/rs/zerolog"

	"github.com/stackb/inspect/pkg/scope"
)

// ResolverOption is a function that configures a Resolver.
type ResolverOption func(r *Resolver) *Resolver

// WithLogger assigns the logger used for debug output.
func WithLogger(logger zerolog.Logger) ResolverOption {
	return func(r *Resolver) *Resolver {
		r.logger = logger
		return r
	}
}

// WithOpaqueValues makes ResolveReflectable return plain values as
// ReflectableOpaque instead of failing with a *NotInspectableError.
func WithOpaqueValues(opaque bool) ResolverOption {
	return func(r *Resolver) *Resolver {
		r.opaque = opaque
		return r
	}
}

// WithObjectPredicate replaces scope.IsObject as the test for object-like
// values.
func WithObjectPredicate(isObject func(any) bool) ResolverOption {
	return func(r *Resolver) *Resolver {
		r.isObject = isObject
		return r
	}
}

// Resolver turns target specifiers into subjects, reading variables from a
// scope.  It holds no state of its own between calls.
type Resolver struct {
	scope    scope.Accessor
	logger   zerolog.Logger
	opaque   bool
	isObject func(any) bool
}

// NewResolver constructs a new Resolver reading variables from the given
// scope.  A nil scope has no bindings.
func NewResolver(s scope.Accessor, options ...ResolverOption) *Resolver {
	if s == nil {
		s = scope.NewMapScope(nil)
	}
	r := &Resolver{
		scope:    s,
		logger:   zerolog.Nop(),
		isObject: scope.IsObject,
	}
	for _, opt := range options {
		r = opt(r)
	}
	return r
}

// ResolveReflectable resolves a specifier for a whole class, function or
// instance.  Member specifiers fail with an *UnsupportedTargetError.
func (r *Resolver) ResolveReflectable(raw string) (Reflectable, error) {
	shape, err := Classify(raw)
	if err != nil {
		return Reflectable{}, err
	}
	r.logger.Debug().Str("target", raw).Stringer("shape", shape.Type).Msg("classified")

	switch shape.Type {
	case ShapeClassOrFunction:
		return Reflectable{Type: ReflectableName, Name: shape.Subject}, nil
	case ShapeVariable:
		value, err := r.lookupVariable(shape.Subject)
		if err != nil {
			return Reflectable{}, err
		}
		if !r.isObject(value) {
			if !r.opaque {
				return Reflectable{}, &NotInspectableError{Name: shape.Subject}
			}
			return Reflectable{Type: ReflectableOpaque, Variable: shape.Subject, Value: value}, nil
		}
		return Reflectable{Type: ReflectableInstance, Variable: shape.Subject, Value: value}, nil
	}

	return Reflectable{}, &UnsupportedTargetError{Raw: strings.TrimSpace(raw), Shape: shape.Type}
}

// ResolveTarget resolves a specifier for a class, function, instance, or a
// member of one of those.
func (r *Resolver) ResolveTarget(raw string) (Descriptor, error) {
	shape, err := Classify(raw)
	if err != nil {
		return Descriptor{}, err
	}
	r.logger.Debug().Str("target", raw).Stringer("shape", shape.Type).Msg("classified")

	desc := Descriptor{
		Member: shape.Member,
		Kinds:  shape.Kinds(),
	}

	if !shape.IsVariable() {
		desc.Subject = Subject{Name: shape.Subject}
		return desc, nil
	}

	value, err := r.resolveInstance(shape.Subject)
	if err != nil {
		return Descriptor{}, err
	}
	desc.Subject = Subject{Variable: shape.Subject, Value: value}

	return desc, nil
}

// resolveInstance returns the object bound to the named variable.
func (r *Resolver) resolveInstance(name string) (any, error) {
	value, err := r.lookupVariable(name)
	if err != nil {
		return nil, err
	}
	if !r.isObject(value) {
		return nil, &NotInspectableError{Name: name}
	}
	return value, nil
}

func (r *Resolver) lookupVariable(name string) (any, error) {
	value, ok := r.scope.Lookup(name)
	if !ok {
		r.logger.Debug().Str("variable", name).Msg("unresolved")
		return nil, &UnresolvedVariableError{Name: name}
	}
	return value, nil
}
