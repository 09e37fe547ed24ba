package scope

import (
	"reflect"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.starlark.net/starlark"
	"go.starlark.net/starlarkstruct"
)

type widget struct {
	Name string
}

type selfDescribing bool

func (s selfDescribing) IsObject() bool { return bool(s) }

func TestIsObject(t *testing.T) {
	var nilWidget *widget
	var nilFunc func()

	for name, tc := range map[string]struct {
		value any
		want  bool
	}{
		"degenerate":          {},
		"int":                 {value: 42},
		"string":              {value: "hello"},
		"slice":               {value: []int{1, 2}},
		"map":                 {value: map[string]int{"a": 1}},
		"struct":              {value: widget{Name: "a"}, want: true},
		"struct pointer":      {value: &widget{Name: "a"}, want: true},
		"nil struct pointer":  {value: nilWidget},
		"int pointer":         {value: new(int)},
		"func":                {value: func() {}, want: true},
		"nil func":            {value: nilFunc},
		"reflect.Value":       {value: reflect.ValueOf(widget{}), want: true},
		"reflect.Value int":   {value: reflect.ValueOf(1)},
		"self-describing yes": {value: selfDescribing(true), want: true},
		"self-describing no":  {value: selfDescribing(false)},
		"starlark none":       {value: starlark.None},
		"starlark int":        {value: starlark.MakeInt(42)},
		"starlark string":     {value: starlark.String("x")},
		"starlark list":       {value: starlark.NewList(nil)},
		"starlark dict":       {value: starlark.NewDict(0)},
		"starlark tuple":      {value: starlark.Tuple{}},
		"starlark struct": {
			value: starlarkstruct.FromStringDict(starlarkstruct.Default, starlark.StringDict{}),
			want:  true,
		},
		"starlark builtin": {
			value: starlark.NewBuiltin("noop", func(*starlark.Thread, *starlark.Builtin, starlark.Tuple, []starlark.Tuple) (starlark.Value, error) {
				return starlark.None, nil
			}),
			want: true,
		},
	} {
		t.Run(name, func(t *testing.T) {
			got := IsObject(tc.value)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}

func TestMapScope(t *testing.T) {
	s := NewMapScope(map[string]any{
		"b":   2,
		"a":   1,
		"nil": nil,
	})

	for name, tc := range map[string]struct {
		name   string
		want   any
		wantOk bool
	}{
		"degenerate": {},
		"miss":       {name: "c"},
		"hit":        {name: "a", want: 1, wantOk: true},
		"nil value":  {name: "nil", wantOk: true},
		"prefix":     {name: "ni"},
	} {
		t.Run(name, func(t *testing.T) {
			got, ok := s.Lookup(tc.name)
			if diff := cmp.Diff(tc.wantOk, ok); diff != "" {
				t.Errorf("ok (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("value (-want +got):\n%s", diff)
			}
		})
	}

	s.Put("a", "replaced")
	if got, _ := s.Lookup("a"); got != "replaced" {
		t.Errorf("put did not replace binding: got %v", got)
	}
	if diff := cmp.Diff(map[string]any{"a": "replaced", "b": 2, "nil": nil}, s.Bindings()); diff != "" {
		t.Errorf("bindings (-want +got):\n%s", diff)
	}
}

func TestChainScope(t *testing.T) {
	front := NewMapScope(map[string]any{"x": "front"})
	back := NewMapScope(map[string]any{"x": "back", "y": "back"})

	for name, tc := range map[string]struct {
		scopes []Accessor
		name   string
		want   any
	}{
		"degenerate": {},
		"miss": {
			scopes: []Accessor{front, back},
			name:   "z",
		},
		"shadowed": {
			scopes: []Accessor{front, back},
			name:   "x",
			want:   "front",
		},
		"falls through": {
			scopes: []Accessor{front, back},
			name:   "y",
			want:   "back",
		},
	} {
		t.Run(name, func(t *testing.T) {
			got, _ := NewChainScope(tc.scopes...).Lookup(tc.name)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}

	want := map[string]any{"x": "front", "y": "back"}
	if diff := cmp.Diff(want, NewChainScope(front, back).Bindings()); diff != "" {
		t.Errorf("bindings (-want +got):\n%s", diff)
	}
}
