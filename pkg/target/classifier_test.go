package target

import (
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestClassify(t *testing.T) {
	for name, tc := range map[string]struct {
		raw     string
		want    Shape
		wantErr string
	}{
		"degenerate": {
			wantErr: "Unknown target: ",
		},
		"class": {
			raw:  "Foo",
			want: Shape{Type: ShapeClassOrFunction, Subject: "Foo"},
		},
		"function": {
			raw:  "array_map",
			want: Shape{Type: ShapeClassOrFunction, Subject: "array_map"},
		},
		"namespaced class": {
			raw:  `\Psy\Shell`,
			want: Shape{Type: ShapeClassOrFunction, Subject: `\Psy\Shell`},
		},
		"surrounding whitespace": {
			raw:  "  Foo\t\n",
			want: Shape{Type: ShapeClassOrFunction, Subject: "Foo"},
		},
		"variable": {
			raw:  "$foo",
			want: Shape{Type: ShapeVariable, Subject: "foo"},
		},
		"class member": {
			raw:  "Foo::bar",
			want: Shape{Type: ShapeClassMember, Subject: "Foo", Member: "bar"},
		},
		"namespaced class member": {
			raw:  `Foo\Bar::BAZ`,
			want: Shape{Type: ShapeClassMember, Subject: `Foo\Bar`, Member: "BAZ"},
		},
		"class static member": {
			raw:  "Foo::$bar",
			want: Shape{Type: ShapeClassStaticMember, Subject: "Foo", Member: "bar"},
		},
		"instance arrow member": {
			raw:  "$obj->prop",
			want: Shape{Type: ShapeInstanceMember, Subject: "obj", Member: "prop", Access: AccessArrow},
		},
		"instance double colon member": {
			raw:  "$obj::CONST",
			want: Shape{Type: ShapeInstanceMember, Subject: "obj", Member: "CONST", Access: AccessDoubleColon},
		},
		"instance static member": {
			raw:  "$obj::$prop",
			want: Shape{Type: ShapeInstanceStaticMember, Subject: "obj", Member: "prop"},
		},
		"spaces inside": {
			raw:     "not a valid target!!",
			wantErr: "Unknown target: not a valid target!!",
		},
		"nested member chain": {
			raw:     "$a->b->c",
			wantErr: "Unknown target: $a->b->c",
		},
		"arrow on class": {
			raw:     "Foo->bar",
			wantErr: "Unknown target: Foo->bar",
		},
		"arrow to static": {
			raw:     "$foo->$bar",
			wantErr: "Unknown target: $foo->$bar",
		},
		"bare dollar": {
			raw:     "$",
			wantErr: "Unknown target: $",
		},
		"call syntax": {
			raw:     "foo()",
			wantErr: "Unknown target: foo()",
		},
		"namespaced variable": {
			raw:     `$foo\bar`,
			wantErr: `Unknown target: $foo\bar`,
		},
	} {
		t.Run(name, func(t *testing.T) {
			got, err := Classify(tc.raw)
			if tc.wantErr != "" {
				if err == nil {
					t.Fatalf("expected error %q, got shape %+v", tc.wantErr, got)
				}
				if _, ok := err.(*UnknownTargetError); !ok {
					t.Fatalf("expected *UnknownTargetError, got %T", err)
				}
				if diff := cmp.Diff(tc.wantErr, err.Error()); diff != "" {
					t.Errorf("error (-want +got):\n%s", diff)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}

func TestMatcherPriority(t *testing.T) {
	want := []ShapeType{
		ShapeClassOrFunction,
		ShapeVariable,
		ShapeClassMember,
		ShapeClassStaticMember,
		ShapeInstanceMember,
		ShapeInstanceStaticMember,
	}
	var got []ShapeType
	for _, m := range matchers {
		got = append(got, m.shape)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if !sort.SliceIsSorted(matchers, func(i, j int) bool {
		return matchers[i].priority < matchers[j].priority
	}) {
		t.Error("matchers are not sorted by priority")
	}
}

func TestMustSortMatchersDuplicatePriority(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic on duplicate priority")
		}
	}()
	mustSortMatchers([]*matcher{
		{priority: PriorityVariable, shape: ShapeVariable},
		{priority: PriorityVariable, shape: ShapeClassMember},
	})
}

func TestShapeString(t *testing.T) {
	for _, raw := range []string{
		"Foo",
		`\Foo\Bar`,
		"$foo",
		"Foo::bar",
		"Foo::$bar",
		"$foo->bar",
		"$foo::BAR",
		"$foo::$bar",
	} {
		t.Run(raw, func(t *testing.T) {
			shape, err := Classify(raw)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(raw, shape.String()); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}
