package render

import (
	"fmt"
	"io"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/stackb/inspect/pkg/target"
)

var jsonOptions = protojson.MarshalOptions{
	Multiline: true,
	Indent:    "  ",
}

// JSON renders each result as a JSON object.  Kinds are written both as the
// stable bit mask and as a list of names.
type JSON struct{}

// Descriptor implements part of the Renderer interface.
func (r *JSON) Descriptor(w io.Writer, raw string, d target.Descriptor) error {
	fields := map[string]any{
		"target":  raw,
		"subject": subjectFields(d.Subject),
	}
	if d.HasMember() {
		fields["member"] = d.Member
		fields["kind_mask"] = int(d.Kinds)
		fields["kinds"] = stringList(d.Kinds.Names())
	}
	return writeStruct(w, fields)
}

// Reflectable implements part of the Renderer interface.
func (r *JSON) Reflectable(w io.Writer, raw string, rf target.Reflectable) error {
	fields := map[string]any{
		"target":  raw,
		"reflect": rf.Type.String(),
	}
	if rf.Type == target.ReflectableName {
		fields["name"] = rf.Name
	} else {
		fields["variable"] = rf.Variable
		fields["value"] = valueFields(rf.Value)
	}
	return writeStruct(w, fields)
}

// Bindings implements part of the Renderer interface.
func (r *JSON) Bindings(w io.Writer, bindings []Binding) error {
	list := make([]any, len(bindings))
	for i, b := range bindings {
		item := valueFields(b.Value)
		item["name"] = b.Name
		item["inspectable"] = b.Inspectable
		list[i] = item
	}
	return writeStruct(w, map[string]any{"bindings": list})
}

func subjectFields(s target.Subject) map[string]any {
	if !s.IsValue() {
		return map[string]any{"name": s.Name}
	}
	return map[string]any{
		"variable": s.Variable,
		"value":    valueFields(s.Value),
	}
}

func valueFields(v any) map[string]any {
	typ, repr := Describe(v)
	return map[string]any{
		"type": typ,
		"repr": repr,
	}
}

func stringList(in []string) []any {
	out := make([]any, len(in))
	for i, s := range in {
		out[i] = s
	}
	return out
}

func writeStruct(w io.Writer, fields map[string]any) error {
	msg, err := structpb.NewStruct(fields)
	if err != nil {
		return fmt.Errorf("encoding result: %w", err)
	}
	data, err := jsonOptions.Marshal(msg)
	if err != nil {
		return fmt.Errorf("encoding result: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return err
	}
	_, err = io.WriteString(w, "\n")
	return err
}
