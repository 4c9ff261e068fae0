package serializer

import (
	"encoding/json"
	"testing"

	renderbridge "github.com/wippyai/render-bridge"
	"github.com/wippyai/render-bridge/expr"
	"github.com/wippyai/render-bridge/render"
)

func roundTrip[T any](t *testing.T, s *Serializer, value T, kind Kind) T {
	t.Helper()
	plain, err := s.Serialize(value, kind)
	if err != nil {
		t.Fatalf("Serialize: %v", err)
	}
	if err := renderbridge.CheckPlain(plain); err != nil {
		t.Fatalf("Serialize output is not plain: %v", err)
	}
	got, err := DeserializeAs[T](s, plain, kind, ModeNone)
	if err != nil {
		t.Fatalf("Deserialize: %v", err)
	}
	return got
}

// viaJSON simulates a structured-clone style transport.
func viaJSON(t *testing.T, plain any) any {
	t.Helper()
	data, err := json.Marshal(plain)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var out any
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	return out
}

func TestViewDefinition_WireShape(t *testing.T) {
	s := New(nil)
	view := render.ViewDefinition{
		ComponentID: "c1",
		Template:    "<div></div>",
		Directives:  []render.DirectiveMetadata{},
	}

	plain, err := s.Serialize(view, KindViewDefinition)
	if err != nil {
		t.Fatalf("Serialize: %v", err)
	}
	assertEqual(t, plain, map[string]any{
		"componentId":    "c1",
		"templateAbsUrl": nil,
		"template":       "<div></div>",
		"directives":     []any{},
		"styleAbsUrls":   nil,
		"styles":         nil,
	})

	got, err := DeserializeAs[render.ViewDefinition](s, plain, KindViewDefinition, ModeNone)
	if err != nil {
		t.Fatalf("Deserialize: %v", err)
	}
	assertEqual(t, got, view)
}

func TestViewDefinition_RoundTrip(t *testing.T) {
	s := New(nil)
	view := sampleViewDefinition()
	assertEqual(t, roundTrip(t, s, view, KindViewDefinition), view)
}

func TestViewDefinition_Pointer(t *testing.T) {
	s := New(nil)
	view := sampleViewDefinition()

	fromValue, err := s.Serialize(view, KindViewDefinition)
	if err != nil {
		t.Fatal(err)
	}
	fromPointer, err := s.Serialize(&view, KindViewDefinition)
	if err != nil {
		t.Fatal(err)
	}
	assertEqual(t, fromPointer, fromValue)
}

func TestSerialize_OutputDoesNotAliasInput(t *testing.T) {
	s := New(nil)
	view := sampleViewDefinition()
	view.Styles = []string{"a { }"}

	plain, err := s.Serialize(view, KindViewDefinition)
	if err != nil {
		t.Fatal(err)
	}
	obj := plain.(map[string]any)
	obj["styles"].([]string)[0] = "changed"
	obj["styleAbsUrls"].([]string)[0] = "changed"

	dirs := obj["directives"].([]any)
	meta := dirs[0].(map[string]any)
	meta["properties"].([]string)[0] = "changed"
	meta["events"].([]string)[0] = "changed"
	meta["hostProperties"].(map[string]any)["title"] = "changed"

	assertEqual(t, view.Styles, []string{"a { }"})
	assertEqual(t, view.StyleAbsURLs, sampleViewDefinition().StyleAbsURLs)
	assertEqual(t, view.Directives[0], sampleDirectiveMetadata())
}

func TestDirectiveMetadata_RoundTrip(t *testing.T) {
	s := New(nil)
	tests := []struct {
		name string
		meta render.DirectiveMetadata
	}{
		{"full", sampleDirectiveMetadata()},
		{"zero", render.DirectiveMetadata{}},
		{"directive type", render.DirectiveMetadata{ID: "d", Type: render.DirectiveTypeDirective, CallOnCheck: true, CallOnAllChangesDone: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertEqual(t, roundTrip(t, s, tt.meta, KindDirectiveMetadata), tt.meta)
		})
	}
}

func TestDirectiveMetadata_WireKeys(t *testing.T) {
	s := New(nil)
	plain, err := s.Serialize(sampleDirectiveMetadata(), KindDirectiveMetadata)
	if err != nil {
		t.Fatal(err)
	}
	obj := plain.(map[string]any)

	keys := []string{
		"id", "selector", "compileChildren", "hostProperties", "hostListeners",
		"hostActions", "hostAttributes", "properties", "readAttributes", "type",
		"exportAs", "callOnDestroy", "callOnCheck", "callOnInit",
		"callOnAllChangesDone", "changeDetection", "events",
	}
	if len(obj) != len(keys) {
		t.Errorf("plain has %d keys, want %d: %v", len(obj), len(keys), obj)
	}
	for _, k := range keys {
		if _, ok := obj[k]; !ok {
			t.Errorf("missing key %q", k)
		}
	}
	assertEqual(t, obj["hostProperties"], map[string]any{"title": "name"})
	assertEqual(t, obj["hostAttributes"], nil)
	if obj["type"] != int(render.DirectiveTypeComponent) {
		t.Errorf("type = %v, want %d", obj["type"], render.DirectiveTypeComponent)
	}
}

func TestProtoViewDto_RoundTrip(t *testing.T) {
	p := &recordingParser{}
	s := New(p)
	view := sampleProtoView(t, p)
	p.calls = nil

	got := roundTrip(t, s, view, KindProtoViewDto)
	assertEqual(t, got, view)

	entries := map[string]int{}
	for _, c := range p.calls {
		entries[c.Entry]++
	}
	assertEqual(t, entries, map[string]int{"interpolation": 2, "binding": 4})
}

func TestProtoViewDto_RenderNeverTransported(t *testing.T) {
	s := New(&recordingParser{})
	view := render.ProtoViewDto{Render: "renderer-handle", Type: render.ViewTypeHost}

	plain, err := s.Serialize(view, KindProtoViewDto)
	if err != nil {
		t.Fatal(err)
	}
	obj := plain.(map[string]any)
	r, ok := obj["render"]
	if !ok || r != nil {
		t.Errorf("render = %v (present %v), want null", r, ok)
	}

	obj["render"] = "from the other side"
	got, err := DeserializeAs[render.ProtoViewDto](s, obj, KindProtoViewDto, ModeNone)
	if err != nil {
		t.Fatal(err)
	}
	if got.Render != nil {
		t.Errorf("Render = %v, want nil", got.Render)
	}

	delete(obj, "render")
	if _, err := s.Deserialize(obj, KindProtoViewDto, ModeNone); err != nil {
		t.Errorf("render key should not be required: %v", err)
	}
}

func TestProtoViewDto_ThroughJSON(t *testing.T) {
	p := &recordingParser{}
	s := New(p)
	view := sampleProtoView(t, p)

	plain, err := s.Serialize(view, KindProtoViewDto)
	if err != nil {
		t.Fatal(err)
	}
	got, err := DeserializeAs[render.ProtoViewDto](s, viaJSON(t, plain), KindProtoViewDto, ModeNone)
	if err != nil {
		t.Fatalf("Deserialize: %v", err)
	}
	assertEqual(t, got, view)
}

func TestViewDefinition_ThroughJSON(t *testing.T) {
	s := New(nil)
	view := sampleViewDefinition()

	plain, err := s.Serialize(view, KindViewDefinition)
	if err != nil {
		t.Fatal(err)
	}
	got, err := DeserializeAs[render.ViewDefinition](s, viaJSON(t, plain), KindViewDefinition, ModeNone)
	if err != nil {
		t.Fatalf("Deserialize: %v", err)
	}
	assertEqual(t, got, view)
}

func TestElementBinder_RoundTrip(t *testing.T) {
	p := &recordingParser{}
	s := New(p)
	view := sampleProtoView(t, p)

	for i, binder := range view.ElementBinders {
		got := roundTrip(t, s, binder, KindElementBinder)
		assertEqual(t, got, binder)
		if i == 1 && got.NestedProtoView == nil {
			t.Error("nested proto view lost")
		}
	}
}

func TestDirectiveBinder_PropertyBindings(t *testing.T) {
	p := &recordingParser{}
	s := New(p)
	loc := "MyCmp > div"
	binder := render.DirectiveBinder{
		DirectiveIndex: 0,
		PropertyBindings: map[string]*expr.ASTWithSource{
			"x": {Source: "a+b", Location: loc},
		},
	}

	plain, err := s.Serialize(binder, KindDirectiveBinder)
	if err != nil {
		t.Fatal(err)
	}
	obj := plain.(map[string]any)
	assertEqual(t, obj["propertyBindings"], map[string]any{
		"x": map[string]any{"input": "a+b", "location": loc},
	})

	got, err := DeserializeAs[render.DirectiveBinder](s, plain, KindDirectiveBinder, ModeNone)
	if err != nil {
		t.Fatal(err)
	}
	assertEqual(t, p.calls, []parseCall{{Entry: "binding", Input: "a+b", Location: loc}})
	if got.PropertyBindings["x"].Source != "a+b" {
		t.Errorf("x = %v", got.PropertyBindings["x"])
	}
	if got.PropertyBindings["x"].AST != (fakeAST{Entry: "binding", Text: "a+b"}) {
		t.Errorf("x tree = %v, want one built by ParseBinding", got.PropertyBindings["x"].AST)
	}
}

func TestElementPropertyBinding(t *testing.T) {
	p := &recordingParser{}
	s := New(p)
	b := render.ElementPropertyBinding{
		Type:          render.PropertyBindingAttribute,
		ASTWithSource: mustParse(t, p.ParseBinding, "label"),
		Property:      "aria-label",
	}

	plain, err := s.Serialize(b, KindElementPropertyBinding)
	if err != nil {
		t.Fatal(err)
	}
	assertEqual(t, plain, map[string]any{
		"type":          "attribute",
		"astWithSource": map[string]any{"input": "label", "location": "TestCmp"},
		"property":      "aria-label",
		"unit":          nil,
	})
	assertEqual(t, roundTrip(t, s, b, KindElementPropertyBinding), b)
}

func TestEventBinding(t *testing.T) {
	p := &recordingParser{}
	s := New(p)
	b := render.EventBinding{FullName: "window:resize", Source: mustParse(t, p.ParseBinding, "onResize()")}

	plain, err := s.Serialize(b, KindEventBinding)
	if err != nil {
		t.Fatal(err)
	}
	assertEqual(t, plain, map[string]any{
		"fullName": "window:resize",
		"source":   map[string]any{"input": "onResize()", "location": "TestCmp"},
	})
	assertEqual(t, roundTrip(t, s, b, KindEventBinding), b)

	noSource := render.EventBinding{FullName: "blur"}
	assertEqual(t, roundTrip(t, s, noSource, KindEventBinding), noSource)
}
