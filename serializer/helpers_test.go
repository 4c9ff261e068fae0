package serializer

import (
	"reflect"
	"strings"
	"testing"

	"github.com/go-test/deep"

	"github.com/wippyai/render-bridge/expr"
	"github.com/wippyai/render-bridge/render"
)

type parseCall struct {
	Entry    string
	Input    string
	Location string
}

// fakeAST records which entry point built it.
type fakeAST struct {
	Entry string
	Text  string
}

func (a fakeAST) String() string { return a.Entry + ":" + a.Text }

type recordingParser struct {
	calls []parseCall
	err   error
}

func (p *recordingParser) ParseInterpolation(input, location string) (*expr.ASTWithSource, error) {
	return p.record("interpolation", input, location)
}

func (p *recordingParser) ParseBinding(input, location string) (*expr.ASTWithSource, error) {
	return p.record("binding", input, location)
}

func (p *recordingParser) ParseSimpleBinding(input, location string) (*expr.ASTWithSource, error) {
	return p.record("simpleBinding", input, location)
}

func (p *recordingParser) record(entry, input, location string) (*expr.ASTWithSource, error) {
	p.calls = append(p.calls, parseCall{Entry: entry, Input: input, Location: location})
	if p.err != nil {
		return nil, p.err
	}
	return &expr.ASTWithSource{
		AST:      fakeAST{Entry: entry, Text: input},
		Source:   input,
		Location: location,
	}, nil
}

func mustParse(t *testing.T, parse func(string, string) (*expr.ASTWithSource, error), input string) *expr.ASTWithSource {
	t.Helper()
	a, err := parse(input, "TestCmp")
	if err != nil {
		t.Fatalf("parse %q: %v", input, err)
	}
	return a
}

func assertEqual(t *testing.T, got, want any) {
	t.Helper()
	if !reflect.DeepEqual(got, want) {
		t.Errorf("values differ:\n  %s", strings.Join(deep.Equal(got, want), "\n  "))
	}
}

func sampleDirectiveMetadata() render.DirectiveMetadata {
	return render.DirectiveMetadata{
		ID:              "dir-1",
		Selector:        "[my-dir]",
		CompileChildren: true,
		HostProperties:  map[string]string{"title": "name"},
		HostListeners:   map[string]string{"click": "onClick()"},
		HostActions:     map[string]string{},
		HostAttributes:  nil,
		Properties:      []string{"name: my-dir"},
		ReadAttributes:  []string{},
		Type:            render.DirectiveTypeComponent,
		ExportAs:        "myDir",
		CallOnDestroy:   true,
		CallOnInit:      true,
		ChangeDetection: "CHECK_ALWAYS",
		Events:          []string{"change"},
	}
}

func sampleViewDefinition() render.ViewDefinition {
	return render.ViewDefinition{
		ComponentID:    "c1",
		TemplateAbsURL: "package:app/cmp.html",
		Template:       "<div [title]=\"name\"></div>",
		Directives:     []render.DirectiveMetadata{sampleDirectiveMetadata(), {ID: "dir-2"}},
		StyleAbsURLs:   []string{"package:app/cmp.css"},
		Styles:         nil,
	}
}

// sampleProtoView builds a two-level proto view whose expressions come
// from p using the same entry points the decoder will pick.
func sampleProtoView(t *testing.T, p *recordingParser) render.ProtoViewDto {
	t.Helper()
	nested := &render.ProtoViewDto{
		Type:             render.ViewTypeEmbedded,
		ElementBinders:   []render.ElementBinder{},
		VariableBindings: map[string]string{"item": "$implicit"},
		TextBindings:     []*expr.ASTWithSource{mustParse(t, p.ParseInterpolation, "{{item}}")},
	}

	return render.ProtoViewDto{
		Type: render.ViewTypeComponent,
		ElementBinders: []render.ElementBinder{
			{
				Index:            0,
				ParentIndex:      -1,
				DistanceToParent: 0,
				Directives: []render.DirectiveBinder{
					{
						DirectiveIndex: 1,
						PropertyBindings: map[string]*expr.ASTWithSource{
							"name": mustParse(t, p.ParseBinding, "user.name"),
						},
						EventBindings: []render.EventBinding{
							{FullName: "change", Source: mustParse(t, p.ParseBinding, "save()")},
						},
						HostPropertyBindings: []render.ElementPropertyBinding{
							{Type: render.PropertyBindingClass, ASTWithSource: mustParse(t, p.ParseBinding, "active"), Property: "active"},
						},
					},
				},
				PropertyBindings: []render.ElementPropertyBinding{
					{Type: render.PropertyBindingStyle, ASTWithSource: mustParse(t, p.ParseBinding, "width"), Property: "width", Unit: "px"},
				},
				VariableBindings: map[string]string{"ref": "el"},
				EventBindings:    nil,
				ReadAttributes:   map[string]string{"type": "text"},
			},
			{
				Index:            1,
				ParentIndex:      0,
				DistanceToParent: 1,
				NestedProtoView:  nested,
			},
		},
		VariableBindings: map[string]string{},
		TextBindings: []*expr.ASTWithSource{
			mustParse(t, p.ParseInterpolation, "Hello {{name}}"),
		},
	}
}
