package render

import (
	"github.com/wippyai/render-bridge/expr"
)

// ViewType distinguishes the role of a proto view.
type ViewType int

const (
	ViewTypeHost ViewType = iota
	ViewTypeComponent
	ViewTypeEmbedded
)

// DirectiveType distinguishes plain directives from components.
type DirectiveType int

const (
	DirectiveTypeDirective DirectiveType = iota
	DirectiveTypeComponent
)

// PropertyBindingType says which aspect of an element a binding writes to.
type PropertyBindingType int

const (
	PropertyBindingProperty PropertyBindingType = iota
	PropertyBindingAttribute
	PropertyBindingClass
	PropertyBindingStyle
)

var propertyBindingNames = [...]string{
	PropertyBindingProperty:  "property",
	PropertyBindingAttribute: "attribute",
	PropertyBindingClass:     "class",
	PropertyBindingStyle:     "style",
}

func (t PropertyBindingType) String() string {
	if t.Valid() {
		return propertyBindingNames[t]
	}
	return "unknown"
}

// Valid reports whether t is one of the named binding types.
func (t PropertyBindingType) Valid() bool {
	return t >= 0 && int(t) < len(propertyBindingNames)
}

// ParsePropertyBindingType returns the binding type with the given name.
func ParsePropertyBindingType(name string) (PropertyBindingType, bool) {
	for i, n := range propertyBindingNames {
		if n == name {
			return PropertyBindingType(i), true
		}
	}
	return 0, false
}

// ViewDefinition describes a component template before compilation.
// Empty strings mean the field is unset.
type ViewDefinition struct {
	ComponentID    string
	TemplateAbsURL string
	Template       string
	Directives     []DirectiveMetadata
	StyleAbsURLs   []string
	Styles         []string
}

// DirectiveMetadata is the render-side description of a directive.
type DirectiveMetadata struct {
	ID                   string
	Selector             string
	CompileChildren      bool
	HostProperties       map[string]string
	HostListeners        map[string]string
	HostActions          map[string]string
	HostAttributes       map[string]string
	Properties           []string
	ReadAttributes       []string
	Type                 DirectiveType
	ExportAs             string
	CallOnDestroy        bool
	CallOnCheck          bool
	CallOnInit           bool
	CallOnAllChangesDone bool
	ChangeDetection      string
	Events               []string
}

// ElementPropertyBinding binds an expression to a property, attribute,
// class or style of an element.
type ElementPropertyBinding struct {
	Type          PropertyBindingType
	ASTWithSource *expr.ASTWithSource
	Property      string
	Unit          string
}

// EventBinding binds an expression to a named event.
type EventBinding struct {
	FullName string
	Source   *expr.ASTWithSource
}

// DirectiveBinder attaches one directive to an element.
type DirectiveBinder struct {
	DirectiveIndex       int
	PropertyBindings     map[string]*expr.ASTWithSource
	EventBindings        []EventBinding
	HostPropertyBindings []ElementPropertyBinding
}

// ElementBinder holds everything bound on a single element of a proto view.
// ParentIndex is -1 for root elements.
type ElementBinder struct {
	Index            int
	ParentIndex      int
	DistanceToParent int
	Directives       []DirectiveBinder
	NestedProtoView  *ProtoViewDto
	PropertyBindings []ElementPropertyBinding
	VariableBindings map[string]string
	EventBindings    []EventBinding
	ReadAttributes   map[string]string
}

// ProtoViewDto is the compiled shape of a view handed back to the UI side.
type ProtoViewDto struct {
	// Render is a handle owned by the renderer. It never crosses the
	// bridge and is always nil after decoding.
	Render           RenderProtoViewRef
	ElementBinders   []ElementBinder
	VariableBindings map[string]string
	TextBindings     []*expr.ASTWithSource
	Type             ViewType
}

// RenderProtoViewRef is an opaque renderer handle.
type RenderProtoViewRef any
