package serializer

// Wire schemas. Each record kind has one struct describing its plain
// shape; the wire tag is the literal key used on the transport. Pointer
// strings are nullable. Fields typed any carry nested plain values that
// the dispatcher produced or will consume.

const wireTag = "wire"

// ViewDefinitionWire is the plain shape of render.ViewDefinition.
type ViewDefinitionWire struct {
	ComponentID    *string  `wire:"componentId"`
	TemplateAbsURL *string  `wire:"templateAbsUrl"`
	Template       *string  `wire:"template"`
	Directives     any      `wire:"directives"`
	StyleAbsURLs   []string `wire:"styleAbsUrls"`
	Styles         []string `wire:"styles"`
}

// DirectiveMetadataWire is the plain shape of render.DirectiveMetadata.
type DirectiveMetadataWire struct {
	ID                   *string        `wire:"id"`
	Selector             *string        `wire:"selector"`
	CompileChildren      bool           `wire:"compileChildren"`
	HostProperties       map[string]any `wire:"hostProperties"`
	HostListeners        map[string]any `wire:"hostListeners"`
	HostActions          map[string]any `wire:"hostActions"`
	HostAttributes       map[string]any `wire:"hostAttributes"`
	Properties           []string       `wire:"properties"`
	ReadAttributes       []string       `wire:"readAttributes"`
	Type                 int            `wire:"type"`
	ExportAs             *string        `wire:"exportAs"`
	CallOnDestroy        bool           `wire:"callOnDestroy"`
	CallOnCheck          bool           `wire:"callOnCheck"`
	CallOnInit           bool           `wire:"callOnInit"`
	CallOnAllChangesDone bool           `wire:"callOnAllChangesDone"`
	ChangeDetection      *string        `wire:"changeDetection"`
	Events               []string       `wire:"events"`
}

// ElementBinderWire is the plain shape of render.ElementBinder.
type ElementBinderWire struct {
	Index            int            `wire:"index"`
	ParentIndex      int            `wire:"parentIndex"`
	DistanceToParent int            `wire:"distanceToParent"`
	Directives       any            `wire:"directives"`
	NestedProtoView  any            `wire:"nestedProtoView"`
	PropertyBindings any            `wire:"propertyBindings"`
	VariableBindings map[string]any `wire:"variableBindings"`
	EventBindings    any            `wire:"eventBindings"`
	ReadAttributes   map[string]any `wire:"readAttributes"`
}

// DirectiveBinderWire is the plain shape of render.DirectiveBinder.
type DirectiveBinderWire struct {
	DirectiveIndex       int            `wire:"directiveIndex"`
	PropertyBindings     map[string]any `wire:"propertyBindings"`
	EventBindings        any            `wire:"eventBindings"`
	HostPropertyBindings any            `wire:"hostPropertyBindings"`
}

// ProtoViewDtoWire is the plain shape of render.ProtoViewDto. The
// "render" key is written as null and never read.
type ProtoViewDtoWire struct {
	ElementBinders   any            `wire:"elementBinders"`
	VariableBindings map[string]any `wire:"variableBindings"`
	TextBindings     any            `wire:"textBindings"`
	Type             int            `wire:"type"`
}

// ASTWithSourceWire is the plain shape of expr.ASTWithSource.
type ASTWithSourceWire struct {
	Input    string `wire:"input"`
	Location string `wire:"location"`
}

// ElementPropertyBindingWire is the plain shape of render.ElementPropertyBinding.
type ElementPropertyBindingWire struct {
	Type          string  `wire:"type"`
	ASTWithSource any     `wire:"astWithSource"`
	Property      string  `wire:"property"`
	Unit          *string `wire:"unit"`
}

// EventBindingWire is the plain shape of render.EventBinding.
type EventBindingWire struct {
	FullName string `wire:"fullName"`
	Source   any    `wire:"source"`
}
