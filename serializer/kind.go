package serializer

import "strconv"

// Kind tags the record type a value is serialized as.
type Kind uint8

const (
	// KindNone means "no record kind": map helpers copy values as-is.
	KindNone Kind = iota
	KindViewDefinition
	KindDirectiveMetadata
	KindElementBinder
	KindDirectiveBinder
	KindProtoViewDto
	KindASTWithSource
	KindElementPropertyBinding
	KindEventBinding

	kindCount
)

var kindNames = [kindCount]string{
	KindNone:                   "none",
	KindViewDefinition:         "ViewDefinition",
	KindDirectiveMetadata:      "DirectiveMetadata",
	KindElementBinder:          "ElementBinder",
	KindDirectiveBinder:        "DirectiveBinder",
	KindProtoViewDto:           "ProtoViewDto",
	KindASTWithSource:          "ASTWithSource",
	KindElementPropertyBinding: "ElementPropertyBinding",
	KindEventBinding:           "EventBinding",
}

func (k Kind) String() string {
	if k < kindCount {
		return kindNames[k]
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// Valid reports whether k is one of the record kinds.
func (k Kind) Valid() bool {
	return k > KindNone && k < kindCount
}

// Kinds returns every record kind in declaration order.
func Kinds() []Kind {
	out := make([]Kind, 0, kindCount-1)
	for k := KindNone + 1; k < kindCount; k++ {
		out = append(out, k)
	}
	return out
}

// ParseKind looks a record kind up by name.
func ParseKind(name string) (Kind, bool) {
	for _, k := range Kinds() {
		if kindNames[k] == name {
			return k, true
		}
	}
	return KindNone, false
}

// Mode selects the parser entry point that rebuilds an expression tree.
type Mode string

const (
	ModeNone          Mode = ""
	ModeInterpolation Mode = "interpolation"
	ModeBinding       Mode = "binding"
	ModeSimpleBinding Mode = "simpleBinding"
	// ModeTemplateBindings is recognized but has no deserializer.
	ModeTemplateBindings Mode = "templateBindings"
)
