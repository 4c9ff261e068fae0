package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseSerialize   Phase = "serialize"   // record to plain
	PhaseDeserialize Phase = "deserialize" // plain to record
	PhaseParse       Phase = "parse"       // expression re-parsing
	PhaseValidate    Phase = "validate"    // plain value checks
	PhaseLoad        Phase = "load"        // message loading (tools)
)

// Kind categorizes the error
type Kind string

const (
	KindUnsupportedKind Kind = "unsupported_kind"
	KindNoDeserializer  Kind = "no_deserializer_for_mode"
	KindTypeMismatch    Kind = "type_mismatch"
	KindFieldMissing    Kind = "field_missing"
	KindInvalidEnum     Kind = "invalid_enum"
	KindInvalidData     Kind = "invalid_data"
	KindNotPlain        Kind = "not_plain"
	KindNotInitialized  Kind = "not_initialized"
	KindInvalidInput    Kind = "invalid_input"
)

// Sentinels for errors.Is; they match on Kind only.
var (
	ErrUnsupportedKind = &Error{Kind: KindUnsupportedKind}
	ErrNoDeserializer  = &Error{Kind: KindNoDeserializer}
	ErrTypeMismatch    = &Error{Kind: KindTypeMismatch}
	ErrFieldMissing    = &Error{Kind: KindFieldMissing}
	ErrNotPlain        = &Error{Kind: KindNotPlain}
)

// Error is the structured error type used throughout the bridge
type Error struct {
	Value  any
	Cause  error
	Phase  Phase
	Kind   Kind
	GoType string
	Record string
	Detail string
	Path   []string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if len(e.Path) > 0 {
		b.WriteString(" at ")
		b.WriteString(FormatPath(e.Path))
	}

	if e.GoType != "" || e.Record != "" {
		b.WriteString(": ")
		if e.GoType != "" && e.Record != "" {
			b.WriteString("Go type ")
			b.WriteString(e.GoType)
			b.WriteString(", record ")
			b.WriteString(e.Record)
		} else if e.GoType != "" {
			b.WriteString("Go type ")
			b.WriteString(e.GoType)
		} else {
			b.WriteString("record ")
			b.WriteString(e.Record)
		}
	}

	if e.Detail != "" {
		if e.GoType != "" || e.Record != "" {
			b.WriteString(" - ")
		} else {
			b.WriteString(": ")
		}
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error.
// A target with an empty Phase matches on Kind alone.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.Phase == "" {
		return e.Kind == t.Kind
	}
	return e.Phase == t.Phase && e.Kind == t.Kind
}

// FormatPath joins path segments, attaching index segments ("[2]") to
// the preceding segment without a dot.
func FormatPath(path []string) string {
	var b strings.Builder
	for i, seg := range path {
		if i > 0 && !strings.HasPrefix(seg, "[") {
			b.WriteByte('.')
		}
		b.WriteString(seg)
	}
	return b.String()
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Path sets the field path
func (b *Builder) Path(path ...string) *Builder {
	b.err.Path = path
	return b
}

// GoType sets the Go type name
func (b *Builder) GoType(t string) *Builder {
	b.err.GoType = t
	return b
}

// Record sets the record kind name
func (b *Builder) Record(r string) *Builder {
	b.err.Record = r
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// UnsupportedKind creates an error for a record kind outside the closed set
func UnsupportedKind(phase Phase, path []string, kind string) *Error {
	verb := "serializer"
	if phase == PhaseDeserialize {
		verb = "deserializer"
	}
	return &Error{
		Phase:  phase,
		Kind:   KindUnsupportedKind,
		Path:   path,
		Record: kind,
		Detail: "no " + verb + " for kind",
		Value:  kind,
	}
}

// NoDeserializerForMode creates an error for an unknown or disabled parse mode
func NoDeserializerForMode(path []string, mode string) *Error {
	return &Error{
		Phase:  PhaseDeserialize,
		Kind:   KindNoDeserializer,
		Path:   path,
		Record: "ASTWithSource",
		Detail: fmt.Sprintf("no AST deserializer for mode %q", mode),
		Value:  mode,
	}
}

// TypeMismatch creates a type mismatch error
func TypeMismatch(phase Phase, path []string, goType, record string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindTypeMismatch,
		Path:   path,
		GoType: goType,
		Record: record,
	}
}

// FieldMissing creates a missing field error
func FieldMissing(phase Phase, path []string, record string, cause error) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindFieldMissing,
		Path:   path,
		Record: record,
		Detail: "plain value lacks expected fields",
		Cause:  cause,
	}
}

// InvalidEnum creates an invalid enum value error
func InvalidEnum(phase Phase, path []string, value any, enumType string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidEnum,
		Path:   path,
		Detail: fmt.Sprintf("invalid enum value %v for %s", value, enumType),
		Value:  value,
	}
}

// NotPlain creates an error for a value that cannot cross the transport boundary
func NotPlain(path []string, goType string) *Error {
	return &Error{
		Phase:  PhaseValidate,
		Kind:   KindNotPlain,
		Path:   path,
		GoType: goType,
		Detail: "value is not a plain transport value",
	}
}

// NotInitialized creates a not-initialized error for a missing collaborator
func NotInitialized(phase Phase, component string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNotInitialized,
		Detail: fmt.Sprintf("%s not initialized", component),
	}
}

// InvalidInput creates an invalid input error
func InvalidInput(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidInput,
		Detail: detail,
	}
}

// ParseFailed wraps an error returned by the expression parser
func ParseFailed(path []string, mode, input string, cause error) *Error {
	return &Error{
		Phase:  PhaseParse,
		Kind:   KindInvalidData,
		Path:   path,
		Detail: fmt.Sprintf("parse %s %q", mode, input),
		Cause:  cause,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}
