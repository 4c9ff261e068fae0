// Package serializer converts render records to and from plain values.
//
// Plain values are built only from nil, bool, numbers, strings, []any,
// []string and map[string]any. They can be copied across an isolation
// boundary (a worker, a process, a JSON pipe) without sharing memory.
//
//	┌──────────────────────────────────────────────────────────────┐
//	│ render records ←→ [Serializer] ←→ plain maps ←→ transport   │
//	└──────────────────────────────────────────────────────────────┘
//
// # Kinds
//
// Every call names the record Kind of its value. The set is closed:
//
//	Kind                    Go value                       Parse mode on decode
//	─────────────────────────────────────────────────────────────────────────
//	ViewDefinition          render.ViewDefinition          -
//	DirectiveMetadata       render.DirectiveMetadata       -
//	ElementBinder           render.ElementBinder           -
//	DirectiveBinder         render.DirectiveBinder         propertyBindings: binding
//	ProtoViewDto            render.ProtoViewDto            textBindings: interpolation
//	ASTWithSource           *expr.ASTWithSource            caller supplied
//	ElementPropertyBinding  render.ElementPropertyBinding  binding
//	EventBinding            render.EventBinding            binding
//
// Any other kind fails with errors.KindUnsupportedKind.
//
// # Dispatch
//
// Serialize and Deserialize handle nil and sequences before a record is
// looked at: nil maps to nil, and a slice maps element-wise to []any in
// order. Each codec then handles exactly one flat record and routes its
// nested records back through the Serializer with the nested kind.
//
// # Wire schemas
//
// Each kind has an explicit wire struct (ViewDefinitionWire, ...). Codecs
// map record → wire struct → plain map on encode and the reverse on
// decode. Wire tags are the literal keys on the transport. Empty optional
// strings travel as null. A plain map missing any wire key fails with
// errors.KindFieldMissing; a present key holding null is fine.
//
// # Expressions
//
// An ASTWithSource encodes as {"input": source, "location": location}.
// Decoding calls the injected expr.Parser entry point selected by Mode:
//
//	interpolation   ParseInterpolation
//	binding         ParseBinding
//	simpleBinding   ParseSimpleBinding
//	templateBindings  (disabled) errors.KindNoDeserializer
//
// Decoded trees are new values; they are equivalent to, not identical
// with, any tree that existed before encoding.
//
// # ProtoViewDto.Render
//
// The render handle is never transported: encode writes "render": null
// and decode always leaves Render nil.
//
// # Thread Safety
//
// A Serializer is immutable after New and safe for concurrent use as long
// as its parser is. Calls are synchronous and do no I/O.
package serializer
