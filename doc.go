// Package renderbridge moves render records across an isolation boundary.
//
// The UI context and the compile worker cannot share memory or object
// identity, so every view definition, binder and directive that crosses
// between them is flattened to a plain value and rebuilt on the other side.
//
// # Architecture Overview
//
//	renderbridge/        Root package with the plain-value boundary check
//	├── serializer/      Kind-tagged dispatcher and per-record codecs
//	├── render/          Render records (view definitions, binders, metadata)
//	├── expr/            Expression handles and the parser interface
//	├── errors/          Structured error types for debugging
//	└── cmd/bridge/      Message inspection tool
//
// # Quick Start
//
// Encode on one side, decode on the other:
//
//	s := serializer.New(parser)
//
//	plain, err := s.Serialize(view, serializer.KindViewDefinition)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	// ... send plain through the transport ...
//
//	decoded, err := serializer.DeserializeAs[render.ViewDefinition](
//	    s, plain, serializer.KindViewDefinition, serializer.ModeNone)
//
// # Expressions
//
// Parsed expression trees are not transported. Only their source text and
// location cross the boundary; the receiving side re-parses with its own
// parser, chosen per field by a parse mode.
//
// # Transport Safety
//
// CheckPlain verifies that a value holds only nil, booleans, numbers,
// strings, slices and string-keyed maps, with no cycles. Serializer output
// always passes it.
package renderbridge
