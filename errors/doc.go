// Package errors provides structured error types for the render bridge.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error category).
// The Error type includes rich context: field path, Go type, record kind, and cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseDeserialize, errors.KindTypeMismatch).
//		Path("elementBinders[0]", "directives").
//		GoType("string").
//		Record("DirectiveBinder").
//		Detail("expected a plain object").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.UnsupportedKind(errors.PhaseSerialize, path, "Kind(42)")
//	err := errors.NoDeserializerForMode(path, "templateBindings")
//
// All errors implement the standard error interface and support errors.Is/As.
// The Err* sentinels match any error of their kind regardless of phase.
package errors
