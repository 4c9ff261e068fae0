package serializer

import (
	"fmt"
	"reflect"

	"go.uber.org/zap"

	"github.com/wippyai/render-bridge/errors"
	"github.com/wippyai/render-bridge/expr"
)

// codec converts one flat record shape. Nil and sequence handling is done
// by the Serializer before a codec is reached.
type codec interface {
	serialize(s *Serializer, value any, path []string) (any, error)
	deserialize(s *Serializer, plain any, mode Mode, path []string) (any, error)
}

var codecs [kindCount]codec

func init() {
	codecs = [kindCount]codec{
		KindViewDefinition:         viewDefinitionCodec(),
		KindDirectiveMetadata:      directiveMetadataCodec(),
		KindElementBinder:          elementBinderCodec(),
		KindDirectiveBinder:        directiveBinderCodec(),
		KindProtoViewDto:           protoViewDtoCodec(),
		KindASTWithSource:          astCodec{},
		KindElementPropertyBinding: elementPropertyBindingCodec(),
		KindEventBinding:           eventBindingCodec(),
	}
	for _, k := range Kinds() {
		if codecs[k] == nil {
			panic("serializer: no codec registered for " + k.String())
		}
		if kindNames[k] == "" {
			panic("serializer: kind " + fmt.Sprint(uint8(k)) + " has no name")
		}
	}
}

// Serializer converts render records to plain values and back.
// It holds no per-call state and may be shared.
type Serializer struct {
	parser expr.Parser
	log    *zap.Logger
}

// Option configures a Serializer.
type Option func(*Serializer)

// WithLogger sets the logger used for dispatch tracing.
func WithLogger(l *zap.Logger) Option {
	return func(s *Serializer) {
		s.log = l
	}
}

// New creates a Serializer. The parser rebuilds expression trees during
// deserialization; it may be nil if no expressions will be decoded.
func New(parser expr.Parser, opts ...Option) *Serializer {
	s := &Serializer{
		parser: parser,
		log:    Logger(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.log == nil {
		s.log = zap.NewNop()
	}
	return s
}

// Serialize converts value, a record of the given kind or a slice of
// them, into a plain value. Absent values serialize to nil. The result
// shares no mutable state with value.
func (s *Serializer) Serialize(value any, kind Kind) (any, error) {
	return s.serialize(value, kind, nil)
}

// Deserialize converts a plain value produced by Serialize back into a
// record value (or []any of them). Mode selects the parser entry point
// when kind is KindASTWithSource and is ignored otherwise.
func (s *Serializer) Deserialize(plain any, kind Kind, mode Mode) (any, error) {
	return s.deserialize(plain, kind, mode, nil)
}

// MapToPlain copies a string-keyed map into a plain object. With a kind
// other than KindNone each value is serialized first. m is not modified.
func (s *Serializer) MapToPlain(m any, kind Kind) (map[string]any, error) {
	return s.mapToPlain(m, kind, nil)
}

// PlainToMap builds a map from a plain object. With a kind other than
// KindNone each value is deserialized with mode first.
func (s *Serializer) PlainToMap(plain any, kind Kind, mode Mode) (map[string]any, error) {
	return s.plainToMap(plain, kind, mode, nil)
}

func (s *Serializer) serialize(value any, kind Kind, path []string) (any, error) {
	if isAbsent(value) {
		return nil, nil
	}
	c, err := codecFor(kind, errors.PhaseSerialize, path)
	if err != nil {
		return nil, err
	}

	if seq, ok := sequence(value); ok {
		out := make([]any, seq.Len())
		for i := range out {
			v, err := s.serialize(seq.Index(i).Interface(), kind, with(path, index(i)))
			if err != nil {
				return nil, err
			}
			out[i] = v
		}
		return out, nil
	}

	if ce := s.log.Check(zap.DebugLevel, "serialize record"); ce != nil {
		ce.Write(zap.Stringer("kind", kind), zap.String("path", errors.FormatPath(path)))
	}
	return c.serialize(s, value, path)
}

func (s *Serializer) deserialize(plain any, kind Kind, mode Mode, path []string) (any, error) {
	if isAbsent(plain) {
		return nil, nil
	}
	c, err := codecFor(kind, errors.PhaseDeserialize, path)
	if err != nil {
		return nil, err
	}

	if seq, ok := sequence(plain); ok {
		out := make([]any, seq.Len())
		for i := range out {
			v, err := s.deserialize(seq.Index(i).Interface(), kind, mode, with(path, index(i)))
			if err != nil {
				return nil, err
			}
			out[i] = v
		}
		return out, nil
	}

	if ce := s.log.Check(zap.DebugLevel, "deserialize record"); ce != nil {
		ce.Write(zap.Stringer("kind", kind), zap.String("mode", string(mode)), zap.String("path", errors.FormatPath(path)))
	}
	return c.deserialize(s, plain, mode, path)
}

func (s *Serializer) mapToPlain(m any, kind Kind, path []string) (map[string]any, error) {
	if isAbsent(m) {
		return nil, nil
	}
	rv := reflect.ValueOf(m)
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		return nil, errors.New(errors.PhaseSerialize, errors.KindTypeMismatch).
			Path(path...).
			GoType(rv.Type().String()).
			Detail("expected a map with string keys").
			Build()
	}

	out := make(map[string]any, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		key := iter.Key().String()
		val := iter.Value().Interface()
		if kind == KindNone {
			out[key] = val
			continue
		}
		v, err := s.serialize(val, kind, with(path, key))
		if err != nil {
			return nil, err
		}
		out[key] = v
	}
	return out, nil
}

func (s *Serializer) plainToMap(plain any, kind Kind, mode Mode, path []string) (map[string]any, error) {
	if isAbsent(plain) {
		return nil, nil
	}
	obj, ok := plain.(map[string]any)
	if !ok {
		return nil, errors.New(errors.PhaseDeserialize, errors.KindTypeMismatch).
			Path(path...).
			GoType(fmt.Sprintf("%T", plain)).
			Detail("expected a plain object").
			Build()
	}

	out := make(map[string]any, len(obj))
	for key, val := range obj {
		if kind == KindNone {
			out[key] = val
			continue
		}
		v, err := s.deserialize(val, kind, mode, with(path, key))
		if err != nil {
			return nil, err
		}
		out[key] = v
	}
	return out, nil
}

func codecFor(kind Kind, phase errors.Phase, path []string) (codec, error) {
	if !kind.Valid() {
		return nil, errors.UnsupportedKind(phase, path, kind.String())
	}
	return codecs[kind], nil
}

// DeserializeAs deserializes a single record and asserts its Go type.
func DeserializeAs[T any](s *Serializer, plain any, kind Kind, mode Mode) (T, error) {
	return decodeValue[T](s, plain, kind, mode, nil)
}

// DeserializeSliceAs deserializes a sequence of records into a typed slice.
func DeserializeSliceAs[T any](s *Serializer, plain any, kind Kind, mode Mode) ([]T, error) {
	return decodeSlice[T](s, plain, kind, mode, nil)
}

func decodeValue[T any](s *Serializer, plain any, kind Kind, mode Mode, path []string) (T, error) {
	var zero T
	v, err := s.deserialize(plain, kind, mode, path)
	if err != nil || v == nil {
		return zero, err
	}
	t, ok := v.(T)
	if !ok {
		return zero, errors.TypeMismatch(errors.PhaseDeserialize, path, fmt.Sprintf("%T", v), kind.String())
	}
	return t, nil
}

func decodePtr[T any](s *Serializer, plain any, kind Kind, mode Mode, path []string) (*T, error) {
	if isAbsent(plain) {
		return nil, nil
	}
	t, err := decodeValue[T](s, plain, kind, mode, path)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func decodeSlice[T any](s *Serializer, plain any, kind Kind, mode Mode, path []string) ([]T, error) {
	v, err := s.deserialize(plain, kind, mode, path)
	if err != nil || v == nil {
		return nil, err
	}
	items, ok := v.([]any)
	if !ok {
		return nil, errors.New(errors.PhaseDeserialize, errors.KindTypeMismatch).
			Path(path...).
			GoType(fmt.Sprintf("%T", plain)).
			Record(kind.String()).
			Detail("expected a sequence").
			Build()
	}
	out := make([]T, len(items))
	for i, item := range items {
		if item == nil {
			continue
		}
		t, ok := item.(T)
		if !ok {
			return nil, errors.TypeMismatch(errors.PhaseDeserialize, with(path, index(i)), fmt.Sprintf("%T", item), kind.String())
		}
		out[i] = t
	}
	return out, nil
}
