package serializer

import (
	"fmt"

	"github.com/wippyai/render-bridge/errors"
)

// recordCodec maps a record R to its wire schema W and back. fixed holds
// constant keys written on encode and ignored on decode.
type recordCodec[R, W any] struct {
	kind     Kind
	required []string
	fixed    map[string]any
	toWire   func(s *Serializer, r *R, path []string) (W, error)
	fromWire func(s *Serializer, w *W, path []string) (R, error)
}

func newRecordCodec[R, W any](
	kind Kind,
	toWire func(*Serializer, *R, []string) (W, error),
	fromWire func(*Serializer, *W, []string) (R, error),
) *recordCodec[R, W] {
	return &recordCodec[R, W]{
		kind:     kind,
		required: wireFields(new(W)),
		toWire:   toWire,
		fromWire: fromWire,
	}
}

func (c *recordCodec[R, W]) serialize(s *Serializer, value any, path []string) (any, error) {
	var r *R
	switch v := value.(type) {
	case R:
		r = &v
	case *R:
		r = v
	default:
		return nil, errors.TypeMismatch(errors.PhaseSerialize, path, fmt.Sprintf("%T", value), c.kind.String())
	}

	w, err := c.toWire(s, r, path)
	if err != nil {
		return nil, err
	}
	plain := toPlain(&w)
	for k, v := range c.fixed {
		plain[k] = v
	}
	return plain, nil
}

func (c *recordCodec[R, W]) deserialize(s *Serializer, plain any, _ Mode, path []string) (any, error) {
	var w W
	if err := fromPlain(plain, &w, c.required, c.kind, path); err != nil {
		return nil, err
	}
	r, err := c.fromWire(s, &w, path)
	if err != nil {
		return nil, err
	}
	return r, nil
}
