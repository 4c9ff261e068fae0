package serializer

import (
	"github.com/wippyai/render-bridge/errors"
	"github.com/wippyai/render-bridge/expr"
	"github.com/wippyai/render-bridge/render"
)

func elementPropertyBindingCodec() codec {
	return newRecordCodec(KindElementPropertyBinding, encodeElementPropertyBinding, decodeElementPropertyBinding)
}

func encodeElementPropertyBinding(s *Serializer, b *render.ElementPropertyBinding, path []string) (ElementPropertyBindingWire, error) {
	if !b.Type.Valid() {
		return ElementPropertyBindingWire{}, errors.InvalidEnum(errors.PhaseSerialize, with(path, "type"), int(b.Type), "PropertyBindingType")
	}
	ast, err := s.serialize(b.ASTWithSource, KindASTWithSource, with(path, "astWithSource"))
	if err != nil {
		return ElementPropertyBindingWire{}, err
	}
	return ElementPropertyBindingWire{
		Type:          b.Type.String(),
		ASTWithSource: ast,
		Property:      b.Property,
		Unit:          optString(b.Unit),
	}, nil
}

func decodeElementPropertyBinding(s *Serializer, w *ElementPropertyBindingWire, path []string) (render.ElementPropertyBinding, error) {
	typ, ok := render.ParsePropertyBindingType(w.Type)
	if !ok {
		return render.ElementPropertyBinding{}, errors.InvalidEnum(errors.PhaseDeserialize, with(path, "type"), w.Type, "PropertyBindingType")
	}
	ast, err := decodeValue[*expr.ASTWithSource](s, w.ASTWithSource, KindASTWithSource, ModeBinding, with(path, "astWithSource"))
	if err != nil {
		return render.ElementPropertyBinding{}, err
	}
	return render.ElementPropertyBinding{
		Type:          typ,
		ASTWithSource: ast,
		Property:      w.Property,
		Unit:          derefString(w.Unit),
	}, nil
}

func eventBindingCodec() codec {
	return newRecordCodec(KindEventBinding, encodeEventBinding, decodeEventBinding)
}

func encodeEventBinding(s *Serializer, b *render.EventBinding, path []string) (EventBindingWire, error) {
	source, err := s.serialize(b.Source, KindASTWithSource, with(path, "source"))
	if err != nil {
		return EventBindingWire{}, err
	}
	return EventBindingWire{FullName: b.FullName, Source: source}, nil
}

func decodeEventBinding(s *Serializer, w *EventBindingWire, path []string) (render.EventBinding, error) {
	source, err := decodeValue[*expr.ASTWithSource](s, w.Source, KindASTWithSource, ModeBinding, with(path, "source"))
	if err != nil {
		return render.EventBinding{}, err
	}
	return render.EventBinding{FullName: w.FullName, Source: source}, nil
}
