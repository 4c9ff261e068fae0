package serializer

import (
	"github.com/wippyai/render-bridge/expr"
	"github.com/wippyai/render-bridge/render"
)

func protoViewDtoCodec() codec {
	c := newRecordCodec(KindProtoViewDto, encodeProtoViewDto, decodeProtoViewDto)
	// TODO: carry render refs once the renderer exposes a serializable handle.
	c.fixed = map[string]any{"render": nil}
	return c
}

func encodeProtoViewDto(s *Serializer, v *render.ProtoViewDto, path []string) (ProtoViewDtoWire, error) {
	binders, err := s.serialize(v.ElementBinders, KindElementBinder, with(path, "elementBinders"))
	if err != nil {
		return ProtoViewDtoWire{}, err
	}
	vars, err := s.mapToPlain(v.VariableBindings, KindNone, with(path, "variableBindings"))
	if err != nil {
		return ProtoViewDtoWire{}, err
	}
	texts, err := s.serialize(v.TextBindings, KindASTWithSource, with(path, "textBindings"))
	if err != nil {
		return ProtoViewDtoWire{}, err
	}
	return ProtoViewDtoWire{
		ElementBinders:   binders,
		VariableBindings: vars,
		TextBindings:     texts,
		Type:             int(v.Type),
	}, nil
}

func decodeProtoViewDto(s *Serializer, w *ProtoViewDtoWire, path []string) (render.ProtoViewDto, error) {
	binders, err := decodeSlice[render.ElementBinder](s, w.ElementBinders, KindElementBinder, ModeNone, with(path, "elementBinders"))
	if err != nil {
		return render.ProtoViewDto{}, err
	}
	vars, err := s.stringMap(w.VariableBindings, with(path, "variableBindings"))
	if err != nil {
		return render.ProtoViewDto{}, err
	}
	texts, err := decodeSlice[*expr.ASTWithSource](s, w.TextBindings, KindASTWithSource, ModeInterpolation, with(path, "textBindings"))
	if err != nil {
		return render.ProtoViewDto{}, err
	}
	return render.ProtoViewDto{
		Render:           nil,
		ElementBinders:   binders,
		VariableBindings: vars,
		TextBindings:     texts,
		Type:             render.ViewType(w.Type),
	}, nil
}
