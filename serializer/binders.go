package serializer

import (
	"github.com/wippyai/render-bridge/expr"
	"github.com/wippyai/render-bridge/render"
)

func elementBinderCodec() codec {
	return newRecordCodec(KindElementBinder, encodeElementBinder, decodeElementBinder)
}

func encodeElementBinder(s *Serializer, b *render.ElementBinder, path []string) (ElementBinderWire, error) {
	var (
		w   = ElementBinderWire{Index: b.Index, ParentIndex: b.ParentIndex, DistanceToParent: b.DistanceToParent}
		err error
	)
	if w.Directives, err = s.serialize(b.Directives, KindDirectiveBinder, with(path, "directives")); err != nil {
		return ElementBinderWire{}, err
	}
	if w.NestedProtoView, err = s.serialize(b.NestedProtoView, KindProtoViewDto, with(path, "nestedProtoView")); err != nil {
		return ElementBinderWire{}, err
	}
	if w.PropertyBindings, err = s.serialize(b.PropertyBindings, KindElementPropertyBinding, with(path, "propertyBindings")); err != nil {
		return ElementBinderWire{}, err
	}
	if w.VariableBindings, err = s.mapToPlain(b.VariableBindings, KindNone, with(path, "variableBindings")); err != nil {
		return ElementBinderWire{}, err
	}
	if w.EventBindings, err = s.serialize(b.EventBindings, KindEventBinding, with(path, "eventBindings")); err != nil {
		return ElementBinderWire{}, err
	}
	if w.ReadAttributes, err = s.mapToPlain(b.ReadAttributes, KindNone, with(path, "readAttributes")); err != nil {
		return ElementBinderWire{}, err
	}
	return w, nil
}

func decodeElementBinder(s *Serializer, w *ElementBinderWire, path []string) (render.ElementBinder, error) {
	var (
		b   = render.ElementBinder{Index: w.Index, ParentIndex: w.ParentIndex, DistanceToParent: w.DistanceToParent}
		err error
	)
	if b.Directives, err = decodeSlice[render.DirectiveBinder](s, w.Directives, KindDirectiveBinder, ModeNone, with(path, "directives")); err != nil {
		return render.ElementBinder{}, err
	}
	if b.NestedProtoView, err = decodePtr[render.ProtoViewDto](s, w.NestedProtoView, KindProtoViewDto, ModeNone, with(path, "nestedProtoView")); err != nil {
		return render.ElementBinder{}, err
	}
	if b.PropertyBindings, err = decodeSlice[render.ElementPropertyBinding](s, w.PropertyBindings, KindElementPropertyBinding, ModeNone, with(path, "propertyBindings")); err != nil {
		return render.ElementBinder{}, err
	}
	if b.VariableBindings, err = s.stringMap(w.VariableBindings, with(path, "variableBindings")); err != nil {
		return render.ElementBinder{}, err
	}
	if b.EventBindings, err = decodeSlice[render.EventBinding](s, w.EventBindings, KindEventBinding, ModeNone, with(path, "eventBindings")); err != nil {
		return render.ElementBinder{}, err
	}
	if b.ReadAttributes, err = s.stringMap(w.ReadAttributes, with(path, "readAttributes")); err != nil {
		return render.ElementBinder{}, err
	}
	return b, nil
}

func directiveBinderCodec() codec {
	return newRecordCodec(KindDirectiveBinder, encodeDirectiveBinder, decodeDirectiveBinder)
}

func encodeDirectiveBinder(s *Serializer, b *render.DirectiveBinder, path []string) (DirectiveBinderWire, error) {
	props, err := s.mapToPlain(b.PropertyBindings, KindASTWithSource, with(path, "propertyBindings"))
	if err != nil {
		return DirectiveBinderWire{}, err
	}
	events, err := s.serialize(b.EventBindings, KindEventBinding, with(path, "eventBindings"))
	if err != nil {
		return DirectiveBinderWire{}, err
	}
	hostProps, err := s.serialize(b.HostPropertyBindings, KindElementPropertyBinding, with(path, "hostPropertyBindings"))
	if err != nil {
		return DirectiveBinderWire{}, err
	}
	return DirectiveBinderWire{
		DirectiveIndex:       b.DirectiveIndex,
		PropertyBindings:     props,
		EventBindings:        events,
		HostPropertyBindings: hostProps,
	}, nil
}

func decodeDirectiveBinder(s *Serializer, w *DirectiveBinderWire, path []string) (render.DirectiveBinder, error) {
	propPath := with(path, "propertyBindings")
	decoded, err := s.plainToMap(w.PropertyBindings, KindASTWithSource, ModeBinding, propPath)
	if err != nil {
		return render.DirectiveBinder{}, err
	}
	props, err := typedMap[*expr.ASTWithSource](decoded, propPath)
	if err != nil {
		return render.DirectiveBinder{}, err
	}
	events, err := decodeSlice[render.EventBinding](s, w.EventBindings, KindEventBinding, ModeNone, with(path, "eventBindings"))
	if err != nil {
		return render.DirectiveBinder{}, err
	}
	hostProps, err := decodeSlice[render.ElementPropertyBinding](s, w.HostPropertyBindings, KindElementPropertyBinding, ModeNone, with(path, "hostPropertyBindings"))
	if err != nil {
		return render.DirectiveBinder{}, err
	}
	return render.DirectiveBinder{
		DirectiveIndex:       w.DirectiveIndex,
		PropertyBindings:     props,
		EventBindings:        events,
		HostPropertyBindings: hostProps,
	}, nil
}
