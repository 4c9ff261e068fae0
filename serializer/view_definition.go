package serializer

import (
	"slices"

	"github.com/wippyai/render-bridge/render"
)

func viewDefinitionCodec() codec {
	return newRecordCodec(KindViewDefinition, encodeViewDefinition, decodeViewDefinition)
}

func encodeViewDefinition(s *Serializer, v *render.ViewDefinition, path []string) (ViewDefinitionWire, error) {
	directives, err := s.serialize(v.Directives, KindDirectiveMetadata, with(path, "directives"))
	if err != nil {
		return ViewDefinitionWire{}, err
	}
	return ViewDefinitionWire{
		ComponentID:    optString(v.ComponentID),
		TemplateAbsURL: optString(v.TemplateAbsURL),
		Template:       optString(v.Template),
		Directives:     directives,
		StyleAbsURLs:   slices.Clone(v.StyleAbsURLs),
		Styles:         slices.Clone(v.Styles),
	}, nil
}

func decodeViewDefinition(s *Serializer, w *ViewDefinitionWire, path []string) (render.ViewDefinition, error) {
	directives, err := decodeSlice[render.DirectiveMetadata](s, w.Directives, KindDirectiveMetadata, ModeNone, with(path, "directives"))
	if err != nil {
		return render.ViewDefinition{}, err
	}
	return render.ViewDefinition{
		ComponentID:    derefString(w.ComponentID),
		TemplateAbsURL: derefString(w.TemplateAbsURL),
		Template:       derefString(w.Template),
		Directives:     directives,
		StyleAbsURLs:   w.StyleAbsURLs,
		Styles:         w.Styles,
	}, nil
}
