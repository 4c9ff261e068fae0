package serializer

import (
	"slices"

	"github.com/wippyai/render-bridge/render"
)

func directiveMetadataCodec() codec {
	return newRecordCodec(KindDirectiveMetadata, encodeDirectiveMetadata, decodeDirectiveMetadata)
}

func encodeDirectiveMetadata(s *Serializer, m *render.DirectiveMetadata, path []string) (DirectiveMetadataWire, error) {
	w := DirectiveMetadataWire{
		ID:                   optString(m.ID),
		Selector:             optString(m.Selector),
		CompileChildren:      m.CompileChildren,
		Properties:           slices.Clone(m.Properties),
		ReadAttributes:       slices.Clone(m.ReadAttributes),
		Type:                 int(m.Type),
		ExportAs:             optString(m.ExportAs),
		CallOnDestroy:        m.CallOnDestroy,
		CallOnCheck:          m.CallOnCheck,
		CallOnInit:           m.CallOnInit,
		CallOnAllChangesDone: m.CallOnAllChangesDone,
		ChangeDetection:      optString(m.ChangeDetection),
		Events:               slices.Clone(m.Events),
	}

	hostMaps := []struct {
		name string
		src  map[string]string
		dst  *map[string]any
	}{
		{"hostProperties", m.HostProperties, &w.HostProperties},
		{"hostListeners", m.HostListeners, &w.HostListeners},
		{"hostActions", m.HostActions, &w.HostActions},
		{"hostAttributes", m.HostAttributes, &w.HostAttributes},
	}
	for _, hm := range hostMaps {
		plain, err := s.mapToPlain(hm.src, KindNone, with(path, hm.name))
		if err != nil {
			return DirectiveMetadataWire{}, err
		}
		*hm.dst = plain
	}
	return w, nil
}

func decodeDirectiveMetadata(s *Serializer, w *DirectiveMetadataWire, path []string) (render.DirectiveMetadata, error) {
	m := render.DirectiveMetadata{
		ID:                   derefString(w.ID),
		Selector:             derefString(w.Selector),
		CompileChildren:      w.CompileChildren,
		Properties:           w.Properties,
		ReadAttributes:       w.ReadAttributes,
		Type:                 render.DirectiveType(w.Type),
		ExportAs:             derefString(w.ExportAs),
		CallOnDestroy:        w.CallOnDestroy,
		CallOnCheck:          w.CallOnCheck,
		CallOnInit:           w.CallOnInit,
		CallOnAllChangesDone: w.CallOnAllChangesDone,
		ChangeDetection:      derefString(w.ChangeDetection),
		Events:               w.Events,
	}

	hostMaps := []struct {
		name string
		src  map[string]any
		dst  *map[string]string
	}{
		{"hostProperties", w.HostProperties, &m.HostProperties},
		{"hostListeners", w.HostListeners, &m.HostListeners},
		{"hostActions", w.HostActions, &m.HostActions},
		{"hostAttributes", w.HostAttributes, &m.HostAttributes},
	}
	for _, hm := range hostMaps {
		decoded, err := s.stringMap(hm.src, with(path, hm.name))
		if err != nil {
			return render.DirectiveMetadata{}, err
		}
		*hm.dst = decoded
	}
	return m, nil
}

// stringMap decodes a plain object of primitives into a map[string]string.
func (s *Serializer) stringMap(plain map[string]any, path []string) (map[string]string, error) {
	m, err := s.plainToMap(plain, KindNone, ModeNone, path)
	if err != nil {
		return nil, err
	}
	return typedMap[string](m, path)
}
