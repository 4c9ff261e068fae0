package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/go-test/deep"
	"github.com/samber/lo"
	"sigs.k8s.io/yaml"

	renderbridge "github.com/wippyai/render-bridge"
	"github.com/wippyai/render-bridge/errors"
	"github.com/wippyai/render-bridge/serializer"
)

func init() {
	// Proto views nest deeper than deep's default.
	deep.MaxDepth = 64
}

// report is the outcome of round-tripping one message.
type report struct {
	Record any
	Plain  any
	Diff   []string
	Kind   serializer.Kind
	Mode   serializer.Mode
}

// Identical reports whether the re-encoded message matches the input.
func (r *report) Identical() bool {
	return len(r.Diff) == 0
}

// loadMessage reads a plain message from path.
func loadMessage(path, format string) (any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	if format == "" {
		format = formatFromPath(path)
	}
	return decodeMessage(data, format)
}

func formatFromPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return "yaml"
	default:
		return "json"
	}
}

// decodeMessage turns JSON or YAML bytes into a plain value.
func decodeMessage(data []byte, format string) (any, error) {
	switch format {
	case "json":
	case "yaml":
		converted, err := yaml.YAMLToJSON(data)
		if err != nil {
			return nil, errors.Wrap(errors.PhaseLoad, errors.KindInvalidInput, err, "convert yaml")
		}
		data = converted
	default:
		return nil, errors.InvalidInput(errors.PhaseLoad, fmt.Sprintf("unknown format %q (want json or yaml)", format))
	}

	var msg any
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, errors.Wrap(errors.PhaseLoad, errors.KindInvalidInput, err, "decode json")
	}
	return msg, nil
}

// parseKind resolves a record name given on the command line.
func parseKind(name string) (serializer.Kind, error) {
	k, ok := serializer.ParseKind(name)
	if !ok {
		names := lo.Map(serializer.Kinds(), func(k serializer.Kind, _ int) string { return k.String() })
		return serializer.KindNone, errors.InvalidInput(errors.PhaseLoad,
			fmt.Sprintf("unknown kind %q (want one of %s)", name, strings.Join(names, ", ")))
	}
	return k, nil
}

// check decodes msg as kind, encodes the record again and compares the
// result with the input after both pass through JSON.
func check(s *serializer.Serializer, msg any, kind serializer.Kind, mode serializer.Mode) (*report, error) {
	record, err := s.Deserialize(msg, kind, mode)
	if err != nil {
		return nil, err
	}
	plain, err := s.Serialize(record, kind)
	if err != nil {
		return nil, err
	}
	if err := renderbridge.CheckPlain(plain); err != nil {
		return nil, err
	}

	want, err := normalize(msg)
	if err != nil {
		return nil, err
	}
	got, err := normalize(plain)
	if err != nil {
		return nil, err
	}

	r := &report{Record: record, Plain: plain, Kind: kind, Mode: mode}
	if !reflect.DeepEqual(got, want) {
		r.Diff = deep.Equal(got, want)
		if len(r.Diff) == 0 {
			r.Diff = []string{"messages differ"}
		}
	}
	return r, nil
}

func normalize(v any) (any, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode: %w", err)
	}
	var out any
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return out, nil
}

// encodeJSON renders a plain message as indented JSON.
func encodeJSON(v any) (string, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode: %w", err)
	}
	return string(data), nil
}
