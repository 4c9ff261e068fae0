package renderbridge

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	bridgeerrors "github.com/wippyai/render-bridge/errors"
)

func TestCheckPlain_Accepts(t *testing.T) {
	tests := []struct {
		name  string
		value any
	}{
		{"nil", nil},
		{"string", "c1"},
		{"number", 3.5},
		{"json number", json.Number("7")},
		{"bool", true},
		{"string slice", []string{"a", "b"}},
		{"empty any slice", []any{}},
		{"nested", map[string]any{
			"componentId": "c1",
			"directives":  []any{map[string]any{"id": "d1", "hostProperties": map[string]any{}}},
			"styles":      nil,
		}},
		{"shared but acyclic", func() any {
			shared := map[string]any{"x": 1}
			return []any{shared, shared}
		}()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := CheckPlain(tt.value); err != nil {
				t.Errorf("CheckPlain() = %v, want nil", err)
			}
		})
	}
}

func TestCheckPlain_Rejects(t *testing.T) {
	type record struct{ ID string }
	cyclic := map[string]any{}
	cyclic["self"] = cyclic

	tests := []struct {
		name     string
		value    any
		wantPath string
	}{
		{"struct", record{ID: "x"}, ""},
		{"pointer", &record{}, ""},
		{"func in map", map[string]any{"cb": func() {}}, "cb"},
		{"int keys", map[int]any{1: "a"}, ""},
		{"nested struct", map[string]any{"directives": []any{record{}}}, "directives[0]"},
		{"cycle", cyclic, "self"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckPlain(tt.value)
			if err == nil {
				t.Fatal("CheckPlain() = nil, want error")
			}
			if !errors.Is(err, bridgeerrors.ErrNotPlain) {
				t.Errorf("error %v is not ErrNotPlain", err)
			}
			if tt.wantPath != "" && !strings.Contains(err.Error(), tt.wantPath) {
				t.Errorf("error %q does not mention path %q", err.Error(), tt.wantPath)
			}
		})
	}
}
