package serializer

import (
	"fmt"
	"math"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"github.com/fatih/structs"
	"github.com/mitchellh/mapstructure"

	"github.com/wippyai/render-bridge/errors"
)

// toPlain flattens a wire struct into a plain map keyed by wire tags.
func toPlain(wire any) map[string]any {
	st := structs.New(wire)
	st.TagName = wireTag
	m := st.Map()
	for k, v := range m {
		m[k] = plainValue(v)
	}
	return m
}

// plainValue dereferences pointers and turns typed nils into untyped nil.
func plainValue(v any) any {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Invalid:
		return nil
	case reflect.Ptr:
		if rv.IsNil() {
			return nil
		}
		return plainValue(rv.Elem().Interface())
	case reflect.Slice, reflect.Map, reflect.Interface:
		if rv.IsNil() {
			return nil
		}
	}
	return v
}

// wireFields lists the wire keys a wire struct requires.
func wireFields(wire any) []string {
	var names []string
	for _, f := range structs.New(wire).Fields() {
		name, _, _ := strings.Cut(f.Tag(wireTag), ",")
		if name == "" || name == "-" {
			continue
		}
		names = append(names, name)
	}
	return names
}

// fromPlain decodes a plain map into a wire struct. Every field in
// required must be present as a key, even if its value is null.
func fromPlain(plain any, out any, required []string, kind Kind, path []string) error {
	m, ok := plain.(map[string]any)
	if !ok {
		return errors.New(errors.PhaseDeserialize, errors.KindTypeMismatch).
			Path(path...).
			GoType(fmt.Sprintf("%T", plain)).
			Record(kind.String()).
			Detail("expected a plain object").
			Build()
	}

	var missing []string
	for _, name := range required {
		if _, ok := m[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return errors.FieldMissing(errors.PhaseDeserialize, path, kind.String(),
			fmt.Errorf("missing fields: %s", strings.Join(missing, ", ")))
	}

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: mapstructure.DecodeHookFuncType(integralHook),
		TagName:    wireTag,
		Result:     out,
	})
	if err != nil {
		return errors.Wrap(errors.PhaseDeserialize, errors.KindInvalidData, err, "build decoder")
	}
	if err := dec.Decode(m); err != nil {
		return errors.New(errors.PhaseDeserialize, errors.KindTypeMismatch).
			Path(path...).
			Record(kind.String()).
			Detail("plain value does not match wire schema").
			Cause(err).
			Build()
	}
	return nil
}

// integralHook rejects fractional numbers bound for integer fields.
// Transports such as JSON deliver every number as float64.
func integralHook(from, to reflect.Type, data any) (any, error) {
	switch to.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
	default:
		return data, nil
	}
	switch from.Kind() {
	case reflect.Float32, reflect.Float64:
		f := reflect.ValueOf(data).Float()
		if f != math.Trunc(f) || math.IsInf(f, 0) {
			return nil, fmt.Errorf("number %v is not an integer", data)
		}
	}
	return data, nil
}

// isAbsent reports nil interfaces and nil pointers, slices and maps.
func isAbsent(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Slice, reflect.Map, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

// sequence returns v as a reflect slice or array.
func sequence(v any) (reflect.Value, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		return rv, true
	}
	return reflect.Value{}, false
}

func with(path []string, seg ...string) []string {
	out := make([]string, 0, len(path)+len(seg))
	out = append(out, path...)
	return append(out, seg...)
}

func index(i int) string {
	return "[" + strconv.Itoa(i) + "]"
}

func optString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func derefString(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

// typedMap narrows the values of a decoded map. An absent value becomes
// the zero V.
func typedMap[V any](m map[string]any, path []string) (map[string]V, error) {
	if m == nil {
		return nil, nil
	}
	out := make(map[string]V, len(m))
	for k, v := range m {
		if v == nil {
			var zero V
			out[k] = zero
			continue
		}
		typed, ok := v.(V)
		if !ok {
			var zero V
			return nil, errors.TypeMismatch(errors.PhaseDeserialize, with(path, k),
				fmt.Sprintf("%T", v), fmt.Sprintf("%T", zero))
		}
		out[k] = typed
	}
	return out, nil
}
