package renderbridge

import (
	"encoding/json"
	"reflect"
	"strconv"

	"github.com/wippyai/render-bridge/errors"
)

// CheckPlain reports the first value in v that cannot be structurally
// copied across the boundary: pointers, structs, funcs, channels, maps
// with non-string keys, or a map or slice that contains itself.
func CheckPlain(v any) error {
	return checkPlain(reflect.ValueOf(v), nil, map[uintptr]bool{})
}

func checkPlain(rv reflect.Value, path []string, active map[uintptr]bool) error {
	if !rv.IsValid() {
		return nil
	}
	if rv.Type() == reflect.TypeOf(json.Number("")) {
		return nil
	}

	switch rv.Kind() {
	case reflect.Bool, reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return nil

	case reflect.Interface:
		if rv.IsNil() {
			return nil
		}
		return checkPlain(rv.Elem(), path, active)

	case reflect.Slice:
		if rv.IsNil() || rv.Len() == 0 {
			return nil
		}
		ptr := rv.Pointer()
		if active[ptr] {
			return errors.New(errors.PhaseValidate, errors.KindNotPlain).
				Path(path...).
				Detail("cycle through slice").
				Build()
		}
		active[ptr] = true
		defer delete(active, ptr)
		fallthrough

	case reflect.Array:
		for i := 0; i < rv.Len(); i++ {
			if err := checkPlain(rv.Index(i), appendSeg(path, "["+strconv.Itoa(i)+"]"), active); err != nil {
				return err
			}
		}
		return nil

	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return errors.NotPlain(path, rv.Type().String())
		}
		if rv.IsNil() {
			return nil
		}
		ptr := rv.Pointer()
		if active[ptr] {
			return errors.New(errors.PhaseValidate, errors.KindNotPlain).
				Path(path...).
				Detail("cycle through map").
				Build()
		}
		active[ptr] = true
		defer delete(active, ptr)

		iter := rv.MapRange()
		for iter.Next() {
			if err := checkPlain(iter.Value(), appendSeg(path, iter.Key().String()), active); err != nil {
				return err
			}
		}
		return nil

	default:
		return errors.NotPlain(path, rv.Type().String())
	}
}

func appendSeg(path []string, seg string) []string {
	out := make([]string, len(path), len(path)+1)
	copy(out, path)
	return append(out, seg)
}
