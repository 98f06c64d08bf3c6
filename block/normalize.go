package block

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"strings"
	"time"

	"github.com/google/uuid"
)

// TimeLayout is the ISO-8601 layout used for every timestamp a block carries
const TimeLayout = time.RFC3339Nano

// NormalizeMap returns a deep copy of m with every value in canonical plain form.
//
// Canonical form is what every codec decodes back to: string, bool, int64, float64,
// nil, []any and map[string]any. Identifiers and timestamps become strings.
func NormalizeMap(m map[string]any) (map[string]any, error) {
	return normalizeMap("", m)
}

// NormalizeValue returns v in canonical plain form
func NormalizeValue(v any) (any, error) {
	return normalize("", v)
}

func normalizeMap(path string, m map[string]any) (map[string]any, error) {
	out := make(map[string]any, len(m))
	for k, v := range m {
		nv, err := normalize(joinPath(path, k), v)
		if err != nil {
			return nil, err
		}
		out[k] = nv
	}
	return out, nil
}

func normalize(path string, v any) (any, error) {
	switch val := v.(type) {
	case nil:
		return nil, nil
	case string, bool, int64:
		return val, nil
	case float64:
		return normalizeFloat(val), nil
	case int:
		return int64(val), nil
	case int8:
		return int64(val), nil
	case int16:
		return int64(val), nil
	case int32:
		return int64(val), nil
	case uint:
		return normalizeUint(path, uint64(val))
	case uint8:
		return int64(val), nil
	case uint16:
		return int64(val), nil
	case uint32:
		return int64(val), nil
	case uint64:
		return normalizeUint(path, val)
	case float32:
		return normalizeFloat(float64(val)), nil
	case json.Number:
		if i, err := val.Int64(); err == nil {
			return i, nil
		}
		// An integer literal that Int64 rejects is out of range; it would lose precision as float64
		if !strings.ContainsAny(string(val), ".eE") {
			return nil, NewUnsupportedValueError(path, v)
		}
		f, err := val.Float64()
		if err != nil {
			return nil, NewUnsupportedValueError(path, v)
		}
		return normalizeFloat(f), nil
	case uuid.UUID:
		return val.String(), nil
	case time.Time:
		return val.UTC().Format(TimeLayout), nil
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			nv, err := normalize(fmt.Sprintf("%s[%d]", path, i), item)
			if err != nil {
				return nil, err
			}
			out[i] = nv
		}
		return out, nil
	case []string:
		out := make([]any, len(val))
		for i, s := range val {
			out[i] = s
		}
		return out, nil
	case map[string]any:
		return normalizeMap(path, val)
	case map[string]string:
		out := make(map[string]any, len(val))
		for k, s := range val {
			out[k] = s
		}
		return out, nil
	case map[any]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			ks, ok := k.(string)
			if !ok {
				return nil, NewUnsupportedValueError(path, v)
			}
			nv, err := normalize(joinPath(path, ks), item)
			if err != nil {
				return nil, err
			}
			out[ks] = nv
		}
		return out, nil
	}

	return normalizeReflect(path, v)
}

// normalizeReflect handles typed slices, typed maps and structs
func normalizeReflect(path string, v any) (any, error) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer:
		if rv.IsNil() {
			return nil, nil
		}
		return normalize(path, rv.Elem().Interface())
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.IsNil() {
			return []any{}, nil
		}
		out := make([]any, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			nv, err := normalize(fmt.Sprintf("%s[%d]", path, i), rv.Index(i).Interface())
			if err != nil {
				return nil, err
			}
			out[i] = nv
		}
		return out, nil
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil, NewUnsupportedValueError(path, v)
		}
		out := make(map[string]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			k := iter.Key().String()
			nv, err := normalize(joinPath(path, k), iter.Value().Interface())
			if err != nil {
				return nil, err
			}
			out[k] = nv
		}
		return out, nil
	case reflect.String:
		return rv.String(), nil
	case reflect.Bool:
		return rv.Bool(), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int(), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return normalizeUint(path, rv.Uint())
	case reflect.Float32, reflect.Float64:
		return normalizeFloat(rv.Float()), nil
	case reflect.Struct:
		// Structs go through their JSON form so field tags are honoured
		data, err := json.Marshal(v)
		if err != nil {
			return nil, NewUnsupportedValueError(path, v)
		}
		var generic any
		if err := json.Unmarshal(data, &generic); err != nil {
			return nil, NewUnsupportedValueError(path, v)
		}
		return normalize(path, generic)
	}
	return nil, NewUnsupportedValueError(path, v)
}

func normalizeUint(path string, u uint64) (any, error) {
	if u > math.MaxInt64 {
		return nil, NewUnsupportedValueError(path, u)
	}
	return int64(u), nil
}

// normalizeFloat folds integral floats into int64 so that JSON, YAML and CBOR agree
func normalizeFloat(f float64) any {
	if f == math.Trunc(f) && !math.IsInf(f, 0) && f >= math.MinInt64 && f < math.MaxInt64 {
		return int64(f)
	}
	return f
}

func joinPath(path, key string) string {
	if path == "" {
		return key
	}
	return path + "." + key
}

// copyValue deep-copies a value already in canonical form
func copyValue(v any) any {
	switch val := v.(type) {
	case map[string]any:
		return copyMap(val)
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = copyValue(item)
		}
		return out
	default:
		return val
	}
}

func copyMap(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = copyValue(v)
	}
	return out
}
