package tree

import "math"

// Props holds the loosely typed properties of an instance. Values arrive from
// YAML (int, float64) or JSON (float64), so the accessors normalize numbers.
type Props map[string]any

// Clone deep-copies nested maps and slices.
func (p Props) Clone() Props {
	if p == nil {
		return Props{}
	}
	out := make(Props, len(p))
	for k, v := range p {
		out[k] = cloneValue(v)
	}
	return out
}

// Merge layers overlay on top of base and returns a new Props.
func Merge(base, overlay Props) Props {
	out := base.Clone()
	for k, v := range overlay {
		out[k] = cloneValue(v)
	}
	return out
}

// Has reports whether key is present, even with a nil value.
func (p Props) Has(key string) bool {
	_, ok := p[key]
	return ok
}

// String returns the string value of key or def.
func (p Props) String(key, def string) string {
	if v, ok := p[key].(string); ok {
		return v
	}
	return def
}

// Bool returns the boolean value of key or def.
func (p Props) Bool(key string, def bool) bool {
	if v, ok := p[key].(bool); ok {
		return v
	}
	return def
}

// Float returns the numeric value of key or def.
func (p Props) Float(key string, def float64) float64 {
	if v, ok := Number(p[key]); ok {
		return v
	}
	return def
}

// Int returns the whole-number value of key or def. Fractional numbers yield def.
func (p Props) Int(key string, def int) int {
	if v, ok := p.OptionalInt(key); ok {
		return v
	}
	return def
}

// OptionalInt returns the whole-number value of key and whether one was set.
// A nil value counts as unset.
func (p Props) OptionalInt(key string) (int, bool) {
	v, ok := Number(p[key])
	if !ok || v != math.Trunc(v) {
		return 0, false
	}
	return int(v), true
}

// List returns the slice value of key, or nil.
func (p Props) List(key string) []any {
	if v, ok := p[key].([]any); ok {
		return v
	}
	return nil
}

// Number converts any Go numeric value to float64.
func Number(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}

func cloneValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, inner := range t {
			out[k] = cloneValue(inner)
		}
		return out
	case Props:
		return t.Clone()
	case []any:
		out := make([]any, len(t))
		for i, inner := range t {
			out[i] = cloneValue(inner)
		}
		return out
	case []string:
		return append([]string(nil), t...)
	default:
		return v
	}
}
