package layout

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

// Style is an inline style keyed by camelCase property name.
type Style map[string]string

// unitless properties keep bare numeric values instead of gaining a px suffix.
var unitless = map[string]struct{}{
	"flex":       {},
	"flexGrow":   {},
	"flexShrink": {},
	"opacity":    {},
	"zIndex":     {},
	"fontWeight": {},
	"lineHeight": {},
	"order":      {},
}

// Clone returns an independent copy of the style. A nil style clones to an empty one.
func (s Style) Clone() Style {
	out := make(Style, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

// Has reports whether the property is present.
func (s Style) Has(key string) bool {
	_, ok := s[key]
	return ok
}

// Keys returns the property names in sorted order.
func (s Style) Keys() []string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// CSS serializes the style as a deterministic declaration list,
// e.g. "align-items:center;display:flex".
func (s Style) CSS() string {
	if len(s) == 0 {
		return ""
	}
	parts := make([]string, 0, len(s))
	for _, key := range s.Keys() {
		parts = append(parts, kebab(key)+":"+s[key])
	}
	return strings.Join(parts, ";")
}

// Merge layers overlay on top of base and returns a new style. Neither input is modified.
func Merge(base, overlay Style) Style {
	out := base.Clone()
	for k, v := range overlay {
		out[k] = v
	}
	return out
}

// FromMap converts loosely typed style values (as decoded from YAML or JSON)
// into a Style.
func FromMap(values map[string]any) Style {
	out := make(Style, len(values))
	for k, v := range values {
		if v == nil {
			continue
		}
		out[k] = FormatValue(k, v)
	}
	return out
}

// FormatValue renders a single style value. Numbers gain a px suffix unless
// the property is unitless.
func FormatValue(key string, value any) string {
	var n float64
	switch v := value.(type) {
	case string:
		return v
	case int:
		n = float64(v)
	case int64:
		n = float64(v)
	case float64:
		n = v
	case float32:
		n = float64(v)
	default:
		return fmt.Sprint(v)
	}
	if _, ok := unitless[key]; ok {
		return formatNumber(n)
	}
	return Px(n)
}

// Px formats a pixel length, normalizing negative zero.
func Px(v float64) string {
	return formatNumber(v) + "px"
}

// Percent formats units out of total as a percentage rounded to two decimals.
func Percent(units, total int) string {
	return formatNumber(percentage(units, total)) + "%"
}

func percentage(units, total int) float64 {
	if total <= 0 {
		return 0
	}
	return round2(float64(units) / float64(total) * 100)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func formatNumber(v float64) string {
	if v == 0 {
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func kebab(key string) string {
	var b strings.Builder
	b.Grow(len(key) + 4)
	for i, r := range key {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte('-')
			}
			b.WriteRune(r + ('a' - 'A'))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
