package schema

import (
	"fmt"
	"math"
	"reflect"
	"sort"

	lcerrors "github.com/corn12138/lowcode/pkg/errors"
)

// Check reports whether value conforms to the property: type, nullability,
// enum membership, numeric bounds and, for arrays, every element.
func (p Property) Check(value any) error {
	if value == nil {
		if p.Type.Nullable() {
			return nil
		}
		return fmt.Errorf("must not be null")
	}

	if err := p.checkScalar(value); err != nil {
		return err
	}

	if p.Items != nil && kindOf(value) == TypeArray {
		rv := reflect.ValueOf(value)
		for i := 0; i < rv.Len(); i++ {
			if err := p.Items.Check(rv.Index(i).Interface()); err != nil {
				return fmt.Errorf("item %d: %w", i, err)
			}
		}
	}

	return nil
}

func (p Property) checkScalar(value any) error {
	if value == nil {
		if p.Type.Nullable() {
			return nil
		}
		return fmt.Errorf("must not be null")
	}

	actual := kindOf(value)
	if !p.accepts(actual) {
		return fmt.Errorf("expected %s, got %s", p.Type, actual)
	}

	if len(p.Enum) > 0 && !containsValue(p.Enum, value) {
		return fmt.Errorf("value %v is not one of %v", value, p.Enum)
	}

	if n, ok := toFloat(value); ok {
		if p.Minimum != nil && n < *p.Minimum {
			return fmt.Errorf("value %v is below minimum %v", value, *p.Minimum)
		}
		if p.Maximum != nil && n > *p.Maximum {
			return fmt.Errorf("value %v is above maximum %v", value, *p.Maximum)
		}
	}

	return nil
}

func (p Property) accepts(actual JSONType) bool {
	if p.Type.Allows(actual) {
		return true
	}
	return actual == TypeInteger && p.Type.Allows(TypeNumber)
}

// CheckValues validates a value set against the schema. Keys not declared in
// the schema are rejected.
func (s Schema) CheckValues(path string, values map[string]any) error {
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		field := joinPath(path, key)
		prop, ok := s.Properties[key]
		if !ok {
			return lcerrors.NewValidationError(field, "is not declared in the schema", nil)
		}
		if err := prop.Check(values[key]); err != nil {
			return lcerrors.NewValidationError(field, err.Error(), err)
		}
	}

	return nil
}

// CheckStyle validates serialized style values. Only properties that the
// schema declares with an enum are constrained; other keys pass through.
func (s Schema) CheckStyle(path string, style map[string]string) error {
	keys := make([]string, 0, len(style))
	for k := range style {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		prop, ok := s.Properties[key]
		if !ok || len(prop.Enum) == 0 {
			continue
		}
		if !containsValue(prop.Enum, style[key]) {
			return lcerrors.NewValidationError(joinPath(path, key), fmt.Sprintf("value %q is not one of %v", style[key], prop.Enum), nil)
		}
	}

	return nil
}

func kindOf(value any) JSONType {
	switch value.(type) {
	case bool:
		return TypeBoolean
	case string:
		return TypeString
	}

	if n, ok := toFloat(value); ok {
		if n == math.Trunc(n) && !math.IsInf(n, 0) {
			return TypeInteger
		}
		return TypeNumber
	}

	switch reflect.ValueOf(value).Kind() {
	case reflect.Slice, reflect.Array:
		return TypeArray
	case reflect.Map, reflect.Struct:
		return TypeObject
	default:
		return JSONType(fmt.Sprintf("%T", value))
	}
}

func containsValue(values []any, value any) bool {
	for _, candidate := range values {
		if equalValues(candidate, value) {
			return true
		}
	}
	return false
}

func equalValues(a, b any) bool {
	na, okA := toFloat(a)
	nb, okB := toFloat(b)
	if okA && okB {
		return na == nb
	}
	if okA != okB {
		return false
	}
	return reflect.DeepEqual(a, b)
}

func toFloat(v any) (float64, bool) {
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
