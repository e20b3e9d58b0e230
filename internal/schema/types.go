package schema

import (
	"encoding/json"
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"
)

// JSONType is a primitive JSON-schema type name.
type JSONType string

const (
	TypeString  JSONType = "string"
	TypeNumber  JSONType = "number"
	TypeInteger JSONType = "integer"
	TypeBoolean JSONType = "boolean"
	TypeArray   JSONType = "array"
	TypeObject  JSONType = "object"
	TypeNull    JSONType = "null"
)

var knownTypes = map[JSONType]struct{}{
	TypeString: {}, TypeNumber: {}, TypeInteger: {}, TypeBoolean: {},
	TypeArray: {}, TypeObject: {}, TypeNull: {},
}

// TypeSet is either a single type or a [type, "null"] union. It encodes as a
// bare string when it holds one type.
type TypeSet []JSONType

// Nullable reports whether the set admits null.
func (t TypeSet) Nullable() bool {
	return t.Allows(TypeNull)
}

// Allows reports whether typ is a member of the set.
func (t TypeSet) Allows(typ JSONType) bool {
	for _, candidate := range t {
		if candidate == typ {
			return true
		}
	}
	return false
}

// Primary returns the first non-null member.
func (t TypeSet) Primary() JSONType {
	for _, candidate := range t {
		if candidate != TypeNull {
			return candidate
		}
	}
	return TypeNull
}

func (t TypeSet) String() string {
	if len(t) == 1 {
		return string(t[0])
	}
	return fmt.Sprint([]JSONType(t))
}

// MarshalJSON writes a single type as a string and a union as an array.
func (t TypeSet) MarshalJSON() ([]byte, error) {
	if len(t) == 1 {
		return json.Marshal(string(t[0]))
	}
	return json.Marshal([]JSONType(t))
}

// UnmarshalJSON accepts "string" or ["string", "null"].
func (t *TypeSet) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*t = TypeSet{JSONType(single)}
		return nil
	}
	var many []JSONType
	if err := json.Unmarshal(data, &many); err != nil {
		return fmt.Errorf("type must be a string or an array of strings: %w", err)
	}
	*t = TypeSet(many)
	return nil
}

// MarshalYAML mirrors MarshalJSON.
func (t TypeSet) MarshalYAML() (any, error) {
	if len(t) == 1 {
		return string(t[0]), nil
	}
	return []JSONType(t), nil
}

// UnmarshalYAML accepts a scalar or a sequence.
func (t *TypeSet) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		*t = TypeSet{JSONType(value.Value)}
		return nil
	case yaml.SequenceNode:
		var many []JSONType
		if err := value.Decode(&many); err != nil {
			return err
		}
		*t = TypeSet(many)
		return nil
	default:
		return fmt.Errorf("line %d: type must be a string or a list of strings", value.Line)
	}
}

// Property describes one editable field.
type Property struct {
	Type        TypeSet   `json:"type" yaml:"type" validate:"required,min=1,max=2,dive,json_type"`
	Title       string    `json:"title" yaml:"title" validate:"required"`
	Description string    `json:"description,omitempty" yaml:"description,omitempty"`
	Enum        []any     `json:"enum,omitempty" yaml:"enum,omitempty"`
	EnumNames   []string  `json:"enumNames,omitempty" yaml:"enumNames,omitempty"`
	Minimum     *float64  `json:"minimum,omitempty" yaml:"minimum,omitempty"`
	Maximum     *float64  `json:"maximum,omitempty" yaml:"maximum,omitempty"`
	Items       *Property `json:"items,omitempty" yaml:"items,omitempty" validate:"-"`
}

// Choice is one enum value paired with its display label.
type Choice struct {
	Value any
	Label string
}

// Choices pairs Enum with EnumNames positionally. Missing labels fall back to
// the formatted value.
func (p Property) Choices() []Choice {
	if len(p.Enum) == 0 {
		return nil
	}
	out := make([]Choice, len(p.Enum))
	for i, v := range p.Enum {
		label := fmt.Sprint(v)
		if i < len(p.EnumNames) {
			label = p.EnumNames[i]
		}
		out[i] = Choice{Value: v, Label: label}
	}
	return out
}

// Schema is the object-shaped description of a prop or style set.
type Schema struct {
	Type       JSONType            `json:"type" yaml:"type" validate:"eq=object"`
	Properties map[string]Property `json:"properties" yaml:"properties"`
}

// Field is a named property.
type Field struct {
	Name     string
	Property Property
}

// Fields returns the properties sorted by name.
func (s Schema) Fields() []Field {
	names := make([]string, 0, len(s.Properties))
	for name := range s.Properties {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]Field, len(names))
	for i, name := range names {
		out[i] = Field{Name: name, Property: s.Properties[name]}
	}
	return out
}

// Lookup returns the property named name.
func (s Schema) Lookup(name string) (Property, bool) {
	p, ok := s.Properties[name]
	return p, ok
}

// IsZero reports whether the schema was never declared.
func (s Schema) IsZero() bool {
	return s.Type == "" && len(s.Properties) == 0
}

// Clone deep-copies the schema.
func (s Schema) Clone() Schema {
	out := Schema{Type: s.Type}
	if s.Properties != nil {
		out.Properties = make(map[string]Property, len(s.Properties))
		for k, v := range s.Properties {
			out.Properties[k] = v.clone()
		}
	}
	return out
}

func (p Property) clone() Property {
	out := p
	out.Type = append(TypeSet(nil), p.Type...)
	if p.Enum != nil {
		out.Enum = append([]any(nil), p.Enum...)
	}
	if p.EnumNames != nil {
		out.EnumNames = append([]string(nil), p.EnumNames...)
	}
	if p.Minimum != nil {
		v := *p.Minimum
		out.Minimum = &v
	}
	if p.Maximum != nil {
		v := *p.Maximum
		out.Maximum = &v
	}
	if p.Items != nil {
		items := p.Items.clone()
		out.Items = &items
	}
	return out
}
