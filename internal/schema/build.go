package schema

// Object builds an object schema from its properties.
func Object(properties map[string]Property) Schema {
	return Schema{Type: TypeObject, Properties: properties}
}

// String declares a string property.
func String(title string) Property {
	return Property{Type: TypeSet{TypeString}, Title: title}
}

// Number declares a numeric property.
func Number(title string) Property {
	return Property{Type: TypeSet{TypeNumber}, Title: title}
}

// Integer declares a whole-number property.
func Integer(title string) Property {
	return Property{Type: TypeSet{TypeInteger}, Title: title}
}

// Boolean declares a boolean property.
func Boolean(title string) Property {
	return Property{Type: TypeSet{TypeBoolean}, Title: title}
}

// Array declares a list property whose elements conform to items.
func Array(title string, items Property) Property {
	return Property{Type: TypeSet{TypeArray}, Title: title, Items: &items}
}

// OrNull widens the property to a [type, "null"] union.
func (p Property) OrNull() Property {
	if p.Type.Nullable() {
		return p
	}
	p.Type = append(append(TypeSet(nil), p.Type...), TypeNull)
	return p
}

// Between sets inclusive numeric bounds.
func (p Property) Between(minimum, maximum float64) Property {
	p.Minimum = &minimum
	p.Maximum = &maximum
	return p
}

// AtLeast sets an inclusive lower bound.
func (p Property) AtLeast(minimum float64) Property {
	p.Minimum = &minimum
	return p
}

// OneOf restricts the property to values, labelled positionally by names.
func (p Property) OneOf(values []any, names []string) Property {
	p.Enum = values
	p.EnumNames = names
	return p
}

// Describe attaches a description.
func (p Property) Describe(description string) Property {
	p.Description = description
	return p
}
