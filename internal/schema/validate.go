package schema

import (
	"fmt"
	"reflect"
	"regexp"
	"sort"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	lcerrors "github.com/corn12138/lowcode/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	propertyNamePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)
)

// Validator returns the shared validator instance with the schema rules
// registered. Other packages reuse it for their own struct tags.
func Validator() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
			if name == "" || name == "-" {
				return field.Name
			}
			return name
		})

		_ = v.RegisterValidation("json_type", func(fl validator.FieldLevel) bool {
			_, ok := knownTypes[JSONType(fl.Field().String())]
			return ok
		})

		v.RegisterStructValidation(propertyStructLevel, Property{})

		validateInst = v
	})

	return validateInst
}

func propertyStructLevel(sl validator.StructLevel) {
	p := sl.Current().Interface().(Property)

	if len(p.Enum) > 0 && len(p.EnumNames) > 0 && len(p.Enum) != len(p.EnumNames) {
		sl.ReportError(p.EnumNames, "enumNames", "EnumNames", "enum_parity", "")
	}

	if p.Minimum != nil && p.Maximum != nil && *p.Minimum > *p.Maximum {
		sl.ReportError(p.Minimum, "minimum", "Minimum", "bounds", "")
	}

	switch len(p.Type) {
	case 1:
		if p.Type[0] == TypeNull {
			sl.ReportError(p.Type, "type", "Type", "nullable_union", "")
		}
	case 2:
		if !p.Type.Nullable() || p.Type[0] == p.Type[1] {
			sl.ReportError(p.Type, "type", "Type", "nullable_union", "")
		}
	}
}

// Validate checks the schema shape eagerly: the object type, every property
// declaration, enum/enumNames parity, bounds, and that enum values conform to
// their property type. path prefixes the Field of any returned
// ValidationError.
func (s Schema) Validate(path string) error {
	v := Validator()
	if err := v.Struct(s); err != nil {
		return ConvertError(path, err)
	}

	names := make([]string, 0, len(s.Properties))
	for name := range s.Properties {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		field := joinPath(path, "properties."+name)
		if !propertyNamePattern.MatchString(name) {
			return lcerrors.NewValidationError(field, fmt.Sprintf("invalid property name %q", name), nil)
		}
		if err := s.Properties[name].Validate(field); err != nil {
			return err
		}
	}

	return nil
}

// Validate checks a single property declaration.
func (p Property) Validate(path string) error {
	if err := Validator().Struct(p); err != nil {
		return ConvertError(path, err)
	}

	if p.Items != nil {
		if !p.Type.Allows(TypeArray) {
			return lcerrors.NewValidationError(joinPath(path, "items"), "items is only valid on array properties", nil)
		}
		if err := p.Items.Validate(joinPath(path, "items")); err != nil {
			return err
		}
	}

	for i, value := range p.Enum {
		if err := p.checkScalar(value); err != nil {
			return lcerrors.NewValidationError(fmt.Sprintf("%s[%d]", joinPath(path, "enum"), i), err.Error(), err)
		}
	}

	return nil
}

// ConvertError turns the first validator failure into a ValidationError whose
// Field is prefixed by path.
func ConvertError(path string, err error) error {
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := joinPath(path, ve.Field())
		return lcerrors.NewValidationError(field, messageForTag(ve), err)
	}

	return lcerrors.NewValidationError(path, err.Error(), err)
}

func messageForTag(ve validator.FieldError) string {
	switch ve.Tag() {
	case "required":
		return "is required"
	case "json_type":
		return fmt.Sprintf("unknown type %q", ve.Value())
	case "enum_parity":
		return "enum and enumNames must have equal length"
	case "bounds":
		return "minimum must not exceed maximum"
	case "nullable_union":
		return `type must be one type or a [type, "null"] pair`
	case "min", "max":
		return `type must be one type or a [type, "null"] pair`
	case "eq":
		return fmt.Sprintf("must be %q", ve.Param())
	default:
		return fmt.Sprintf("failed validation for tag '%s'", ve.Tag())
	}
}

func joinPath(prefix, field string) string {
	if prefix == "" {
		return field
	}
	if field == "" {
		return prefix
	}
	return prefix + "." + field
}
