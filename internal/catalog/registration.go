// Package catalog declares the placeable component types. Each category
// function returns a fresh, fixed-order slice of registrations binding a type
// key to its renderable component, default values and editing schemas.
package catalog

import (
	"github.com/corn12138/lowcode/internal/components"
	"github.com/corn12138/lowcode/internal/layout"
	"github.com/corn12138/lowcode/internal/schema"
	"github.com/corn12138/lowcode/internal/tree"
	lcerrors "github.com/corn12138/lowcode/pkg/errors"
)

// Category groups registrations in the palette.
type Category string

const (
	CategoryLayout Category = "layout"
	CategoryBasic  Category = "basic"
	CategoryForm   Category = "form"
)

// Registration describes one placeable element type.
type Registration struct {
	Type          string               `json:"type" yaml:"type" validate:"required,alphanum"`
	Name          string               `json:"name" yaml:"name" validate:"required"`
	Description   string               `json:"description,omitempty" yaml:"description,omitempty"`
	Icon          string               `json:"icon,omitempty" yaml:"icon,omitempty"`
	Category      Category             `json:"category" yaml:"category" validate:"required,lowercase"`
	DefaultProps  map[string]any       `json:"defaultProps" yaml:"defaultProps"`
	DefaultStyle  map[string]any       `json:"defaultStyle" yaml:"defaultStyle"`
	PropSchema    schema.Schema        `json:"propSchema" yaml:"propSchema" validate:"-"`
	StyleSchema   schema.Schema        `json:"styleSchema" yaml:"styleSchema" validate:"-"`
	Component     components.Component `json:"-" yaml:"-" validate:"required"`
	AllowChildren bool                 `json:"allowChildren" yaml:"allowChildren"`
}

// Validate checks the descriptor eagerly: required fields, both schemas, and
// that the defaults conform to them. Style defaults are only checked for keys
// the style schema declares.
func (r Registration) Validate() error {
	label := r.Type
	if label == "" {
		label = "registration"
	}

	if err := schema.Validator().Struct(r); err != nil {
		return schema.ConvertError(label, err)
	}

	if err := r.PropSchema.Validate(label + ".propSchema"); err != nil {
		return err
	}
	if err := r.PropSchema.CheckValues(label+".defaultProps", r.DefaultProps); err != nil {
		return err
	}

	if r.StyleSchema.IsZero() {
		return nil
	}
	if err := r.StyleSchema.Validate(label + ".styleSchema"); err != nil {
		return err
	}
	for key, value := range r.DefaultStyle {
		prop, ok := r.StyleSchema.Lookup(key)
		if !ok {
			continue
		}
		if err := prop.Check(value); err != nil {
			return lcerrors.NewValidationError(label+".defaultStyle."+key, err.Error(), err)
		}
	}

	return nil
}

// Clone returns a copy that shares only the Component.
func (r Registration) Clone() Registration {
	out := r
	out.DefaultProps = tree.Props(r.DefaultProps).Clone()
	out.DefaultStyle = tree.Props(r.DefaultStyle).Clone()
	out.PropSchema = r.PropSchema.Clone()
	out.StyleSchema = r.StyleSchema.Clone()
	return out
}

// Props returns the default props layered under overrides.
func (r Registration) Props(overrides tree.Props) tree.Props {
	return tree.Merge(tree.Props(r.DefaultProps), overrides)
}

// Style returns the default style layered under overrides.
func (r Registration) Style(overrides layout.Style) layout.Style {
	return layout.Merge(layout.FromMap(r.DefaultStyle), overrides)
}

// Builtin returns every built-in category in its fixed aggregation order.
func Builtin() [][]Registration {
	return [][]Registration{Layout(), Basic(), Form()}
}
