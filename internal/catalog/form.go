package catalog

import (
	"github.com/corn12138/lowcode/internal/components"
	"github.com/corn12138/lowcode/internal/schema"
)

// Form returns the form category: Form, Input, Textarea, Select, Checkbox.
func Form() []Registration {
	return []Registration{
		{
			Type:         "Form",
			Name:         "Form",
			Description:  "Form container submitting its controls",
			Icon:         "form",
			Category:     CategoryForm,
			DefaultProps: map[string]any{"layout": "vertical", "method": "post", "action": ""},
			DefaultStyle: map[string]any{},
			PropSchema: schema.Object(map[string]schema.Property{
				"layout": schema.String("Layout").OneOf(
					[]any{"vertical", "horizontal", "inline"},
					[]string{"Vertical", "Horizontal", "Inline"},
				),
				"method": schema.String("Method").OneOf(
					[]any{"get", "post"},
					[]string{"GET", "POST"},
				),
				"action": schema.String("Action URL"),
			}),
			StyleSchema:   boxStyleSchema(),
			Component:     components.Form{},
			AllowChildren: true,
		},
		{
			Type:        "Input",
			Name:        "Input",
			Description: "Single-line text input",
			Icon:        "edit",
			Category:    CategoryForm,
			DefaultProps: map[string]any{
				"label":       "Label",
				"name":        "",
				"placeholder": "Please enter",
				"inputType":   "text",
				"required":    false,
				"disabled":    false,
			},
			DefaultStyle: map[string]any{},
			PropSchema: schema.Object(map[string]schema.Property{
				"label":       schema.String("Label"),
				"name":        schema.String("Field name"),
				"placeholder": schema.String("Placeholder"),
				"inputType": schema.String("Input type").OneOf(
					[]any{"text", "password", "email", "number", "tel", "url"},
					[]string{"Text", "Password", "Email", "Number", "Phone", "URL"},
				),
				"required": schema.Boolean("Required"),
				"disabled": schema.Boolean("Disabled"),
			}),
			StyleSchema: boxStyleSchema(),
			Component:   components.Input{},
		},
		{
			Type:        "Textarea",
			Name:        "Textarea",
			Description: "Multi-line text input",
			Icon:        "file-text",
			Category:    CategoryForm,
			DefaultProps: map[string]any{
				"label":       "Label",
				"name":        "",
				"placeholder": "Please enter",
				"rows":        4,
				"required":    false,
			},
			DefaultStyle: map[string]any{},
			PropSchema: schema.Object(map[string]schema.Property{
				"label":       schema.String("Label"),
				"name":        schema.String("Field name"),
				"placeholder": schema.String("Placeholder"),
				"rows":        schema.Integer("Rows").Between(1, 20),
				"required":    schema.Boolean("Required"),
			}),
			StyleSchema: boxStyleSchema(),
			Component:   components.Textarea{},
		},
		{
			Type:        "Select",
			Name:        "Select",
			Description: "Drop-down choice",
			Icon:        "select",
			Category:    CategoryForm,
			DefaultProps: map[string]any{
				"label":       "Label",
				"name":        "",
				"placeholder": "Please select",
				"options":     []any{"Option 1", "Option 2"},
				"multiple":    false,
			},
			DefaultStyle: map[string]any{},
			PropSchema: schema.Object(map[string]schema.Property{
				"label":       schema.String("Label"),
				"name":        schema.String("Field name"),
				"placeholder": schema.String("Placeholder"),
				"options":     schema.Array("Options", schema.String("Option")),
				"multiple":    schema.Boolean("Multiple"),
			}),
			StyleSchema: boxStyleSchema(),
			Component:   components.Select{},
		},
		{
			Type:         "Checkbox",
			Name:         "Checkbox",
			Description:  "Checkbox with inline label",
			Icon:         "check-square",
			Category:     CategoryForm,
			DefaultProps: map[string]any{"label": "Checkbox", "name": "", "checked": false, "disabled": false},
			DefaultStyle: map[string]any{},
			PropSchema: schema.Object(map[string]schema.Property{
				"label":    schema.String("Label"),
				"name":     schema.String("Field name"),
				"checked":  schema.Boolean("Checked"),
				"disabled": schema.Boolean("Disabled"),
			}),
			StyleSchema: boxStyleSchema(),
			Component:   components.Checkbox{},
		},
	}
}
