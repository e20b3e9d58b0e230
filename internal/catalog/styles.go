package catalog

import "github.com/corn12138/lowcode/internal/schema"

func boxStyleSchema() schema.Schema {
	return schema.Object(map[string]schema.Property{
		"width":           schema.String("Width"),
		"height":          schema.String("Height"),
		"minHeight":       schema.Number("Min height").AtLeast(0).OrNull(),
		"margin":          schema.String("Margin"),
		"padding":         schema.String("Padding"),
		"backgroundColor": schema.String("Background color"),
		"borderRadius":    schema.Number("Border radius").AtLeast(0),
	})
}

func textStyleSchema() schema.Schema {
	return schema.Object(map[string]schema.Property{
		"color":    schema.String("Color"),
		"fontSize": schema.Number("Font size").Between(8, 96),
		"fontWeight": schema.String("Font weight").OneOf(
			[]any{"normal", "bold", "lighter"},
			[]string{"Normal", "Bold", "Lighter"},
		),
		"textAlign": schema.String("Text align").OneOf(
			[]any{"left", "center", "right"},
			[]string{"Left", "Center", "Right"},
		),
		"margin":  schema.String("Margin"),
		"padding": schema.String("Padding"),
	})
}
