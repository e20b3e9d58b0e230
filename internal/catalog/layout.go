package catalog

import (
	"github.com/corn12138/lowcode/internal/components"
	"github.com/corn12138/lowcode/internal/schema"
)

// Layout returns the layout category: Grid, Row, Column.
func Layout() []Registration {
	return []Registration{
		{
			Type:          "Grid",
			Name:          "Grid",
			Description:   "Responsive grid container that wraps rows of columns",
			Icon:          "grid",
			Category:      CategoryLayout,
			DefaultProps:  map[string]any{"gutter": 16, "justify": "start", "align": "top"},
			DefaultStyle:  map[string]any{"width": "100%"},
			PropSchema:    rowPropSchema(),
			StyleSchema:   boxStyleSchema(),
			Component:     components.Row{},
			AllowChildren: true,
		},
		{
			Type:          "Row",
			Name:          "Row",
			Description:   "Horizontal flex row distributing a gutter to its columns",
			Icon:          "row",
			Category:      CategoryLayout,
			DefaultProps:  map[string]any{"gutter": 16, "justify": "start", "align": "top"},
			DefaultStyle:  map[string]any{},
			PropSchema:    rowPropSchema(),
			StyleSchema:   boxStyleSchema(),
			Component:     components.Row{},
			AllowChildren: true,
		},
		{
			Type:        "Column",
			Name:        "Column",
			Description: "Column spanning part of a 24-unit row",
			Icon:        "column",
			Category:    CategoryLayout,
			DefaultProps: map[string]any{
				"span":   12,
				"offset": 0,
				"xs":     nil,
				"sm":     nil,
				"md":     nil,
				"lg":     nil,
				"xl":     nil,
			},
			DefaultStyle:  map[string]any{"minHeight": 40},
			PropSchema:    columnPropSchema(),
			StyleSchema:   boxStyleSchema(),
			Component:     components.Column{},
			AllowChildren: true,
		},
	}
}

func rowPropSchema() schema.Schema {
	return schema.Object(map[string]schema.Property{
		"gutter": schema.Number("Gutter").AtLeast(0).Describe("Horizontal space between columns in pixels"),
		"justify": schema.String("Horizontal alignment").OneOf(
			[]any{"start", "end", "center", "space-between", "space-around"},
			[]string{"Start", "End", "Center", "Space between", "Space around"},
		),
		"align": schema.String("Vertical alignment").OneOf(
			[]any{"top", "middle", "bottom"},
			[]string{"Top", "Middle", "Bottom"},
		),
	})
}

func columnPropSchema() schema.Schema {
	span := func(title string) schema.Property {
		return schema.Integer(title).Between(0, 24)
	}
	return schema.Object(map[string]schema.Property{
		"span":   span("Span"),
		"offset": span("Offset"),
		"xs":     span("Span (<576px)").OrNull(),
		"sm":     span("Span (≥576px)").OrNull(),
		"md":     span("Span (≥768px)").OrNull(),
		"lg":     span("Span (≥992px)").OrNull(),
		"xl":     span("Span (≥1200px)").OrNull(),
	})
}
