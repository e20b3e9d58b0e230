package catalog

import (
	"github.com/corn12138/lowcode/internal/components"
	"github.com/corn12138/lowcode/internal/schema"
)

// Basic returns the basic category: Text, Button, Image, Link, Divider.
func Basic() []Registration {
	return []Registration{
		{
			Type:         "Text",
			Name:         "Text",
			Description:  "Paragraph or heading text",
			Icon:         "font-size",
			Category:     CategoryBasic,
			DefaultProps: map[string]any{"content": "Text", "tag": "p"},
			DefaultStyle: map[string]any{"fontSize": 14, "color": "#333333"},
			PropSchema: schema.Object(map[string]schema.Property{
				"content": schema.String("Content"),
				"tag": schema.String("Tag").OneOf(
					[]any{"p", "span", "h1", "h2", "h3", "h4", "blockquote"},
					[]string{"Paragraph", "Inline", "Heading 1", "Heading 2", "Heading 3", "Heading 4", "Quote"},
				),
			}),
			StyleSchema: textStyleSchema(),
			Component:   components.Text{},
		},
		{
			Type:         "Button",
			Name:         "Button",
			Description:  "Clickable button",
			Icon:         "button",
			Category:     CategoryBasic,
			DefaultProps: map[string]any{"text": "Button", "variant": "default", "size": "middle", "disabled": false, "htmlType": "button"},
			DefaultStyle: map[string]any{},
			PropSchema: schema.Object(map[string]schema.Property{
				"text": schema.String("Text"),
				"variant": schema.String("Variant").OneOf(
					[]any{"primary", "default", "dashed", "text", "link"},
					[]string{"Primary", "Default", "Dashed", "Text", "Link"},
				),
				"size": schema.String("Size").OneOf(
					[]any{"small", "middle", "large"},
					[]string{"Small", "Middle", "Large"},
				),
				"disabled": schema.Boolean("Disabled"),
				"htmlType": schema.String("HTML type").OneOf(
					[]any{"button", "submit", "reset"},
					[]string{"Button", "Submit", "Reset"},
				),
			}),
			StyleSchema: boxStyleSchema(),
			Component:   components.Button{},
		},
		{
			Type:         "Image",
			Name:         "Image",
			Description:  "Image with alternative text",
			Icon:         "picture",
			Category:     CategoryBasic,
			DefaultProps: map[string]any{"src": "", "alt": "", "fit": "cover"},
			DefaultStyle: map[string]any{"width": "100%"},
			PropSchema: schema.Object(map[string]schema.Property{
				"src": schema.String("Source URL"),
				"alt": schema.String("Alternative text"),
				"fit": schema.String("Object fit").OneOf(
					[]any{"fill", "contain", "cover", "none", "scale-down"},
					[]string{"Fill", "Contain", "Cover", "None", "Scale down"},
				),
			}),
			StyleSchema: boxStyleSchema(),
			Component:   components.Image{},
		},
		{
			Type:         "Link",
			Name:         "Link",
			Description:  "Hyperlink",
			Icon:         "link",
			Category:     CategoryBasic,
			DefaultProps: map[string]any{"href": "#", "text": "Link", "target": "_self"},
			DefaultStyle: map[string]any{},
			PropSchema: schema.Object(map[string]schema.Property{
				"href": schema.String("URL"),
				"text": schema.String("Text"),
				"target": schema.String("Open in").OneOf(
					[]any{"_self", "_blank"},
					[]string{"Same window", "New window"},
				),
			}),
			StyleSchema: textStyleSchema(),
			Component:   components.Link{},
		},
		{
			Type:         "Divider",
			Name:         "Divider",
			Description:  "Horizontal or vertical rule",
			Icon:         "minus",
			Category:     CategoryBasic,
			DefaultProps: map[string]any{"orientation": "horizontal", "dashed": false},
			DefaultStyle: map[string]any{},
			PropSchema: schema.Object(map[string]schema.Property{
				"orientation": schema.String("Orientation").OneOf(
					[]any{"horizontal", "vertical"},
					[]string{"Horizontal", "Vertical"},
				),
				"dashed": schema.Boolean("Dashed"),
			}),
			StyleSchema: boxStyleSchema(),
			Component:   components.Divider{},
		},
	}
}
