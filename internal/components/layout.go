package components

import (
	"strconv"

	"github.com/corn12138/lowcode/internal/layout"
	"github.com/corn12138/lowcode/internal/tree"
)

// Row is the flex container primitive. Grid shares the implementation.
type Row struct{}

// Render emits the container. Computed layout keys win over instance style.
func (Row) Render(ctx RenderContext, el Element) string {
	props := RowPropsFrom(el.Props)
	warnAlignment(ctx, el, props)

	attrs := baseAttrs(ctx, Element{ID: el.ID, Type: el.Type, Style: layout.Merge(el.Style, layout.RowStyle(props))})
	return Tag("div", attrs, el.Children...)
}

// TransformChildren distributes the gutter onto every immediate child.
func (Row) TransformChildren(_ RenderContext, props tree.Props, children []*tree.Node) []*tree.Node {
	return tree.ApplyGutter(children, RowPropsFrom(props).Gutter)
}

// RowPropsFrom reads row parameters, applying defaults for absent values.
func RowPropsFrom(props tree.Props) layout.RowProps {
	defaults := layout.DefaultRowProps()
	return layout.RowProps{
		Gutter:  props.Float("gutter", defaults.Gutter),
		Justify: layout.Justify(props.String("justify", string(defaults.Justify))),
		Align:   layout.Align(props.String("align", string(defaults.Align))),
	}
}

func warnAlignment(ctx RenderContext, el Element, props layout.RowProps) {
	if !ctx.Development || ctx.Logger == nil {
		return
	}
	if _, ok := layout.JustifyContent(props.Justify); !ok {
		ctx.Logger.WithComponent(el.Type).WithFields(map[string]any{"prop": "justify", "value": string(props.Justify)}).
			Warn("unrecognized justify value, falling back to " + layout.FallbackAlignment)
	}
	if _, ok := layout.AlignItems(props.Align); !ok {
		ctx.Logger.WithComponent(el.Type).WithFields(map[string]any{"prop": "align", "value": string(props.Align)}).
			Warn("unrecognized align value, falling back to " + layout.FallbackAlignment)
	}
}

// Column is the leaf layout primitive.
type Column struct{}

// Render emits the column box. Breakpoint overrides are passed through as
// data attributes for an external responsive layer.
func (Column) Render(ctx RenderContext, el Element) string {
	props := ColumnPropsFrom(el.Props)

	attrs := baseAttrs(ctx, Element{ID: el.ID, Type: el.Type, Style: layout.Merge(el.Style, layout.ColumnStyle(props))})
	for _, override := range props.ActiveOverrides() {
		attrs["data-"+string(override.Breakpoint)] = strconv.Itoa(override.Span)
	}
	return Tag("div", attrs, el.Children...)
}

// ColumnPropsFrom reads column parameters, applying defaults for absent values.
// Null breakpoint values count as absent.
func ColumnPropsFrom(props tree.Props) layout.ColumnProps {
	out := layout.ColumnProps{
		Span:   props.Int("span", layout.DefaultSpan),
		Offset: props.Int("offset", layout.DefaultOffset),
	}
	for _, bp := range layout.Breakpoints {
		if span, ok := props.OptionalInt(string(bp)); ok {
			if out.Overrides == nil {
				out.Overrides = make(map[layout.Breakpoint]int)
			}
			out.Overrides[bp] = span
		}
	}
	return out
}
