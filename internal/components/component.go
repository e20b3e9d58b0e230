// Package components holds the renderable implementations bound to catalog
// registrations. Every component renders one element to HTML given its
// resolved props, inline style, and already rendered children.
package components

import (
	"strings"

	"github.com/corn12138/lowcode/internal/layout"
	"github.com/corn12138/lowcode/internal/logger"
	"github.com/corn12138/lowcode/internal/tree"
)

// DefaultClassPrefix prefixes the css class emitted for every element.
const DefaultClassPrefix = "lc"

// RenderContext carries render-wide settings. The zero value is usable.
type RenderContext struct {
	Logger *logger.Logger
	// Development enables diagnostics for silently defaulted inputs such as
	// unrecognized alignment keywords. Output is identical either way.
	Development bool
	ClassPrefix string
}

// ClassFor returns the css class of a component type, e.g. "lc-column".
func (c RenderContext) ClassFor(componentType string) string {
	prefix := c.ClassPrefix
	if prefix == "" {
		prefix = DefaultClassPrefix
	}
	return prefix + "-" + strings.ToLower(componentType)
}

// Element is a node ready to render: defaults are already merged under the
// instance props and style, and children are rendered.
type Element struct {
	ID       string
	Type     string
	Props    tree.Props
	Style    layout.Style
	Children []string
}

// Component renders one element.
type Component interface {
	Render(ctx RenderContext, el Element) string
}

// ChildTransformer is implemented by containers that rewrite their immediate
// children before those are rendered.
type ChildTransformer interface {
	TransformChildren(ctx RenderContext, props tree.Props, children []*tree.Node) []*tree.Node
}

// Func adapts a plain function to Component.
type Func func(ctx RenderContext, el Element) string

// Render calls f.
func (f Func) Render(ctx RenderContext, el Element) string {
	return f(ctx, el)
}

func baseAttrs(ctx RenderContext, el Element) Attrs {
	attrs := Attrs{"class": ctx.ClassFor(el.Type)}
	if el.ID != "" {
		attrs["id"] = el.ID
	}
	if css := el.Style.CSS(); css != "" {
		attrs["style"] = css
	}
	return attrs
}
