// Package render turns an instance tree into HTML by resolving every node
// through the component store.
package render

import (
	"fmt"
	"strings"

	"github.com/corn12138/lowcode/internal/components"
	"github.com/corn12138/lowcode/internal/logger"
	"github.com/corn12138/lowcode/internal/store"
	"github.com/corn12138/lowcode/internal/tree"
	lcerrors "github.com/corn12138/lowcode/pkg/errors"
)

// Options configures a Renderer.
type Options struct {
	Logger      *logger.Logger
	Development bool
	ClassPrefix string
	// Standalone wraps the fragment in a complete HTML page.
	Standalone bool
}

// Renderer renders trees against one store.
type Renderer struct {
	store      *store.Store
	ctx        components.RenderContext
	standalone bool
}

// New returns a renderer bound to s.
func New(s *store.Store, opts Options) *Renderer {
	return &Renderer{
		store: s,
		ctx: components.RenderContext{
			Logger:      opts.Logger,
			Development: opts.Development,
			ClassPrefix: opts.ClassPrefix,
		},
		standalone: opts.Standalone,
	}
}

// Render returns the HTML fragment for root. Containers that implement
// components.ChildTransformer rewrite their immediate children first.
func (r *Renderer) Render(root *tree.Node) (string, error) {
	if root == nil {
		return "", lcerrors.NewValidationError("root", "tree is empty", nil)
	}
	return r.node("root", root)
}

// RenderDocument renders a page document, honoring the Standalone option.
func (r *Renderer) RenderDocument(doc *tree.Document) (string, error) {
	if doc == nil {
		return "", lcerrors.NewValidationError("root", "document is empty", nil)
	}
	body, err := r.Render(doc.Root)
	if err != nil {
		return "", err
	}
	if !r.standalone {
		return body, nil
	}
	return page(doc.Title, body), nil
}

func (r *Renderer) node(path string, n *tree.Node) (string, error) {
	comp, ok := r.store.Component(n.Type)
	if !ok {
		return "", lcerrors.NewUnknownTypeError(n.Type, path)
	}

	props, style, err := r.store.Resolve(n)
	if err != nil {
		return "", fmt.Errorf("%s: %w", path, err)
	}

	children := n.Children
	if transformer, ok := comp.(components.ChildTransformer); ok {
		children = transformer.TransformChildren(r.ctx, props, children)
	}

	rendered := make([]string, 0, len(children))
	for i, child := range children {
		if child == nil {
			continue
		}
		html, err := r.node(fmt.Sprintf("%s.children[%d]", path, i), child)
		if err != nil {
			return "", err
		}
		rendered = append(rendered, html)
	}

	return comp.Render(r.ctx, components.Element{
		ID:       n.ID,
		Type:     n.Type,
		Props:    props,
		Style:    style,
		Children: rendered,
	}), nil
}

func page(title, body string) string {
	if title == "" {
		title = "Untitled"
	}
	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n")
	b.WriteString("<title>" + components.Escape(title) + "</title>\n")
	b.WriteString("</head>\n<body>\n")
	b.WriteString(body)
	b.WriteString("\n</body>\n</html>\n")
	return b.String()
}
