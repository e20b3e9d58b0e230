// Package preview draws an instance tree as nested terminal boxes. Rows lay
// their columns out horizontally with widths taken from the 24-unit grid, so
// the wireframe mirrors the rendered page.
package preview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/corn12138/lowcode/internal/catalog"
	"github.com/corn12138/lowcode/internal/components"
	"github.com/corn12138/lowcode/internal/layout"
	"github.com/corn12138/lowcode/internal/store"
	"github.com/corn12138/lowcode/internal/tree"
	lcerrors "github.com/corn12138/lowcode/pkg/errors"
)

const (
	// DefaultWidth is the preview width when none is configured.
	DefaultWidth = 100
	// MinWidth is the narrowest accepted preview.
	MinWidth = 20

	// boxes narrower than this cannot fit a border around any content
	minBoxWidth = 4
)

// Previewer renders trees against one store.
type Previewer struct {
	store *store.Store
	width int
}

// New returns a previewer drawing at width columns, clamped to MinWidth.
func New(s *store.Store, width int) *Previewer {
	if width <= 0 {
		width = DefaultWidth
	}
	if width < MinWidth {
		width = MinWidth
	}
	return &Previewer{store: s, width: width}
}

// Width reports the outer width of rendered previews.
func (p *Previewer) Width() int {
	return p.width
}

// Render draws root at the configured width.
func (p *Previewer) Render(root *tree.Node) (string, error) {
	if root == nil {
		return "", lcerrors.NewValidationError("root", "tree is empty", nil)
	}
	return p.node("root", root, p.width)
}

func (p *Previewer) node(path string, n *tree.Node, width int) (string, error) {
	reg, ok := p.store.ComponentByType(n.Type)
	if !ok {
		return "", lcerrors.NewUnknownTypeError(n.Type, path)
	}
	if width <= 0 {
		return "", nil
	}
	if width < minBoxWidth {
		return strings.Repeat(" ", width), nil
	}

	inner := width - 2
	props := reg.Props(n.Props)
	body := []string{labelStyle.MaxWidth(inner).Render(label(n, props))}
	if detail := summary(props); detail != "" {
		body = append(body, detailStyle.MaxWidth(inner).Render(detail))
	}

	if _, isRow := reg.Component.(components.Row); isRow {
		content, err := p.row(path, n.Children, inner)
		if err != nil {
			return "", err
		}
		if content != "" {
			body = append(body, content)
		}
	} else {
		for i, child := range n.Children {
			if child == nil {
				continue
			}
			view, err := p.node(childPath(path, i), child, inner)
			if err != nil {
				return "", err
			}
			body = append(body, view)
		}
	}

	return boxStyle(reg.Category).Width(inner).Render(lipgloss.JoinVertical(lipgloss.Left, body...)), nil
}

// row places children left to right, wrapping when the next child no longer
// fits. Columns take span/24 of the width and are pushed right by their
// offset; other children take the full width.
func (p *Previewer) row(path string, children []*tree.Node, inner int) (string, error) {
	var lines []string
	var current []string
	used := 0

	flush := func() {
		if len(current) > 0 {
			lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, current...))
		}
		current = nil
		used = 0
	}

	for i, child := range children {
		if child == nil {
			continue
		}

		width, offset := inner, 0
		if reg, ok := p.store.ComponentByType(child.Type); ok {
			if _, isColumn := reg.Component.(components.Column); isColumn {
				cp := components.ColumnPropsFrom(reg.Props(child.Props))
				width = Cells(cp.Span, inner)
				offset = Cells(cp.Offset, inner)
			}
		}

		view, err := p.node(childPath(path, i), child, width)
		if err != nil {
			return "", err
		}
		if offset > 0 {
			view = lipgloss.NewStyle().PaddingLeft(offset).Render(view)
		}

		if used > 0 && used+width+offset > inner {
			flush()
		}
		current = append(current, view)
		used += width + offset
	}
	flush()

	return lipgloss.JoinVertical(lipgloss.Left, lines...), nil
}

// Cells converts grid units to terminal cells out of total, rounding down.
func Cells(units, total int) int {
	if units <= 0 || total <= 0 {
		return 0
	}
	if units > layout.GridUnits {
		units = layout.GridUnits
	}
	return units * total / layout.GridUnits
}

func label(n *tree.Node, props tree.Props) string {
	name := n.Label()
	if n.Type == "Column" {
		return fmt.Sprintf("%s %d/%d", name, props.Int("span", layout.DefaultSpan), layout.GridUnits)
	}
	for _, key := range []string{"content", "text", "label", "title"} {
		if text := props.String(key, ""); text != "" {
			return fmt.Sprintf("%s %q", name, text)
		}
	}
	return name
}

func summary(props tree.Props) string {
	var parts []string
	for _, key := range []string{"gutter", "justify", "align", "offset"} {
		if !props.Has(key) {
			continue
		}
		value := props[key]
		if key == "offset" && props.Int(key, 0) == 0 {
			continue
		}
		parts = append(parts, fmt.Sprintf("%s=%v", key, value))
	}
	return strings.Join(parts, " ")
}

func childPath(path string, i int) string {
	return fmt.Sprintf("%s.children[%d]", path, i)
}

// Legend describes the border color of each category.
func Legend(categories []catalog.Category) string {
	parts := make([]string, 0, len(categories))
	for _, c := range categories {
		parts = append(parts, lipgloss.NewStyle().Foreground(categoryColor(c)).Render("■ "+string(c)))
	}
	return strings.Join(parts, "  ")
}

func categoryColor(c catalog.Category) lipgloss.TerminalColor {
	switch c {
	case catalog.CategoryLayout:
		return layoutColor
	case catalog.CategoryBasic:
		return basicColor
	case catalog.CategoryForm:
		return formColor
	default:
		return mutedColor
	}
}
