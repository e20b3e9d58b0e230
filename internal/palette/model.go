// Package palette is an interactive terminal browser over the component store:
// categories as tabs, the components of the active category as a list, and a
// scrollable detail pane with defaults and editable fields.
package palette

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/corn12138/lowcode/internal/catalog"
	"github.com/corn12138/lowcode/internal/store"
)

const (
	defaultWidth  = 100
	defaultHeight = 30
	listWidth     = 28
)

// Model holds the palette state.
type Model struct {
	categories []catalog.Category
	items      map[catalog.Category][]catalog.Registration

	tab    int
	cursor int
	detail viewport.Model

	width    int
	height   int
	quitting bool
}

// NewModel snapshots the store's categories and their components.
func NewModel(s *store.Store) Model {
	m := Model{
		categories: s.Categories(),
		items:      make(map[catalog.Category][]catalog.Registration),
		width:      defaultWidth,
		height:     defaultHeight,
	}
	for _, c := range m.categories {
		m.items[c] = s.ComponentsByCategory(c)
	}
	m.detail = viewport.New(m.detailWidth(), m.bodyHeight())
	m.refreshDetail()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// ActiveCategory returns the category of the selected tab.
func (m Model) ActiveCategory() (catalog.Category, bool) {
	if len(m.categories) == 0 {
		return "", false
	}
	return m.categories[m.tab], true
}

// Selected returns the registration under the cursor.
func (m Model) Selected() (catalog.Registration, bool) {
	items := m.activeItems()
	if m.cursor < 0 || m.cursor >= len(items) {
		return catalog.Registration{}, false
	}
	return items[m.cursor], true
}

// Quitting reports whether the user asked to leave.
func (m Model) Quitting() bool {
	return m.quitting
}

func (m Model) activeItems() []catalog.Registration {
	c, ok := m.ActiveCategory()
	if !ok {
		return nil
	}
	return m.items[c]
}

func (m Model) detailWidth() int {
	w := m.width - listWidth - 3
	if w < 20 {
		w = 20
	}
	return w
}

// header and footer take four lines
func (m Model) bodyHeight() int {
	h := m.height - 4
	if h < 5 {
		h = 5
	}
	return h
}

func (m *Model) refreshDetail() {
	reg, ok := m.Selected()
	if !ok {
		m.detail.SetContent(mutedStyle.Render("No components in this category."))
		return
	}
	m.detail.SetContent(renderDetail(reg, m.detailWidth()))
	m.detail.GotoTop()
}
