package preview

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/corn12138/lowcode/internal/catalog"
)

var (
	layoutColor = lipgloss.Color("99")  // Purple
	basicColor  = lipgloss.Color("42")  // Green
	formColor   = lipgloss.Color("212") // Pink
	mutedColor  = lipgloss.Color("245") // Gray

	labelStyle  = lipgloss.NewStyle().Bold(true)
	detailStyle = lipgloss.NewStyle().Foreground(mutedColor)
)

func boxStyle(category catalog.Category) lipgloss.Style {
	switch category {
	case catalog.CategoryLayout:
		return lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).BorderForeground(layoutColor)
	case catalog.CategoryBasic:
		return lipgloss.NewStyle().BorderStyle(lipgloss.NormalBorder()).BorderForeground(basicColor)
	case catalog.CategoryForm:
		return lipgloss.NewStyle().BorderStyle(lipgloss.NormalBorder()).BorderForeground(formColor)
	default:
		return lipgloss.NewStyle().BorderStyle(lipgloss.NormalBorder()).BorderForeground(mutedColor)
	}
}
