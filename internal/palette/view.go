package palette

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/corn12138/lowcode/internal/catalog"
	"github.com/corn12138/lowcode/internal/schema"
)

// View renders the current state of the model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	tabs := make([]string, len(m.categories))
	for i, c := range m.categories {
		label := fmt.Sprintf("%d %s", i+1, c)
		if i == m.tab {
			tabs[i] = activeTabStyle.Render(label)
		} else {
			tabs[i] = tabStyle.Render(label)
		}
	}

	header := lipgloss.JoinHorizontal(lipgloss.Top, titleStyle.Render("Components"), "  ", lipgloss.JoinHorizontal(lipgloss.Top, tabs...))
	body := lipgloss.JoinHorizontal(lipgloss.Top, listStyle.Render(m.renderList()), detailStyle.Render(m.detail.View()))
	help := helpStyle.Render("←/→ category • ↑/↓ component • pgup/pgdn scroll • q quit")

	return lipgloss.JoinVertical(lipgloss.Left, header, body, help)
}

func (m Model) renderList() string {
	items := m.activeItems()
	if len(items) == 0 {
		return mutedStyle.Render("(empty)")
	}

	lines := make([]string, len(items))
	for i, reg := range items {
		line := reg.Name
		if reg.AllowChildren {
			line += mutedStyle.Render(" ▸")
		}
		if i == m.cursor {
			lines[i] = selectedItemStyle.Render(line)
		} else {
			lines[i] = itemStyle.Render(line)
		}
	}
	return strings.Join(lines, "\n")
}

func renderDetail(reg catalog.Registration, width int) string {
	var sections []string

	sections = append(sections, titleStyle.Render(reg.Name)+mutedStyle.Render(fmt.Sprintf("  (%s, %s)", reg.Type, reg.Category)))
	if reg.Description != "" {
		sections = append(sections, lipgloss.NewStyle().Width(width).Render(reg.Description))
	}
	container := "no"
	if reg.AllowChildren {
		container = "yes"
	}
	sections = append(sections, mutedStyle.Render("Accepts children: "+container))

	sections = append(sections, sectionStyle.Render("Props"))
	sections = append(sections, renderFields(reg.PropSchema, reg.DefaultProps))

	if !reg.StyleSchema.IsZero() {
		sections = append(sections, sectionStyle.Render("Style"))
		sections = append(sections, renderFields(reg.StyleSchema, reg.DefaultStyle))
	}

	if reg.StyleSchema.IsZero() && len(reg.DefaultStyle) > 0 {
		sections = append(sections, sectionStyle.Render("Default style"))
		for _, key := range sortedKeys(reg.DefaultStyle) {
			sections = append(sections, fmt.Sprintf("  %s = %v", key, reg.DefaultStyle[key]))
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func renderFields(s schema.Schema, defaults map[string]any) string {
	fields := s.Fields()
	if len(fields) == 0 {
		return mutedStyle.Render("  (none)")
	}

	lines := make([]string, 0, len(fields))
	for _, f := range fields {
		line := fmt.Sprintf("  %-12s %-16s %s", f.Name, f.Property.Type, f.Property.Title)
		if value, ok := defaults[f.Name]; ok {
			line += mutedStyle.Render(fmt.Sprintf(" = %v", formatDefault(value)))
		}
		lines = append(lines, line)

		for _, constraint := range describeConstraint(f.Property) {
			lines = append(lines, mutedStyle.Render("    "+constraint))
		}
	}
	return strings.Join(lines, "\n")
}

func describeConstraint(p schema.Property) []string {
	if choices := p.Choices(); len(choices) > 0 {
		lines := make([]string, len(choices))
		for i, c := range choices {
			lines[i] = fmt.Sprintf("- %-14v %s", c.Value, c.Label)
		}
		return lines
	}

	switch {
	case p.Minimum != nil && p.Maximum != nil:
		return []string{fmt.Sprintf("range: %v..%v", *p.Minimum, *p.Maximum)}
	case p.Minimum != nil:
		return []string{fmt.Sprintf("min: %v", *p.Minimum)}
	case p.Maximum != nil:
		return []string{fmt.Sprintf("max: %v", *p.Maximum)}
	}
	return nil
}

func formatDefault(v any) string {
	if v == nil {
		return "null"
	}
	if s, ok := v.(string); ok {
		return fmt.Sprintf("%q", s)
	}
	return fmt.Sprint(v)
}

func sortedKeys(values map[string]any) []string {
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
