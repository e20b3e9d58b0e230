package palette

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles Bubbletea messages and updates model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.detail.Width = m.detailWidth()
		m.detail.Height = m.bodyHeight()
		m.refreshDetail()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc", "ctrl+c":
		m.quitting = true
		return m, tea.Quit

	case "right", "l", "tab":
		m.switchTab(1)
		return m, nil

	case "left", "h", "shift+tab":
		m.switchTab(-1)
		return m, nil

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
			m.refreshDetail()
		}
		return m, nil

	case "down", "j":
		if m.cursor < len(m.activeItems())-1 {
			m.cursor++
			m.refreshDetail()
		}
		return m, nil

	case "home", "g":
		m.cursor = 0
		m.refreshDetail()
		return m, nil

	case "end", "G":
		if n := len(m.activeItems()); n > 0 {
			m.cursor = n - 1
			m.refreshDetail()
		}
		return m, nil

	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		index := int(msg.String()[0] - '1')
		if index < len(m.categories) {
			m.tab = index
			m.cursor = 0
			m.refreshDetail()
		}
		return m, nil

	case "pgup", "pgdown", "ctrl+u", "ctrl+d":
		var cmd tea.Cmd
		m.detail, cmd = m.detail.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m *Model) switchTab(delta int) {
	n := len(m.categories)
	if n == 0 {
		return
	}
	m.tab = (m.tab + delta + n) % n
	m.cursor = 0
	m.refreshDetail()
}
