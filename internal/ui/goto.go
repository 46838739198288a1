package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/postdeck/postdeck/internal/logx"
	"github.com/postdeck/postdeck/internal/parser"
)

func newGotoInput() textinput.Model {
	ti := textinput.New()
	ti.Placeholder = "tomorrow, next friday, 2024-06-15, jun 15"
	ti.Prompt = "Go to: "
	ti.CharLimit = 64
	ti.Width = 40
	return ti
}

func (m *Model) openGoto() tea.Cmd {
	m.gotoInput.Reset()
	m.overlay = overlayGoto
	return m.gotoInput.Focus()
}

func (m *Model) handleGotoKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.gotoInput.Blur()
		m.overlay = overlayNone
		return m, nil

	case tea.KeyEnter:
		m.gotoInput.Blur()
		m.overlay = overlayNone
		input := m.gotoInput.Value()
		date, err := parser.Date(input, m.nav.Now())
		if err != nil {
			m.log.Debug("goto failed", logx.String("input", input), logx.Err(err))
			return m, m.showError(fmt.Sprintf("Can't go to %q", input))
		}
		m.log.Debug("goto", logx.String("input", input), logx.Time("date", date))
		m.nav.Select(date)
		m.mode = ViewSchedules
		return m, m.showMessage(date.Format(m.config.DateFormat))
	}

	var cmd tea.Cmd
	m.gotoInput, cmd = m.gotoInput.Update(msg)
	return m, cmd
}

func (m *Model) viewGoto() string {
	content := lipgloss.JoinVertical(lipgloss.Left,
		m.theme.PanelHead.Render("Go to date"),
		"",
		m.gotoInput.View(),
		"",
		m.theme.Muted.Render("enter go • esc cancel"),
	)
	return m.theme.Dialog.Render(content)
}
