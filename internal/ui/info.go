package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/postdeck/postdeck/internal/guide"
)

func (m *Model) openInfo(kind overlay) {
	m.overlay = kind
	m.refreshInfo()
	m.info.GotoTop()
}

// refreshInfo re-renders the open guide at the current viewport width.
func (m *Model) refreshInfo() {
	text := guide.Readme
	if m.overlay == overlayAlgorithms {
		text = guide.Algorithm(guide.AlgorithmPlatforms[m.infoTab])
	}
	m.info.SetContent(m.renderGuide(text, m.info.Width-2))
}

func (m *Model) renderGuide(text string, width int) string {
	t := m.theme
	var out []string
	for _, line := range guide.Layout(text, width) {
		switch line.Kind {
		case guide.LineHeading1:
			out = append(out, t.Heading1.Render(line.Text))
		case guide.LineHeading2:
			out = append(out, t.Heading2.Render(line.Text))
		case guide.LineBullet:
			out = append(out, t.Bullet.Render(line.Text))
		default:
			out = append(out, t.Normal.Render(line.Text))
		}
	}
	return strings.Join(out, "\n")
}

func (m *Model) handleInfoKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q":
		m.overlay = overlayNone
		return m, nil
	}

	if m.overlay == overlayAlgorithms {
		n := len(guide.AlgorithmPlatforms)
		switch msg.String() {
		case "right", "l", "tab":
			m.infoTab = (m.infoTab + 1) % n
			m.refreshInfo()
			m.info.GotoTop()
			return m, nil
		case "left", "h", "shift+tab":
			m.infoTab = (m.infoTab - 1 + n) % n
			m.refreshInfo()
			m.info.GotoTop()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.info, cmd = m.info.Update(msg)
	return m, cmd
}

func (m *Model) viewInfo() string {
	t := m.theme

	title := "README - Usage Guide"
	var tabs string
	if m.overlay == overlayAlgorithms {
		title = "Platform Algorithms Guide"
		var names []string
		for i, name := range guide.AlgorithmPlatforms {
			if i == m.infoTab {
				names = append(names, t.Button.Render(name))
			} else {
				names = append(names, t.NavItem.Background(t.TextBg).Render(name))
			}
		}
		tabs = lipgloss.JoinHorizontal(lipgloss.Top, names...)
	}

	sections := []string{t.PanelHead.Render(title)}
	if tabs != "" {
		sections = append(sections, tabs)
	}
	sections = append(sections,
		"",
		m.info.View(),
		"",
		t.Muted.Render("↑/↓ scroll • ←/→ tabs • esc close"),
	)
	return t.Dialog.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}
