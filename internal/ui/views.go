package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const sidebarWidth = 20

func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	var body string
	switch m.overlay {
	case overlayHelp:
		body = m.center(m.viewHelp())
	case overlayReadme, overlayAlgorithms:
		body = m.center(m.viewInfo())
	case overlayDialog:
		body = m.center(m.dialog.View(m.theme))
	case overlayPicker:
		body = m.center(m.picker.View(m.theme))
	case overlayGoto:
		body = m.center(m.viewGoto())
	default:
		body = m.viewMain()
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderNavbar(),
		body,
		m.renderStatusBar(),
	)
}

// contentSize is the area right of the sidebar, between navbar and status bar.
func (m *Model) contentSize() (int, int) {
	return max(m.width-sidebarWidth-2, 30), max(m.height-2, 10)
}

func (m *Model) center(s string) string {
	_, h := m.contentSize()
	return lipgloss.Place(m.width, h, lipgloss.Center, lipgloss.Center, s)
}

func (m *Model) viewMain() string {
	w, h := m.contentSize()

	var content string
	switch m.mode {
	case ViewSchedules:
		content = m.viewSchedules(w)
	case ViewMonoLink:
		content = m.theme.Muted.Render("MonoLink is coming soon.")
	default:
		content = m.viewPost(w)
	}

	content = lipgloss.NewStyle().
		Width(w).
		MaxHeight(h).
		PaddingLeft(2).
		Render(content)

	return lipgloss.JoinHorizontal(lipgloss.Top, m.renderSidebar(h), content)
}

func (m *Model) renderNavbar() string {
	t := m.theme

	left := []string{t.Logo.Render("HP")}
	for i, name := range viewNames {
		item := fmt.Sprintf("%d %s", i+1, name)
		if ViewMode(i) == m.mode {
			left = append(left, t.NavActive.Render(item))
		} else {
			left = append(left, t.NavItem.Render(item))
		}
	}
	right := []string{
		t.NavItem.Render("R README"),
		t.NavItem.Render("A Platform Algorithms"),
	}

	l := lipgloss.JoinHorizontal(lipgloss.Top, left...)
	r := lipgloss.JoinHorizontal(lipgloss.Top, right...)
	gap := max(m.width-lipgloss.Width(l)-lipgloss.Width(r), 0)
	fill := lipgloss.NewStyle().Background(t.Sidebar).Render(strings.Repeat(" ", gap))

	return l + fill + r
}

func (m *Model) renderSidebar(height int) string {
	t := m.theme
	var lines []string
	for _, p := range m.config.Platforms {
		lines = append(lines, t.Normal.Render(p))
	}

	return lipgloss.NewStyle().
		Width(sidebarWidth).
		Height(height).
		Padding(1, 2).
		Background(t.Sidebar).
		Render(strings.Join(lines, "\n\n"))
}

func (m *Model) renderStatusBar() string {
	left := fmt.Sprintf(" %s | Scheduled: %d on %d days",
		m.nav.Selected().Format(m.config.DateFormat),
		m.store.Len(), len(m.store.Dates()))

	right := "? for help | q to quit"
	if m.message != "" {
		if m.messageErr {
			right = m.theme.Error.Render(m.message)
		} else {
			right = m.theme.Message.Render(m.message)
		}
	}

	width := max(m.width-lipgloss.Width(left)-lipgloss.Width(right), 0)
	return m.theme.Muted.Render(left) + strings.Repeat(" ", width) + right
}

func (m *Model) viewHelp() string {
	t := m.theme
	help := []string{
		t.PanelHead.Render("Help"),
		"",
		t.Normal.Render("Views:"),
		t.Muted.Render("  1 / 2 / 3   - Post, Schedules, MonoLink"),
		t.Muted.Render("  tab         - Next view"),
		t.Muted.Render("  R           - README"),
		t.Muted.Render("  A           - Platform algorithms"),
		"",
		t.Normal.Render("Post:"),
		t.Muted.Render("  u           - Upload media"),
		t.Muted.Render("  e / enter   - Edit post text (esc to stop)"),
		t.Muted.Render("  j/k         - Move between settings"),
		t.Muted.Render("  space       - Toggle setting"),
		"",
		t.Normal.Render("Schedules:"),
		t.Muted.Render("  < / >       - Previous / next month"),
		t.Muted.Render("  [ / ]       - Previous / next year"),
		t.Muted.Render("  h/l ←/→     - Previous / next day"),
		t.Muted.Render("  k/j ↑/↓     - Previous / next week"),
		t.Muted.Render("  t           - Today"),
		t.Muted.Render("  g           - Go to a date (\"next friday\", \"jun 15\")"),
		t.Muted.Render("  n / enter   - New schedule for the selected day"),
		t.Muted.Render("  click/wheel - Select a day / change month"),
		"",
		t.Muted.Render("  ctrl+r      - Reload config"),
		t.Muted.Render("  ?           - Toggle help"),
		t.Muted.Render("  q           - Quit"),
		"",
		t.Muted.Render("Press any key to return..."),
	}

	return t.Dialog.Render(lipgloss.JoinVertical(lipgloss.Left, help...))
}
