package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"github.com/postdeck/postdeck/internal/calendar"
)

const (
	minCellWidth = 5

	// Screen row of the first week: navbar, header, key hints, blank line, weekday names.
	gridTop       = 5
	gridRowHeight = 2
)

func cellWidthFor(width int) int {
	return max((width-calendar.DaysPerWeek)/calendar.DaysPerWeek, minCellWidth)
}

func (m *Model) viewSchedules(width int) string {
	t := m.theme
	cursor := m.nav.Cursor()

	header := lipgloss.JoinHorizontal(lipgloss.Top,
		t.Muted.Render("◄ "),
		t.Header.Render(fmt.Sprintf("%-9s", cursor.Month)),
		t.Muted.Render(" ►"),
		"    ",
		t.Muted.Render("◄ "),
		t.Header.Render(fmt.Sprint(cursor.Year)),
		t.Muted.Render(" ►"),
	)
	button := t.Button.Render("+ New Schedule")
	gap := max(width-lipgloss.Width(header)-lipgloss.Width(button)-2, 1)
	header = header + strings.Repeat(" ", gap) + button

	keys := t.Muted.Render("</> month • [/] year • arrows day • t today • n schedule")

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		keys,
		"",
		m.renderMonthGrid(width),
		"",
		m.renderDayPosts(width),
	)
}

func (m *Model) renderMonthGrid(width int) string {
	t := m.theme
	cursor := m.nav.Cursor()
	cell := lipgloss.NewStyle().Width(cellWidthFor(width)).MarginRight(1)

	var headers []string
	for _, name := range calendar.Weekdays {
		headers = append(headers, cell.Inherit(t.Header).Render(name))
	}
	rows := []string{lipgloss.JoinHorizontal(lipgloss.Top, headers...)}

	for _, week := range calendar.MonthGrid(cursor.Year, cursor.Month) {
		var cells []string
		for _, day := range week {
			cells = append(cells, m.renderDayCell(cursor, day, cell))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m *Model) renderDayCell(cursor calendar.MonthCursor, day int, cell lipgloss.Style) string {
	t := m.theme
	if day == 0 {
		return cell.Inherit(t.Day).Render("\n")
	}

	style := t.Day
	switch {
	case m.nav.IsSelected(cursor.Year, cursor.Month, day):
		style = t.Selected
	case m.nav.IsToday(cursor.Year, cursor.Month, day):
		style = t.Today
	}

	indicator := ""
	if m.store.HasPosts(calendar.DateKey(cursor.Year, cursor.Month, day)) {
		indicator = t.Indicator.Inherit(style).Render(strings.Repeat("▬", max(cell.GetWidth()-2, 1)))
	}

	return cell.Inherit(style).Render(fmt.Sprintf("%2d\n%s", day, indicator))
}

func (m *Model) renderDayPosts(width int) string {
	t := m.theme
	selected := m.nav.Selected()
	lines := []string{t.PanelHead.Render("Posts for " + selected.Format(m.config.DateFormat))}

	posts := m.store.PostsFor(m.nav.SelectedKey())
	if len(posts) == 0 {
		lines = append(lines, t.Muted.Render("(no posts scheduled)"))
	}
	for _, post := range posts {
		platforms := strings.Join(post.Platforms, ", ")
		if platforms == "" {
			platforms = "(no platforms)"
		}
		line := fmt.Sprintf("%-9s %s", post.Time, platforms)
		lines = append(lines, t.Normal.Render(truncate.StringWithTail(line, uint(max(width-4, 10)), "…")))
	}

	return t.Panel.Width(max(width-2, 20)).Render(strings.Join(lines, "\n"))
}

// dayAt maps a screen position to a day of the displayed month.
func (m *Model) dayAt(x, y int) (int, bool) {
	left := sidebarWidth + 2
	if x < left || y < gridTop {
		return 0, false
	}
	w, _ := m.contentSize()
	col := (x - left) / (cellWidthFor(w) + 1)
	row := (y - gridTop) / gridRowHeight
	if col >= calendar.DaysPerWeek || row >= calendar.WeeksPerGrid {
		return 0, false
	}

	cursor := m.nav.Cursor()
	day := calendar.BuildGrid(cursor.Year, cursor.Month)[row][col]
	return day, day != 0
}

func (m *Model) handleScheduleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress {
		return m, nil
	}

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.nav.RetreatMonth()
	case tea.MouseButtonWheelDown:
		m.nav.AdvanceMonth()
	case tea.MouseButtonLeft:
		if day, ok := m.dayAt(msg.X, msg.Y); ok {
			m.nav.SelectDay(day)
		}
	}
	return m, nil
}
