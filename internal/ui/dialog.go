package ui

import (
	"fmt"
	"slices"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/postdeck/postdeck/internal/calendar"
	"github.com/postdeck/postdeck/internal/parser"
)

// ScheduleConfirmedMsg carries a post to queue on the navigator's selected day.
type ScheduleConfirmedMsg struct {
	DateKey   string
	Time      string
	Platforms []string
}

type ScheduleCancelledMsg struct{}

type dialogField int

const (
	fieldHour dialogField = iota
	fieldMinute
	fieldPeriod
	fieldPlatforms
	fieldSchedule
	fieldCancel
)

// ScheduleDialog collects a time and a platform set for the selected calendar day.
type ScheduleDialog struct {
	nav *calendar.Navigator

	hour   int // 1-12
	minute int
	isPM   bool
	step   int

	platforms []string
	checked   []bool
	platform  int

	focus dialogField
}

// NewScheduleDialog opens on defaultTime ("3:30 PM", "15:30", "noon"), falling back to
// 12:00 PM.
func NewScheduleDialog(nav *calendar.Navigator, platforms []string, defaultTime string, step int) ScheduleDialog {
	if step <= 0 {
		step = 5
	}
	d := ScheduleDialog{
		nav:       nav,
		hour:      12,
		isPM:      true,
		step:      step,
		platforms: slices.Clone(platforms),
		checked:   make([]bool, len(platforms)),
	}
	if hour, minute, err := parser.Clock(defaultTime); err == nil {
		d.setTime24(hour, minute)
	}
	return d
}

func (d *ScheduleDialog) setTime24(hour24, minute int) {
	d.minute = minute
	d.isPM = hour24 >= 12
	d.hour = hour24 % 12
	if d.hour == 0 {
		d.hour = 12
	}
}

// TimeString formats the chosen time as "3:00 PM".
func (d ScheduleDialog) TimeString() string {
	period := "AM"
	if d.isPM {
		period = "PM"
	}
	return fmt.Sprintf("%d:%02d %s", d.hour, d.minute, period)
}

// SelectedPlatforms returns the checked platforms in display order.
func (d ScheduleDialog) SelectedPlatforms() []string {
	var out []string
	for i, p := range d.platforms {
		if d.checked[i] {
			out = append(out, p)
		}
	}
	return out
}

func (d ScheduleDialog) confirm() tea.Cmd {
	msg := ScheduleConfirmedMsg{
		DateKey:   d.nav.SelectedKey(),
		Time:      d.TimeString(),
		Platforms: d.SelectedPlatforms(),
	}
	return func() tea.Msg { return msg }
}

func cancelDialog() tea.Msg {
	return ScheduleCancelledMsg{}
}

func (d ScheduleDialog) Update(msg tea.Msg) (ScheduleDialog, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return d, nil
	}

	switch keyMsg.String() {
	case "esc":
		return d, cancelDialog
	case "tab":
		d.next()
	case "shift+tab":
		d.prev()
	case "right", "l":
		if d.focus <= fieldPeriod || d.focus == fieldSchedule {
			d.next()
		}
	case "left", "h":
		if d.focus <= fieldPeriod || d.focus == fieldCancel {
			d.prev()
		}
	case "up", "k":
		d.adjust(1)
	case "down", "j":
		d.adjust(-1)
	case " ", "space", "x":
		if d.focus == fieldPlatforms && len(d.checked) > 0 {
			d.checked[d.platform] = !d.checked[d.platform]
		}
	case "enter":
		if d.focus == fieldCancel {
			return d, cancelDialog
		}
		return d, d.confirm()
	}

	return d, nil
}

// next walks hour, minute, period, each platform, then the two buttons.
func (d *ScheduleDialog) next() {
	switch {
	case d.focus == fieldPlatforms && d.platform < len(d.platforms)-1:
		d.platform++
	case d.focus == fieldPeriod && len(d.platforms) == 0:
		d.focus = fieldSchedule
	case d.focus == fieldCancel:
		d.focus = fieldHour
	default:
		d.focus++
		if d.focus == fieldPlatforms {
			d.platform = 0
		}
	}
}

func (d *ScheduleDialog) prev() {
	switch {
	case d.focus == fieldPlatforms && d.platform > 0:
		d.platform--
	case d.focus == fieldSchedule && len(d.platforms) == 0:
		d.focus = fieldPeriod
	case d.focus == fieldHour:
		d.focus = fieldCancel
	default:
		d.focus--
		if d.focus == fieldPlatforms {
			d.platform = len(d.platforms) - 1
		}
	}
}

func (d *ScheduleDialog) adjust(delta int) {
	switch d.focus {
	case fieldHour:
		d.hour = (d.hour-1+delta+12)%12 + 1
	case fieldMinute:
		d.minute = (d.minute + delta*d.step + 60) % 60
		d.minute -= d.minute % d.step
	case fieldPeriod:
		d.isPM = !d.isPM
	case fieldPlatforms:
		// Arrow keys move between checkboxes.
		if delta < 0 && d.platform < len(d.platforms)-1 {
			d.platform++
		} else if delta > 0 && d.platform > 0 {
			d.platform--
		}
	}
}

func (d ScheduleDialog) View(theme Theme) string {
	field := func(f dialogField, text string) string {
		if d.focus == f {
			return theme.Focused.Render(text)
		}
		return theme.Normal.Render(text)
	}

	period := "AM"
	if d.isPM {
		period = "PM"
	}
	timeRow := lipgloss.JoinHorizontal(lipgloss.Top,
		theme.Normal.Render("Time: "),
		field(fieldHour, fmt.Sprintf("%02d", d.hour)),
		theme.Normal.Render(":"),
		field(fieldMinute, fmt.Sprintf("%02d", d.minute)),
		" ",
		field(fieldPeriod, period),
	)

	var boxes []string
	for i, p := range d.platforms {
		mark := "[ ]"
		if d.checked[i] {
			mark = "[x]"
		}
		line := fmt.Sprintf("%s %s", mark, p)
		if d.focus == fieldPlatforms && d.platform == i {
			boxes = append(boxes, theme.Focused.Render(line))
		} else {
			boxes = append(boxes, theme.Normal.Render(line))
		}
	}
	if len(boxes) == 0 {
		boxes = append(boxes, theme.Muted.Render("(no platforms configured)"))
	}

	button := func(f dialogField, label string) string {
		if d.focus == f {
			return theme.Button.Bold(true).Underline(true).Render(label)
		}
		return theme.Button.Render(label)
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		theme.PanelHead.Render("Schedule New Post"),
		theme.Muted.Render(d.nav.Selected().Format("Monday, January 2, 2006")),
		"",
		timeRow,
		"",
		theme.Header.Render("Platforms"),
		lipgloss.JoinVertical(lipgloss.Left, boxes...),
		"",
		lipgloss.JoinHorizontal(lipgloss.Top, button(fieldSchedule, "Schedule"), "  ", button(fieldCancel, "Cancel")),
		"",
		theme.Muted.Render("tab next • ↑/↓ change • space toggle • enter confirm • esc cancel"),
	)

	return theme.Dialog.Render(content)
}
