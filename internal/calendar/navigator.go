package calendar

import (
	"time"
)

// Clock reports the current wall-clock time.
type Clock func() time.Time

// Navigator tracks the month on display and the day the user has selected.
type Navigator struct {
	cursor   MonthCursor
	selected time.Time
	clock    Clock
}

// NewNavigator starts on today's month with today selected. A nil clock means time.Now.
func NewNavigator(clock Clock) *Navigator {
	if clock == nil {
		clock = time.Now
	}
	n := &Navigator{clock: clock}
	n.Today()
	return n
}

// Now reads the navigator's clock.
func (n *Navigator) Now() time.Time {
	return n.clock()
}

func (n *Navigator) Cursor() MonthCursor {
	return n.cursor
}

// Selected returns the selected day at midnight local time.
func (n *Navigator) Selected() time.Time {
	return n.selected
}

// SelectedKey is the schedule key of the selected day.
func (n *Navigator) SelectedKey() string {
	return KeyFor(n.selected)
}

func (n *Navigator) AdvanceMonth() {
	n.setCursor(n.cursor.Next())
}

func (n *Navigator) RetreatMonth() {
	n.setCursor(n.cursor.Prev())
}

func (n *Navigator) AdvanceYear() {
	n.setCursor(n.cursor.AddYears(1))
}

func (n *Navigator) RetreatYear() {
	n.setCursor(n.cursor.AddYears(-1))
}

// Today moves both the cursor and the selection to the current date.
func (n *Navigator) Today() {
	n.Select(n.clock())
}

// Select makes t's day the selection and brings its month on display.
func (n *Navigator) Select(t time.Time) {
	n.selected = time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.Local)
	n.cursor = CursorFor(n.selected)
}

// SelectDay selects a day within the displayed month. Days outside the month are ignored.
func (n *Navigator) SelectDay(day int) bool {
	if day < 1 || day > n.cursor.Days() {
		return false
	}
	n.selected = time.Date(n.cursor.Year, n.cursor.Month, day, 0, 0, 0, 0, time.Local)
	return true
}

// MoveSelection shifts the selection by days, following it into adjacent months.
func (n *Navigator) MoveSelection(days int) {
	n.Select(n.selected.AddDate(0, 0, days))
}

// IsToday reports whether the day is the clock's current date.
func (n *Navigator) IsToday(year int, month time.Month, day int) bool {
	now := n.clock()
	return now.Year() == year && now.Month() == month && now.Day() == day
}

// IsSelected reports whether the day is the current selection.
func (n *Navigator) IsSelected(year int, month time.Month, day int) bool {
	return n.selected.Year() == year && n.selected.Month() == month && n.selected.Day() == day
}

// setCursor moves the displayed month and keeps the selection inside it, clamping the
// day-of-month to the new month's length.
func (n *Navigator) setCursor(c MonthCursor) {
	n.cursor = c
	day := n.selected.Day()
	if last := c.Days(); day > last {
		day = last
	}
	n.selected = time.Date(c.Year, c.Month, day, 0, 0, 0, 0, time.Local)
}
