package calendar

import (
	"fmt"
	"strings"
)

// TextOptions controls RenderText. Highlight wraps a day's two-character cell, e.g. to color
// today; nil leaves cells as they are.
type TextOptions struct {
	Highlight func(day int, cell string) string
}

// RenderText draws the month as plain text in the layout of cal(1), Monday first. Blank
// trailing weeks are kept so the output always has six week rows.
func RenderText(c MonthCursor, opts TextOptions) string {
	var b strings.Builder

	title := c.String()
	width := DaysPerWeek*3 - 1
	if pad := (width - len(title)) / 2; pad > 0 {
		b.WriteString(strings.Repeat(" ", pad))
	}
	b.WriteString(title)
	b.WriteString("\n")

	for i, name := range Weekdays {
		if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString(name[:2])
	}
	b.WriteString("\n")

	for _, week := range MonthGrid(c.Year, c.Month) {
		cells := make([]string, DaysPerWeek)
		for i, day := range week {
			if day == 0 {
				cells[i] = "  "
				continue
			}
			cell := fmt.Sprintf("%2d", day)
			if opts.Highlight != nil {
				cell = opts.Highlight(day, cell)
			}
			cells[i] = cell
		}
		b.WriteString(strings.TrimRight(strings.Join(cells, " "), " "))
		b.WriteString("\n")
	}

	return b.String()
}
