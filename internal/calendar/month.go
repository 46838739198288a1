package calendar

import (
	"fmt"
	"iter"
	"time"
)

// MonthCursor is a (year, month) pair. Month is always within January..December.
type MonthCursor struct {
	Year  int
	Month time.Month
}

// CursorFor returns the cursor for the month containing t.
func CursorFor(t time.Time) MonthCursor {
	return MonthCursor{Year: t.Year(), Month: t.Month()}
}

// Next returns the following month, rolling December over into January of the next year.
func (c MonthCursor) Next() MonthCursor {
	if c.Month == time.December {
		return MonthCursor{Year: c.Year + 1, Month: time.January}
	}
	return MonthCursor{Year: c.Year, Month: c.Month + 1}
}

// Prev returns the preceding month, rolling January back into December of the previous year.
func (c MonthCursor) Prev() MonthCursor {
	if c.Month == time.January {
		return MonthCursor{Year: c.Year - 1, Month: time.December}
	}
	return MonthCursor{Year: c.Year, Month: c.Month - 1}
}

// AddYears shifts the year only. There are no bounds.
func (c MonthCursor) AddYears(n int) MonthCursor {
	return MonthCursor{Year: c.Year + n, Month: c.Month}
}

// Days returns the number of days in the month.
func (c MonthCursor) Days() int {
	return DaysIn(c.Year, c.Month)
}

func (c MonthCursor) String() string {
	return fmt.Sprintf("%s %d", c.Month, c.Year)
}

// DaysIn returns the number of days in the given month.
func DaysIn(year int, month time.Month) int {
	// Day 0 of the following month normalizes to the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

const (
	WeeksPerGrid = 6
	DaysPerWeek  = 7
)

// Week holds the day numbers of one grid row, Monday first. Cells outside the month are 0.
type Week [DaysPerWeek]int

// Grid is a full month view: six weeks of seven days.
type Grid [WeeksPerGrid]Week

// Weekdays are the column headers of a Grid.
var Weekdays = [DaysPerWeek]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// MonthGrid yields the six weeks of the month grid, indexed from 0. The sequence is computed on
// demand and can be ranged over any number of times.
func MonthGrid(year int, month time.Month) iter.Seq2[int, Week] {
	return func(yield func(int, Week) bool) {
		offset := mondayOffset(year, month)
		days := DaysIn(year, month)

		for row := 0; row < WeeksPerGrid; row++ {
			var week Week
			for col := 0; col < DaysPerWeek; col++ {
				day := row*DaysPerWeek + col - offset + 1
				if day >= 1 && day <= days {
					week[col] = day
				}
			}
			if !yield(row, week) {
				return
			}
		}
	}
}

// BuildGrid collects MonthGrid into a value.
func BuildGrid(year int, month time.Month) Grid {
	var g Grid
	for row, week := range MonthGrid(year, month) {
		g[row] = week
	}
	return g
}

// Position returns the grid row and column holding day, or ok=false when day is not in the month.
func Position(year int, month time.Month, day int) (row, col int, ok bool) {
	if day < 1 || day > DaysIn(year, month) {
		return 0, 0, false
	}
	idx := mondayOffset(year, month) + day - 1
	return idx / DaysPerWeek, idx % DaysPerWeek, true
}

// mondayOffset is the column of the 1st of the month in a Monday-first week.
func mondayOffset(year int, month time.Month) int {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return (int(first.Weekday()) + 6) % 7
}

// DateKey formats a day as "YYYY-M-D" without zero padding.
func DateKey(year int, month time.Month, day int) string {
	return fmt.Sprintf("%d-%d-%d", year, int(month), day)
}

// KeyFor returns the DateKey of t's calendar day.
func KeyFor(t time.Time) string {
	return DateKey(t.Year(), t.Month(), t.Day())
}
