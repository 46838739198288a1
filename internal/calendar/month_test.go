package calendar

import (
	"testing"
	"time"
)

func TestMonthGridContainsEveryDayOnce(t *testing.T) {
	years := []int{-1, 0, 1900, 2000, 2023, 2024, 2025, 2100, 9999}

	for _, year := range years {
		for month := time.January; month <= time.December; month++ {
			days := DaysIn(year, month)
			seen := make(map[int]int)
			zeros := 0

			for _, week := range MonthGrid(year, month) {
				for _, day := range week {
					if day == 0 {
						zeros++
						continue
					}
					seen[day]++
				}
			}

			for d := 1; d <= days; d++ {
				if seen[d] != 1 {
					t.Errorf("%d-%02d: day %d appears %d times, want 1", year, month, d, seen[d])
				}
			}
			if len(seen) != days {
				t.Errorf("%d-%02d: %d distinct days, want %d", year, month, len(seen), days)
			}
			if zeros != WeeksPerGrid*DaysPerWeek-days {
				t.Errorf("%d-%02d: %d empty cells, want %d", year, month, zeros, WeeksPerGrid*DaysPerWeek-days)
			}
		}
	}
}

func TestMonthGridLayout(t *testing.T) {
	tests := []struct {
		name     string
		year     int
		month    time.Month
		firstRow Week
		lastRow  Week
	}{
		{
			// 2024-01-01 is a Monday
			name:     "month starting on Monday",
			year:     2024,
			month:    time.January,
			firstRow: Week{1, 2, 3, 4, 5, 6, 7},
			lastRow:  Week{},
		},
		{
			// 2024-06-01 is a Saturday
			name:     "month starting on Saturday",
			year:     2024,
			month:    time.June,
			firstRow: Week{0, 0, 0, 0, 0, 1, 2},
			lastRow:  Week{},
		},
		{
			// 2026-03-01 is a Sunday and needs all six rows
			name:     "month spanning six weeks",
			year:     2026,
			month:    time.March,
			firstRow: Week{0, 0, 0, 0, 0, 0, 1},
			lastRow:  Week{30, 31, 0, 0, 0, 0, 0},
		},
		{
			// 2021-02-01 is a Monday, 28 days fill exactly four rows
			name:     "four week February",
			year:     2021,
			month:    time.February,
			firstRow: Week{1, 2, 3, 4, 5, 6, 7},
			lastRow:  Week{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := BuildGrid(tt.year, tt.month)
			if g[0] != tt.firstRow {
				t.Errorf("first row = %v, want %v", g[0], tt.firstRow)
			}
			if g[WeeksPerGrid-1] != tt.lastRow {
				t.Errorf("last row = %v, want %v", g[WeeksPerGrid-1], tt.lastRow)
			}
		})
	}
}

func TestMonthGridIsRestartable(t *testing.T) {
	seq := MonthGrid(2025, time.February)

	var first, second []Week
	for _, w := range seq {
		first = append(first, w)
	}
	for _, w := range seq {
		second = append(second, w)
	}

	if len(first) != WeeksPerGrid || len(second) != WeeksPerGrid {
		t.Fatalf("got %d and %d rows, want %d each", len(first), len(second), WeeksPerGrid)
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("row %d differs between iterations: %v vs %v", i, first[i], second[i])
		}
	}

	// Stopping early must not panic.
	rows := 0
	for range seq {
		rows++
		if rows == 2 {
			break
		}
	}
	if rows != 2 {
		t.Errorf("early break visited %d rows, want 2", rows)
	}
}

func TestDaysIn(t *testing.T) {
	tests := []struct {
		year  int
		month time.Month
		want  int
	}{
		{2024, time.February, 29},
		{2023, time.February, 28},
		{1900, time.February, 28},
		{2000, time.February, 29},
		{2025, time.April, 30},
		{2025, time.December, 31},
	}

	for _, tt := range tests {
		if got := DaysIn(tt.year, tt.month); got != tt.want {
			t.Errorf("DaysIn(%d, %v) = %d, want %d", tt.year, tt.month, got, tt.want)
		}
	}
}

func TestPosition(t *testing.T) {
	grid := BuildGrid(2024, time.June)

	for day := 1; day <= 30; day++ {
		row, col, ok := Position(2024, time.June, day)
		if !ok {
			t.Fatalf("Position(2024, June, %d) not ok", day)
		}
		if grid[row][col] != day {
			t.Errorf("Position(%d) = (%d,%d) holding %d", day, row, col, grid[row][col])
		}
	}

	if _, _, ok := Position(2024, time.June, 31); ok {
		t.Error("June 31 should not have a position")
	}
	if _, _, ok := Position(2024, time.June, 0); ok {
		t.Error("day 0 should not have a position")
	}
}

func TestCursorRollover(t *testing.T) {
	dec := MonthCursor{Year: 2024, Month: time.December}
	if got := dec.Next(); got != (MonthCursor{Year: 2025, Month: time.January}) {
		t.Errorf("Next of 2024-12 = %v, want 2025-01", got)
	}

	jan := MonthCursor{Year: 2025, Month: time.January}
	if got := jan.Prev(); got != (MonthCursor{Year: 2024, Month: time.December}) {
		t.Errorf("Prev of 2025-01 = %v, want 2024-12", got)
	}

	if got := jan.String(); got != "January 2025" {
		t.Errorf("String = %q, want %q", got, "January 2025")
	}
}

func TestDateKey(t *testing.T) {
	tests := []struct {
		year  int
		month time.Month
		day   int
		want  string
	}{
		{2024, time.June, 15, "2024-6-15"},
		{2024, time.January, 1, "2024-1-1"},
		{2025, time.December, 31, "2025-12-31"},
	}

	for _, tt := range tests {
		if got := DateKey(tt.year, tt.month, tt.day); got != tt.want {
			t.Errorf("DateKey(%d, %d, %d) = %q, want %q", tt.year, tt.month, tt.day, got, tt.want)
		}
	}

	at := time.Date(2024, 3, 5, 17, 45, 0, 0, time.Local)
	if got := KeyFor(at); got != "2024-3-5" {
		t.Errorf("KeyFor = %q, want %q", got, "2024-3-5")
	}
}
