package calendar

import (
	"testing"
	"time"
)

func fixedClock(t time.Time) Clock {
	return func() time.Time { return t }
}

func TestNavigatorStartsOnToday(t *testing.T) {
	now := time.Date(2025, 8, 20, 14, 30, 0, 0, time.Local)
	n := NewNavigator(fixedClock(now))

	if got := n.Cursor(); got != (MonthCursor{Year: 2025, Month: time.August}) {
		t.Errorf("Cursor = %v, want August 2025", got)
	}
	want := time.Date(2025, 8, 20, 0, 0, 0, 0, time.Local)
	if !n.Selected().Equal(want) {
		t.Errorf("Selected = %v, want %v", n.Selected(), want)
	}
	if got := n.SelectedKey(); got != "2025-8-20" {
		t.Errorf("SelectedKey = %q, want %q", got, "2025-8-20")
	}
}

func TestAdvanceRetreatRoundTrip(t *testing.T) {
	for month := time.January; month <= time.December; month++ {
		for _, year := range []int{-5, 0, 1999, 2024} {
			n := NewNavigator(fixedClock(time.Date(year, month, 1, 0, 0, 0, 0, time.Local)))
			start := n.Cursor()

			n.AdvanceMonth()
			n.RetreatMonth()
			if got := n.Cursor(); got != start {
				t.Errorf("advance+retreat from %v = %v", start, got)
			}

			n.RetreatMonth()
			n.AdvanceMonth()
			if got := n.Cursor(); got != start {
				t.Errorf("retreat+advance from %v = %v", start, got)
			}
		}
	}
}

func TestTwelveAdvancesIncrementYear(t *testing.T) {
	for month := time.January; month <= time.December; month++ {
		n := NewNavigator(fixedClock(time.Date(2024, month, 10, 0, 0, 0, 0, time.Local)))
		for i := 0; i < 12; i++ {
			n.AdvanceMonth()
		}
		want := MonthCursor{Year: 2025, Month: month}
		if got := n.Cursor(); got != want {
			t.Errorf("12 advances from 2024-%02d = %v, want %v", month, got, want)
		}
	}
}

func TestMonthBoundaries(t *testing.T) {
	n := NewNavigator(fixedClock(time.Date(2024, 12, 3, 0, 0, 0, 0, time.Local)))

	n.AdvanceMonth()
	if got := n.Cursor(); got != (MonthCursor{Year: 2025, Month: time.January}) {
		t.Fatalf("advance from December 2024 = %v, want January 2025", got)
	}

	n.RetreatMonth()
	if got := n.Cursor(); got != (MonthCursor{Year: 2024, Month: time.December}) {
		t.Errorf("retreat from January 2025 = %v, want December 2024", got)
	}
}

func TestYearNavigation(t *testing.T) {
	n := NewNavigator(fixedClock(time.Date(1, 3, 1, 0, 0, 0, 0, time.Local)))

	n.RetreatYear()
	n.RetreatYear()
	if got := n.Cursor(); got != (MonthCursor{Year: -1, Month: time.March}) {
		t.Errorf("two retreats from year 1 = %v, want March -1", got)
	}

	for i := 0; i < 3; i++ {
		n.AdvanceYear()
	}
	if got := n.Cursor(); got != (MonthCursor{Year: 2, Month: time.March}) {
		t.Errorf("three advances = %v, want March 2", got)
	}
}

func TestSelectionFollowsCursor(t *testing.T) {
	n := NewNavigator(fixedClock(time.Date(2024, 1, 31, 9, 0, 0, 0, time.Local)))

	n.AdvanceMonth()
	want := time.Date(2024, 2, 29, 0, 0, 0, 0, time.Local)
	if !n.Selected().Equal(want) {
		t.Errorf("selection after advancing from Jan 31 = %v, want %v", n.Selected(), want)
	}

	n.AdvanceYear()
	want = time.Date(2025, 2, 28, 0, 0, 0, 0, time.Local)
	if !n.Selected().Equal(want) {
		t.Errorf("selection after advancing year = %v, want %v", n.Selected(), want)
	}
}

func TestMoveSelectionCrossesMonths(t *testing.T) {
	n := NewNavigator(fixedClock(time.Date(2024, 12, 30, 0, 0, 0, 0, time.Local)))

	n.MoveSelection(7)
	if got := n.Cursor(); got != (MonthCursor{Year: 2025, Month: time.January}) {
		t.Errorf("cursor = %v, want January 2025", got)
	}
	if got := n.SelectedKey(); got != "2025-1-6" {
		t.Errorf("selected = %q, want %q", got, "2025-1-6")
	}

	n.MoveSelection(-7)
	if got := n.SelectedKey(); got != "2024-12-30" {
		t.Errorf("selected = %q, want %q", got, "2024-12-30")
	}
}

func TestSelectDay(t *testing.T) {
	n := NewNavigator(fixedClock(time.Date(2024, 6, 1, 0, 0, 0, 0, time.Local)))

	if !n.SelectDay(15) {
		t.Fatal("SelectDay(15) returned false")
	}
	if got := n.SelectedKey(); got != "2024-6-15" {
		t.Errorf("selected = %q, want %q", got, "2024-6-15")
	}
	if !n.IsSelected(2024, time.June, 15) {
		t.Error("IsSelected(2024, June, 15) = false")
	}

	if n.SelectDay(31) {
		t.Error("SelectDay(31) in June should fail")
	}
	if got := n.SelectedKey(); got != "2024-6-15" {
		t.Errorf("failed SelectDay changed selection to %q", got)
	}
}

func TestIsToday(t *testing.T) {
	now := time.Date(2025, 3, 14, 23, 59, 0, 0, time.Local)
	n := NewNavigator(fixedClock(now))

	// Navigating must not change what today is.
	n.AdvanceMonth()
	n.AdvanceYear()

	tests := []struct {
		name  string
		year  int
		month time.Month
		day   int
		want  bool
	}{
		{"today", 2025, time.March, 14, true},
		{"same day previous year", 2024, time.March, 14, false},
		{"same day next year", 2026, time.March, 14, false},
		{"tomorrow", 2025, time.March, 15, false},
		{"same day other month", 2025, time.April, 14, false},
		{"empty cell", 2025, time.March, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := n.IsToday(tt.year, tt.month, tt.day); got != tt.want {
				t.Errorf("IsToday(%d, %v, %d) = %v, want %v", tt.year, tt.month, tt.day, got, tt.want)
			}
		})
	}
}

func TestTodayResetsNavigation(t *testing.T) {
	now := time.Date(2025, 3, 14, 8, 0, 0, 0, time.Local)
	n := NewNavigator(fixedClock(now))

	n.RetreatYear()
	n.AdvanceMonth()
	n.Today()

	if got := n.Cursor(); got != (MonthCursor{Year: 2025, Month: time.March}) {
		t.Errorf("Cursor after Today = %v", got)
	}
	if got := n.SelectedKey(); got != "2025-3-14" {
		t.Errorf("SelectedKey after Today = %q", got)
	}
}

func TestNilClockUsesWallClock(t *testing.T) {
	n := NewNavigator(nil)
	now := time.Now()
	// Guard against the test straddling midnight.
	if !n.IsToday(now.Year(), now.Month(), now.Day()) && time.Now().Day() == now.Day() {
		t.Error("IsToday(now) = false with the default clock")
	}
}
