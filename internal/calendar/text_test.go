package calendar

import (
	"strings"
	"testing"
	"time"
)

func TestRenderText(t *testing.T) {
	got := RenderText(MonthCursor{Year: 2024, Month: time.June}, TextOptions{})

	want := strings.Join([]string{
		"     June 2024",
		"Mo Tu We Th Fr Sa Su",
		"                1  2",
		" 3  4  5  6  7  8  9",
		"10 11 12 13 14 15 16",
		"17 18 19 20 21 22 23",
		"24 25 26 27 28 29 30",
		"",
		"",
	}, "\n")

	if got != want {
		t.Errorf("RenderText mismatch\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestRenderTextHighlight(t *testing.T) {
	opts := TextOptions{
		Highlight: func(day int, cell string) string {
			if day == 15 {
				return "[]"
			}
			return cell
		},
	}
	got := RenderText(MonthCursor{Year: 2024, Month: time.June}, opts)

	if !strings.Contains(got, "10 11 12 13 14 [] 16") {
		t.Errorf("highlight not applied:\n%s", got)
	}
}
