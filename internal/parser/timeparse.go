// Package parser reads the loose date and clock expressions typed into the goto prompt and
// the config file.
package parser

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	ErrEmpty        = errors.New("empty input")
	ErrUnrecognized = errors.New("unrecognized input")
)

var (
	weekdayRe   = regexp.MustCompile(`^(next|this)\s+(mon|monday|tue|tuesday|wed|wednesday|thu|thursday|fri|friday|sat|saturday|sun|sunday)$`)
	inRe        = regexp.MustCompile(`^in\s+(\d+)\s+(day|days|week|weeks|month|months|year|years)$`)
	fromNowRe   = regexp.MustCompile(`^(\d+)\s+(day|days|week|weeks|month|months|year|years)\s+from\s+(now|today)$`)
	isoDateRe   = regexp.MustCompile(`^(-?\d{1,4})-(\d{1,2})-(\d{1,2})$`)
	usDateRe    = regexp.MustCompile(`^(\d{1,2})[/-](\d{1,2})[/-](\d{4})$`)
	shortDateRe = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})$`)
	monthNameRe = regexp.MustCompile(`^(jan|january|feb|february|mar|march|apr|april|may|jun|june|jul|july|aug|august|sep|sept|september|oct|october|nov|november|dec|december)\s+(\d{1,2})(?:,?\s+(\d{4}))?$`)
	clockRe     = regexp.MustCompile(`^(\d{1,2})(?::(\d{2}))?\s*(am|pm)?$`)
)

var namedTimes = map[string]int{
	"noon":      12,
	"midnight":  0,
	"morning":   9,
	"afternoon": 14,
	"evening":   18,
	"night":     21,
}

// Date resolves input to local midnight of a calendar day. Relative forms ("tomorrow",
// "next friday", "in 2 weeks") count from now. Dates that do not exist, such as 2/30, are
// rejected rather than normalized.
func Date(input string, now time.Time) (time.Time, error) {
	lower := strings.ToLower(strings.Join(strings.Fields(input), " "))
	if lower == "" {
		return time.Time{}, ErrEmpty
	}

	loc := now.Location()
	y, m, d := now.Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, loc)

	switch lower {
	case "today":
		return today, nil
	case "tomorrow", "tmrw":
		return today.AddDate(0, 0, 1), nil
	case "yesterday":
		return today.AddDate(0, 0, -1), nil
	}

	if matches := weekdayRe.FindStringSubmatch(lower); matches != nil {
		return nextWeekday(today, parseWeekday(matches[2]), matches[1] == "next"), nil
	}

	if matches := inRe.FindStringSubmatch(lower); matches != nil {
		return offset(today, matches[1], matches[2]), nil
	}

	if matches := fromNowRe.FindStringSubmatch(lower); matches != nil {
		return offset(today, matches[1], matches[2]), nil
	}

	if matches := isoDateRe.FindStringSubmatch(lower); matches != nil {
		return exactDate(atoi(matches[1]), time.Month(atoi(matches[2])), atoi(matches[3]), loc, input)
	}

	if matches := usDateRe.FindStringSubmatch(lower); matches != nil {
		return exactDate(atoi(matches[3]), time.Month(atoi(matches[1])), atoi(matches[2]), loc, input)
	}

	if matches := shortDateRe.FindStringSubmatch(lower); matches != nil {
		return exactDate(y, time.Month(atoi(matches[1])), atoi(matches[2]), loc, input)
	}

	if matches := monthNameRe.FindStringSubmatch(lower); matches != nil {
		year := y
		if matches[3] != "" {
			year = atoi(matches[3])
		}
		return exactDate(year, parseMonth(matches[1]), atoi(matches[2]), loc, input)
	}

	return time.Time{}, fmt.Errorf("%w: %q", ErrUnrecognized, input)
}

// Clock parses a time of day such as "3pm", "3:30 PM", "15:00" or "noon" and returns the
// 24-hour clock reading.
func Clock(input string) (hour, minute int, err error) {
	lower := strings.ToLower(strings.TrimSpace(input))
	lower = strings.TrimPrefix(lower, "at ")
	if lower == "" {
		return 0, 0, ErrEmpty
	}

	if h, ok := namedTimes[lower]; ok {
		return h, 0, nil
	}

	matches := clockRe.FindStringSubmatch(lower)
	if matches == nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrUnrecognized, input)
	}

	hour = atoi(matches[1])
	if matches[2] != "" {
		minute = atoi(matches[2])
	}
	if minute > 59 {
		return 0, 0, fmt.Errorf("%w: minute out of range in %q", ErrUnrecognized, input)
	}

	switch matches[3] {
	case "am", "pm":
		if hour < 1 || hour > 12 {
			return 0, 0, fmt.Errorf("%w: hour out of range in %q", ErrUnrecognized, input)
		}
		hour %= 12
		if matches[3] == "pm" {
			hour += 12
		}
	default:
		if hour > 23 {
			return 0, 0, fmt.Errorf("%w: hour out of range in %q", ErrUnrecognized, input)
		}
	}

	return hour, minute, nil
}

func exactDate(year int, month time.Month, day int, loc *time.Location, input string) (time.Time, error) {
	date := time.Date(year, month, day, 0, 0, 0, 0, loc)
	if date.Year() != year || date.Month() != month || date.Day() != day {
		return time.Time{}, fmt.Errorf("%w: no such date %q", ErrUnrecognized, input)
	}
	return date, nil
}

func offset(today time.Time, count, unit string) time.Time {
	n := atoi(count)
	switch {
	case strings.HasPrefix(unit, "day"):
		return today.AddDate(0, 0, n)
	case strings.HasPrefix(unit, "week"):
		return today.AddDate(0, 0, n*7)
	case strings.HasPrefix(unit, "month"):
		return today.AddDate(0, n, 0)
	default:
		return today.AddDate(n, 0, 0)
	}
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}

func parseWeekday(s string) time.Weekday {
	switch s {
	case "mon", "monday":
		return time.Monday
	case "tue", "tuesday":
		return time.Tuesday
	case "wed", "wednesday":
		return time.Wednesday
	case "thu", "thursday":
		return time.Thursday
	case "fri", "friday":
		return time.Friday
	case "sat", "saturday":
		return time.Saturday
	default:
		return time.Sunday
	}
}

func parseMonth(s string) time.Month {
	switch s[:3] {
	case "feb":
		return time.February
	case "mar":
		return time.March
	case "apr":
		return time.April
	case "may":
		return time.May
	case "jun":
		return time.June
	case "jul":
		return time.July
	case "aug":
		return time.August
	case "sep":
		return time.September
	case "oct":
		return time.October
	case "nov":
		return time.November
	case "dec":
		return time.December
	default:
		return time.January
	}
}

// nextWeekday finds the coming target weekday. "this" on the same weekday means today,
// "next" means a week from today.
func nextWeekday(today time.Time, target time.Weekday, next bool) time.Time {
	days := (int(target-today.Weekday()) + 7) % 7
	if days == 0 && next {
		days = 7
	}
	return today.AddDate(0, 0, days)
}
