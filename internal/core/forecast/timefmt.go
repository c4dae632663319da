package forecast

import (
	"strings"
	"time"
)

const (
	clockLayout   = "15:04"
	dateKeyLayout = "2006-01-02"
	weekdayLayout = "Mon"

	degradedClock = "--:--"
)

// Provider date-time strings are UTC
var dateTextLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

// resolveTime returns the sample instant in loc. The unix timestamp wins over
// DateText; false means neither could be interpreted.
func resolveTime(s WeatherSample, loc *time.Location) (time.Time, bool) {
	if loc == nil {
		loc = time.UTC
	}
	if s.Timestamp > 0 {
		return time.Unix(s.Timestamp, 0).In(loc), true
	}

	raw := strings.TrimSpace(s.DateText)
	if raw == "" {
		return time.Time{}, false
	}
	for _, layout := range dateTextLayouts {
		if t, err := time.ParseInLocation(layout, raw, time.UTC); err == nil {
			return t.In(loc), true
		}
	}
	return time.Time{}, false
}

// FormatClock formats an instant as a 24-hour "HH:MM" clock in loc
func FormatClock(t time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	return t.In(loc).Format(clockLayout)
}

// FormatUnixClock formats unix seconds as "HH:MM" in loc, or the degraded clock for zero
func FormatUnixClock(unix int64, loc *time.Location) string {
	if unix <= 0 {
		return degradedClock
	}
	return FormatClock(time.Unix(unix, 0), loc)
}

// WeekdayLabel returns the short weekday for a "YYYY-MM-DD" key, or the key itself
// when it is not a calendar date.
func WeekdayLabel(dateKey string) string {
	t, err := time.Parse(dateKeyLayout, dateKey)
	if err != nil {
		return dateKey
	}
	return t.Format(weekdayLayout)
}

// fallbackDateKey is the part of a raw date-time before the first space or 'T'
func fallbackDateKey(raw string) string {
	raw = strings.TrimSpace(raw)
	if i := strings.IndexAny(raw, " T"); i >= 0 {
		return raw[:i]
	}
	return raw
}

// fallbackClock is at most five characters of the raw value after the date part
func fallbackClock(raw string) string {
	raw = strings.TrimSpace(raw)
	if i := strings.IndexAny(raw, " T"); i >= 0 {
		raw = raw[i+1:]
	}
	runes := []rune(raw)
	if len(runes) == 0 {
		return degradedClock
	}
	if len(runes) > 5 {
		runes = runes[:5]
	}
	return string(runes)
}
