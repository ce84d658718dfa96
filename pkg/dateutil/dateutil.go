package dateutil

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DateLayout is the canonical local-calendar date format. The fixed-width
// zero-padded layout is what makes lexicographic comparison chronological.
const DateLayout = "2006-01-02"

// TimeToMinutes converts an "HH:MM" clock string to minutes since midnight.
// Empty or malformed input returns 0, so an absent time sorts as midnight.
// Callers must special-case all-day tasks themselves.
func TimeToMinutes(hhmm string) int {
	if hhmm == "" {
		return 0
	}
	parts := strings.SplitN(hhmm, ":", 2)
	if len(parts) != 2 {
		return 0
	}
	h, errH := strconv.Atoi(parts[0])
	m, errM := strconv.Atoi(parts[1])
	if errH != nil || errM != nil {
		return 0
	}
	return h*60 + m
}

// Calendar resolves instants to local calendar dates in a fixed IANA timezone.
type Calendar struct {
	location *time.Location
}

// NewCalendar creates a Calendar for the given IANA timezone string,
// e.g. "Asia/Ho_Chi_Minh".
func NewCalendar(timezone string) (*Calendar, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Calendar{location: loc}, nil
}

// Location returns the calendar's timezone.
func (c *Calendar) Location() *time.Location {
	return c.location
}

// FormatLocalDate renders t as a canonical YYYY-MM-DD string using local
// calendar fields. Never slice a UTC ISO string here: that shifts dates
// across midnight in non-UTC timezones.
func (c *Calendar) FormatLocalDate(t time.Time) string {
	return t.In(c.location).Format(DateLayout)
}

// MinutesSinceMidnight returns the local wall-clock minute of day for t.
func (c *Calendar) MinutesSinceMidnight(t time.Time) int {
	lt := t.In(c.location)
	return lt.Hour()*60 + lt.Minute()
}

// IsCanonicalDate reports whether s is already a canonical YYYY-MM-DD string.
func IsCanonicalDate(s string) bool {
	if len(s) != 10 {
		return false
	}
	_, err := time.Parse(DateLayout, s)
	return err == nil
}
