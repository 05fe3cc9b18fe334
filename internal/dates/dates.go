// Package dates provides calendar-date utilities for Daycheck.
//
// A date key is the canonical "YYYY-MM-DD" string for a calendar day in local
// time. Keys are used both as map keys and as sortable values, so all
// conversions go through local midnight to stay immune to DST shifts.
package dates

import (
	"regexp"
	"strings"
	"time"

	"github.com/markusmobius/go-dateparser"
)

const (
	// KeyLayout is the canonical date-key layout.
	KeyLayout = "2006-01-02"
	// StampLayout is the timestamp layout used for display and storage.
	StampLayout = "2006-01-02 15:04:05"
	// DisplayLayout is the long-form date layout shown to the user.
	DisplayLayout = "January 2, 2006"
)

var keyRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// Key returns the canonical date key for t in local time.
func Key(t time.Time) string {
	return t.Local().Format(KeyLayout)
}

// Parse converts a date key back to a time at local midnight.
func Parse(key string) (time.Time, error) {
	return time.ParseInLocation(KeyLayout, key, time.Local)
}

// IsKey reports whether s is a well-formed date key that round-trips.
func IsKey(s string) bool {
	if !keyRegex.MatchString(s) {
		return false
	}
	t, err := Parse(s)
	if err != nil {
		return false
	}
	return Key(t) == s
}

// Midnight truncates t to local midnight.
func Midnight(t time.Time) time.Time {
	t = t.Local()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// Stamp formats a timestamp for display and storage.
func Stamp(t time.Time) string {
	return t.Local().Format(StampLayout)
}

// Display formats a date key in long form, e.g. "June 5, 2024".
// Malformed keys are returned unchanged.
func Display(key string) string {
	t, err := Parse(key)
	if err != nil {
		return key
	}
	return t.Format(DisplayLayout)
}

// IsWeekend reports whether t falls on a Saturday or Sunday.
func IsWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// DaysUntil returns the signed number of whole days from now's calendar day to
// the target date key: 0 means today, positive means days left, negative means
// days ago. Both endpoints are taken at local midnight so the difference is
// always a whole number of days regardless of DST.
func DaysUntil(targetKey string, now time.Time) (int, error) {
	target, err := Parse(targetKey)
	if err != nil {
		return 0, err
	}
	today := Midnight(now)

	days := 0
	for d := today; d.Before(target); d = d.AddDate(0, 0, 1) {
		days++
	}
	for d := today; d.After(target); d = d.AddDate(0, 0, -1) {
		days--
	}
	return days, nil
}

// ParseInput resolves user-supplied date text to a date key. Canonical keys
// pass through untouched; anything else goes through natural-language parsing
// ("today", "next friday", "2024-06-03").
func ParseInput(input string, now time.Time) (string, error) {
	input = strings.TrimSpace(input)
	if input == "" || strings.EqualFold(input, "today") {
		return Key(now), nil
	}
	if IsKey(input) {
		return input, nil
	}

	cfg := &dateparser.Configuration{
		CurrentTime: now,
	}
	result, err := dateparser.Parse(cfg, input)
	if err != nil {
		return "", err
	}
	return Key(result.Time), nil
}
