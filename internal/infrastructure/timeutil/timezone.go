// Package timeutil provides timezone-aware datetime resolution for leg
// timestamps. Leg times arrive as a local date string and a separate local
// time-of-day string, entered independently; this package is the single
// point that reconciles such a pair into one unambiguous instant anchored
// to an airport's IANA zone, never the zone of whoever entered it.
package timeutil

import (
	"errors"
	"fmt"
	"sync"
	"time"
)

// Input layouts accepted for wall-clock entry.
const (
	// DateLayout is the local calendar date format (YYYY-MM-DD).
	DateLayout = "2006-01-02"

	// TimeLayout is the local time-of-day format (HH:MM).
	TimeLayout = "15:04"

	// TimeLayoutSeconds additionally accepts seconds (HH:MM:SS).
	TimeLayoutSeconds = "15:04:05"
)

// ErrInvalidTimeFormat indicates a malformed date or time string, or an
// unrecognized timezone identifier.
var ErrInvalidTimeFormat = errors.New("invalid time format")

// minimumEpoch guards against obviously-wrong historical dates. Anything
// before 1970-01-01 UTC is assumed to be a data entry error.
var minimumEpoch = time.Unix(0, 0).UTC()

// locationCache stores cached timezone locations for performance.
var locationCache sync.Map

// GetLocation returns a cached timezone location.
// It caches the result for subsequent calls with the same name.
func GetLocation(name string) (*time.Location, error) {
	// Check cache first
	if loc, ok := locationCache.Load(name); ok {
		return loc.(*time.Location), nil
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("%w: unknown timezone %q", ErrInvalidTimeFormat, name)
	}

	locationCache.Store(name, loc)
	return loc, nil
}

// MustGetLocation returns a cached timezone location or panics on error.
// Use this for known-good timezone names (e.g., constants in tests).
func MustGetLocation(name string) *time.Location {
	loc, err := GetLocation(name)
	if err != nil {
		panic(err)
	}
	return loc
}

// MergeLocal combines a local date string and a local time-of-day string in
// the named IANA zone into a single instant. Both parts are required; a
// malformed part or an unknown zone yields ErrInvalidTimeFormat.
func MergeLocal(date, clock, timezone string) (time.Time, error) {
	loc, err := GetLocation(timezone)
	if err != nil {
		return time.Time{}, err
	}

	layout := TimeLayout
	if len(clock) == len(TimeLayoutSeconds) {
		layout = TimeLayoutSeconds
	}

	t, err := time.ParseInLocation(DateLayout+" "+layout, date+" "+clock, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q %q", ErrInvalidTimeFormat, date, clock)
	}
	return t, nil
}

// ParseLocalDate parses a bare local date string in the named zone,
// anchored to midnight. Used for date-only information that is never
// promoted to an instant.
func ParseLocalDate(date, timezone string) (time.Time, error) {
	loc, err := GetLocation(timezone)
	if err != nil {
		return time.Time{}, err
	}

	t, err := time.ParseInLocation(DateLayout, date, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, date)
	}
	return t, nil
}

// ToUTC converts an instant to UTC. Idempotent.
func ToUTC(t time.Time) time.Time {
	return t.UTC()
}

// BeforeMinimumEpoch reports whether the instant falls before 1970-01-01
// UTC and is therefore rejected as an obviously-wrong historical date.
func BeforeMinimumEpoch(t time.Time) bool {
	return t.Before(minimumEpoch)
}

// DateInZone returns the calendar date (YYYY-MM-DD) of the instant as
// observed in the named zone.
func DateInZone(t time.Time, timezone string) (string, error) {
	loc, err := GetLocation(timezone)
	if err != nil {
		return "", err
	}
	return t.In(loc).Format(DateLayout), nil
}

// FormatDate formats a time as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// FormatTime formats a time as HH:MM.
func FormatTime(t time.Time) string {
	return t.Format(TimeLayout)
}

// ClearLocationCache clears the cached timezone locations.
// This is primarily useful for testing.
func ClearLocationCache() {
	locationCache.Range(func(key, _ interface{}) bool {
		locationCache.Delete(key)
		return true
	})
}
