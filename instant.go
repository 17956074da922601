// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendar

import (
	"math"
	"strings"
	"time"
)

// Instant is a point in time expressed as milliseconds since the Unix
// epoch (1970-01-01T00:00:00 UTC).
type Instant int64

// InvalidInstant is the result of parsing a malformed date string.
// Operations on an InvalidInstant propagate the invalidity: comparisons
// and containment tests evaluate false, counts are zero and formatted
// output is InvalidDateOutput. No operation returns an error for a
// malformed date string; callers must treat these outputs as the
// failure signal.
const InvalidInstant Instant = math.MinInt64

// InvalidDateOutput is returned by string-producing operations when
// their input could not be parsed.
const InvalidDateOutput = "Invalid Date"

// Layouts with explicit zone information, tried with time.Parse.
var zonedLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04Z07:00",
	"02 Jan 2006 15:04:05 MST",
	"02 Jan 2006 15:04:05 -0700",
	time.RFC1123,
	time.RFC1123Z,
}

// Layouts without zone information, interpreted in the local time zone
// as the reference date-string parser does.
var localLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	"02 Jan 2006 15:04:05",
	"02 Jan 2006",
	"Jan 2, 2006 15:04:05",
	"Jan 2, 2006",
}

// NewInstant returns the Instant for the given time.
func NewInstant(t time.Time) Instant {
	return Instant(t.UnixMilli())
}

// ParseInstant parses a textual date in ISO-8601 or RFC-2822-like form
// and returns the corresponding Instant. Date-times without zone
// information are interpreted in the local time zone and date-only
// values as UTC midnight. Malformed input yields InvalidInstant rather
// than an error.
func ParseInstant(val string) Instant {
	val = strings.TrimSpace(val)
	if t, err := time.Parse("2006-01-02", val); err == nil {
		return NewInstant(t)
	}
	for _, layout := range zonedLayouts {
		if t, err := time.Parse(layout, val); err == nil {
			return NewInstant(t)
		}
	}
	for _, layout := range localLayouts {
		if t, err := time.ParseInLocation(layout, val, time.Local); err == nil {
			return NewInstant(t)
		}
	}
	return InvalidInstant
}

// IsValid returns false for an Instant produced from malformed input.
func (i Instant) IsValid() bool {
	return i != InvalidInstant
}

// Milliseconds returns the Instant as milliseconds since the epoch.
func (i Instant) Milliseconds() int64 {
	return int64(i)
}

// In returns the time.Time for the Instant in the given location.
func (i Instant) In(loc *time.Location) time.Time {
	return time.UnixMilli(int64(i)).In(loc)
}

// UTC returns the time.Time for the Instant in UTC.
func (i Instant) UTC() time.Time {
	return i.In(time.UTC)
}

func (i Instant) String() string {
	if !i.IsValid() {
		return InvalidDateOutput
	}
	return i.UTC().Format("2006-01-02T15:04:05.000Z")
}

// Weekday returns the day of the week for the Instant in the given
// location.
func (i Instant) Weekday(loc *time.Location) time.Weekday {
	return i.In(loc).Weekday()
}

// DayName returns the full English weekday name for the Instant in the
// given location, or InvalidDateOutput.
func (i Instant) DayName(loc *time.Location) string {
	if !i.IsValid() {
		return InvalidDateOutput
	}
	return WeekdayName(i.Weekday(loc))
}

// ClockTime returns the time of day for the Instant in the given
// location.
func (i Instant) ClockTime(loc *time.Location) TimeOfDay {
	return TimeOfDayFromTime(i.In(loc))
}

// Quarter returns the calendar quarter (1-4) for the Instant in the
// given location, or 0 for an invalid Instant.
func (i Instant) Quarter(loc *time.Location) int {
	if !i.IsValid() {
		return 0
	}
	return MonthQuarter(Month(i.In(loc).Month()))
}

// IsLeapYear returns true if the Instant falls in a leap year in the
// given location.
func (i Instant) IsLeapYear(loc *time.Location) bool {
	if !i.IsValid() {
		return false
	}
	return IsLeap(i.In(loc).Year())
}

// WeekNumber returns the week of the year for the Instant, counting
// partial weeks, with weeks starting on Sunday. The year boundary is the
// Instant's UTC year anchored at midnight in the given location; this
// mixed UTC/local reference reproduces the behavior of the original
// implementation this package is compatible with.
func (i Instant) WeekNumber(loc *time.Location) int {
	if !i.IsValid() {
		return 0
	}
	jan1 := time.Date(i.UTC().Year(), time.January, 1, 0, 0, 0, 0, loc)
	days := daysSpanMillis(int64(i), jan1.UnixMilli())
	return (days + int(jan1.Weekday()) + 6) / 7
}

// ClockTime returns the local time of day for the given date string as
// zero-padded "HH:MM:SS", or InvalidDateOutput.
func ClockTime(val string) string {
	i := ParseInstant(val)
	if !i.IsValid() {
		return InvalidDateOutput
	}
	return i.ClockTime(time.Local).String()
}

// DayName returns the full English weekday name, in local time, for the
// given date string, or InvalidDateOutput.
func DayName(val string) string {
	return ParseInstant(val).DayName(time.Local)
}
