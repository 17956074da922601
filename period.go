// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendar

import "fmt"

const millisPerDay = 24 * 60 * 60 * 1000

// daysSpanMillis returns the inclusive number of days covered by the
// two instants, rounding partial days up. Identical instants span one
// day.
func daysSpanMillis(a, b int64) int {
	d := a - b
	if d < 0 {
		d = -d
	}
	return int((d+millisPerDay-1)/millisPerDay) + 1
}

// Period represents a range of instants, inclusive of both endpoints.
type Period struct {
	Start Instant
	End   Instant
}

// NewPeriod returns a Period for the given instants.
func NewPeriod(start, end Instant) Period {
	return Period{Start: start, End: end}
}

// ParsePeriod parses the start and end date strings into a Period.
// Malformed input propagates as invalid endpoints rather than an error;
// use IsValid to detect it.
func ParsePeriod(start, end string) Period {
	return Period{Start: ParseInstant(start), End: ParseInstant(end)}
}

// IsValid returns true if both endpoints were parsed successfully. It
// places no constraint on their order; a Period whose Start is after its
// End contains no instants.
func (p Period) IsValid() bool {
	return p.Start.IsValid() && p.End.IsValid()
}

// Contains returns true iff Start <= i <= End. It is false for any
// invalid instant or endpoint and for a Period with Start after End.
func (p Period) Contains(i Instant) bool {
	if !p.IsValid() || !i.IsValid() {
		return false
	}
	return p.Start <= i && i <= p.End
}

// Days returns the inclusive number of days covered by the Period,
// counting partial days as whole ones, irrespective of endpoint order.
// It returns 0 for a Period with an invalid endpoint.
func (p Period) Days() int {
	if !p.IsValid() {
		return 0
	}
	return daysSpanMillis(int64(p.Start), int64(p.End))
}

func (p Period) String() string {
	return fmt.Sprintf("%s - %s", p.Start, p.End)
}

// DaysOnPeriod returns the inclusive number of days between the two
// date strings, or 0 if either is malformed.
func DaysOnPeriod(start, end string) int {
	return ParsePeriod(start, end).Days()
}

// DateInPeriod returns true if the date falls within the period given
// by the start and end date strings, inclusive of both endpoints.
func DateInPeriod(val, start, end string) bool {
	return ParsePeriod(start, end).Contains(ParseInstant(val))
}
