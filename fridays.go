// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendar

import "time"

// NextFriday returns the Instant of the next Friday strictly after the
// Instant, preserving its clock time in the given location. An Instant
// that already falls on a Friday advances a full week.
func (i Instant) NextFriday(loc *time.Location) Instant {
	if !i.IsValid() {
		return InvalidInstant
	}
	t := i.In(loc)
	wd := int(t.Weekday())
	add := int(time.Friday) - wd
	if wd >= int(time.Friday) {
		add = 7 - wd + int(time.Friday)
	}
	return NewInstant(t.AddDate(0, 0, add))
}

// NextFridayThe13th returns the Instant of midnight, in the given
// location, of the first 13th falling on a Friday on or after the
// Instant's date. When the Instant's day of month is already the 13th
// or later the scan starts at the following month. The scan crosses
// year boundaries.
func (i Instant) NextFridayThe13th(loc *time.Location) Instant {
	if !i.IsValid() {
		return InvalidInstant
	}
	t := i.In(loc)
	year, month := t.Year(), int(t.Month())
	if t.Day() >= 13 {
		month++
	}
	for {
		if month > 12 {
			month = 1
			year++
		}
		cand := time.Date(year, time.Month(month), 13, 0, 0, 0, 0, loc)
		if cand.Weekday() == time.Friday {
			return NewInstant(cand)
		}
		month++
	}
}
