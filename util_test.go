// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendar_test

import (
	"time"

	"cloudeng.io/calendar"
)

func newCalendarDate(y, m, d int) calendar.CalendarDate {
	return calendar.NewCalendarDate(y, calendar.Month(m), d)
}

func newCalendarDateRange(a, b calendar.CalendarDate) calendar.CalendarDateRange {
	return calendar.NewCalendarDateRange(a, b)
}

func instantAt(year, month, day, hour, min, sec int) calendar.Instant {
	return calendar.NewInstant(time.Date(year, time.Month(month), day, hour, min, sec, 0, time.UTC))
}
