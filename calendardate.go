// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendar

import (
	"fmt"
	"iter"
	"strconv"
	"strings"
)

// CalendarDate represents a date with a year, month and day. The year is
// stored in the top 16 bits, the month in the next 8 and the day in the
// low 8 bits so that values order and compare correctly.
type CalendarDate uint32

// NewCalendarDate returns a CalendarDate for the given year, month and day.
func NewCalendarDate(year int, month Month, day int) CalendarDate {
	return CalendarDate(year)<<16 | CalendarDate(month)<<8 | CalendarDate(day)
}

func (cd CalendarDate) Year() int {
	return int(cd >> 16 & 0xffff)
}

func (cd CalendarDate) Month() Month {
	return Month(cd >> 8 & 0xff)
}

func (cd CalendarDate) Day() int {
	return int(cd & 0xff)
}

// String returns the date in the format '02-01-2006'.
func (cd CalendarDate) String() string {
	return fmt.Sprintf("%02d-%02d-%04d", cd.Day(), cd.Month(), cd.Year())
}

// Parse a date in the format '02-01-2006' (day first) with error
// checking for valid month and day.
func (cd *CalendarDate) Parse(val string) error {
	parts := strings.Split(val, "-")
	if len(parts) != 3 {
		return fmt.Errorf("invalid date %q, expected format '02-01-2006'", val)
	}
	day, err := strconv.Atoi(parts[0])
	if err != nil {
		return fmt.Errorf("invalid day: %s", parts[0])
	}
	month, err := ParseNumericMonth(parts[1])
	if err != nil {
		return err
	}
	year, err := strconv.Atoi(parts[2])
	if err != nil || year < 1 || year > 0xffff {
		return fmt.Errorf("invalid year: %s", parts[2])
	}
	if day < 1 || day > DaysInMonth(year, month) {
		return fmt.Errorf("invalid day for %02d-%04d: %d", month, year, day)
	}
	*cd = NewCalendarDate(year, month, day)
	return nil
}

// DayOfYear returns the day of the year for the date as 1-365, or 1-366
// for leap years.
func (cd CalendarDate) DayOfYear() int {
	if IsLeap(cd.Year()) {
		return dayOfYearLeap[cd.Month()-1] + cd.Day()
	}
	return dayOfYear[cd.Month()-1] + cd.Day()
}

// Tomorrow returns the date of the next day. 31-12 advances to 01-01 of
// the following year.
func (cd CalendarDate) Tomorrow() CalendarDate {
	year, month, day := cd.Year(), cd.Month(), cd.Day()
	if month == 12 && day == 31 {
		return NewCalendarDate(year+1, 1, 1)
	}
	if day >= DaysInMonth(year, month) {
		return NewCalendarDate(year, month+1, 1)
	}
	return NewCalendarDate(year, month, day+1)
}

// CalendarDateList represents a list of CalendarDate values.
type CalendarDateList []CalendarDate

func (cdl CalendarDateList) Contains(cd CalendarDate) bool {
	for _, d := range cdl {
		if d == cd {
			return true
		}
	}
	return false
}

// Strings returns the dates formatted as per CalendarDate.String.
func (cdl CalendarDateList) Strings() []string {
	out := make([]string, len(cdl))
	for i, d := range cdl {
		out[i] = d.String()
	}
	return out
}

func (cdl CalendarDateList) String() string {
	return strings.Join(cdl.Strings(), ", ")
}

// CalendarDateRange represents a range of CalendarDate values, inclusive
// of the from and to dates. The from date is stored in the top 32 bits.
// A range whose from date is after its to date contains no dates.
type CalendarDateRange uint64

// NewCalendarDateRange returns a CalendarDateRange for the from/to dates.
func NewCalendarDateRange(from, to CalendarDate) CalendarDateRange {
	return CalendarDateRange(from)<<32 | CalendarDateRange(to)
}

// From returns the start date of the range.
func (cdr CalendarDateRange) From() CalendarDate {
	return CalendarDate(cdr >> 32 & 0xffffffff)
}

// To returns the end date of the range.
func (cdr CalendarDateRange) To() CalendarDate {
	return CalendarDate(cdr & 0xffffffff)
}

func (cdr CalendarDateRange) String() string {
	return fmt.Sprintf("%s - %s", cdr.From(), cdr.To())
}

// Parse a range in the format '02-01-2006:05-01-2006'. The from date is
// not required to precede the to date; a reversed range is valid and
// empty.
func (cdr *CalendarDateRange) Parse(val string) error {
	parts := strings.Split(val, ":")
	if len(parts) != 2 {
		return fmt.Errorf("invalid format, %q expected '<from>:<to>'", val)
	}
	var from, to CalendarDate
	if err := from.Parse(parts[0]); err != nil {
		return fmt.Errorf("invalid from: %s: %v", parts[0], err)
	}
	if err := to.Parse(parts[1]); err != nil {
		return fmt.Errorf("invalid to: %s: %v", parts[1], err)
	}
	*cdr = NewCalendarDateRange(from, to)
	return nil
}

// Include returns true if the specified date is within the range.
func (cdr CalendarDateRange) Include(cd CalendarDate) bool {
	return cdr.From() <= cd && cd <= cdr.To()
}

// NumDays returns the inclusive number of days spanned by the range, or
// 0 for an empty range.
func (cdr CalendarDateRange) NumDays() int {
	from, to := cdr.From(), cdr.To()
	if from > to {
		return 0
	}
	days := to.DayOfYear() - from.DayOfYear() + 1
	for year := from.Year(); year < to.Year(); year++ {
		days += DaysInYear(year)
	}
	return days
}

// Dates returns an iterator that yields each date in the range in
// ascending order.
func (cdr CalendarDateRange) Dates() iter.Seq[CalendarDate] {
	from, to := cdr.From(), cdr.To()
	return func(yield func(CalendarDate) bool) {
		for cd := from; cd <= to; cd = cd.Tomorrow() {
			if !yield(cd) {
				return
			}
		}
	}
}
