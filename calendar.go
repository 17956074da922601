// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package calendar provides pure calendar arithmetic over instants and
// dates: timestamp conversion, weekday and weekend counting, period
// containment, quarter and week numbering and related helpers. All
// functions are deterministic and free of shared state; operations whose
// result depends on a time zone take an explicit *time.Location.
package calendar

import (
	"fmt"
	"strconv"
	"time"
)

// Month as an int.
type Month time.Month

var (
	dayOfYear       []int // per month cumulative days in year so [0, 31, 59 etc]
	dayOfYearLeap   []int // per month cumulative days in leap year
	daysInMonth     []int // days in each month
	daysInMonthLeap []int

	dayNames = [7]string{
		"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday",
	}
)

func daysInMonthForYearInit(year int, month int) int {
	switch month {
	case 2:
		return DaysInFeb(year)
	case 4, 6, 9, 11:
		return 30
	default:
		return 31
	}
}

func init() {
	daysInMonth = make([]int, 12)
	daysInMonthLeap = make([]int, 12)
	dayOfYear = make([]int, 12)
	dayOfYearLeap = make([]int, 12)

	for i := 0; i < 12; i++ {
		daysInMonth[i] = daysInMonthForYearInit(2023, i+1)
		daysInMonthLeap[i] = daysInMonthForYearInit(2024, i+1)
	}
	for i := 0; i < 11; i++ {
		dayOfYear[i+1] += dayOfYear[i] + daysInMonth[i]
		dayOfYearLeap[i+1] += dayOfYearLeap[i] + daysInMonthLeap[i]
	}
}

// ParseNumericMonth parses a 1 or 2 digit numeric month value in the range 1-12.
func ParseNumericMonth(val string) (Month, error) {
	n, err := strconv.Atoi(val)
	if err != nil {
		return 0, err
	}
	if n < 1 || n > 12 {
		return 0, fmt.Errorf("invalid month: %d", n)
	}
	return Month(n), nil
}

// IsLeap returns true if the given year is a leap year.
func IsLeap(year int) bool {
	return year%4 == 0 && year%100 != 0 || year%400 == 0
}

// DaysInFeb returns the number of days in February for the given year.
func DaysInFeb(year int) int {
	if IsLeap(year) {
		return 29
	}
	return 28
}

// DaysInMonth returns the number of days in the given month for the given year.
func DaysInMonth(year int, month Month) int {
	if IsLeap(year) {
		return daysInMonthLeap[month-1]
	}
	return daysInMonth[month-1]
}

// DaysInYear returns 365, or 366 for leap years.
func DaysInYear(year int) int {
	if IsLeap(year) {
		return 366
	}
	return 365
}

// MonthQuarter returns the calendar quarter (1-4) that the given month
// falls in.
func MonthQuarter(m Month) int {
	return (int(m) + 2) / 3
}

// WeekdayName returns the full English name for the given weekday.
// A fixed lookup table is used rather than a locale service so that the
// output is identical across environments.
func WeekdayName(wd time.Weekday) string {
	return dayNames[wd]
}

// WeekendsInMonth returns the number of weekend days (Saturdays plus
// Sundays) in the given month. Each weekend day is counted by locating
// its first occurrence in the month and dividing the remaining days into
// weeks, rounding up.
func WeekendsInMonth(year int, month Month) int {
	total := DaysInMonth(year, month)
	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC).Weekday()
	n := 0
	for _, wd := range []time.Weekday{time.Saturday, time.Sunday} {
		day := 1 + (int(wd)-int(first)+7)%7
		n += (total - day + 1 + 6) / 7
	}
	return n
}
