// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendar

import "fmt"

// FormatDate renders the given date string as "M/D/YYYY, h:mm:ss AM/PM"
// in UTC with no leading zeros on the month, day or hour, or returns
// InvalidDateOutput.
//
// The 12-hour value is the literal arithmetic hour-12 for hours above
// twelve, so midnight renders as "0" rather than "12" and noon as
// "12 PM". This matches the original implementation this package is
// compatible with and is deliberately not corrected.
func FormatDate(val string) string {
	i := ParseInstant(val)
	if !i.IsValid() {
		return InvalidDateOutput
	}
	t := i.UTC()
	hour := t.Hour()
	display, suffix := hour, "AM"
	if hour > 12 {
		display = hour - 12
	}
	if hour >= 12 {
		suffix = "PM"
	}
	return fmt.Sprintf("%d/%d/%d, %d:%02d:%02d %s",
		int(t.Month()), t.Day(), t.Year(), display, t.Minute(), t.Second(), suffix)
}
