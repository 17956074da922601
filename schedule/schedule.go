// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package schedule generates work schedules: repeating cycles of
// consecutive on-duty days followed by consecutive off days applied to
// a calendar date range, and rosters merging several such rotations.
package schedule

import (
	"fmt"
	"iter"
	"strconv"
	"strings"

	"cloudeng.io/calendar"
	"cloudeng.io/errors"
)

// Pattern defines a repeating cycle of WorkDays consecutive on-duty days
// followed by OffDays consecutive off days, anchored at the first day of
// the range it is applied to. Both counts must be positive.
type Pattern struct {
	WorkDays int
	OffDays  int
}

// NewPattern returns a Pattern with the given work and off day counts.
func NewPattern(workDays, offDays int) Pattern {
	return Pattern{WorkDays: workDays, OffDays: offDays}
}

// Validate returns an error unless both cycle components are positive.
func (p Pattern) Validate() error {
	errs := &errors.M{}
	if p.WorkDays < 1 {
		errs.Append(fmt.Errorf("work days must be positive: %d", p.WorkDays))
	}
	if p.OffDays < 1 {
		errs.Append(fmt.Errorf("off days must be positive: %d", p.OffDays))
	}
	return errs.Err()
}

// Parse val in the format '4:3', work days before off days.
func (p *Pattern) Parse(val string) error {
	parts := strings.Split(val, ":")
	if len(parts) != 2 {
		return fmt.Errorf("invalid format, %q expected '<work>:<off>'", val)
	}
	work, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return fmt.Errorf("invalid work days: %s", parts[0])
	}
	off, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return fmt.Errorf("invalid off days: %s", parts[1])
	}
	np := Pattern{WorkDays: work, OffDays: off}
	if err := np.Validate(); err != nil {
		return err
	}
	*p = np
	return nil
}

func (p Pattern) String() string {
	return fmt.Sprintf("%d:%d", p.WorkDays, p.OffDays)
}

// CycleLength returns the total number of days in one work/off cycle.
func (p Pattern) CycleLength() int {
	return p.WorkDays + p.OffDays
}

// OnDuty returns true if the zero-based day position within a schedule
// falls on a work day.
func (p Pattern) OnDuty(pos int) bool {
	return pos%p.CycleLength() < p.WorkDays
}

// WorkDates returns an iterator yielding the on-duty dates obtained by
// applying the pattern to every day of the range in order, starting with
// a full run of work days. An empty range yields nothing.
func (p Pattern) WorkDates(r calendar.CalendarDateRange) iter.Seq[calendar.CalendarDate] {
	return func(yield func(calendar.CalendarDate) bool) {
		pos := 0
		for cd := range r.Dates() {
			if p.OnDuty(pos) && !yield(cd) {
				return
			}
			pos++
		}
	}
}

// WorkDateList returns the on-duty dates for the range as a list.
func (p Pattern) WorkDateList(r calendar.CalendarDateRange) calendar.CalendarDateList {
	var cdl calendar.CalendarDateList
	for cd := range p.WorkDates(r) {
		cdl = append(cdl, cd)
	}
	return cdl
}

// WorkDateStrings returns the on-duty dates for the range in the format
// '02-01-2006'.
func (p Pattern) WorkDateStrings(r calendar.CalendarDateRange) []string {
	return p.WorkDateList(r).Strings()
}
