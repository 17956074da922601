// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package schedule

import (
	"fmt"
	"iter"

	"cloudeng.io/algo/container/heap"
	"cloudeng.io/calendar"
	"cloudeng.io/errors"
)

// Rotation is a named work pattern applied to a calendar date range.
type Rotation struct {
	Name    string
	Pattern Pattern
	Dates   calendar.CalendarDateRange
}

// Validate returns an error if the rotation has no name or an invalid
// pattern.
func (r Rotation) Validate() error {
	errs := &errors.M{}
	if len(r.Name) == 0 {
		errs.Append(fmt.Errorf("rotation has no name"))
	}
	if err := r.Pattern.Validate(); err != nil {
		errs.Append(fmt.Errorf("rotation %q: %w", r.Name, err))
	}
	return errs.Err()
}

// RotationList represents the rotations making up a roster.
type RotationList []Rotation

// Validate validates every rotation in the list, returning the
// accumulated errors.
func (rl RotationList) Validate() error {
	errs := &errors.M{}
	for _, r := range rl {
		errs.Append(r.Validate())
	}
	return errs.Err()
}

// Merged returns an iterator yielding every on-duty date of every
// rotation in ascending date order together with the name of the
// rotation it belongs to. Dates shared by multiple rotations are
// yielded once per rotation, in no particular order among themselves.
func (rl RotationList) Merged() iter.Seq2[calendar.CalendarDate, string] {
	return func(yield func(calendar.CalendarDate, string) bool) {
		type source struct {
			name string
			next func() (calendar.CalendarDate, bool)
			stop func()
		}
		srcs := make([]source, 0, len(rl))
		defer func() {
			for _, s := range srcs {
				s.stop()
			}
		}()
		h := heap.NewMin(heap.WithSliceCap[int64, int](len(rl)))
		for _, r := range rl {
			next, stop := iter.Pull(r.Pattern.WorkDates(r.Dates))
			srcs = append(srcs, source{name: r.Name, next: next, stop: stop})
			if cd, ok := next(); ok {
				h.Push(int64(cd), len(srcs)-1)
			}
		}
		for h.Len() > 0 {
			key, idx := h.Pop()
			if !yield(calendar.CalendarDate(key), srcs[idx].name) {
				return
			}
			if cd, ok := srcs[idx].next(); ok {
				h.Push(int64(cd), idx)
			}
		}
	}
}
