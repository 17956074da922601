// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package schedule_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cloudeng.io/calendar"
	"cloudeng.io/calendar/schedule"
)

type duty struct {
	date string
	name string
}

func collect(rl schedule.RotationList) []duty {
	var duties []duty
	for cd, name := range rl.Merged() {
		duties = append(duties, duty{date: cd.String(), name: name})
	}
	return duties
}

func TestRosterMerged(t *testing.T) {
	rl := schedule.RotationList{
		{Name: "alice", Pattern: schedule.NewPattern(1, 1), Dates: parseRange(t, "01-01-2024:05-01-2024")},
		{Name: "bob", Pattern: schedule.NewPattern(1, 1), Dates: parseRange(t, "02-01-2024:06-01-2024")},
	}
	require.NoError(t, rl.Validate())

	want := []duty{
		{"01-01-2024", "alice"},
		{"02-01-2024", "bob"},
		{"03-01-2024", "alice"},
		{"04-01-2024", "bob"},
		{"05-01-2024", "alice"},
		{"06-01-2024", "bob"},
	}
	assert.Equal(t, want, collect(rl))
}

func TestRosterMergedUneven(t *testing.T) {
	rl := schedule.RotationList{
		{Name: "week-on", Pattern: schedule.NewPattern(7, 7), Dates: parseRange(t, "01-01-2024:14-01-2024")},
		{Name: "spot", Pattern: schedule.NewPattern(1, 30), Dates: parseRange(t, "10-01-2024:12-01-2024")},
	}
	got := collect(rl)
	require.Len(t, got, 8)
	assert.Equal(t, duty{"01-01-2024", "week-on"}, got[0])
	assert.Equal(t, duty{"07-01-2024", "week-on"}, got[6])
	assert.Equal(t, duty{"10-01-2024", "spot"}, got[7])

	// Dates arrive in ascending order.
	var prev calendar.CalendarDate
	for cd := range rl.Merged() {
		assert.LessOrEqual(t, prev, cd)
		prev = cd
	}
}

func TestRosterMergedEmpty(t *testing.T) {
	assert.Empty(t, collect(nil))
	rl := schedule.RotationList{
		{Name: "idle", Pattern: schedule.NewPattern(1, 1), Dates: parseRange(t, "02-01-2024:02-01-2024")},
	}
	got := collect(rl)
	require.Len(t, got, 1)
	assert.Equal(t, duty{"02-01-2024", "idle"}, got[0])
}

func TestRosterMergedEarlyStop(t *testing.T) {
	rl := schedule.RotationList{
		{Name: "a", Pattern: schedule.NewPattern(1, 1), Dates: parseRange(t, "01-01-2024:31-12-2024")},
	}
	n := 0
	for range rl.Merged() {
		n++
		if n == 2 {
			break
		}
	}
	assert.Equal(t, 2, n)
}

func TestRotationValidate(t *testing.T) {
	err := schedule.RotationList{
		{Name: "", Pattern: schedule.NewPattern(0, 1)},
		{Name: "ok", Pattern: schedule.NewPattern(1, 1)},
	}.Validate()
	require.Error(t, err)
	assert.ErrorContains(t, err, "no name")
	assert.ErrorContains(t, err, "work days")
}
