// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendar_test

import (
	"testing"

	"cloudeng.io/calendar"
)

func TestPeriodDays(t *testing.T) {
	for _, tc := range []struct {
		start, end string
		days       int
	}{
		{"2024-02-01T00:00:00Z", "2024-02-01T00:00:00Z", 1}, // same instant spans one day
		{"2024-02-01T00:00:00Z", "2024-02-02T00:00:00Z", 2},
		{"2024-02-02T00:00:00Z", "2024-02-01T00:00:00Z", 2}, // order is irrelevant
		{"2024-02-01T00:00:00Z", "2024-02-02T12:00:00Z", 3}, // partial days round up
		{"2024-01-01T00:00:00Z", "2024-12-31T00:00:00Z", 366},
		{"2023-12-31T00:00:00Z", "2024-01-01T00:00:00Z", 2},
		{"not a date", "2024-02-01T00:00:00Z", 0},
		{"2024-02-01T00:00:00Z", "", 0},
	} {
		if got, want := calendar.DaysOnPeriod(tc.start, tc.end), tc.days; got != want {
			t.Errorf("%v - %v: got %v, want %v", tc.start, tc.end, got, want)
		}
	}
}

func TestPeriodContains(t *testing.T) {
	start, end := "2024-02-01T00:00:00Z", "2024-02-10T00:00:00Z"
	for _, tc := range []struct {
		val  string
		want bool
	}{
		{"2024-02-01T00:00:00Z", true}, // both boundaries are inclusive
		{"2024-02-10T00:00:00Z", true},
		{"2024-02-05T13:30:00Z", true},
		{"2024-01-31T23:59:59Z", false},
		{"2024-02-10T00:00:01Z", false},
		{"not a date", false},
	} {
		if got, want := calendar.DateInPeriod(tc.val, start, end), tc.want; got != want {
			t.Errorf("%v: got %v, want %v", tc.val, got, want)
		}
	}

	// A period with its start after its end contains nothing.
	if calendar.DateInPeriod("2024-02-05T00:00:00Z", end, start) {
		t.Errorf("reversed period contained a date")
	}
	if calendar.DateInPeriod("2024-02-05T00:00:00Z", "not a date", end) {
		t.Errorf("invalid period contained a date")
	}

	p := calendar.NewPeriod(calendar.ParseInstant(start), calendar.ParseInstant(end))
	if !p.IsValid() {
		t.Errorf("failed to parse period")
	}
	if p.Contains(calendar.InvalidInstant) {
		t.Errorf("period contained an invalid instant")
	}
	if got, want := p.Days(), 10; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestParsePeriod(t *testing.T) {
	p := calendar.ParsePeriod("2024-02-01T00:00:00Z", "garbage")
	if p.IsValid() {
		t.Errorf("failed to propagate an invalid endpoint")
	}
	if got, want := p.Days(), 0; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}
