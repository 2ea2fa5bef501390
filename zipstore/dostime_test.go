// Copyright 2026 Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

package zipstore

import (
	"testing"
	"time"
)

func TestDOSDateTime(t *testing.T) {
	for _, tc := range []struct {
		In       time.Time
		Date, Tm uint16
	}{
		{time.Date(1980, 1, 1, 0, 0, 0, 0, time.UTC), 1<<5 | 1, 0},
		{time.Date(2024, 3, 15, 13, 45, 59, 0, time.UTC),
			(2024-1980)<<9 | 3<<5 | 15, 13<<11 | 45<<5 | 29},
		{time.Date(1970, 6, 2, 1, 2, 4, 0, time.UTC), 6<<5 | 2, 1<<11 | 2<<5 | 2},
		{time.Date(2200, 12, 31, 23, 59, 58, 0, time.UTC),
			127<<9 | 12<<5 | 31, 23<<11 | 59<<5 | 29},
	} {
		date, tm := DOSDateTime(tc.In)
		if date != tc.Date || tm != tc.Tm {
			t.Errorf("%s: got %04x/%04x, wanted %04x/%04x", tc.In, date, tm, tc.Date, tc.Tm)
		}
	}
}

func TestDOSDateTimeLocation(t *testing.T) {
	loc := time.FixedZone("X", 2*3600)
	in := time.Date(2024, 12, 31, 23, 30, 0, 0, time.UTC).In(loc)
	date, tm := DOSDateTime(in)
	if want := uint16((2025-1980)<<9 | 1<<5 | 1); date != want {
		t.Errorf("date: got %04x, wanted %04x", date, want)
	}
	if want := uint16(1<<11 | 30<<5); tm != want {
		t.Errorf("time: got %04x, wanted %04x", tm, want)
	}
}
