// Copyright 2026 Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

package zipstore

import "time"

// DOSDateTime returns the MS-DOS date and time fields of t, using t's own location.
//
// The year is clamped into the representable [1980, 2107] range,
// seconds have a 2s resolution.
func DOSDateTime(t time.Time) (date, tm uint16) {
	year := min(max(t.Year(), 1980), 2107)
	date = uint16((year-1980)<<9 | int(t.Month())<<5 | t.Day())
	tm = uint16(t.Hour()<<11 | t.Minute()<<5 | t.Second()/2)
	return date, tm
}
