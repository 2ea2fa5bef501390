// Copyright 2026 Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

package xlsx

import (
	"database/sql"
	"encoding/json"
	"math"
	"net/netip"
	"testing"
	"time"

	"github.com/UNO-SOFT/sheetexport"
)

func TestNewCell(t *testing.T) {
	for _, tc := range []struct {
		In   any
		Want cell
	}{
		{nil, cell{}},
		{"", cell{}},
		{"x", cell{Kind: textCell, Value: "x"}},
		{" ", cell{Kind: textCell, Value: " "}},
		{[]byte("b"), cell{Kind: textCell, Value: "b"}},
		{42, cell{Kind: numberCell, Value: "42"}},
		{int8(-8), cell{Kind: numberCell, Value: "-8"}},
		{uint64(math.MaxUint64), cell{Kind: numberCell, Value: "18446744073709551615"}},
		{3.5, cell{Kind: numberCell, Value: "3.5"}},
		{float32(0.1), cell{Kind: numberCell, Value: "0.1"}},
		{-0.0, cell{Kind: numberCell, Value: "0"}},
		{1e21, cell{Kind: numberCell, Value: "1e+21"}},
		{123456789012.25, cell{Kind: numberCell, Value: "123456789012.25"}},
		{1.5e-7, cell{Kind: numberCell, Value: "1.5e-07"}},
		{math.NaN(), cell{Kind: textCell, Value: "NaN"}},
		{math.Inf(1), cell{Kind: textCell, Value: "Infinity"}},
		{math.Inf(-1), cell{Kind: textCell, Value: "-Infinity"}},
		{sheetexport.Number(" 12.50 "), cell{Kind: numberCell, Value: "12.5"}},
		{sheetexport.Number("12,5"), cell{Kind: textCell, Value: "12,5"}},
		{sheetexport.Number("0x10"), cell{Kind: textCell, Value: "0x10"}},
		{sheetexport.Number("Inf"), cell{Kind: textCell, Value: "Inf"}},
		{sheetexport.Number(""), cell{}},
		{json.Number("7"), cell{Kind: numberCell, Value: "7"}},
		{true, cell{Kind: textCell, Value: "true"}},
		{time.Time{}, cell{}},
		{time.Date(2024, 2, 29, 13, 0, 0, 0, time.UTC), cell{Kind: textCell, Value: "2024-02-29"}},
		{sql.NullString{}, cell{}},
		{sql.NullString{Valid: true, String: "s"}, cell{Kind: textCell, Value: "s"}},
		{sql.NullInt64{Valid: true, Int64: 9}, cell{Kind: numberCell, Value: "9"}},
		{sql.NullFloat64{}, cell{}},
		{sql.NullTime{Valid: true, Time: time.Date(2020, 1, 2, 0, 0, 0, 0, time.UTC)}, cell{Kind: textCell, Value: "2020-01-02"}},
		{netip.MustParseAddr("127.0.0.1"), cell{Kind: textCell, Value: "127.0.0.1"}},
		{struct{ A int }{1}, cell{Kind: textCell, Value: "{1}"}},
		{cell{Kind: numberCell, Value: "1"}, cell{Kind: numberCell, Value: "1"}},
	} {
		if got := newCell(tc.In); got != tc.Want {
			t.Errorf("%#v: got %#v, wanted %#v", tc.In, got, tc.Want)
		}
	}
}
