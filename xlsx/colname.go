// Copyright 2026 Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

package xlsx

import "strconv"

// ColumnName returns the alphabetic name of the zero-based column index:
// A, B, ..., Z, AA, AB, ...
func ColumnName(index int) string {
	if index < 0 {
		panic("negative column index " + strconv.Itoa(index))
	}
	var a [16]byte
	i := len(a)
	for rem := index; rem >= 0; rem = rem/26 - 1 {
		i--
		a[i] = 'A' + byte(rem%26)
	}
	return string(a[i:])
}

// CellName returns the reference of the cell in the zero-based col and one-based row,
// such as "B3".
func CellName(col, row int) string {
	return ColumnName(col) + strconv.Itoa(row)
}
