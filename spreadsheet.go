// Copyright 2020, 2026 Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

// Package sheetexport contains the common interfaces of the spreadsheet writers.
//
// The xlsx subpackage writes Office Open XML workbooks without any
// archive or spreadsheet library.
package sheetexport

import (
	"errors"
	"io"
)

// Writer writes the spreadsheet consisting of the sheets created
// with NewSheet. The write finishes when Close is called.
//
// The writer SHOULD allow writing to separate sheets concurrently,
// and document if it does not provide this functionality.
type Writer interface {
	io.Closer
	NewSheet(name string, cols []Column) (Sheet, error)
}

// Sheet should be Closed when finished.
type Sheet interface {
	io.Closer
	AppendRow(values ...any) error
}

// Column contains the Name of the column, written as the header.
//
// An empty Name leaves the header cell blank.
type Column struct {
	Name string
}

var ErrTooManyRows = errors.New("too many rows")

// Number is a string that contains a number.
//
// It is written as a numeric cell if it parses as a finite float,
// as text otherwise.
type Number string
