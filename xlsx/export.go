// Copyright 2026 Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

// Package xlsx writes Office Open XML (.xlsx) workbooks.
//
// The workbook is a zip archive of stored (uncompressed) parts, generated
// without any spreadsheet or archive library. Cells are either numbers or
// inline strings, without styles or formulas.
package xlsx

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/UNO-SOFT/zlog/v2"

	"github.com/UNO-SOFT/sheetexport/zipstore"
)

// ContentType is the MIME type of .xlsx workbooks.
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ErrNoSink is returned by Export when the Exporter has no Sink.
var ErrNoSink = errors.New("no sink")

// Sheet is a named table of cells.
//
// A cell is nil or "" (absent, not written), a number (any Go integer or float kind,
// sheetexport.Number, json.Number) or anything else, written as text.
// Rows may have different lengths.
type Sheet struct {
	Name string
	Rows [][]any
}

// Sink receives the finished workbook.
type Sink interface {
	Deliver(ctx context.Context, fileName, contentType string, data []byte) error
}

// SinkFunc is a function implementing Sink.
type SinkFunc func(ctx context.Context, fileName, contentType string, data []byte) error

// Deliver calls f.
func (f SinkFunc) Deliver(ctx context.Context, fileName, contentType string, data []byte) error {
	return f(ctx, fileName, contentType, data)
}

// Exporter builds workbooks and hands them to its Sink.
type Exporter struct {
	// Now returns the modification time recorded for every part of a workbook.
	// It is called once per workbook; time.Now is used when nil.
	Now func() time.Time
	// Sink receives the workbooks built by Export.
	Sink Sink
}

// Build returns the workbook of the sheets.
//
// Build does not check for an empty sheets slice: the result is a package
// without worksheets, which spreadsheet applications refuse to open.
func (e Exporter) Build(sheets []Sheet) ([]byte, error) {
	now := e.Now
	if now == nil {
		now = time.Now
	}
	return zipstore.Assemble(Parts(sheets), now())
}

// Export builds the workbook of the sheets and delivers it to the Sink as fileName.
//
// No sheets means nothing to export: the Sink is not called, and the error is nil.
func (e Exporter) Export(ctx context.Context, sheets []Sheet, fileName string) error {
	logger := zlog.SFromContext(ctx)
	if len(sheets) == 0 {
		logger.Debug("no sheets, nothing to export", "file", fileName)
		return nil
	}
	if e.Sink == nil {
		return fmt.Errorf("%q: %w", fileName, ErrNoSink)
	}
	data, err := e.Build(sheets)
	if err != nil {
		return fmt.Errorf("%q: %w", fileName, err)
	}
	logger.Debug("export", "file", fileName, "sheets", len(sheets), "size", len(data))
	if err = e.Sink.Deliver(ctx, fileName, ContentType, data); err != nil {
		return fmt.Errorf("deliver %q: %w", fileName, err)
	}
	return nil
}

// Export the sheets as fileName to sink, timestamped with the current time.
func Export(ctx context.Context, sheets []Sheet, fileName string, sink Sink) error {
	return Exporter{Sink: sink}.Export(ctx, sheets, fileName)
}
