// Copyright 2020, 2023, 2026 Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

package xlsx

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/UNO-SOFT/sheetexport"
)

var _ = (sheetexport.Writer)((*XLSXWriter)(nil))

type XLSXWriter struct {
	w io.Writer
	// Now returns the modification time of the parts; time.Now if nil.
	Now    func() time.Time
	sheets []*XLSXSheet
	names  map[string]struct{}
	mu     sync.Mutex
}

type XLSXSheet struct {
	Name string
	rows [][]any
	mu   sync.Mutex
}

// NewWriter returns a new sheetexport.Writer.
//
// This writer allows concurrent writes to separate sheets.
//
// This writer collects everything in memory, so big sheets may impose problems.
func NewWriter(w io.Writer) *XLSXWriter {
	return &XLSXWriter{w: w}
}

// Close writes the workbook to the underlying writer.
//
// Nothing is written if no sheet has been created.
func (xlw *XLSXWriter) Close() error {
	if xlw == nil {
		return nil
	}
	xlw.mu.Lock()
	defer xlw.mu.Unlock()
	w := xlw.w
	xlw.w = nil
	if w == nil || len(xlw.sheets) == 0 {
		return nil
	}
	sheets := make([]Sheet, len(xlw.sheets))
	for i, xls := range xlw.sheets {
		xls.mu.Lock()
		sheets[i] = Sheet{Name: xls.Name, Rows: xls.rows}
		xls.mu.Unlock()
	}
	xlw.sheets = nil
	b, err := Exporter{Now: xlw.Now}.Build(sheets)
	if err != nil {
		return err
	}
	_, err = w.Write(b)
	return err
}

// NewSheet adds a new sheet. An empty name is replaced with "Sheet{n}".
//
// If any of the columns has a Name, the names are written as the first row.
func (xlw *XLSXWriter) NewSheet(name string, columns []sheetexport.Column) (sheetexport.Sheet, error) {
	xlw.mu.Lock()
	defer xlw.mu.Unlock()
	if xlw.w == nil {
		return nil, fmt.Errorf("%q: writer is closed", name)
	}
	if name == "" {
		name = fmt.Sprintf("Sheet%d", len(xlw.sheets)+1)
	}
	if _, ok := xlw.names[name]; ok {
		return nil, fmt.Errorf("%q: sheet already exists", name)
	}
	if xlw.names == nil {
		xlw.names = make(map[string]struct{})
	}
	xlw.names[name] = struct{}{}
	xls := &XLSXSheet{Name: name}
	var hasHeader bool
	header := make([]any, len(columns))
	for i, c := range columns {
		if c.Name != "" {
			hasHeader = true
			header[i] = c.Name
		}
	}
	if hasHeader {
		xls.rows = append(xls.rows, header)
	}
	xlw.sheets = append(xlw.sheets, xls)
	return xls, nil
}

// MaxRowCount is the number of maximum rows.
const MaxRowCount = 1_048_576

func (xls *XLSXSheet) Close() error { return nil }

// AppendRow appends values as a new row.
//
// The values are converted immediately, so they can be reused after the call.
func (xls *XLSXSheet) AppendRow(values ...any) error {
	row := make([]any, len(values))
	for i, v := range values {
		row[i] = newCell(v)
	}
	xls.mu.Lock()
	defer xls.mu.Unlock()
	if len(xls.rows) >= MaxRowCount {
		return sheetexport.ErrTooManyRows
	}
	xls.rows = append(xls.rows, row)
	return nil
}
