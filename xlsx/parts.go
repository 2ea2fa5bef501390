// Copyright 2026 Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

package xlsx

import (
	"bytes"
	"strconv"

	"github.com/valyala/bytebufferpool"
	qt "github.com/valyala/quicktemplate"

	"github.com/UNO-SOFT/sheetexport/zipstore"
)

// Paths of the fixed parts of the package.
const (
	ContentTypesPath = "[Content_Types].xml"
	RootRelsPath     = "_rels/.rels"
	WorkbookPath     = "xl/workbook.xml"
	WorkbookRelsPath = "xl/_rels/workbook.xml.rels"
)

const (
	xmlHeader = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n"

	nsMain          = "http://schemas.openxmlformats.org/spreadsheetml/2006/main"
	nsRelationships = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"
	nsPackageRels   = "http://schemas.openxmlformats.org/package/2006/relationships"
	nsContentTypes  = "http://schemas.openxmlformats.org/package/2006/content-types"

	relTypeOfficeDocument = nsRelationships + "/officeDocument"
	relTypeWorksheet      = nsRelationships + "/worksheet"

	contentTypeRels      = "application/vnd.openxmlformats-package.relationships+xml"
	contentTypeXML       = "application/xml"
	contentTypeWorkbook  = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet.main+xml"
	contentTypeWorksheet = "application/vnd.openxmlformats-officedocument.spreadsheetml.worksheet+xml"
)

// worksheetTarget is the path of the n-th (1-based) worksheet, relative to xl/.
func worksheetTarget(n int) string { return "worksheets/sheet" + strconv.Itoa(n) + ".xml" }

// WorksheetPath returns the path of the n-th (1-based) worksheet part.
func WorksheetPath(n int) string { return "xl/" + worksheetTarget(n) }

// Parts returns the parts of the package of the sheets:
// the content types, the package relationships, the workbook,
// the workbook relationships, and a worksheet for each sheet, in this order.
//
// The n-th sheet is xl/worksheets/sheet{n}.xml, with sheetId n and relationship id rId{n}.
func Parts(sheets []Sheet) []zipstore.Part {
	parts := make([]zipstore.Part, 0, 4+len(sheets))
	parts = append(parts,
		zipstore.Part{Path: ContentTypesPath, Content: render(func(qw *qt.Writer) {
			streamContentTypes(qw, len(sheets))
		})},
		zipstore.Part{Path: RootRelsPath, Content: render(streamRootRels)},
		zipstore.Part{Path: WorkbookPath, Content: render(func(qw *qt.Writer) {
			streamWorkbook(qw, sheets)
		})},
		zipstore.Part{Path: WorkbookRelsPath, Content: render(func(qw *qt.Writer) {
			streamWorkbookRels(qw, len(sheets))
		})},
	)
	for i, sheet := range sheets {
		parts = append(parts, zipstore.Part{
			Path: WorksheetPath(i + 1),
			Content: render(func(qw *qt.Writer) {
				streamWorksheet(qw, sheet.Rows)
			}),
		})
	}
	return parts
}

func render(stream func(qw *qt.Writer)) []byte {
	bb := bytebufferpool.Get()
	defer bytebufferpool.Put(bb)
	qw := qt.AcquireWriter(bb)
	stream(qw)
	qt.ReleaseWriter(qw)
	return bytes.Clone(bb.B)
}

// Dimension returns the reference of the range used by rows:
// the number of rows times the length of the longest row, "A1" if that is a single cell or less.
func Dimension(rows [][]any) string {
	var width int
	for _, row := range rows {
		width = max(width, len(row))
	}
	height := len(rows)
	if width == 0 || height == 0 || width == 1 && height == 1 {
		return "A1"
	}
	return "A1:" + CellName(width-1, height)
}

func streamWorksheet(qw *qt.Writer, rows [][]any) {
	w := qw.N()
	w.S(xmlHeader)
	w.S(`<worksheet xmlns="` + nsMain + `"><dimension ref="`)
	w.S(Dimension(rows))
	w.S(`"/><sheetData>`)
	for i, row := range rows {
		w.S(`<row r="`)
		w.D(i + 1)
		w.S(`">`)
		for j, v := range row {
			c := newCell(v)
			if c.Kind == absentCell {
				continue
			}
			w.S(`<c r="`)
			w.S(ColumnName(j))
			w.D(i + 1)
			if c.Kind == numberCell {
				w.S(`"><v>`)
				w.S(c.Value)
				w.S(`</v></c>`)
				continue
			}
			w.S(`" t="inlineStr"><is>`)
			if needsPreserve(c.Value) {
				w.S(`<t xml:space="preserve">`)
			} else {
				w.S(`<t>`)
			}
			w.S(escapeXML(c.Value))
			w.S(`</t></is></c>`)
		}
		w.S(`</row>`)
	}
	w.S(`</sheetData></worksheet>`)
}

// needsPreserve reports whether s has leading or trailing whitespace,
// which would be trimmed by spreadsheet applications without xml:space="preserve".
func needsPreserve(s string) bool {
	if s == "" {
		return false
	}
	isSpace := func(b byte) bool { return b == ' ' || b == '\t' || b == '\n' || b == '\r' }
	return isSpace(s[0]) || isSpace(s[len(s)-1])
}

func streamWorkbook(qw *qt.Writer, sheets []Sheet) {
	w := qw.N()
	w.S(xmlHeader)
	w.S(`<workbook xmlns="` + nsMain + `" xmlns:r="` + nsRelationships + `"><sheets>`)
	for i, sheet := range sheets {
		w.S(`<sheet name="`)
		w.S(escapeXML(sheet.Name))
		w.S(`" sheetId="`)
		w.D(i + 1)
		w.S(`" r:id="rId`)
		w.D(i + 1)
		w.S(`"/>`)
	}
	w.S(`</sheets></workbook>`)
}

func streamWorkbookRels(qw *qt.Writer, sheetCount int) {
	w := qw.N()
	w.S(xmlHeader)
	w.S(`<Relationships xmlns="` + nsPackageRels + `">`)
	for n := 1; n <= sheetCount; n++ {
		w.S(`<Relationship Id="rId`)
		w.D(n)
		w.S(`" Type="` + relTypeWorksheet + `" Target="`)
		w.S(worksheetTarget(n))
		w.S(`"/>`)
	}
	w.S(`</Relationships>`)
}

func streamContentTypes(qw *qt.Writer, sheetCount int) {
	w := qw.N()
	w.S(xmlHeader)
	w.S(`<Types xmlns="` + nsContentTypes + `">` +
		`<Default Extension="rels" ContentType="` + contentTypeRels + `"/>` +
		`<Default Extension="xml" ContentType="` + contentTypeXML + `"/>` +
		`<Override PartName="/` + WorkbookPath + `" ContentType="` + contentTypeWorkbook + `"/>`)
	for n := 1; n <= sheetCount; n++ {
		w.S(`<Override PartName="/`)
		w.S(WorksheetPath(n))
		w.S(`" ContentType="` + contentTypeWorksheet + `"/>`)
	}
	w.S(`</Types>`)
}

func streamRootRels(qw *qt.Writer) {
	w := qw.N()
	w.S(xmlHeader)
	w.S(`<Relationships xmlns="` + nsPackageRels + `">` +
		`<Relationship Id="rId1" Type="` + relTypeOfficeDocument + `" Target="` + WorkbookPath + `"/>` +
		`</Relationships>`)
}
