// Copyright 2026 Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

// Package zipstore writes zip archives consisting of stored (uncompressed) entries only.
//
// The archive is assembled in memory, every entry gets the same modification time.
package zipstore

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/valyala/bytebufferpool"
)

const (
	localHeaderSignature     = 0x04034b50
	directoryHeaderSignature = 0x02014b50
	trailerSignature         = 0x06054b50

	localHeaderLen     = 30
	directoryHeaderLen = 46
	trailerLen         = 22

	// zipVersion is the "version needed to extract" (2.0), also used as "version made by".
	zipVersion = 20
	// methodStore is the compression method of uncompressed entries.
	methodStore = 0
)

// ErrTooLarge is returned when the parts do not fit into a zip32 archive.
var ErrTooLarge = errors.New("archive too large")

// Part is one named entry of the archive.
type Part struct {
	// Path is the slash-separated name of the entry.
	Path    string
	Content []byte
}

type entry struct {
	Part
	crc    uint32
	offset uint32
}

// Assemble returns the zip archive of the given parts, in the given order.
//
// Each part is stored uncompressed with modified as its modification time.
func Assemble(parts []Part, modified time.Time) ([]byte, error) {
	if len(parts) > math.MaxUint16 {
		return nil, fmt.Errorf("%d parts: %w", len(parts), ErrTooLarge)
	}
	date, tm := DOSDateTime(modified)

	entries := make([]entry, len(parts))
	var size, dirSize int64
	for i, p := range parts {
		if len(p.Path) > math.MaxUint16 {
			return nil, fmt.Errorf("%q: path: %w", p.Path, ErrTooLarge)
		}
		if int64(len(p.Content)) > math.MaxUint32 {
			return nil, fmt.Errorf("%q: %d bytes: %w", p.Path, len(p.Content), ErrTooLarge)
		}
		entries[i] = entry{Part: p, crc: Checksum(p.Content), offset: uint32(size)}
		size += localHeaderLen + int64(len(p.Path)) + int64(len(p.Content))
		if size > math.MaxUint32 {
			return nil, fmt.Errorf("%q: offset %d: %w", p.Path, size, ErrTooLarge)
		}
		dirSize += directoryHeaderLen + int64(len(p.Path))
	}
	if size+dirSize > math.MaxUint32 {
		return nil, fmt.Errorf("directory at %d: %w", size, ErrTooLarge)
	}

	out := make([]byte, 0, size+dirSize+trailerLen)
	for _, e := range entries {
		out = appendLocalHeader(out, e, date, tm)
		out = append(out, e.Content...)
	}

	dir := bytebufferpool.Get()
	defer bytebufferpool.Put(dir)
	for _, e := range entries {
		dir.B = appendDirectoryHeader(dir.B, e, date, tm)
	}
	dirOffset := uint32(len(out))
	out = append(out, dir.B...)
	return appendTrailer(out, len(entries), uint32(dir.Len()), dirOffset), nil
}

func appendLocalHeader(b []byte, e entry, date, tm uint16) []byte {
	le := binary.LittleEndian
	b = le.AppendUint32(b, localHeaderSignature)
	b = le.AppendUint16(b, zipVersion)
	b = le.AppendUint16(b, 0) // flags
	b = le.AppendUint16(b, methodStore)
	b = le.AppendUint16(b, tm)
	b = le.AppendUint16(b, date)
	b = le.AppendUint32(b, e.crc)
	b = le.AppendUint32(b, uint32(len(e.Content))) // compressed
	b = le.AppendUint32(b, uint32(len(e.Content))) // uncompressed
	b = le.AppendUint16(b, uint16(len(e.Path)))
	b = le.AppendUint16(b, 0) // extra
	return append(b, e.Path...)
}

func appendDirectoryHeader(b []byte, e entry, date, tm uint16) []byte {
	le := binary.LittleEndian
	b = le.AppendUint32(b, directoryHeaderSignature)
	b = le.AppendUint16(b, zipVersion) // made by
	b = le.AppendUint16(b, zipVersion) // needed
	b = le.AppendUint16(b, 0)          // flags
	b = le.AppendUint16(b, methodStore)
	b = le.AppendUint16(b, tm)
	b = le.AppendUint16(b, date)
	b = le.AppendUint32(b, e.crc)
	b = le.AppendUint32(b, uint32(len(e.Content)))
	b = le.AppendUint32(b, uint32(len(e.Content)))
	b = le.AppendUint16(b, uint16(len(e.Path)))
	b = le.AppendUint16(b, 0) // extra
	b = le.AppendUint16(b, 0) // comment
	b = le.AppendUint16(b, 0) // disk number start
	b = le.AppendUint16(b, 0) // internal attributes
	b = le.AppendUint32(b, 0) // external attributes
	b = le.AppendUint32(b, e.offset)
	return append(b, e.Path...)
}

func appendTrailer(b []byte, count int, dirSize, dirOffset uint32) []byte {
	le := binary.LittleEndian
	b = le.AppendUint32(b, trailerSignature)
	b = le.AppendUint16(b, 0) // this disk
	b = le.AppendUint16(b, 0) // disk with the directory
	b = le.AppendUint16(b, uint16(count))
	b = le.AppendUint16(b, uint16(count))
	b = le.AppendUint32(b, dirSize)
	b = le.AppendUint32(b, dirOffset)
	return le.AppendUint16(b, 0) // comment
}
