// Copyright 2026 Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

package zipstore

// crcTable is the reflected CRC32 (IEEE, 0xEDB88320) lookup table.
// It is filled once at package initialization and only read afterwards.
var crcTable = makeCRCTable(0xedb88320)

func makeCRCTable(poly uint32) *[256]uint32 {
	var t [256]uint32
	for i := range t {
		c := uint32(i)
		for j := 0; j < 8; j++ {
			if c&1 == 1 {
				c = poly ^ (c >> 1)
			} else {
				c >>= 1
			}
		}
		t[i] = c
	}
	return &t
}

// Checksum returns the CRC32 of b, as stored in zip headers.
func Checksum(b []byte) uint32 {
	crc := ^uint32(0)
	for _, c := range b {
		crc = crcTable[byte(crc)^c] ^ (crc >> 8)
	}
	return ^crc
}
