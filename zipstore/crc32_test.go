// Copyright 2026 Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

package zipstore

import (
	"hash/crc32"
	"math/rand/v2"
	"testing"
)

func TestChecksum(t *testing.T) {
	for _, tc := range []struct {
		In   string
		Want uint32
	}{
		{"", 0},
		{"a", 0xe8b7be43},
		{"abc", 0x352441c2},
		{"123456789", 0xcbf43926},
		{"The quick brown fox jumps over the lazy dog", 0x414fa339},
	} {
		if got := Checksum([]byte(tc.In)); got != tc.Want {
			t.Errorf("%q: got %08x, wanted %08x", tc.In, got, tc.Want)
		}
	}
}

func TestChecksumIEEE(t *testing.T) {
	rnd := rand.New(rand.NewPCG(1, 2))
	for i := 0; i < 100; i++ {
		b := make([]byte, rnd.IntN(4096))
		for j := range b {
			b[j] = byte(rnd.Uint32())
		}
		if got, want := Checksum(b), crc32.ChecksumIEEE(b); got != want {
			t.Fatalf("%d. (%d bytes): got %08x, wanted %08x", i, len(b), got, want)
		}
	}
}
