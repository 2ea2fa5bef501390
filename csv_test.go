// Copyright 2026 Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

package sheetexport

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"golang.org/x/text/encoding/charmap"
)

func TestGetEncoding(t *testing.T) {
	for _, name := range []string{"", "utf-8", "UTF8"} {
		if enc, err := GetEncoding(name); err != nil || enc != nil {
			t.Errorf("%q: got %v, %v", name, enc, err)
		}
	}
	if enc, err := GetEncoding("ISO-8859-2"); err != nil || enc == nil {
		t.Errorf("ISO-8859-2: got %v, %v", enc, err)
	}
	if _, err := GetEncoding("no-such-charset"); err == nil {
		t.Error("unknown charset accepted")
	}
}

func readAll(t *testing.T, fn, encName string) [][]string {
	t.Helper()
	cr, err := OpenCsv(fn, encName)
	if err != nil {
		t.Fatal(err)
	}
	defer cr.Close()
	cr.ReuseRecord = false
	records, err := cr.ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	return records
}

func TestOpenCsv(t *testing.T) {
	dir := t.TempDir()
	for _, tc := range []struct {
		Name, Enc string
		Content   []byte
		Want      [][]string
	}{
		{"comma.csv", "", []byte("a,b\n1,2\n"), [][]string{{"a", "b"}, {"1", "2"}}},
		{"semicolon.csv", "utf-8", []byte("\"x\";y\n3;4\n"), [][]string{{"x", "y"}, {"3", "4"}}},
		{"single.csv", "", []byte("name\nalpha\n"), [][]string{{"name"}, {"alpha"}}},
		{"ragged.csv", "", []byte("a\tb\tc\n1\n"), [][]string{{"a", "b", "c"}, {"1"}}},
	} {
		fn := filepath.Join(dir, tc.Name)
		if err := os.WriteFile(fn, tc.Content, 0600); err != nil {
			t.Fatal(err)
		}
		if got := readAll(t, fn, tc.Enc); !reflect.DeepEqual(got, tc.Want) {
			t.Errorf("%s: got %q, wanted %q", tc.Name, got, tc.Want)
		}
	}
}

func TestOpenCsvCharset(t *testing.T) {
	b, err := charmap.ISO8859_2.NewEncoder().Bytes([]byte("Név;Város\nÁrvíztűrő;Győr\n"))
	if err != nil {
		t.Fatal(err)
	}
	fn := filepath.Join(t.TempDir(), "latin2.csv")
	if err := os.WriteFile(fn, b, 0600); err != nil {
		t.Fatal(err)
	}
	want := [][]string{{"Név", "Város"}, {"Árvíztűrő", "Győr"}}
	if got := readAll(t, fn, "iso-8859-2"); !reflect.DeepEqual(got, want) {
		t.Errorf("got %q, wanted %q", got, want)
	}
}
