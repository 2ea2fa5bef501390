// Copyright 2026 Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

package xlsx

import (
	"strings"
	"unicode/utf8"
)

var xmlReplacer = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

// escapeXML escapes s for use as XML text or attribute value.
//
// Runes that are not allowed in XML 1.0 and invalid UTF-8 sequences
// are replaced with U+FFFD.
func escapeXML(s string) string {
	return xmlReplacer.Replace(toValidXML(s))
}

func toValidXML(s string) string {
	if utf8.ValidString(s) && strings.IndexFunc(s, isInvalidXMLRune) < 0 {
		return s
	}
	return strings.Map(func(r rune) rune {
		if isInvalidXMLRune(r) {
			return utf8.RuneError
		}
		return r
	}, s)
}

// isInvalidXMLRune reports whether r is outside the XML 1.0 Char production.
func isInvalidXMLRune(r rune) bool {
	switch {
	case r == '\t' || r == '\n' || r == '\r':
		return false
	case r < 0x20:
		return true
	case 0xD800 <= r && r <= 0xDFFF, r == 0xFFFE, r == 0xFFFF:
		return true
	}
	return false
}
