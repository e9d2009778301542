// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package textnorm canonicalises user-supplied text before it is validated
// and stored.
//
// # Usage
//
// Names and titles are compared case-insensitively for uniqueness, so two
// spellings that differ only in Unicode composition or stray whitespace must
// collapse to the same stored value. ISBNs are reduced to their bare digits
// and check character.
package textnorm

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

var upper = cases.Upper(language.Und)

// Name normalises a display string.
//
// # Transformation Pipeline
//
// 1. Normalizes to NFC (composes "e" + combining acute into "é").
// 2. Collapses internal runs of whitespace into a single space.
// 3. Trims leading and trailing whitespace.
func Name(s string) string {
	return strings.Join(strings.Fields(norm.NFC.String(s)), " ")
}

// ISBN strips hyphens and whitespace and upper-cases the check character,
// so "0-8044-2957-x" becomes "080442957X".
func ISBN(s string) string {
	stripped := strings.Map(func(r rune) rune {
		if r == '-' || unicode.IsSpace(r) {
			return -1
		}
		return r
	}, norm.NFC.String(s))

	return upper.String(stripped)
}
