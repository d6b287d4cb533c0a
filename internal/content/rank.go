// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package content assembles per-route page data: joining backend records,
// deriving stats, and applying the display ordering rules the backend does
// not provide.
package content

import (
	"regexp"
	"strings"
)

// Rank is a parsed grade string. Type is "DAN" for black-belt grades and
// "KUP" otherwise. Number is the grade number as written (roman numerals
// stay roman), or an em dash when it cannot be extracted.
type Rank struct {
	Type   string
	Number string
	Raw    string
}

var (
	danNumberRegex = regexp.MustCompile(`[XIV]+|\d+`)
	nonDigitRegex  = regexp.MustCompile(`\D`)
)

// ParseRank parses a raw grade string such as "4 KUP" or "II DAN".
// The value comes straight from the CMS and is never re-validated upstream.
func ParseRank(raw string) Rank {
	rank := strings.ToUpper(raw)

	if strings.Contains(rank, "DAN") {
		number := "—"
		if m := danNumberRegex.FindString(rank); m != "" {
			number = m
		}
		return Rank{Type: "DAN", Number: number, Raw: raw}
	}

	number := nonDigitRegex.ReplaceAllString(rank, "")
	if number == "" {
		number = "—"
	}
	return Rank{Type: "KUP", Number: number, Raw: raw}
}
