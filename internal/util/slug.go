// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package util provides URL slug helpers. Slugs double as backend filter
// keys, so validation here is a security control: anything that fails
// IsValidSlug must never reach a filter expression.
package util

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	// slugRegex matches non-alphanumeric characters (except hyphens)
	slugRegex = regexp.MustCompile(`[^a-z0-9-]+`)
	// multipleHyphens matches multiple consecutive hyphens
	multipleHyphens = regexp.MustCompile(`-{2,}`)
	// recordIDRegex matches backend record identifiers
	recordIDRegex = regexp.MustCompile(`^[a-zA-Z0-9]+$`)
)

// Slugify converts a string to a URL-friendly slug. Polish diacritics are
// decomposed and stripped, spaces become hyphens, and everything outside
// [a-z0-9-] is removed.
func Slugify(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, _ := transform.String(t, s)

	result = strings.ToLower(result)
	result = strings.ReplaceAll(result, "ł", "l")
	result = strings.ReplaceAll(result, " ", "-")
	result = slugRegex.ReplaceAllString(result, "")
	result = multipleHyphens.ReplaceAllString(result, "-")
	result = strings.Trim(result, "-")

	return result
}

// IsValidSlug reports whether s contains only lowercase letters, digits and
// hyphens. Requests with an invalid slug are rejected before any backend
// call is made.
func IsValidSlug(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !((r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-') {
			return false
		}
	}
	return true
}

// IsValidRecordID reports whether s looks like a backend record identifier.
// IDs appear in URL paths and in album photo filters, so they get the same
// pre-query validation as slugs.
func IsValidRecordID(s string) bool {
	return s != "" && recordIDRegex.MatchString(s)
}
