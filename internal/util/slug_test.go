// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package util

import "testing"

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"O klubie", "o-klubie"},
		{"Grafik Treningów", "grafik-treningow"},
		{"Zawody  --  Koszalin", "zawody-koszalin"},
		{"Obóz Letni 2025", "oboz-letni-2025"},
		{"Święta!", "swieta"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := Slugify(tt.in); got != tt.want {
			t.Errorf("Slugify(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestIsValidSlug(t *testing.T) {
	valid := []string{"o-klubie", "grafik", "obory-2025", "a"}
	for _, s := range valid {
		if !IsValidSlug(s) {
			t.Errorf("IsValidSlug(%q) = false, want true", s)
		}
	}

	invalid := []string{"", "O-Klubie", "o klubie", `x" || visible = false || "`, "ą", "a_b", "a/b"}
	for _, s := range invalid {
		if IsValidSlug(s) {
			t.Errorf("IsValidSlug(%q) = true, want false", s)
		}
	}
}

func TestIsValidRecordID(t *testing.T) {
	if !IsValidRecordID("abc123DEF456xyz") {
		t.Error("alphanumeric id should be valid")
	}
	for _, s := range []string{"", "id-1", `x"x`, "a b", "../etc"} {
		if IsValidRecordID(s) {
			t.Errorf("IsValidRecordID(%q) = true, want false", s)
		}
	}
}
