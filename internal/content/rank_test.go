// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package content

import "testing"

func TestParseRank(t *testing.T) {
	tests := []struct {
		raw        string
		wantType   string
		wantNumber string
	}{
		{"4 KUP", "KUP", "4"},
		{"10 kup", "KUP", "10"},
		{"1 KUP", "KUP", "1"},
		{"II DAN", "DAN", "II"},
		{"IV DAN", "DAN", "IV"},
		{"2 DAN", "DAN", "2"},
		{"dan III", "DAN", "III"},
		{"KUP", "KUP", "—"},
		{"DAN", "DAN", "—"},
		{"", "KUP", "—"},
	}
	for _, tt := range tests {
		got := ParseRank(tt.raw)
		if got.Type != tt.wantType || got.Number != tt.wantNumber {
			t.Errorf("ParseRank(%q) = %s %s, want %s %s",
				tt.raw, got.Type, got.Number, tt.wantType, tt.wantNumber)
		}
		if got.Raw != tt.raw {
			t.Errorf("ParseRank(%q).Raw = %q", tt.raw, got.Raw)
		}
	}
}
