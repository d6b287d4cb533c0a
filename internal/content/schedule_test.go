// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package content

import (
	"testing"

	"github.com/tkddzwirzyno/website/internal/pb"
)

func TestSortScheduleDayOrder(t *testing.T) {
	entries := []pb.ScheduleEntry{
		{Day: "Środa"},
		{Day: "Poniedziałek"},
		{Day: "Nieznany"},
		{Day: "Piątek"},
	}

	SortSchedule(entries)

	want := []string{"Poniedziałek", "Środa", "Piątek", "Nieznany"}
	for i, day := range want {
		if entries[i].Day != day {
			t.Errorf("entries[%d].Day = %s, want %s", i, entries[i].Day, day)
		}
	}
}

func TestSortScheduleSameDayByTime(t *testing.T) {
	entries := []pb.ScheduleEntry{
		{Day: "Wtorek", Time: "18:30", Group: "Seniorzy"},
		{Day: "Wtorek", Time: "16:00", Group: "Dzieci"},
		{Day: "Wtorek", Time: "16:00", Group: "Charlie"},
	}

	SortSchedule(entries)

	if entries[0].Group != "Charlie" || entries[1].Group != "Dzieci" {
		t.Errorf("same-time order = %s, %s; want Charlie, Dzieci",
			entries[0].Group, entries[1].Group)
	}
	if entries[2].Time != "18:30" {
		t.Errorf("last entry time = %s, want 18:30", entries[2].Time)
	}
}

func TestDayOrdinal(t *testing.T) {
	if DayOrdinal("Niedziela") != 7 {
		t.Errorf("Niedziela ordinal = %d, want 7", DayOrdinal("Niedziela"))
	}
	if DayOrdinal("sobota") != unknownDayOrdinal {
		t.Error("day names are case sensitive; lowercase must sort as unknown")
	}
}
