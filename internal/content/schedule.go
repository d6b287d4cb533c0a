// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package content

import (
	"sort"

	"github.com/tkddzwirzyno/website/internal/pb"
)

// unknownDayOrdinal sorts any unrecognized day name after all known ones.
const unknownDayOrdinal = 10

// dayOrder maps Polish day names to their display ordinal.
var dayOrder = map[string]int{
	"Poniedziałek": 1,
	"Wtorek":       2,
	"Środa":        3,
	"Czwartek":     4,
	"Piątek":       5,
	"Sobota":       6,
	"Niedziela":    7,
}

// DayOrdinal returns the display ordinal for a Polish day name.
func DayOrdinal(day string) int {
	if n, ok := dayOrder[day]; ok {
		return n
	}
	return unknownDayOrdinal
}

// SortSchedule orders entries Monday through Sunday, unknown days last.
// The backend has no stable natural order for these records. Ties on the
// same day are broken by time, then group, so output is deterministic.
func SortSchedule(entries []pb.ScheduleEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		oi, oj := DayOrdinal(entries[i].Day), DayOrdinal(entries[j].Day)
		if oi != oj {
			return oi < oj
		}
		if entries[i].Time != entries[j].Time {
			return entries[i].Time < entries[j].Time
		}
		return entries[i].Group < entries[j].Group
	})
}
