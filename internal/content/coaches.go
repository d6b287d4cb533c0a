// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package content

import (
	"sort"

	"github.com/tkddzwirzyno/website/internal/pb"
)

// CoachView is a coach joined with their competition results.
type CoachView struct {
	pb.Coach
	ParsedRank Rank
	Results    []pb.Result
}

// EnrichCoaches joins coaches with coach-owned results, ordered by
// competition year descending within each coach.
func EnrichCoaches(coaches []pb.Coach, results []pb.Result) []CoachView {
	grouped := GroupResultsByCoach(results)

	views := make([]CoachView, 0, len(coaches))
	for _, c := range coaches {
		own := make([]pb.Result, len(grouped[c.ID]))
		copy(own, grouped[c.ID])
		sort.SliceStable(own, func(i, j int) bool {
			yi, yj := competitionYear(own[i]), competitionYear(own[j])
			if yi != yj {
				return yi > yj
			}
			return own[i].ID < own[j].ID
		})

		views = append(views, CoachView{
			Coach:      c,
			ParsedRank: ParseRank(c.Rank),
			Results:    own,
		})
	}
	return views
}

// SortCoachesHeadFirst moves the named head coach to the front, keeping the
// relative order of everyone else. The head coach is a business rule, not
// something inferred from data; an empty name leaves the order untouched.
func SortCoachesHeadFirst(views []CoachView, headName string) {
	if headName == "" {
		return
	}
	sort.SliceStable(views, func(i, j int) bool {
		return views[i].Name == headName && views[j].Name != headName
	})
}

func competitionYear(r pb.Result) int {
	if r.Expand.Competition == nil {
		return 0
	}
	return r.Expand.Competition.Year
}
