// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package content

import (
	"sort"
	"time"

	"github.com/tkddzwirzyno/website/internal/config"
	"github.com/tkddzwirzyno/website/internal/pb"
)

// RecentResultCount is how many results are shown per athlete card.
const RecentResultCount = 3

// MedalStats holds derived medal counts for one athlete or coach.
type MedalStats struct {
	Gold   int
	Silver int
	Bronze int
}

// AthleteView is an athlete enriched with request-time derivations.
type AthleteView struct {
	pb.Athlete
	ParsedRank    Rank
	Stats         MedalStats
	RecentResults []pb.Result
}

// Roster is the partitioned athlete roster for display.
type Roster struct {
	Active   []AthleteView
	Alumni   []AthleteView
	Inactive []AthleteView
}

// GroupResultsByAthlete builds an athlete-id to results lookup in a single
// pass over the result list. Results owned by a coach (or by nobody) are
// left out; a result must only ever be attributed to the one athlete it
// references.
func GroupResultsByAthlete(results []pb.Result) map[string][]pb.Result {
	grouped := make(map[string][]pb.Result)
	for _, r := range results {
		if r.Athlete == "" || r.Coach != "" {
			continue
		}
		grouped[r.Athlete] = append(grouped[r.Athlete], r)
	}
	return grouped
}

// GroupResultsByCoach is the coach-side counterpart of GroupResultsByAthlete.
func GroupResultsByCoach(results []pb.Result) map[string][]pb.Result {
	grouped := make(map[string][]pb.Result)
	for _, r := range results {
		if r.Coach == "" || r.Athlete != "" {
			continue
		}
		grouped[r.Coach] = append(grouped[r.Coach], r)
	}
	return grouped
}

// CountMedals tallies gold/silver/bronze in one pass. Participation results
// are not medals.
func CountMedals(results []pb.Result) MedalStats {
	var stats MedalStats
	for _, r := range results {
		switch r.Medal {
		case pb.MedalGold:
			stats.Gold++
		case pb.MedalSilver:
			stats.Silver++
		case pb.MedalBronze:
			stats.Bronze++
		}
	}
	return stats
}

// resultSortKey maps a result to a point in time for recency ordering.
// When the competition has no exact date, its year stands in.
func resultSortKey(r pb.Result) time.Time {
	comp := r.Expand.Competition
	if comp == nil {
		return time.Time{}
	}
	if !comp.Date.IsZero() {
		return comp.Date.Time
	}
	if comp.Year > 0 {
		return time.Date(comp.Year, time.January, 1, 0, 0, 0, 0, time.UTC)
	}
	return time.Time{}
}

// SortResultsByRecency orders results newest first by competition date,
// falling back to competition year, with the record id as a deterministic
// tie break. The backend usually pre-sorts these, but that is not relied on.
func SortResultsByRecency(results []pb.Result) {
	sort.SliceStable(results, func(i, j int) bool {
		ki, kj := resultSortKey(results[i]), resultSortKey(results[j])
		if !ki.Equal(kj) {
			return ki.After(kj)
		}
		return results[i].ID < results[j].ID
	})
}

// RecentResults returns up to n most recent results without mutating the
// input slice.
func RecentResults(results []pb.Result, n int) []pb.Result {
	sorted := make([]pb.Result, len(results))
	copy(sorted, results)
	SortResultsByRecency(sorted)

	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

// EnrichAthletes joins each athlete with their results and derives medal
// stats and recent results. Grouping visits each result exactly once, so
// the whole pass is O(athletes + results).
func EnrichAthletes(athletes []pb.Athlete, results []pb.Result) []AthleteView {
	grouped := GroupResultsByAthlete(results)

	views := make([]AthleteView, 0, len(athletes))
	for _, a := range athletes {
		own := grouped[a.ID]
		views = append(views, AthleteView{
			Athlete:       a,
			ParsedRank:    ParseRank(a.Rank),
			Stats:         CountMedals(own),
			RecentResults: RecentResults(own, RecentResultCount),
		})
	}
	return views
}

// PartitionRoster splits enriched athletes into display sections. An empty
// status counts as active. Placement of "inactive" athletes is a
// configuration choice, not guessed from data.
func PartitionRoster(views []AthleteView, policy config.InactivePolicy) Roster {
	var roster Roster
	for _, v := range views {
		switch v.Status {
		case pb.StatusAlumni:
			roster.Alumni = append(roster.Alumni, v)
		case pb.StatusInactive:
			switch policy {
			case config.InactiveAsActive:
				roster.Active = append(roster.Active, v)
			case config.InactiveSeparate:
				roster.Inactive = append(roster.Inactive, v)
			}
			// config.InactiveHide drops the athlete entirely.
		default:
			roster.Active = append(roster.Active, v)
		}
	}
	return roster
}
