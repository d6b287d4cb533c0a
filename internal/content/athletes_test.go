// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package content

import (
	"testing"
	"time"

	"github.com/tkddzwirzyno/website/internal/config"
	"github.com/tkddzwirzyno/website/internal/pb"
)

func athleteResult(id, athleteID string, medal pb.Medal) pb.Result {
	r := pb.Result{Athlete: athleteID, Medal: medal}
	r.ID = id
	return r
}

func resultWithDate(id, athleteID string, date time.Time) pb.Result {
	r := athleteResult(id, athleteID, pb.MedalGold)
	r.Expand.Competition = &pb.Competition{Date: pb.Time{Time: date}}
	return r
}

func resultWithYear(id, athleteID string, year int) pb.Result {
	r := athleteResult(id, athleteID, pb.MedalGold)
	r.Expand.Competition = &pb.Competition{Year: year}
	return r
}

func TestGroupResultsByAthlete(t *testing.T) {
	results := []pb.Result{
		athleteResult("r1", "a1", pb.MedalGold),
		athleteResult("r2", "a2", pb.MedalSilver),
		athleteResult("r3", "a1", pb.MedalBronze),
		athleteResult("r4", "", pb.MedalGold),
	}
	coachOwned := pb.Result{Athlete: "a1", Coach: "c1"}
	coachOwned.ID = "r5"
	results = append(results, coachOwned)

	grouped := GroupResultsByAthlete(results)

	if len(grouped) != 2 {
		t.Fatalf("grouped %d athletes, want 2", len(grouped))
	}
	if len(grouped["a1"]) != 2 {
		t.Errorf("a1 has %d results, want 2", len(grouped["a1"]))
	}
	if len(grouped["a2"]) != 1 {
		t.Errorf("a2 has %d results, want 1", len(grouped["a2"]))
	}
	for _, r := range grouped["a1"] {
		if r.ID == "r5" {
			t.Error("coach-owned result leaked into athlete grouping")
		}
	}
}

func TestGroupResultsByCoach(t *testing.T) {
	own := pb.Result{Coach: "c1"}
	own.ID = "r1"
	mixed := pb.Result{Coach: "c1", Athlete: "a1"}
	mixed.ID = "r2"

	grouped := GroupResultsByCoach([]pb.Result{own, mixed})
	if len(grouped["c1"]) != 1 || grouped["c1"][0].ID != "r1" {
		t.Errorf("grouped[c1] = %v, want only r1", grouped["c1"])
	}
}

func TestCountMedals(t *testing.T) {
	results := []pb.Result{
		{Medal: pb.MedalGold},
		{Medal: pb.MedalGold},
		{Medal: pb.MedalSilver},
		{Medal: pb.MedalBronze},
		{Medal: pb.MedalParticipation},
		{Medal: ""},
	}
	stats := CountMedals(results)
	if stats.Gold != 2 || stats.Silver != 1 || stats.Bronze != 1 {
		t.Errorf("CountMedals = %+v, want 2/1/1", stats)
	}
}

func TestRecentResultsOrdering(t *testing.T) {
	results := []pb.Result{
		resultWithDate("r1", "a1", time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC)),
		resultWithYear("r2", "a1", 2025),
		resultWithDate("r3", "a1", time.Date(2024, 11, 12, 0, 0, 0, 0, time.UTC)),
		resultWithYear("r4", "a1", 2022),
	}

	recent := RecentResults(results, RecentResultCount)
	if len(recent) != 3 {
		t.Fatalf("got %d results, want 3", len(recent))
	}
	want := []string{"r2", "r3", "r1"}
	for i, id := range want {
		if recent[i].ID != id {
			t.Errorf("recent[%d] = %s, want %s", i, recent[i].ID, id)
		}
	}

	// Input order must survive the call.
	if results[0].ID != "r1" || results[3].ID != "r4" {
		t.Error("RecentResults mutated its input")
	}
}

func TestRecentResultsFewerThanLimit(t *testing.T) {
	results := []pb.Result{resultWithYear("r1", "a1", 2024)}
	if got := RecentResults(results, RecentResultCount); len(got) != 1 {
		t.Errorf("got %d results, want 1", len(got))
	}
	if got := RecentResults(nil, RecentResultCount); len(got) != 0 {
		t.Errorf("got %d results for empty input, want 0", len(got))
	}
}

func TestRecentResultsTieBreak(t *testing.T) {
	date := time.Date(2024, 3, 3, 0, 0, 0, 0, time.UTC)
	results := []pb.Result{
		resultWithDate("rB", "a1", date),
		resultWithDate("rA", "a1", date),
	}
	recent := RecentResults(results, 2)
	if recent[0].ID != "rA" || recent[1].ID != "rB" {
		t.Errorf("tie break order = %s, %s; want rA, rB", recent[0].ID, recent[1].ID)
	}
}

func TestEnrichAthletes(t *testing.T) {
	a1 := pb.Athlete{Name: "Anna", Rank: "2 KUP"}
	a1.ID = "a1"
	a2 := pb.Athlete{Name: "Bartek", Rank: "I DAN"}
	a2.ID = "a2"

	results := []pb.Result{
		athleteResult("r1", "a1", pb.MedalGold),
		athleteResult("r2", "a1", pb.MedalSilver),
	}

	views := EnrichAthletes([]pb.Athlete{a1, a2}, results)
	if len(views) != 2 {
		t.Fatalf("got %d views, want 2", len(views))
	}
	if views[0].Stats.Gold != 1 || views[0].Stats.Silver != 1 {
		t.Errorf("a1 stats = %+v", views[0].Stats)
	}
	if views[0].ParsedRank.Type != "KUP" || views[0].ParsedRank.Number != "2" {
		t.Errorf("a1 rank = %+v", views[0].ParsedRank)
	}
	if len(views[1].RecentResults) != 0 {
		t.Errorf("a2 has %d recent results, want 0", len(views[1].RecentResults))
	}
	if views[1].ParsedRank.Type != "DAN" {
		t.Errorf("a2 rank type = %s, want DAN", views[1].ParsedRank.Type)
	}
}

func TestPartitionRoster(t *testing.T) {
	mkView := func(id string, status pb.AthleteStatus) AthleteView {
		v := AthleteView{}
		v.ID = id
		v.Status = status
		return v
	}
	views := []AthleteView{
		mkView("a1", pb.StatusActive),
		mkView("a2", ""),
		mkView("a3", pb.StatusAlumni),
		mkView("a4", pb.StatusInactive),
	}

	tests := []struct {
		policy       config.InactivePolicy
		wantActive   int
		wantInactive int
	}{
		{config.InactiveHide, 2, 0},
		{config.InactiveAsActive, 3, 0},
		{config.InactiveSeparate, 2, 1},
	}
	for _, tt := range tests {
		roster := PartitionRoster(views, tt.policy)
		if len(roster.Active) != tt.wantActive {
			t.Errorf("policy %s: %d active, want %d", tt.policy, len(roster.Active), tt.wantActive)
		}
		if len(roster.Alumni) != 1 {
			t.Errorf("policy %s: %d alumni, want 1", tt.policy, len(roster.Alumni))
		}
		if len(roster.Inactive) != tt.wantInactive {
			t.Errorf("policy %s: %d inactive, want %d", tt.policy, len(roster.Inactive), tt.wantInactive)
		}
	}
}
