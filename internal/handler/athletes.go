// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"html/template"
	"net/http"
	"sync"

	"github.com/tkddzwirzyno/website/internal/content"
	"github.com/tkddzwirzyno/website/internal/pb"
	"github.com/tkddzwirzyno/website/internal/sanitize"
	"github.com/tkddzwirzyno/website/internal/seo"
)

type athletesData struct {
	Roster content.Roster
}

// Athletes renders the roster with per-athlete medal stats and recent
// results. The athlete and result lists are independent, so both fetches
// run concurrently.
func (h *FrontendHandler) Athletes(w http.ResponseWriter, r *http.Request) {
	var (
		wg          sync.WaitGroup
		athletes    []pb.Athlete
		results     []pb.Result
		athletesErr error
		resultsErr  error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		athletes, athletesErr = pb.FullList[pb.Athlete](r.Context(), h.client, pb.CollectionAthletes, pb.Query{
			Sort: "name",
		})
	}()
	go func() {
		defer wg.Done()
		results, resultsErr = pb.FullList[pb.Result](r.Context(), h.client, pb.CollectionResults, pb.Query{
			Filter: `athlete != ""`,
			Expand: "competition",
			Sort:   "-competition.date",
		})
	}()
	wg.Wait()

	if athletesErr != nil {
		h.logger.Error("athlete fetch failed", "error", athletesErr)
		h.renderError(w, r, http.StatusInternalServerError, "Nie udało się pobrać listy zawodników.")
		return
	}
	if resultsErr != nil {
		// The roster is still worth showing without results.
		h.logger.Error("result fetch failed", "error", resultsErr)
		results = nil
	}

	views := content.EnrichAthletes(athletes, results)
	roster := content.PartitionRoster(views, h.cfg.InactiveAthletes)

	h.renderPage(w, r, "athletes", http.StatusOK,
		seo.Page{Title: "Zawodnicy", Path: "/zawodnicy"},
		athletesData{Roster: roster})
}

// coachProfile is a coach view with its bio sanitized for embedding.
type coachProfile struct {
	content.CoachView
	SafeBio template.HTML
}

type coachesData struct {
	Coaches []coachProfile
}

// Coaches renders the coaching staff with their competition results, head
// coach first.
func (h *FrontendHandler) Coaches(w http.ResponseWriter, r *http.Request) {
	var (
		wg         sync.WaitGroup
		coaches    []pb.Coach
		results    []pb.Result
		coachesErr error
		resultsErr error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		coaches, coachesErr = pb.FullList[pb.Coach](r.Context(), h.client, pb.CollectionCoaches, pb.Query{
			Sort: "created",
		})
	}()
	go func() {
		defer wg.Done()
		results, resultsErr = pb.FullList[pb.Result](r.Context(), h.client, pb.CollectionResults, pb.Query{
			Filter: `coach != ""`,
			Expand: "competition",
			Sort:   "-created",
		})
	}()
	wg.Wait()

	if coachesErr != nil {
		h.logger.Error("coach fetch failed", "error", coachesErr)
		h.renderError(w, r, http.StatusInternalServerError, "Nie udało się pobrać listy trenerów.")
		return
	}
	if resultsErr != nil {
		h.logger.Error("coach result fetch failed", "error", resultsErr)
		results = nil
	}

	views := content.EnrichCoaches(coaches, results)
	content.SortCoachesHeadFirst(views, h.cfg.HeadCoach)

	profiles := make([]coachProfile, 0, len(views))
	for _, v := range views {
		profiles = append(profiles, coachProfile{
			CoachView: v,
			SafeBio:   template.HTML(sanitize.HTML(v.Bio, sanitize.Album)),
		})
	}

	h.renderPage(w, r, "coaches", http.StatusOK,
		seo.Page{Title: "Kadra", Path: "/kadra"},
		coachesData{Coaches: profiles})
}
