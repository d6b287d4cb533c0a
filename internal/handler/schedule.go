// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"net/http"

	"github.com/tkddzwirzyno/website/internal/content"
	"github.com/tkddzwirzyno/website/internal/pb"
	"github.com/tkddzwirzyno/website/internal/seo"
)

type scheduleData struct {
	Entries []pb.ScheduleEntry
}

// Schedule renders the weekly training schedule ordered Monday through
// Sunday.
func (h *FrontendHandler) Schedule(w http.ResponseWriter, r *http.Request) {
	var data scheduleData

	entries, err := pb.FullList[pb.ScheduleEntry](r.Context(), h.client, pb.CollectionSchedule, pb.Query{})
	if err != nil {
		h.logger.Error("schedule fetch failed", "error", err)
	} else {
		content.SortSchedule(entries)
		data.Entries = entries
	}

	h.renderPage(w, r, "schedule", http.StatusOK,
		seo.Page{Title: "Grafik treningów", Path: "/grafik"}, data)
}
