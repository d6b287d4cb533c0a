// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"net/http"

	"github.com/tkddzwirzyno/website/internal/pb"
	"github.com/tkddzwirzyno/website/internal/seo"
)

// achievementView pairs a club milestone with its display emoji.
type achievementView struct {
	pb.Achievement
	Emoji string
}

func achievementEmoji(icon string) string {
	switch icon {
	case "trophy":
		return "🏆"
	case "medal":
		return "🥇"
	default:
		return "⭐"
	}
}

type achievementsData struct {
	Items []achievementView
}

// Achievements renders the hall-of-fame page, newest milestones first.
// A backend failure renders the empty state.
func (h *FrontendHandler) Achievements(w http.ResponseWriter, r *http.Request) {
	var data achievementsData

	result, err := pb.List[pb.Achievement](r.Context(), h.client, pb.CollectionAchievements, 1, 50, pb.Query{
		Sort: "-date",
	})
	if err != nil {
		h.logger.Error("achievement fetch failed", "error", err)
	} else {
		data.Items = make([]achievementView, 0, len(result.Items))
		for _, item := range result.Items {
			data.Items = append(data.Items, achievementView{
				Achievement: item,
				Emoji:       achievementEmoji(item.Icon),
			})
		}
	}

	h.renderPage(w, r, "achievements", http.StatusOK,
		seo.Page{Title: "Hall of Fame", Path: "/osiagniecia"}, data)
}
