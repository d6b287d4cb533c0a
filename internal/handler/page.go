// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"html/template"
	"net/http"
	"regexp"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/tkddzwirzyno/website/internal/pb"
	"github.com/tkddzwirzyno/website/internal/sanitize"
	"github.com/tkddzwirzyno/website/internal/seo"
	"github.com/tkddzwirzyno/website/internal/util"
)

// hrSplit matches the section separator in CMS page content.
var hrSplit = regexp.MustCompile(`<hr\s*/?>`)

type pageData struct {
	Page     pb.MenuPage
	Sections []template.HTML
}

// Page is the catch-all for CMS-authored pages addressed by slug. The slug
// character check runs before any backend call: it guards the filter
// expression against injection, not just bad URLs.
func (h *FrontendHandler) Page(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	if !util.IsValidSlug(slug) {
		h.renderError(w, r, http.StatusBadRequest, "Nieprawidłowy adres strony.")
		return
	}

	result, err := pb.List[pb.MenuPage](r.Context(), h.client, pb.CollectionPages, 1, 1, pb.Query{
		Filter: "slug = " + pb.FilterLiteral(slug) + " && visible = true",
	})
	if err != nil {
		h.logger.Error("page fetch failed", "slug", slug, "error", err)
		h.renderNotFound(w, r, "Nie znaleziono strony.")
		return
	}
	if len(result.Items) == 0 {
		h.renderNotFound(w, r, "Nie znaleziono strony.")
		return
	}
	page := result.Items[0]

	h.renderPage(w, r, "page", http.StatusOK,
		seo.Page{
			Title:       page.Title,
			Description: page.Subtitle,
			Path:        "/" + page.Slug,
			Image:       pb.FileURL(page.CollectionID, page.ID, page.Image),
		},
		pageData{Page: page, Sections: splitSections(page.Content)})
}

// splitSections sanitizes rich text and splits it into sections on
// horizontal rules, so templates can style each block separately.
func splitSections(content string) []template.HTML {
	clean := sanitize.HTML(content, sanitize.CMS)

	var sections []template.HTML
	for _, part := range hrSplit.Split(clean, -1) {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		sections = append(sections, template.HTML(part))
	}
	return sections
}
