// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"errors"
	"html/template"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/tkddzwirzyno/website/internal/pb"
	"github.com/tkddzwirzyno/website/internal/sanitize"
	"github.com/tkddzwirzyno/website/internal/seo"
	"github.com/tkddzwirzyno/website/internal/util"
)

// Pagination drives the pagination partial.
type Pagination struct {
	Page       int
	TotalPages int
	BasePath   string
}

// BuildPagination derives the page count from the backend's total item
// count.
func BuildPagination(page, totalItems, perPage int, basePath string) Pagination {
	totalPages := (totalItems + perPage - 1) / perPage
	if totalPages < 1 {
		totalPages = 1
	}
	return Pagination{Page: page, TotalPages: totalPages, BasePath: basePath}
}

type newsListData struct {
	Items      []newsTeaser
	Pagination Pagination
}

// NewsList renders the paginated news listing. A backend failure renders
// the empty state, not an error page.
func (h *FrontendHandler) NewsList(w http.ResponseWriter, r *http.Request) {
	page := 1
	if p, err := strconv.Atoi(r.URL.Query().Get("page")); err == nil && p > 0 {
		page = p
	}

	data := newsListData{
		Pagination: Pagination{Page: page, TotalPages: 1, BasePath: "/aktualnosci"},
	}

	result, err := pb.List[pb.NewsItem](r.Context(), h.client, pb.CollectionNews, page, newsPerPage, pb.Query{
		Filter: "published = true",
		Sort:   "-created",
	})
	if err != nil {
		h.logger.Error("news list fetch failed", "page", page, "error", err)
	} else {
		data.Items = newsTeasers(result.Items)
		data.Pagination = BuildPagination(page, result.TotalItems, newsPerPage, "/aktualnosci")
	}

	h.renderPage(w, r, "news", http.StatusOK,
		seo.Page{Title: "Aktualności", Path: "/aktualnosci"}, data)
}

type newsDetailData struct {
	Item    pb.NewsItem
	Content template.HTML
}

// NewsDetail renders a single news item fetched by id. Both not-found and
// backend failure render the 404 page.
func (h *FrontendHandler) NewsDetail(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !util.IsValidRecordID(id) {
		h.renderNotFound(w, r, "Nie znaleziono artykułu.")
		return
	}

	item, err := pb.GetOne[pb.NewsItem](r.Context(), h.client, pb.CollectionNews, id, pb.Query{})
	if err != nil {
		if !errors.Is(err, pb.ErrNotFound) {
			h.logger.Error("news detail fetch failed", "id", id, "error", err)
		}
		h.renderNotFound(w, r, "Nie znaleziono artykułu.")
		return
	}

	h.renderPage(w, r, "news_detail", http.StatusOK,
		seo.Page{
			Title:       item.Title,
			Description: item.Summary,
			Path:        "/aktualnosci/" + item.ID,
			Image:       pb.FileURL(item.CollectionID, item.ID, item.Image),
			Article:     true,
		},
		newsDetailData{
			Item:    *item,
			Content: template.HTML(sanitize.HTML(item.Content, sanitize.CMS)),
		})
}
