// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package handler provides the HTTP handlers for the public site. Each
// handler fetches what its page needs from the backend, derives the view
// data, and renders through the shared page shell. Backend failures are
// converted to an empty state, a 404 page, or an error page; they never
// reach the client as raw errors.
package handler

import (
	"html/template"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/tkddzwirzyno/website/internal/config"
	"github.com/tkddzwirzyno/website/internal/mailer"
	"github.com/tkddzwirzyno/website/internal/middleware"
	"github.com/tkddzwirzyno/website/internal/pb"
	"github.com/tkddzwirzyno/website/internal/render"
	"github.com/tkddzwirzyno/website/internal/sanitize"
	"github.com/tkddzwirzyno/website/internal/seo"
)

// newsPerPage is the page size of the news listing.
const newsPerPage = 9

// FrontendHandler serves all public routes.
type FrontendHandler struct {
	client   *pb.Client
	renderer *render.Renderer
	site     *seo.Site
	cfg      *config.Config
	mailer   *mailer.Mailer
	logger   *slog.Logger

	sitemapMu      sync.Mutex
	sitemapXML     []byte
	sitemapExpires time.Time
	now            func() time.Time
}

// NewFrontendHandler creates the handler with its collaborators.
func NewFrontendHandler(client *pb.Client, renderer *render.Renderer, site *seo.Site,
	cfg *config.Config, m *mailer.Mailer, logger *slog.Logger) *FrontendHandler {
	return &FrontendHandler{
		client:   client,
		renderer: renderer,
		site:     site,
		cfg:      cfg,
		mailer:   m,
		logger:   logger,
		now:      time.Now,
	}
}

// NavLink is one navigation menu entry.
type NavLink struct {
	Title string
	Path  string
}

// staticNavLinks are the built-in navigation entries. CMS pages never
// displace them: on a slug collision the CMS entry loses.
var staticNavLinks = []NavLink{
	{Title: "Kadra", Path: "/kadra"},
	{Title: "Zawodnicy", Path: "/zawodnicy"},
	{Title: "Aktualności", Path: "/aktualnosci"},
	{Title: "Galeria", Path: "/galeria"},
	{Title: "Grafik", Path: "/grafik"},
	{Title: "Kontakt", Path: "/kontakt"},
}

// buildNav combines the built-in links with the CMS menu pages,
// deduplicated by slug.
func buildNav(pages []pb.MenuPage) []NavLink {
	links := make([]NavLink, 0, 1+len(staticNavLinks)+len(pages))
	links = append(links, NavLink{Title: "Start", Path: "/"})

	seen := map[string]bool{"": true}
	for _, l := range staticNavLinks {
		seen[strings.TrimPrefix(l.Path, "/")] = true
		links = append(links, l)
	}

	for _, p := range pages {
		if p.Slug == "" || seen[p.Slug] {
			continue
		}
		seen[p.Slug] = true
		links = append(links, NavLink{Title: p.Title, Path: "/" + p.Slug})
	}
	return links
}

// viewData is the payload every page template receives.
type viewData struct {
	Meta   *seo.Meta
	Schema template.JS
	Nav    []NavLink
	Site   *pb.SiteInfo
	Year   int
	Data   any
}

// view builds the shared part of the template payload from the request's
// state snapshot.
func (h *FrontendHandler) view(r *http.Request, page seo.Page, data any) viewData {
	snap := middleware.StateFromContext(r.Context())
	return viewData{
		Meta:   h.site.BuildMeta(page),
		Schema: h.site.SchemaJSON(),
		Nav:    buildNav(snap.MenuPages),
		Site:   snap.SiteInfo,
		Year:   h.now().Year(),
		Data:   data,
	}
}

// renderPage executes a page template; a template failure is the one case
// that falls back to a plain-text 500.
func (h *FrontendHandler) renderPage(w http.ResponseWriter, r *http.Request,
	name string, status int, page seo.Page, data any) {
	if err := h.renderer.Render(w, name, status, h.view(r, page, data)); err != nil {
		h.logger.Error("template render failed", "template", name, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

// messageData carries a human-readable message into the 404/error pages.
type messageData struct {
	Message string
}

// NotFound renders the 404 page.
func (h *FrontendHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	h.renderNotFound(w, r, "")
}

func (h *FrontendHandler) renderNotFound(w http.ResponseWriter, r *http.Request, message string) {
	h.renderPage(w, r, "notfound", http.StatusNotFound,
		seo.Page{Title: "Nie znaleziono", Path: r.URL.Path, NoIndex: true},
		messageData{Message: message})
}

func (h *FrontendHandler) renderError(w http.ResponseWriter, r *http.Request, status int, message string) {
	h.renderPage(w, r, "error", status,
		seo.Page{Title: "Błąd", Path: r.URL.Path, NoIndex: true},
		messageData{Message: message})
}

// newsTeaser is a news item with its summary sanitized for embedding.
type newsTeaser struct {
	pb.NewsItem
	SafeSummary template.HTML
}

func newsTeasers(items []pb.NewsItem) []newsTeaser {
	teasers := make([]newsTeaser, 0, len(items))
	for _, item := range items {
		teasers = append(teasers, newsTeaser{
			NewsItem:    item,
			SafeSummary: template.HTML(sanitize.HTML(item.Summary, sanitize.Minimal)),
		})
	}
	return teasers
}

// homeData is the home page payload.
type homeData struct {
	News []newsTeaser
}

// Home renders the landing page with the latest news from the shared
// snapshot; no extra backend calls.
func (h *FrontendHandler) Home(w http.ResponseWriter, r *http.Request) {
	snap := middleware.StateFromContext(r.Context())
	h.renderPage(w, r, "home", http.StatusOK,
		seo.Page{Path: "/"},
		homeData{News: newsTeasers(snap.News)})
}
