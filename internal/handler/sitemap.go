// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"net/http"
	"time"

	"github.com/tkddzwirzyno/website/internal/middleware"
	"github.com/tkddzwirzyno/website/internal/pb"
	"github.com/tkddzwirzyno/website/internal/seo"
)

// sitemapTTL bounds how often the sitemap refetches the news list.
const sitemapTTL = time.Hour

// Sitemap serves sitemap.xml, rebuilt at most once per hour.
func (h *FrontendHandler) Sitemap(w http.ResponseWriter, r *http.Request) {
	h.sitemapMu.Lock()
	if h.sitemapXML == nil || h.now().After(h.sitemapExpires) {
		xml, err := h.buildSitemap(r)
		if err != nil {
			h.logger.Error("sitemap build failed", "error", err)
			// Serve the stale copy if there is one.
		} else {
			h.sitemapXML = xml
			h.sitemapExpires = h.now().Add(sitemapTTL)
		}
	}
	xml := h.sitemapXML
	h.sitemapMu.Unlock()

	if xml == nil {
		http.Error(w, "Service Unavailable", http.StatusServiceUnavailable)
		return
	}
	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	_, _ = w.Write(xml)
}

func (h *FrontendHandler) buildSitemap(r *http.Request) ([]byte, error) {
	b := seo.NewSitemapBuilder(h.cfg.BaseURL)
	b.AddHomepage()
	for _, l := range staticNavLinks {
		b.AddStatic(l.Path)
	}
	// Not in the menu, but indexable.
	b.AddStatic("/osiagniecia")

	for _, p := range middleware.StateFromContext(r.Context()).MenuPages {
		b.AddPage(p.Slug, p.Updated.Time)
	}

	news, err := pb.FullList[pb.NewsItem](r.Context(), h.client, pb.CollectionNews, pb.Query{
		Filter: "published = true",
		Fields: "id,updated",
	})
	if err != nil {
		return nil, err
	}
	for _, item := range news {
		b.AddNews(item.ID, item.Updated.Time)
	}

	return b.Build()
}

// Robots serves robots.txt. Non-production deployments ask crawlers to
// stay out entirely.
func (h *FrontendHandler) Robots(w http.ResponseWriter, _ *http.Request) {
	body := seo.GenerateRobots(seo.RobotsConfig{
		SiteURL:       h.cfg.BaseURL,
		DisallowAll:   h.cfg.IsDevelopment(),
		DisallowPaths: []string{"/api/"},
	})
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte(body))
}
