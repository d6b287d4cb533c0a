// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"github.com/go-chi/chi/v5"
)

// Mount registers all public routes. The CMS page catch-all comes last so
// fixed routes always win.
func (h *FrontendHandler) Mount(r chi.Router) {
	r.Get("/", h.Home)
	r.Get("/aktualnosci", h.NewsList)
	r.Get("/aktualnosci/{id}", h.NewsDetail)
	r.Get("/zawodnicy", h.Athletes)
	r.Get("/kadra", h.Coaches)
	r.Get("/galeria", h.Gallery)
	r.Get("/galeria/{id}", h.Album)
	r.Get("/grafik", h.Schedule)
	r.Get("/osiagniecia", h.Achievements)
	r.Get("/kontakt", h.Contact)
	r.Post("/send-message", h.SendMessage)
	r.Get("/sitemap.xml", h.Sitemap)
	r.Get("/robots.txt", h.Robots)
	r.Get("/api/files/{collection}/{record}/{filename}", h.FileProxy)
	r.Head("/api/files/{collection}/{record}/{filename}", h.FileProxy)
	r.Get("/{slug}", h.Page)
	r.NotFound(h.NotFound)
}
