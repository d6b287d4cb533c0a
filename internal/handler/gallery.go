// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"errors"
	"html/template"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tkddzwirzyno/website/internal/pb"
	"github.com/tkddzwirzyno/website/internal/sanitize"
	"github.com/tkddzwirzyno/website/internal/seo"
	"github.com/tkddzwirzyno/website/internal/util"
)

// albumCard is an album with an in-page anchor derived from its title,
// so /galeria#oboz-letni style links stay stable across reorderings.
type albumCard struct {
	pb.Album
	Anchor string
}

type galleryData struct {
	Albums []albumCard
}

// Gallery renders the album listing, newest first. A backend failure
// renders the empty state.
func (h *FrontendHandler) Gallery(w http.ResponseWriter, r *http.Request) {
	var data galleryData

	result, err := pb.List[pb.Album](r.Context(), h.client, pb.CollectionAlbums, 1, 50, pb.Query{
		Sort: "-date",
	})
	if err != nil {
		h.logger.Error("album list fetch failed", "error", err)
	} else {
		data.Albums = make([]albumCard, 0, len(result.Items))
		for _, album := range result.Items {
			data.Albums = append(data.Albums, albumCard{
				Album:  album,
				Anchor: util.Slugify(album.Title),
			})
		}
	}

	h.renderPage(w, r, "gallery", http.StatusOK,
		seo.Page{Title: "Galeria", Path: "/galeria"}, data)
}

type albumData struct {
	Album       pb.Album
	Description template.HTML
	Photos      []pb.Photo
}

// Album renders one album with its photos. An absent album renders the
// 404 page; a failed photo fetch still shows the album.
func (h *FrontendHandler) Album(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !util.IsValidRecordID(id) {
		h.renderNotFound(w, r, "Nie znaleziono albumu.")
		return
	}

	album, err := pb.GetOne[pb.Album](r.Context(), h.client, pb.CollectionAlbums, id, pb.Query{})
	if err != nil {
		if !errors.Is(err, pb.ErrNotFound) {
			h.logger.Error("album fetch failed", "id", id, "error", err)
		}
		h.renderNotFound(w, r, "Nie znaleziono albumu.")
		return
	}

	var photos []pb.Photo
	photoResult, err := pb.List[pb.Photo](r.Context(), h.client, pb.CollectionPhotos, 1, 100, pb.Query{
		Filter: "album = " + pb.FilterLiteral(id),
		Sort:   "created",
	})
	if err != nil {
		h.logger.Error("photo fetch failed", "album", id, "error", err)
	} else {
		photos = photoResult.Items
	}

	h.renderPage(w, r, "album", http.StatusOK,
		seo.Page{
			Title:       album.Title,
			Description: album.Description,
			Path:        "/galeria/" + album.ID,
			Image:       pb.FileURL(album.CollectionID, album.ID, album.Cover),
		},
		albumData{
			Album:       *album,
			Description: template.HTML(sanitize.HTML(album.Description, sanitize.Album)),
			Photos:      photos,
		})
}
