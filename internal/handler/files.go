// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

// forwardedRequestHeaders are the conditional and range headers relayed to
// the backend so browsers can cache and resume image downloads.
var forwardedRequestHeaders = []string{
	"Accept",
	"Range",
	"If-None-Match",
	"If-Modified-Since",
}

// relayedResponseHeaders are the cache-relevant backend headers passed
// back to the client.
var relayedResponseHeaders = []string{
	"Content-Type",
	"Content-Length",
	"Content-Range",
	"Accept-Ranges",
	"ETag",
	"Last-Modified",
	"Cache-Control",
}

// FileProxy forwards GET/HEAD requests for record files to the backend's
// file endpoint, so all images stay same-origin. Any path segment
// containing ".." is rejected before it reaches the backend.
func (h *FrontendHandler) FileProxy(w http.ResponseWriter, r *http.Request) {
	collection := chi.URLParam(r, "collection")
	record := chi.URLParam(r, "record")
	filename := chi.URLParam(r, "filename")

	for _, segment := range []string{collection, record, filename} {
		if segment == "" || strings.Contains(segment, "..") {
			http.Error(w, "Bad Request", http.StatusBadRequest)
			return
		}
	}

	fwd := make(http.Header)
	for _, name := range forwardedRequestHeaders {
		if v := r.Header.Get(name); v != "" {
			fwd.Set(name, v)
		}
	}

	filePath := collection + "/" + record + "/" + filename
	resp, err := h.client.FileRequest(r.Context(), r.Method, filePath, r.URL.RawQuery, fwd)
	if err != nil {
		h.logger.Error("file proxy request failed", "path", filePath, "error", err)
		http.Error(w, "Bad Gateway", http.StatusBadGateway)
		return
	}
	defer func() { _ = resp.Body.Close() }()

	for _, name := range relayedResponseHeaders {
		if v := resp.Header.Get(name); v != "" {
			w.Header().Set(name, v)
		}
	}
	// Record files are immutable; cache aggressively when the backend
	// does not say otherwise.
	if w.Header().Get("Cache-Control") == "" {
		w.Header().Set("Cache-Control", "public, max-age=86400")
	}
	w.WriteHeader(resp.StatusCode)

	if r.Method != http.MethodHead {
		_, _ = io.Copy(w, resp.Body)
	}
}
