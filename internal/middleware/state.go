// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/tkddzwirzyno/website/internal/state"
)

// ContextKey is the type for context keys set by this package.
type ContextKey string

// ContextKeyState is the context key for the shared site snapshot.
const ContextKeyState ContextKey = "site_state"

// statePassthroughPrefixes are request paths that never render the page
// shell, so they skip the shared-state refresh entirely.
var statePassthroughPrefixes = []string{"/static/", "/api/"}

// SharedState refreshes the shared site snapshot when stale and attaches
// it to the request context for page handlers.
func SharedState(cache *state.Cache) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			for _, prefix := range statePassthroughPrefixes {
				if strings.HasPrefix(r.URL.Path, prefix) {
					next.ServeHTTP(w, r)
					return
				}
			}

			snap := cache.Ensure(r.Context())
			ctx := context.WithValue(r.Context(), ContextKeyState, snap)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// StateFromContext returns the snapshot attached by SharedState, or an
// empty snapshot when the middleware did not run.
func StateFromContext(ctx context.Context) state.Snapshot {
	if snap, ok := ctx.Value(ContextKeyState).(state.Snapshot); ok {
		return snap
	}
	return state.Snapshot{}
}
