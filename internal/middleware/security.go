// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package middleware provides HTTP middleware for the public site.
package middleware

import (
	"net/http"
	"strings"
)

// SecurityHeadersConfig holds configuration for security headers.
type SecurityHeadersConfig struct {
	// FrameOptions controls the X-Frame-Options header.
	// Valid values: "DENY", "SAMEORIGIN", or empty to disable.
	FrameOptions string

	// ReferrerPolicy controls the Referrer-Policy header.
	ReferrerPolicy string

	// PermissionsPolicy controls the Permissions-Policy header. This one is
	// always sent; an empty value falls back to the restrictive default.
	PermissionsPolicy string
}

// DefaultSecurityHeadersConfig returns a SecurityHeadersConfig with
// sensible defaults for a public content site.
func DefaultSecurityHeadersConfig() SecurityHeadersConfig {
	return SecurityHeadersConfig{
		FrameOptions:      "DENY",
		ReferrerPolicy:    "strict-origin-when-cross-origin",
		PermissionsPolicy: defaultPermissionsPolicy(),
	}
}

// defaultPermissionsPolicy denies the sensitive browser features the site
// never uses.
func defaultPermissionsPolicy() string {
	features := []string{
		"accelerometer",
		"camera",
		"geolocation",
		"gyroscope",
		"magnetometer",
		"microphone",
		"payment",
		"usb",
	}
	parts := make([]string, 0, len(features))
	for _, f := range features {
		parts = append(parts, f+"=()")
	}
	return strings.Join(parts, ", ")
}

// SecurityHeaders returns a middleware that adds security headers to every
// response, before the handler runs so error paths carry them too.
func SecurityHeaders(cfg SecurityHeadersConfig) func(http.Handler) http.Handler {
	if cfg.PermissionsPolicy == "" {
		cfg.PermissionsPolicy = defaultPermissionsPolicy()
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Permissions-Policy", cfg.PermissionsPolicy)
			w.Header().Set("X-Content-Type-Options", "nosniff")

			if cfg.FrameOptions != "" {
				w.Header().Set("X-Frame-Options", cfg.FrameOptions)
			}
			if cfg.ReferrerPolicy != "" {
				w.Header().Set("Referrer-Policy", cfg.ReferrerPolicy)
			}

			next.ServeHTTP(w, r)
		})
	}
}
