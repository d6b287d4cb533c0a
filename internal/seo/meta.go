// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package seo builds meta tags, structured data, the sitemap, and
// robots.txt for the public site.
package seo

import (
	"strings"
)

// Meta holds all SEO meta tag data for a page.
type Meta struct {
	Title         string // Page title (for <title> tag)
	Description   string // Meta description
	Canonical     string // Canonical URL
	OGTitle       string // Open Graph title
	OGDescription string // Open Graph description
	OGImage       string // Open Graph image URL (absolute)
	OGType        string // Open Graph type (website, article)
	OGSiteName    string // Open Graph site name
	OGURL         string // Open Graph URL
	Robots        string // Robots directive (index,follow / noindex,nofollow)
	TwitterCard   string // Twitter card type
}

// Page contains per-route information for building meta tags.
type Page struct {
	Title       string
	Description string // plain or rich text; HTML is stripped
	Path        string // request path, e.g. "/aktualnosci/abc123"
	Image       string // relative or absolute image URL
	Article     bool   // og:type article instead of website
	NoIndex     bool
}

// BuildMeta creates a Meta struct from page data with fallbacks to the
// site-wide defaults.
func (s *Site) BuildMeta(page Page) *Meta {
	meta := &Meta{
		OGType:      "website",
		TwitterCard: "summary_large_image",
		OGSiteName:  s.Name,
	}
	if page.Article {
		meta.OGType = "article"
	}

	if page.Title != "" {
		meta.Title = page.Title + " | " + s.Name
	} else {
		meta.Title = s.Name
	}
	meta.OGTitle = meta.Title

	if page.Description != "" {
		meta.Description = truncateText(stripHTML(page.Description), 160)
	} else {
		meta.Description = s.Description
	}
	meta.OGDescription = meta.Description

	if page.Image != "" {
		meta.OGImage = makeAbsoluteURL(page.Image, s.BaseURL)
	} else if s.DefaultImage != "" {
		meta.OGImage = makeAbsoluteURL(s.DefaultImage, s.BaseURL)
	}

	if page.Path == "" || page.Path == "/" {
		meta.Canonical = s.BaseURL
	} else {
		meta.Canonical = s.BaseURL + page.Path
	}
	meta.OGURL = meta.Canonical

	if page.NoIndex {
		meta.Robots = "noindex,nofollow"
	} else {
		meta.Robots = "index,follow"
	}
	return meta
}

// stripHTML removes HTML tags from a string.
func stripHTML(html string) string {
	var result strings.Builder
	inTag := false
	for _, r := range html {
		if r == '<' {
			inTag = true
			continue
		}
		if r == '>' {
			inTag = false
			result.WriteRune(' ')
			continue
		}
		if !inTag {
			result.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(result.String()), " ")
}

// truncateText truncates text to maxLen characters at a word boundary.
func truncateText(text string, maxLen int) string {
	text = strings.TrimSpace(text)
	if len(text) <= maxLen {
		return text
	}

	truncated := text[:maxLen]
	lastSpace := strings.LastIndex(truncated, " ")
	if lastSpace > maxLen/2 {
		truncated = truncated[:lastSpace]
	}

	return strings.TrimSpace(truncated) + "..."
}

// makeAbsoluteURL ensures a URL is absolute by prepending the site URL.
func makeAbsoluteURL(url, siteURL string) string {
	if url == "" {
		return ""
	}
	if strings.HasPrefix(url, "http://") || strings.HasPrefix(url, "https://") {
		return url
	}
	siteURL = strings.TrimSuffix(siteURL, "/")
	if !strings.HasPrefix(url, "/") {
		url = "/" + url
	}
	return siteURL + url
}
