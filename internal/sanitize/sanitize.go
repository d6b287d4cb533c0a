// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package sanitize cleans CMS-authored rich text before it is embedded as
// raw HTML. Three allow-list profiles exist: a permissive one for full CMS
// content, a minimal one for short excerpts, and one for album
// descriptions. Everything outside a profile's allow-list is stripped, not
// escaped, so partial structural HTML from the CMS still renders.
//
// Sanitization is idempotent: HTML(HTML(s, p), p) == HTML(s, p).
package sanitize

import (
	"bytes"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Profile selects an allow-list.
type Profile int

// Available profiles.
const (
	// CMS allows common rich-text tags plus images and embedded frames.
	CMS Profile = iota
	// Minimal allows bold/italic/emphasis/links only, for excerpts.
	Minimal
	// Album allows the base tags plus images, for album descriptions.
	Album
)

// baseTags are the structural rich-text elements every non-minimal profile
// accepts.
var baseTags = []string{
	"h3", "h4", "h5", "h6", "blockquote", "p", "a", "ul", "ol", "li",
	"b", "i", "strong", "em", "strike", "code", "hr", "br", "div",
	"table", "thead", "caption", "tbody", "tr", "th", "td", "pre",
}

var (
	cmsPolicy     = buildCMSPolicy()
	minimalPolicy = buildMinimalPolicy()
	albumPolicy   = buildAlbumPolicy()
)

func buildCMSPolicy() *bluemonday.Policy {
	p := bluemonday.NewPolicy()
	p.AllowElements(baseTags...)
	p.AllowElements("img", "h1", "h2", "iframe", "u", "s", "span")

	p.AllowAttrs("href", "name", "target", "rel", "class").OnElements("a")
	p.AllowAttrs("src", "alt", "class", "width", "height").OnElements("img")
	p.AllowAttrs("src", "width", "height", "allowfullscreen", "frameborder", "loading").OnElements("iframe")
	p.AllowAttrs("class").OnElements("div", "span", "ul", "ol", "li", "p")
	p.AllowAttrs("id").Globally()

	p.AllowURLSchemes("http", "https", "mailto")
	p.AllowRelativeURLs(true)
	p.RequireParseableURLs(true)

	return p
}

func buildMinimalPolicy() *bluemonday.Policy {
	p := bluemonday.NewPolicy()
	p.AllowElements("b", "i", "em", "strong", "a")
	p.AllowAttrs("href", "target", "rel").OnElements("a")

	p.AllowURLSchemes("http", "https", "mailto")
	p.AllowRelativeURLs(true)
	p.RequireParseableURLs(true)

	return p
}

func buildAlbumPolicy() *bluemonday.Policy {
	p := bluemonday.NewPolicy()
	p.AllowElements(baseTags...)
	p.AllowElements("img")

	p.AllowAttrs("href", "name", "target", "rel", "class").OnElements("a")
	p.AllowAttrs("src", "alt", "class").OnElements("img")
	p.AllowAttrs("class").OnElements("div", "span", "ul", "ol", "li", "p")

	p.AllowURLSchemes("http", "https", "mailto")
	p.AllowRelativeURLs(true)
	p.RequireParseableURLs(true)

	return p
}

// HTML sanitizes s with the given profile.
func HTML(s string, profile Profile) string {
	if s == "" {
		return ""
	}

	var clean string
	switch profile {
	case Minimal:
		clean = minimalPolicy.Sanitize(s)
	case Album:
		clean = albumPolicy.Sanitize(s)
	default:
		clean = cmsPolicy.Sanitize(s)
	}

	return forceAttrs(clean)
}

// forceAttrs rewrites the sanitized fragment so every anchor carries
// rel="noopener noreferrer" and every iframe loads lazily. Running it on
// its own output is a no-op.
func forceAttrs(s string) string {
	if !strings.Contains(s, "<a") && !strings.Contains(s, "<iframe") {
		return s
	}

	context := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(strings.NewReader(s), context)
	if err != nil {
		return s
	}

	var buf bytes.Buffer
	for _, n := range nodes {
		rewriteNode(n)
		if err := html.Render(&buf, n); err != nil {
			return s
		}
	}
	return buf.String()
}

func rewriteNode(n *html.Node) {
	if n.Type == html.ElementNode {
		switch n.DataAtom {
		case atom.A:
			setAttr(n, "rel", "noopener noreferrer")
		case atom.Iframe:
			setAttr(n, "loading", "lazy")
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		rewriteNode(c)
	}
}

func setAttr(n *html.Node, key, val string) {
	for i := range n.Attr {
		if n.Attr[i].Key == key {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}
