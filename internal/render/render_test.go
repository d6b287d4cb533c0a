// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package render

import (
	"errors"
	"html/template"
	"io/fs"
	"net/http/httptest"
	"strings"
	"testing"
	"testing/fstest"
	"time"

	"github.com/tkddzwirzyno/website/web"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"layouts/base.html": &fstest.MapFile{Data: []byte(
			`{{define "base"}}<html><body>{{template "header" .}}{{template "content" .}}</body></html>{{end}}`)},
		"partials/header.html": &fstest.MapFile{Data: []byte(
			`{{define "header"}}<header>{{.Title}}</header>{{end}}`)},
		"pages/hello.html": &fstest.MapFile{Data: []byte(
			`{{define "content"}}<p>Witaj, {{.Name}}!</p>{{end}}`)},
		"pages/broken.html": &fstest.MapFile{Data: []byte(
			`{{define "content"}}{{.Missing.Deeply.Nested}}{{end}}`)},
	}
}

func TestRender(t *testing.T) {
	r, err := New(testFS())
	if err != nil {
		t.Fatal(err)
	}

	rr := httptest.NewRecorder()
	data := struct {
		Title string
		Name  string
	}{"Strona", "Ania"}

	if err := r.Render(rr, "hello", 200, data); err != nil {
		t.Fatal(err)
	}
	body := rr.Body.String()
	if !strings.Contains(body, "<header>Strona</header>") {
		t.Errorf("partial missing from output: %q", body)
	}
	if !strings.Contains(body, "Witaj, Ania!") {
		t.Errorf("page content missing from output: %q", body)
	}
	if ct := rr.Header().Get("Content-Type"); ct != "text/html; charset=utf-8" {
		t.Errorf("Content-Type = %q", ct)
	}
}

func TestRenderUnknownTemplate(t *testing.T) {
	r, err := New(testFS())
	if err != nil {
		t.Fatal(err)
	}
	rr := httptest.NewRecorder()
	if err := r.Render(rr, "nope", 200, nil); err == nil {
		t.Fatal("expected error for unknown template")
	}
	if rr.Body.Len() != 0 {
		t.Error("failed render wrote to the response")
	}
}

func TestRenderErrorWritesNothing(t *testing.T) {
	r, err := New(testFS())
	if err != nil {
		t.Fatal(err)
	}
	rr := httptest.NewRecorder()
	err = r.Render(rr, "broken", 200, struct{}{})
	if err == nil {
		t.Fatal("expected execution error")
	}
	if rr.Body.Len() != 0 {
		t.Error("partial output leaked to the response on error")
	}
}

func TestEmbeddedTemplatesParse(t *testing.T) {
	sub, err := fs.Sub(web.Templates, "templates")
	if err != nil {
		t.Fatal(err)
	}
	r, err := New(sub)
	if err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{
		"home", "news", "news_detail", "athletes", "coaches",
		"gallery", "album", "schedule", "achievements", "contact",
		"page", "notfound", "error",
	} {
		if _, ok := r.templates[name]; !ok {
			t.Errorf("template %s not parsed", name)
		}
	}
}

func TestTemplateFuncs(t *testing.T) {
	funcs := templateFuncs()

	date := funcs["formatDate"].(func(time.Time) string)
	if got := date(time.Date(2026, 3, 7, 0, 0, 0, 0, time.UTC)); got != "07.03.2026" {
		t.Errorf("formatDate = %q", got)
	}
	if got := date(time.Time{}); got != "" {
		t.Errorf("formatDate(zero) = %q", got)
	}

	long := funcs["formatDateLong"].(func(time.Time) string)
	if got := long(time.Date(2026, 3, 7, 0, 0, 0, 0, time.UTC)); got != "7 marca 2026" {
		t.Errorf("formatDateLong = %q", got)
	}

	safe := funcs["safe"].(func(string) template.HTML)
	if safe("<b>x</b>") != template.HTML("<b>x</b>") {
		t.Error("safe changed its input")
	}

	seq := funcs["seq"].(func(int, int) []int)
	if got := seq(1, 3); len(got) != 3 || got[0] != 1 || got[2] != 3 {
		t.Errorf("seq(1,3) = %v", got)
	}
}

func TestRenderMissingLayoutDir(t *testing.T) {
	_, err := New(fstest.MapFS{})
	if err == nil {
		t.Fatal("expected error for missing template directories")
	}
	var pathErr *fs.PathError
	if !errors.As(err, &pathErr) {
		t.Logf("error = %v", err)
	}
}
