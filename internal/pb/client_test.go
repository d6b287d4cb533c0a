// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package pb

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestFilterLiteral(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"o-klubie", `"o-klubie"`},
		{`x" || visible = false || "`, `"x\" || visible = false || \""`},
		{`back\slash`, `"back\\slash"`},
		{"", `""`},
	}

	for _, tt := range tests {
		if got := FilterLiteral(tt.in); got != tt.want {
			t.Errorf("FilterLiteral(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestFilterLiteralNeverLeavesUnescapedQuotes(t *testing.T) {
	// Regression for the injection vector slug validation exists to prevent:
	// whatever goes in, the quoted literal must contain no bare quote.
	inputs := []string{`"`, `""`, `a"b"c`, `\"`, `\\"`}
	for _, in := range inputs {
		got := FilterLiteral(in)
		inner := got[1 : len(got)-1]
		for i := 0; i < len(inner); i++ {
			if inner[i] != '"' {
				continue
			}
			backslashes := 0
			for j := i - 1; j >= 0 && inner[j] == '\\'; j-- {
				backslashes++
			}
			if backslashes%2 == 0 {
				t.Errorf("FilterLiteral(%q) = %s contains unescaped quote", in, got)
			}
		}
	}
}

func TestListDecodesItems(t *testing.T) {
	var gotQuery map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = map[string]string{
			"filter":  r.URL.Query().Get("filter"),
			"sort":    r.URL.Query().Get("sort"),
			"page":    r.URL.Query().Get("page"),
			"perPage": r.URL.Query().Get("perPage"),
		}
		_, _ = w.Write([]byte(`{
			"page": 1, "perPage": 9, "totalItems": 2, "totalPages": 1,
			"items": [
				{"id": "n1", "title": "Zawody", "published": true, "created": "2025-03-01 10:00:00.000Z"},
				{"id": "n2", "title": "Obóz", "published": true, "created": "2025-02-01 10:00:00.000Z"}
			]
		}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	result, err := List[NewsItem](context.Background(), c, "news", 1, 9, Query{
		Filter: "published = true",
		Sort:   "-created",
	})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}

	if result.TotalItems != 2 || len(result.Items) != 2 {
		t.Fatalf("got %d items (total %d), want 2", len(result.Items), result.TotalItems)
	}
	if result.Items[0].Title != "Zawody" {
		t.Errorf("first item title = %q", result.Items[0].Title)
	}
	if result.Items[0].Created.IsZero() {
		t.Error("created timestamp not decoded")
	}
	if gotQuery["filter"] != "published = true" || gotQuery["sort"] != "-created" {
		t.Errorf("query params not forwarded: %v", gotQuery)
	}
	if gotQuery["page"] != "1" || gotQuery["perPage"] != "9" {
		t.Errorf("pagination params not forwarded: %v", gotQuery)
	}
}

func TestGetOneNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"code":404,"message":"The requested resource wasn't found."}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := GetOne[NewsItem](context.Background(), c, "news", "missing", Query{})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestGetOneServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := GetOne[NewsItem](context.Background(), c, "news", "n1", Query{})
	if err == nil {
		t.Fatal("expected error from 500 response")
	}
	if errors.Is(err, ErrNotFound) {
		t.Fatal("500 must not map to ErrNotFound")
	}
}

func TestFullListPagination(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		page := r.URL.Query().Get("page")
		resp := ListResult[ScheduleEntry]{PerPage: 200, TotalItems: 3, TotalPages: 2}
		switch page {
		case "1":
			resp.Page = 1
			resp.Items = []ScheduleEntry{{Day: "Poniedziałek"}, {Day: "Środa"}}
		default:
			resp.Page = 2
			resp.Items = []ScheduleEntry{{Day: "Piątek"}}
		}
		_ = json.NewEncoder(w).Encode(resp)
	}))
	defer srv.Close()

	c := New(srv.URL)
	items, err := FullList[ScheduleEntry](context.Background(), c, "schedule", Query{})
	if err != nil {
		t.Fatalf("FullList failed: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("got %d items, want 3", len(items))
	}
	if items[2].Day != "Piątek" {
		t.Errorf("last item = %q, want Piątek", items[2].Day)
	}
}

func TestCreate(t *testing.T) {
	var gotBody ContactMessage
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"id":"m1"}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	msg := ContactMessage{Name: "Jan", Email: "jan@example.com", Message: "Dzień dobry"}
	if err := c.Create(context.Background(), "messages", msg); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if gotPath != "/api/collections/messages/records" {
		t.Errorf("path = %q", gotPath)
	}
	if gotBody.Email != "jan@example.com" || gotBody.Read {
		t.Errorf("body = %+v", gotBody)
	}
}

func TestCreateFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer srv.Close()

	c := New(srv.URL)
	if err := c.Create(context.Background(), "messages", ContactMessage{}); err == nil {
		t.Fatal("expected error from 400 response")
	}
}

func TestTimeUnmarshal(t *testing.T) {
	var record struct {
		Created Time `json:"created"`
		Date    Time `json:"date"`
	}
	err := json.Unmarshal([]byte(`{"created": "2025-06-15 08:30:00.000Z", "date": ""}`), &record)
	if err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if record.Created.Year() != 2025 || record.Created.Month() != 6 {
		t.Errorf("Created = %v", record.Created)
	}
	if !record.Date.IsZero() {
		t.Errorf("empty date should be zero, got %v", record.Date)
	}
}

func TestFileURL(t *testing.T) {
	got := FileURL("col1", "rec1", "photo.jpg")
	if got != "/api/files/col1/rec1/photo.jpg" {
		t.Errorf("FileURL = %q", got)
	}
	if FileURL("", "rec1", "photo.jpg") != "" {
		t.Error("missing collection should yield empty URL")
	}

	thumb := ThumbURL("col1", "rec1", "photo.jpg", "300x300")
	if !strings.HasSuffix(thumb, "?thumb=300x300") {
		t.Errorf("ThumbURL = %q", thumb)
	}
}
