// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package pb is a client for the content backend's record API. All editorial
// content (pages, news, athletes, results, albums) is owned by the backend;
// this package only reads it, except for contact-message creation.
//
// Filter expressions are only ever built from validated, narrow inputs.
// FilterLiteral must be used for any interpolated value.
package pb

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Request timeout for backend calls. The backend is an external dependency
// with untrusted latency; a timeout is treated as an ordinary fetch failure.
const requestTimeout = 5 * time.Second

// ErrNotFound is returned when the backend reports a missing record.
var ErrNotFound = errors.New("pb: record not found")

// Client talks to the content backend over HTTP.
type Client struct {
	baseURL string
	http    *http.Client
}

// New creates a Client for the backend at baseURL.
func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Timeout: requestTimeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}
}

// BaseURL returns the backend base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Query holds the optional parameters of a list request.
type Query struct {
	Filter string
	Sort   string
	Expand string
	Fields string
}

// ListResult is one page of records from a collection.
type ListResult[T any] struct {
	Page       int `json:"page"`
	PerPage    int `json:"perPage"`
	TotalItems int `json:"totalItems"`
	TotalPages int `json:"totalPages"`
	Items      []T `json:"items"`
}

// FilterLiteral quotes s for use as a string literal inside a filter
// expression, escaping backslashes and double quotes. This is the single
// choke point preventing filter injection; callers still validate inputs
// (slugs, record IDs) before they get here.
func FilterLiteral(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	return `"` + s + `"`
}

// List fetches one page of records from a collection.
func List[T any](ctx context.Context, c *Client, collection string, page, perPage int, q Query) (*ListResult[T], error) {
	params := url.Values{}
	params.Set("page", strconv.Itoa(page))
	params.Set("perPage", strconv.Itoa(perPage))
	setQuery(params, q)

	endpoint := c.baseURL + "/api/collections/" + url.PathEscape(collection) + "/records?" + params.Encode()

	var result ListResult[T]
	if err := c.getJSON(ctx, endpoint, &result); err != nil {
		return nil, fmt.Errorf("listing %s: %w", collection, err)
	}
	return &result, nil
}

// GetOne fetches a single record by id. Returns ErrNotFound when the record
// does not exist.
func GetOne[T any](ctx context.Context, c *Client, collection, id string, q Query) (*T, error) {
	params := url.Values{}
	setQuery(params, q)

	endpoint := c.baseURL + "/api/collections/" + url.PathEscape(collection) + "/records/" + url.PathEscape(id)
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}

	var record T
	if err := c.getJSON(ctx, endpoint, &record); err != nil {
		return nil, fmt.Errorf("getting %s/%s: %w", collection, id, err)
	}
	return &record, nil
}

// FullList fetches every record of a collection, paging through the backend
// in batches.
func FullList[T any](ctx context.Context, c *Client, collection string, q Query) ([]T, error) {
	const batch = 200

	var items []T
	for page := 1; ; page++ {
		result, err := List[T](ctx, c, collection, page, batch, q)
		if err != nil {
			return nil, err
		}
		items = append(items, result.Items...)
		if page >= result.TotalPages || len(result.Items) == 0 {
			return items, nil
		}
	}
}

// Create inserts a new record into a collection. This is the only write
// path; everything else is read-only.
func (c *Client) Create(ctx context.Context, collection string, record any) error {
	body, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("encoding %s record: %w", collection, err)
	}

	endpoint := c.baseURL + "/api/collections/" + url.PathEscape(collection) + "/records"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("creating %s record: %w", collection, err)
	}
	defer func() { _ = resp.Body.Close() }()
	// Drain so the connection can be reused.
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("creating %s record: backend returned %d", collection, resp.StatusCode)
	}
	return nil
}

// FileRequest issues a request against the backend's file endpoint,
// forwarding the given headers. The caller owns the response body.
// Used by the same-origin file proxy.
func (c *Client) FileRequest(ctx context.Context, method, filePath, rawQuery string, fwd http.Header) (*http.Response, error) {
	endpoint := c.baseURL + "/api/files/" + filePath
	if rawQuery != "" {
		endpoint += "?" + rawQuery
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("creating file request: %w", err)
	}
	for key, values := range fwd {
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching file %s: %w", filePath, err)
	}
	return resp, nil
}

// getJSON performs a GET request and decodes the JSON response into out.
func (c *Client) getJSON(ctx context.Context, endpoint string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return ErrNotFound
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("backend returned %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

// setQuery copies the non-empty Query fields into params.
func setQuery(params url.Values, q Query) {
	if q.Filter != "" {
		params.Set("filter", q.Filter)
	}
	if q.Sort != "" {
		params.Set("sort", q.Sort)
	}
	if q.Expand != "" {
		params.Set("expand", q.Expand)
	}
	if q.Fields != "" {
		params.Set("fields", q.Fields)
	}
}
