// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package state holds the process-wide cache of slow-changing site data:
// contact info, navigation pages, and the latest news teasers. Every page
// render reads it; it is refreshed at most once per TTL.
package state

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/tkddzwirzyno/website/internal/pb"
)

// newsTeaserCount is how many news items the shared snapshot carries for
// the home page and footer.
const newsTeaserCount = 3

// Snapshot is an immutable view of the shared site data. SiteInfo is nil
// and the slices are empty until the first successful refresh; callers
// render fallbacks in that case.
type Snapshot struct {
	SiteInfo  *pb.SiteInfo
	MenuPages []pb.MenuPage
	News      []pb.NewsItem
}

// Cache refreshes the shared snapshot from the backend on a TTL.
//
// The TTL check and the refetch are deliberately not serialized: two
// requests arriving together after expiry may both refetch. The refetch is
// idempotent and the snapshot swap is last-write-wins, so the race is
// harmless and cheaper than funneling every request through one lock.
type Cache struct {
	client *pb.Client
	ttl    time.Duration
	log    *slog.Logger
	now    func() time.Time

	mu          sync.RWMutex
	snap        Snapshot
	lastRefresh time.Time
}

// New creates a cache around the given backend client.
func New(client *pb.Client, ttl time.Duration, log *slog.Logger) *Cache {
	return &Cache{
		client: client,
		ttl:    ttl,
		log:    log,
		now:    time.Now,
	}
}

// Current returns the snapshot as-is, without checking freshness.
func (c *Cache) Current() Snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.snap
}

// Ensure refreshes the snapshot when the TTL has elapsed and returns the
// current one. A failed refresh keeps the previous snapshot and leaves the
// timestamp alone, so the next request retries immediately.
func (c *Cache) Ensure(ctx context.Context) Snapshot {
	c.mu.RLock()
	fresh := c.now().Sub(c.lastRefresh) < c.ttl
	c.mu.RUnlock()

	if !fresh {
		c.refresh(ctx)
	}
	return c.Current()
}

func (c *Cache) refresh(ctx context.Context) {
	var (
		wg       sync.WaitGroup
		info     *pb.ListResult[pb.SiteInfo]
		pages    []pb.MenuPage
		news     *pb.ListResult[pb.NewsItem]
		infoErr  error
		pagesErr error
		newsErr  error
	)

	wg.Add(3)
	go func() {
		defer wg.Done()
		info, infoErr = pb.List[pb.SiteInfo](ctx, c.client, pb.CollectionSiteInfo, 1, 1, pb.Query{})
	}()
	go func() {
		defer wg.Done()
		pages, pagesErr = pb.FullList[pb.MenuPage](ctx, c.client, pb.CollectionPages, pb.Query{
			Filter: "visible = true",
			Sort:   "menu_order",
		})
	}()
	go func() {
		defer wg.Done()
		news, newsErr = pb.List[pb.NewsItem](ctx, c.client, pb.CollectionNews, 1, newsTeaserCount, pb.Query{
			Filter: "published = true",
			Sort:   "-created",
		})
	}()
	wg.Wait()

	for _, err := range []error{infoErr, pagesErr, newsErr} {
		if err != nil {
			c.log.Warn("shared state refresh failed, keeping stale data", "error", err)
			return
		}
	}

	var site *pb.SiteInfo
	if len(info.Items) > 0 {
		site = &info.Items[0]
	}

	c.mu.Lock()
	c.snap = Snapshot{SiteInfo: site, MenuPages: pages, News: news.Items}
	c.lastRefresh = c.now()
	c.mu.Unlock()
}
