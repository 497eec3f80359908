// Package rss reads RSS and Atom feeds into plain-text headlines.
package rss

import (
	"bytes"
	"context"
	"fmt"
	"html"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/microcosm-cc/bluemonday"
	"github.com/mmcdole/gofeed"

	"github.com/lumenhq/lumen/internal/domain/news"
	"github.com/lumenhq/lumen/internal/infrastructure/adapters/httpclient"
	sharedConfig "github.com/lumenhq/lumen/internal/shared/config"
	"github.com/lumenhq/lumen/internal/shared/logger"
)

const (
	defaultTimeout   = 10 * time.Second
	maxSummaryLength = 280
)

type Client struct {
	httpClient *http.Client
	policy     *bluemonday.Policy
	logger     logger.Interface
}

func NewClient(cfg sharedConfig.NewsConfig, log logger.Interface) *Client {
	return &Client{
		httpClient: httpclient.New(sharedConfig.Seconds(cfg.TimeoutSeconds, defaultTimeout)),
		policy:     bluemonday.StrictPolicy(),
		logger:     log,
	}
}

// Fetch returns the items of the feed at url with markup stripped.
func (c *Client) Fetch(ctx context.Context, url string) ([]news.Item, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/rss+xml, application/atom+xml, application/xml;q=0.9, */*;q=0.5")

	body, _, err := httpclient.Do(c.httpClient, req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch feed %s: %w", url, err)
	}

	feed, err := gofeed.NewParser().Parse(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to parse feed %s: %w", url, err)
	}

	items := make([]news.Item, 0, len(feed.Items))
	for _, it := range feed.Items {
		title := c.plain(it.Title)
		if title == "" {
			continue
		}
		published := it.PublishedParsed
		if published == nil {
			published = it.UpdatedParsed
		}
		if published != nil {
			t := published.UTC()
			published = &t
		}
		summary := it.Description
		if summary == "" {
			summary = it.Content
		}
		items = append(items, news.Item{
			Title:       title,
			Link:        it.Link,
			Summary:     truncate(c.plain(summary), maxSummaryLength),
			Source:      c.plain(feed.Title),
			PublishedAt: published,
		})
	}
	c.logger.Debugw("fetched news feed", "url", url, "items", len(items))
	return items, nil
}

// plain strips all markup and collapses whitespace.
func (c *Client) plain(s string) string {
	s = html.UnescapeString(c.policy.Sanitize(s))
	return strings.Join(strings.Fields(s), " ")
}

func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	r := []rune(s)[:n]
	cut := string(r)
	if i := strings.LastIndexByte(cut, ' '); i > n/2 {
		cut = cut[:i]
	}
	return strings.TrimRight(cut, " ,.;:") + "…"
}
