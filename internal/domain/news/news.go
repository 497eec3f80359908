// Package news normalizes RSS headlines for the display news ticker.
package news

import (
	"encoding/json"
	"sort"
	"strconv"
	"strings"
	"time"
)

// Setting names under the "news." namespace.
const (
	KeyFeeds = "feeds"
	KeyLimit = "limit"
)

const (
	DefaultLimit = 10
	MaxLimit     = 50
)

type Item struct {
	Title       string     `json:"title"`
	Link        string     `json:"link"`
	Summary     string     `json:"summary"`
	Source      string     `json:"source"`
	PublishedAt *time.Time `json:"publishedAt"`
}

type Headlines struct {
	Items  []Item `json:"items"`
	IsDemo bool   `json:"isDemo"`
}

// ParseFeeds accepts either a JSON array of URLs or a comma separated list.
// Blank entries and duplicates are dropped.
func ParseFeeds(value string) []string {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}

	var raw []string
	if strings.HasPrefix(value, "[") {
		if err := json.Unmarshal([]byte(value), &raw); err != nil {
			raw = nil
		}
	}
	if raw == nil {
		raw = strings.Split(value, ",")
	}

	seen := make(map[string]bool, len(raw))
	out := make([]string, 0, len(raw))
	for _, u := range raw {
		u = strings.TrimSpace(u)
		if u == "" || seen[u] {
			continue
		}
		seen[u] = true
		out = append(out, u)
	}
	return out
}

// ParseLimit returns the configured item limit clamped to [1, MaxLimit].
func ParseLimit(value string) int {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || n <= 0 {
		return DefaultLimit
	}
	if n > MaxLimit {
		return MaxLimit
	}
	return n
}

// Newest sorts items newest first, undated items last, and keeps at most limit.
func Newest(items []Item, limit int) []Item {
	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i].PublishedAt, items[j].PublishedAt
		switch {
		case a == nil:
			return false
		case b == nil:
			return true
		default:
			return a.After(*b)
		}
	})
	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}
	return items
}

// DemoHeadlines is shown when no feed can be read.
func DemoHeadlines(now time.Time) Headlines {
	titles := []string{
		"Local farmers market opens for the season this weekend",
		"City council approves new bike lanes downtown",
		"Library extends evening hours through the summer",
		"Forecasters expect a mild week ahead",
		"Community orchestra announces free concert series",
	}
	items := make([]Item, len(titles))
	for i, title := range titles {
		at := now.Add(-time.Duration(i+1) * time.Hour)
		items[i] = Item{Title: title, Source: "Lumen", PublishedAt: &at}
	}
	return Headlines{Items: items, IsDemo: true}
}
