// Package calendar models ICS calendar subscriptions and the events read from them.
package calendar

import (
	"net/url"
	"strings"
	"time"

	"github.com/lumenhq/lumen/internal/shared/biztime"
	"github.com/lumenhq/lumen/internal/shared/id"
)

// DefaultColor is used when a feed is created without a color.
const DefaultColor = "#4a9eff"

// Feed is one subscribed ICS calendar.
type Feed struct {
	id        string
	name      string
	url       string
	color     string
	enabled   bool
	createdAt time.Time
	updatedAt time.Time
}

// NewFeed creates an enabled-or-disabled feed with a fresh id. webcal:// URLs
// are rewritten to https://.
func NewFeed(name, rawURL, color string, enabled bool) (*Feed, error) {
	normalized, err := NormalizeURL(rawURL)
	if err != nil {
		return nil, err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrInvalidFeedName
	}
	if color == "" {
		color = DefaultColor
	}

	feedID, err := id.NewCalendarFeedID()
	if err != nil {
		return nil, err
	}

	now := biztime.NowUTC()
	return &Feed{
		id:        feedID,
		name:      name,
		url:       normalized,
		color:     color,
		enabled:   enabled,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// ReconstructFeed rebuilds a Feed from persistence.
func ReconstructFeed(id, name, url, color string, enabled bool, createdAt, updatedAt time.Time) *Feed {
	return &Feed{
		id:        id,
		name:      name,
		url:       url,
		color:     color,
		enabled:   enabled,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (f *Feed) ID() string           { return f.id }
func (f *Feed) Name() string         { return f.name }
func (f *Feed) URL() string          { return f.url }
func (f *Feed) Color() string        { return f.color }
func (f *Feed) Enabled() bool        { return f.enabled }
func (f *Feed) CreatedAt() time.Time { return f.createdAt }
func (f *Feed) UpdatedAt() time.Time { return f.updatedAt }

// FeedPatch is a partial update. Nil fields are left untouched.
type FeedPatch struct {
	Name    *string
	URL     *string
	Color   *string
	Enabled *bool
}

// Apply validates and applies p. On error f is unchanged.
func (f *Feed) Apply(p FeedPatch) error {
	next := *f
	if p.Name != nil {
		name := strings.TrimSpace(*p.Name)
		if name == "" {
			return ErrInvalidFeedName
		}
		next.name = name
	}
	if p.URL != nil {
		normalized, err := NormalizeURL(*p.URL)
		if err != nil {
			return err
		}
		next.url = normalized
	}
	if p.Color != nil {
		next.color = *p.Color
	}
	if p.Enabled != nil {
		next.enabled = *p.Enabled
	}
	next.updatedAt = biztime.NowUTC()
	*f = next
	return nil
}

// Tag returns copies of events attributed to f with its current name and color.
func (f *Feed) Tag(events []Event) []Event {
	out := make([]Event, len(events))
	for i, e := range events {
		e.FeedID = f.id
		e.FeedName = f.name
		e.Color = f.color
		out[i] = e
	}
	return out
}

// NormalizeURL accepts http, https and webcal URLs and returns the fetchable
// form (webcal becomes https).
func NormalizeURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return "", ErrInvalidFeedURL
	}
	switch strings.ToLower(u.Scheme) {
	case "http", "https":
	case "webcal":
		u.Scheme = "https"
	default:
		return "", ErrInvalidFeedURL
	}
	return u.String(), nil
}
