// Package ical fetches iCalendar feeds and turns their events into display
// events. Failures are classified so the admin can tell why a URL is unusable.
package ical

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	ics "github.com/arran4/golang-ical"

	"github.com/lumenhq/lumen/internal/domain/calendar"
	sharedConfig "github.com/lumenhq/lumen/internal/shared/config"
	"github.com/lumenhq/lumen/internal/shared/logger"
)

const (
	defaultTimeout = 10 * time.Second
	maxFeedSize    = 8 << 20
	userAgent      = "lumen-mirror/1.0"
)

var calendarMarker = []byte("BEGIN:VCALENDAR")

type Client struct {
	httpClient *http.Client
	logger     logger.Interface
}

func NewClient(cfg sharedConfig.CalendarConfig, log logger.Interface) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: sharedConfig.Seconds(cfg.TimeoutSeconds, defaultTimeout)},
		logger:     log,
	}
}

// Fetch downloads and parses the feed at rawURL. Errors are *calendar.FeedError.
func (c *Client) Fetch(ctx context.Context, rawURL string) (*ics.Calendar, error) {
	feedURL, err := calendar.NormalizeURL(rawURL)
	if err != nil {
		return nil, &calendar.FeedError{Kind: calendar.FailureUnreachable, Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, feedURL, nil)
	if err != nil {
		return nil, &calendar.FeedError{Kind: calendar.FailureUnreachable, Err: err}
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "text/calendar, */*;q=0.5")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &calendar.FeedError{Kind: calendar.FailureUnreachable, Err: err}
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound || resp.StatusCode == http.StatusGone:
		return nil, &calendar.FeedError{Kind: calendar.FailureNotFound, Err: fmt.Errorf("status %d", resp.StatusCode)}
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, &calendar.FeedError{Kind: calendar.FailureUnauthorized, Err: fmt.Errorf("status %d", resp.StatusCode)}
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return nil, &calendar.FeedError{Kind: calendar.FailureUnreachable, Err: fmt.Errorf("status %d", resp.StatusCode)}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxFeedSize))
	if err != nil {
		return nil, &calendar.FeedError{Kind: calendar.FailureUnreachable, Err: err}
	}
	if !bytes.Contains(body, calendarMarker) {
		return nil, &calendar.FeedError{Kind: calendar.FailureInvalidFormat, Err: errors.New("missing VCALENDAR")}
	}

	cal, err := ics.ParseCalendar(bytes.NewReader(body))
	if err != nil {
		return nil, &calendar.FeedError{Kind: calendar.FailureInvalidFormat, Err: err}
	}
	return cal, nil
}

// Events returns the feed's events overlapping [from, to), tagged with the
// feed as it is now.
func (c *Client) Events(ctx context.Context, feed *calendar.Feed, from, to time.Time) ([]calendar.Event, error) {
	cal, err := c.Fetch(ctx, feed.URL())
	if err != nil {
		return nil, err
	}
	events := feed.Tag(Normalize(cal, from, to))
	c.logger.Debugw("fetched calendar feed", "feed_id", feed.ID(), "events", len(events))
	return events, nil
}

// Validate checks rawURL without persisting anything.
func (c *Client) Validate(ctx context.Context, rawURL string) calendar.ValidationResult {
	cal, err := c.Fetch(ctx, rawURL)
	if err != nil {
		kind := calendar.FailureUnreachable
		var feedErr *calendar.FeedError
		if errors.As(err, &feedErr) {
			kind = feedErr.Kind
		}
		if isTimeout(err) {
			kind = calendar.FailureUnreachable
		}
		c.logger.Infow("calendar feed validation failed", "kind", kind, "error", err)
		return calendar.ValidationResult{Valid: false, Kind: kind, Error: kind.Message()}
	}

	count := len(cal.Events())
	return calendar.ValidationResult{
		Valid:      true,
		EventCount: count,
		Message:    fmt.Sprintf("Found %d events", count),
	}
}

func isTimeout(err error) bool {
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
