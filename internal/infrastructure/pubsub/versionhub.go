// Package pubsub fans config version changes out to connected displays,
// in process and, when Redis is configured, across server instances.
package pubsub

import (
	"context"
	"sync"
	"time"

	"github.com/lumenhq/lumen/internal/infrastructure/metrics"
	"github.com/lumenhq/lumen/internal/shared/logger"
)

// VersionEvent announces a new config version.
type VersionEvent struct {
	Version    int64     `json:"version"`
	UpdatedAt  time.Time `json:"updatedAt"`
	Action     string    `json:"action,omitempty"`
	InstanceID string    `json:"instance_id,omitempty"`
}

// VersionPublisher is what mutation services notify after a bump.
type VersionPublisher interface {
	PublishVersion(ctx context.Context, event VersionEvent) error
}

// VersionHub delivers events to in-process subscribers. Each subscriber
// holds at most one pending event; a slow subscriber only ever sees the
// newest version.
type VersionHub struct {
	mu     sync.Mutex
	subs   map[chan VersionEvent]struct{}
	logger logger.Interface
}

func NewVersionHub(log logger.Interface) *VersionHub {
	return &VersionHub{
		subs:   make(map[chan VersionEvent]struct{}),
		logger: log,
	}
}

var _ VersionPublisher = (*VersionHub)(nil)

// Subscribe returns a channel of events and a function that releases it.
func (h *VersionHub) Subscribe() (<-chan VersionEvent, func()) {
	ch := make(chan VersionEvent, 1)

	h.mu.Lock()
	h.subs[ch] = struct{}{}
	n := len(h.subs)
	h.mu.Unlock()
	metrics.StreamSubscribers.Set(float64(n))

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			h.mu.Lock()
			delete(h.subs, ch)
			n := len(h.subs)
			h.mu.Unlock()
			metrics.StreamSubscribers.Set(float64(n))
		})
	}
}

func (h *VersionHub) PublishVersion(_ context.Context, event VersionEvent) error {
	h.broadcast(event)
	return nil
}

func (h *VersionHub) broadcast(event VersionEvent) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for ch := range h.subs {
		select {
		case ch <- event:
			continue
		default:
		}
		// Replace the stale pending event.
		select {
		case <-ch:
		default:
		}
		select {
		case ch <- event:
		default:
		}
	}
	h.logger.Debugw("config version broadcast", "version", event.Version, "subscribers", len(h.subs))
}

func (h *VersionHub) Subscribers() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs)
}
