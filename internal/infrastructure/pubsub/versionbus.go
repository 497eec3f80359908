package pubsub

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/lumenhq/lumen/internal/shared/logger"
)

const versionChannel = "lumen:config:version"

// RedisVersionBus relays version events between server instances sharing a
// database, so displays connected to any instance learn about every bump.
type RedisVersionBus struct {
	client     *redis.Client
	hub        *VersionHub
	logger     logger.Interface
	instanceID string // filters out our own publications
}

func NewRedisVersionBus(client *redis.Client, hub *VersionHub, logger logger.Interface) *RedisVersionBus {
	return &RedisVersionBus{
		client:     client,
		hub:        hub,
		logger:     logger,
		instanceID: uuid.NewString(),
	}
}

var _ VersionPublisher = (*RedisVersionBus)(nil)

// PublishVersion delivers locally, then to other instances. Local delivery
// happens even when Redis is unavailable.
func (b *RedisVersionBus) PublishVersion(ctx context.Context, event VersionEvent) error {
	b.hub.broadcast(event)

	event.InstanceID = b.instanceID
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal version event: %w", err)
	}
	if err := b.client.Publish(ctx, versionChannel, data).Err(); err != nil {
		b.logger.Errorw("failed to publish version event",
			"version", event.Version,
			"error", err,
		)
		return fmt.Errorf("failed to publish version event: %w", err)
	}
	return nil
}

// Run relays remote events into the local hub until ctx is done,
// reconnecting with exponential backoff.
func (b *RedisVersionBus) Run(ctx context.Context) error {
	backoff := time.Second
	maxBackoff := 30 * time.Second

	for {
		err := b.subscribe(ctx)
		if ctx.Err() != nil {
			return ctx.Err()
		}

		b.logger.Warnw("version subscription disconnected, reconnecting",
			"channel", versionChannel,
			"error", err,
			"backoff", backoff,
		)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(backoff):
		}

		backoff = min(backoff*2, maxBackoff)
	}
}

func (b *RedisVersionBus) subscribe(ctx context.Context) error {
	sub := b.client.Subscribe(ctx, versionChannel)
	defer sub.Close()

	if _, err := sub.Receive(ctx); err != nil {
		return fmt.Errorf("failed to subscribe to channel %s: %w", versionChannel, err)
	}
	b.logger.Infow("subscribed to version channel", "channel", versionChannel)

	ch := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case msg, ok := <-ch:
			if !ok {
				b.logger.Warnw("version channel closed", "channel", versionChannel)
				return nil
			}

			var event VersionEvent
			if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
				b.logger.Warnw("failed to unmarshal version event",
					"payload", msg.Payload,
					"error", err,
				)
				continue
			}
			if event.InstanceID == b.instanceID {
				continue
			}
			event.InstanceID = ""
			b.hub.broadcast(event)
		}
	}
}
