package realtime

import (
	"context"
	"encoding/json"
	"fmt"

	"fitnesshub/fitness-app/internal/domain"

	"github.com/go-redis/redis/v8"
	log "github.com/sirupsen/logrus"
)

const (
	DefaultChannel   = "feed:events"
	subscriberBuffer = 32
)

// PubSubClient is the part of the redis client the broker needs.
type PubSubClient interface {
	Publish(ctx context.Context, channel string, message interface{}) *redis.IntCmd
	Subscribe(ctx context.Context, channels ...string) *redis.PubSub
}

// Broker fans feed events out through a redis channel so every server
// instance can relay them to its own stream clients.
type Broker struct {
	client  PubSubClient
	channel string
}

func NewBroker(client PubSubClient, channel string) *Broker {
	if channel == "" {
		channel = DefaultChannel
	}
	return &Broker{
		client:  client,
		channel: channel,
	}
}

func (b *Broker) Publish(ctx context.Context, event domain.FeedEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal feed event: %w", err)
	}
	if err := b.client.Publish(ctx, b.channel, string(payload)).Err(); err != nil {
		return fmt.Errorf("publish to %s: %w", b.channel, err)
	}
	return nil
}

// Subscribe returns events published after the subscription is confirmed.
// The channel is closed when ctx is done.
func (b *Broker) Subscribe(ctx context.Context) (<-chan domain.FeedEvent, error) {
	pubsub := b.client.Subscribe(ctx, b.channel)
	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()
		return nil, fmt.Errorf("subscribe to %s: %w", b.channel, err)
	}

	out := make(chan domain.FeedEvent, subscriberBuffer)
	go func() {
		defer close(out)
		defer func() {
			if err := pubsub.Close(); err != nil {
				log.Debugf("close feed subscription: %s", err)
			}
		}()
		relay(ctx, pubsub.Channel(), out)
	}()
	return out, nil
}

// relay decodes messages until msgs is closed or ctx is done. Malformed
// payloads are skipped.
func relay(ctx context.Context, msgs <-chan *redis.Message, out chan<- domain.FeedEvent) {
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-msgs:
			if !ok {
				return
			}
			var event domain.FeedEvent
			if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
				log.Warnf("skip malformed feed event on %s: %s", msg.Channel, err)
				continue
			}
			select {
			case out <- event:
			case <-ctx.Done():
				return
			}
		}
	}
}
