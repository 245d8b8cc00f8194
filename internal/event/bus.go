package event

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// Bus is the publish side of the notification channel. Publish is
// fire-and-forget from the caller's point of view: delivery to zero,
// one or many subscribers is all valid and errors never reach the
// request path.
type Bus interface {
	Publish(ctx context.Context, evt *Event) error
}

// RedisBus broadcasts events over Redis pub/sub so fan-out keeps
// working when more than one instance serves WebSocket clients.
type RedisBus struct {
	rdb *redis.Client
	log *logrus.Logger
}

func NewRedisBus(rdb *redis.Client, log *logrus.Logger) *RedisBus {
	return &RedisBus{rdb: rdb, log: log}
}

func (b *RedisBus) Publish(ctx context.Context, evt *Event) error {
	data, err := json.Marshal(evt)
	if err != nil {
		return err
	}
	return b.rdb.Publish(ctx, TopicPosts, data).Err()
}

// Subscribe returns a channel of raw event payloads. The channel is
// closed when ctx is cancelled or the subscription drops.
func (b *RedisBus) Subscribe(ctx context.Context) <-chan []byte {
	sub := b.rdb.Subscribe(ctx, TopicPosts)
	out := make(chan []byte, 64)

	go func() {
		defer close(out)
		defer sub.Close()

		ch := sub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-ch:
				if !ok {
					return
				}
				select {
				case out <- []byte(msg.Payload):
				default:
					b.log.Warn("event bus: subscriber buffer full, dropping event")
				}
			}
		}
	}()

	return out
}
