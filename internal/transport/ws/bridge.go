package ws

import (
	"context"

	"github.com/vedran77/feedline/internal/event"
)

// Bridge wires the Redis event bus into the hub: every post event
// published by any instance reaches the clients connected here. Runs
// until ctx is cancelled or the subscription drops.
func Bridge(ctx context.Context, hub *Hub, bus *event.RedisBus) {
	go func() {
		for data := range bus.Subscribe(ctx) {
			hub.Broadcast(data)
		}
		hub.log.Warn("ws bridge: event subscription closed")
	}()
}
