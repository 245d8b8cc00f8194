package ws

import (
	"io"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func closed(ch chan struct{}) bool {
	select {
	case <-ch:
		return true
	default:
		return false
	}
}

func TestHub_ReconnectReplacesOldClient(t *testing.T) {
	hub := NewHub(testLogger())
	go hub.Run()

	userID := uuid.New()
	first := NewClient(hub, nil, userID)
	second := NewClient(hub, nil, userID)

	hub.register <- first
	hub.register <- second

	// Registering a second connection for the same user shuts the
	// first one down.
	assert.Eventually(t, func() bool {
		return closed(first.done)
	}, time.Second, 10*time.Millisecond)

	// The first connection's deferred unregister arrives after the
	// replacement; the live second connection must survive it.
	hub.unregister <- first
	hub.Broadcast([]byte(`{"action":"create"}`))

	select {
	case data := <-second.send:
		assert.Equal(t, `{"action":"create"}`, string(data))
	case <-time.After(time.Second):
		t.Fatal("replacement client did not receive the broadcast")
	}
	assert.False(t, closed(second.done))

	// A normal disconnect of the live client still works.
	hub.unregister <- second
	assert.Eventually(t, func() bool {
		return closed(second.done)
	}, time.Second, 10*time.Millisecond)
}

func TestHub_UnregisterUnknownClientIsNoop(t *testing.T) {
	hub := NewHub(testLogger())
	go hub.Run()

	client := NewClient(hub, nil, uuid.New())
	hub.unregister <- client

	// Drive another hub cycle so the unregister above has been handled.
	hub.register <- client
	require.False(t, closed(client.done))
}
