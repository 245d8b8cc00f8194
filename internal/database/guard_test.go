package database

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sony/gobreaker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGuard(timeout time.Duration) *Guard {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return NewGuard("test", timeout, log)
}

func TestGuard_Do(t *testing.T) {
	t.Run("passes success and failure through", func(t *testing.T) {
		g := newTestGuard(time.Second)

		require.NoError(t, g.Do(context.Background(), func(ctx context.Context) error {
			return nil
		}))

		want := errors.New("boom")
		err := g.Do(context.Background(), func(ctx context.Context) error {
			return want
		})
		assert.ErrorIs(t, err, want)
	})

	t.Run("applies the call timeout", func(t *testing.T) {
		g := newTestGuard(20 * time.Millisecond)

		err := g.Do(context.Background(), func(ctx context.Context) error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(time.Second):
				return nil
			}
		})
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	})

	t.Run("opens after sustained failures", func(t *testing.T) {
		g := newTestGuard(time.Second)
		boom := errors.New("down")

		for i := 0; i < 5; i++ {
			_ = g.Do(context.Background(), func(ctx context.Context) error {
				return boom
			})
		}

		called := false
		err := g.Do(context.Background(), func(ctx context.Context) error {
			called = true
			return nil
		})
		assert.ErrorIs(t, err, gobreaker.ErrOpenState)
		assert.False(t, called)
	})
}
