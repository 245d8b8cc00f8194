package database

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sony/gobreaker"
)

// Guard wraps every store call with a per-call timeout and a circuit
// breaker, so a stalled database surfaces as an error instead of hanging
// the request.
type Guard struct {
	cb      *gobreaker.CircuitBreaker
	timeout time.Duration
}

func NewGuard(name string, timeout time.Duration, log *logrus.Logger) *Guard {
	st := gobreaker.Settings{
		Name:        name,
		MaxRequests: 1,
		Interval:    10 * time.Second,
		Timeout:     30 * time.Second,

		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= 5 && failureRatio >= 0.5
		},

		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			log.Warnf("circuit breaker %s changed from %s to %s", name, from, to)
		},
	}

	return &Guard{
		cb:      gobreaker.NewCircuitBreaker(st),
		timeout: timeout,
	}
}

// Do runs fn under the breaker with the guard's timeout applied to ctx.
func (g *Guard) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	_, err := g.cb.Execute(func() (any, error) {
		cctx, cancel := context.WithTimeout(ctx, g.timeout)
		defer cancel()
		return nil, fn(cctx)
	})
	return err
}
