package translation

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/sony/gobreaker"
)

// breakerBackend stops calling a failing backend for a cooldown period so
// a dead endpoint does not cost one round trip per field.
type breakerBackend struct {
	next Backend
	cb   *gobreaker.CircuitBreaker
}

// WithCircuitBreaker wraps next so that failures consecutive failures open
// the circuit for cooldown. Calls made while the circuit is open fail with
// gobreaker.ErrOpenState.
func WithCircuitBreaker(next Backend, failures uint32, cooldown time.Duration) Backend {
	settings := gobreaker.Settings{
		Name:        next.Name(),
		MaxRequests: 1,
		Timeout:     cooldown,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= failures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Warn().
				Str("backend", name).
				Str("from", from.String()).
				Str("to", to.String()).
				Msg("Translation circuit breaker changed state")
		},
	}

	return &breakerBackend{
		next: next,
		cb:   gobreaker.NewCircuitBreaker(settings),
	}
}

func (b *breakerBackend) Translate(ctx context.Context, text string) (string, error) {
	res, err := b.cb.Execute(func() (interface{}, error) {
		return b.next.Translate(ctx, text)
	})
	if err != nil {
		return "", fmt.Errorf("%s: %w", b.next.Name(), err)
	}
	return res.(string), nil
}

func (b *breakerBackend) Name() string {
	return b.next.Name()
}
