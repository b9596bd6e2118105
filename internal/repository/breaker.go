package repository

import (
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sony/gobreaker"

	"unidash-be/config"
)

// NewStoreBreaker guards a Mongo collection. It opens after more than
// cfg.StoreBreakerFailures consecutive failures and probes again after cfg.StoreBreakerTimeout.
func NewStoreBreaker(name string, cfg *config.Config, log logrus.FieldLogger) *gobreaker.CircuitBreaker {
	failures := uint32(3)
	if cfg.StoreBreakerFailures > 0 {
		failures = uint32(cfg.StoreBreakerFailures)
	}
	timeout := 5 * time.Second
	if cfg.StoreBreakerTimeout > 0 {
		timeout = cfg.StoreBreakerTimeout
	}

	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        name,
		MaxRequests: 1,
		Timeout:     timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures > failures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.WithFields(logrus.Fields{
				"breaker": name,
				"from":    from.String(),
				"to":      to.String(),
			}).Warn("circuit breaker state changed")
		},
	})
}

// execute runs fn through cb; a nil breaker calls fn directly.
func execute[T any](cb *gobreaker.CircuitBreaker, fn func() (T, error)) (T, error) {
	if cb == nil {
		return fn()
	}
	res, err := cb.Execute(func() (interface{}, error) {
		return fn()
	})
	if err != nil {
		var zero T
		return zero, err
	}
	out, _ := res.(T)
	return out, nil
}
