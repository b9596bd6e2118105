package rate

import (
	"golang.org/x/time/rate"
)

// NewMailLimiter returns the per-request limiter for mail service calls.
// rps <= 0 disables limiting.
func NewMailLimiter(rps int) *rate.Limiter {
	if rps <= 0 {
		return rate.NewLimiter(rate.Inf, 0)
	}
	return rate.NewLimiter(rate.Limit(rps), rps)
}
