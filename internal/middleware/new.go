package middleware

import (
	"task-quick-add/pkg/log"
)

// RateLimitConfig controls the per-client request budget.
type RateLimitConfig struct {
	Enabled        bool
	RequestsPerMin int
}

type Middleware struct {
	l       log.Logger
	limiter *rateLimiter // nil when rate limiting is disabled
}

func New(l log.Logger, cfg RateLimitConfig) Middleware {
	mw := Middleware{l: l}
	if cfg.Enabled && cfg.RequestsPerMin > 0 {
		mw.limiter = newRateLimiter(cfg.RequestsPerMin)
	}
	return mw
}
