package middleware

import (
	"voice-task-management/pkg/log"
)

// Config holds middleware settings.
type Config struct {
	RequestsPerMin int // per client IP; 0 disables rate limiting
}

type Middleware struct {
	l       log.Logger
	limiter *rateLimiter
}

func New(l log.Logger, cfg Config) Middleware {
	mw := Middleware{l: l}
	if cfg.RequestsPerMin > 0 {
		mw.limiter = newRateLimiter(cfg.RequestsPerMin)
	}
	return mw
}
