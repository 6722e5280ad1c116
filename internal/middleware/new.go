package middleware

import (
	"porter-saathi/pkg/log"
)

// Config tunes the HTTP middleware chain.
type Config struct {
	RateLimitPerMin int
	AllowedOrigins  []string
}

type Middleware struct {
	l              log.Logger
	limiter        *rateLimiter
	allowedOrigins map[string]bool
}

func New(l log.Logger, cfg Config) Middleware {
	origins := make(map[string]bool, len(cfg.AllowedOrigins))
	for _, o := range cfg.AllowedOrigins {
		origins[o] = true
	}
	return Middleware{
		l:              l,
		limiter:        newRateLimiter(cfg.RateLimitPerMin),
		allowedOrigins: origins,
	}
}
