package middleware

import (
	"golang.org/x/time/rate"

	"personal-task-planner/internal/auth"
	"personal-task-planner/pkg/log"
)

type Middleware struct {
	l       log.Logger
	authUC  auth.UseCase
	limiter *rate.Limiter
}

// New creates the middleware set. rps bounds the request rate across all
// clients; burst allows short spikes above it.
func New(l log.Logger, authUC auth.UseCase, rps float64, burst int) Middleware {
	return Middleware{
		l:       l,
		authUC:  authUC,
		limiter: rate.NewLimiter(rate.Limit(rps), burst),
	}
}
