package usecase

import (
	"sync"

	"personal-task-planner/internal/auth"
	"personal-task-planner/internal/clock"
	"personal-task-planner/internal/storage"
	"personal-task-planner/pkg/log"
)

const (
	sessionKey    = "session"
	profilePrefix = "profile:"

	defaultColor = "#2563EB"
)

type implUseCase struct {
	l    log.Logger
	kv   storage.KV
	hook auth.SessionHook
	clk  clock.Clock

	mu      sync.Mutex
	current *auth.Profile
}

var _ auth.UseCase = &implUseCase{}

// New creates the auth use case on top of a key-value store. hook is
// notified on every session change and may be nil.
func New(l log.Logger, kv storage.KV, hook auth.SessionHook, clk clock.Clock) *implUseCase {
	if kv == nil {
		panic("auth usecase: nil storage")
	}
	return &implUseCase{
		l:    l,
		kv:   kv,
		hook: hook,
		clk:  clk,
	}
}
