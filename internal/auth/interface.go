package auth

import (
	"context"

	"personal-task-planner/internal/model"
)

// UseCase manages the signed-in account and its profile. At most one
// account is active at a time; signing in replaces the previous session.
type UseCase interface {
	// Login activates the account, creating a profile on first sign-in.
	// The session survives restarts until Logout is called.
	Login(ctx context.Context, input LoginInput) (LoginOutput, error)

	// Logout ends the session. Profiles and task data are kept.
	Logout(ctx context.Context) error

	// Current returns the signed-in profile, or ErrNotLoggedIn.
	Current(ctx context.Context) (Profile, error)

	// UpdateProfile patches the signed-in profile. Zero-valued fields are
	// left unchanged.
	UpdateProfile(ctx context.Context, input UpdateProfileInput) (UpdateProfileOutput, error)

	// Restore re-activates the session persisted by the last Login, if any.
	// Called once at startup.
	Restore(ctx context.Context) error
}

// SessionHook is notified when the active account changes, so dependent
// stores can swap their per-user data. The tasks use case implements it.
type SessionHook interface {
	SetActiveUser(ctx context.Context, sc model.Scope) error
	ClearActiveUser(ctx context.Context) error
}
