package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"net/mail"
	"strings"
	"unicode"

	"personal-task-planner/internal/auth"
	"personal-task-planner/internal/model"
	"personal-task-planner/internal/storage"
)

// Login activates the account for input.Email, creating a profile on first
// sign-in. The session email is persisted so a restart restores the session.
func (uc *implUseCase) Login(ctx context.Context, input auth.LoginInput) (auth.LoginOutput, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	name := strings.TrimSpace(input.Name)
	if email == "" {
		return auth.LoginOutput{}, auth.ErrEmptyEmail
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return auth.LoginOutput{}, auth.ErrInvalidEmail
	}
	if name == "" {
		return auth.LoginOutput{}, auth.ErrEmptyName
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	profile, err := uc.loadProfile(ctx, email)
	if err != nil {
		return auth.LoginOutput{}, err
	}
	if profile == nil {
		profile = &auth.Profile{
			Name:         name,
			Email:        email,
			Color:        defaultColor,
			AvatarLetter: avatarLetter(name),
			CreatedAt:    uc.clk.Now().UnixMilli(),
		}
		if err := uc.saveProfile(ctx, *profile); err != nil {
			return auth.LoginOutput{}, err
		}
	}

	if err := uc.kv.Set(ctx, sessionKey, []byte(email)); err != nil {
		uc.l.Errorf(ctx, "auth/usecase.Login persist session: %v", err)
		return auth.LoginOutput{}, err
	}
	uc.current = profile

	if uc.hook != nil {
		sc := model.Scope{UserID: profile.Email, Name: profile.Name}
		if err := uc.hook.SetActiveUser(ctx, sc); err != nil {
			uc.l.Errorf(ctx, "auth/usecase.Login session hook: %v", err)
			return auth.LoginOutput{}, err
		}
	}

	uc.l.Infof(ctx, "auth: %s logged in", profile.Email)
	return auth.LoginOutput{Profile: *profile}, nil
}

// Logout ends the session. The profile and the user's task blob stay in
// storage for the next sign-in.
func (uc *implUseCase) Logout(ctx context.Context) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if uc.current == nil {
		return auth.ErrNotLoggedIn
	}

	if uc.hook != nil {
		if err := uc.hook.ClearActiveUser(ctx); err != nil {
			uc.l.Errorf(ctx, "auth/usecase.Logout session hook: %v", err)
			return err
		}
	}

	if err := uc.kv.Delete(ctx, sessionKey); err != nil && !errors.Is(err, storage.ErrKeyNotFound) {
		uc.l.Errorf(ctx, "auth/usecase.Logout drop session: %v", err)
		return err
	}

	uc.l.Infof(ctx, "auth: %s logged out", uc.current.Email)
	uc.current = nil
	return nil
}

// Current returns the signed-in profile.
func (uc *implUseCase) Current(ctx context.Context) (auth.Profile, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if uc.current == nil {
		return auth.Profile{}, auth.ErrNotLoggedIn
	}
	return *uc.current, nil
}

// UpdateProfile patches the signed-in profile in place. Zero-valued input
// fields keep the stored value.
func (uc *implUseCase) UpdateProfile(ctx context.Context, input auth.UpdateProfileInput) (auth.UpdateProfileOutput, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if uc.current == nil {
		return auth.UpdateProfileOutput{}, auth.ErrNotLoggedIn
	}

	profile := *uc.current
	if name := strings.TrimSpace(input.Name); name != "" {
		profile.Name = name
		profile.AvatarLetter = avatarLetter(name)
	}
	if phone := strings.TrimSpace(input.Phone); phone != "" {
		profile.Phone = phone
	}
	if input.Age > 0 {
		profile.Age = input.Age
	}
	if color := strings.TrimSpace(input.Color); color != "" {
		profile.Color = color
	}

	if err := uc.saveProfile(ctx, profile); err != nil {
		return auth.UpdateProfileOutput{}, err
	}
	uc.current = &profile

	return auth.UpdateProfileOutput{Profile: profile}, nil
}

// Restore re-activates the session persisted by the last Login, if any.
// Called once at startup; a missing session key is not an error.
func (uc *implUseCase) Restore(ctx context.Context) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	raw, err := uc.kv.Get(ctx, sessionKey)
	if errors.Is(err, storage.ErrKeyNotFound) {
		return nil
	}
	if err != nil {
		uc.l.Errorf(ctx, "auth/usecase.Restore read session: %v", err)
		return err
	}

	email := string(raw)
	profile, err := uc.loadProfile(ctx, email)
	if err != nil {
		return err
	}
	if profile == nil {
		// Stale session pointing at a deleted profile. Drop it.
		uc.l.Warnf(ctx, "auth: dropping stale session for %s", email)
		return uc.kv.Delete(ctx, sessionKey)
	}

	uc.current = profile
	if uc.hook != nil {
		sc := model.Scope{UserID: profile.Email, Name: profile.Name}
		if err := uc.hook.SetActiveUser(ctx, sc); err != nil {
			uc.l.Errorf(ctx, "auth/usecase.Restore session hook: %v", err)
			uc.current = nil
			return err
		}
	}

	uc.l.Infof(ctx, "auth: restored session for %s", profile.Email)
	return nil
}

func (uc *implUseCase) loadProfile(ctx context.Context, email string) (*auth.Profile, error) {
	raw, err := uc.kv.Get(ctx, profilePrefix+email)
	if errors.Is(err, storage.ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		uc.l.Errorf(ctx, "auth/usecase.loadProfile: %v", err)
		return nil, err
	}

	var profile auth.Profile
	if err := json.Unmarshal(raw, &profile); err != nil {
		uc.l.Errorf(ctx, "auth/usecase.loadProfile unmarshal: %v", err)
		return nil, err
	}
	return &profile, nil
}

func (uc *implUseCase) saveProfile(ctx context.Context, profile auth.Profile) error {
	raw, err := json.Marshal(profile)
	if err != nil {
		return err
	}
	if err := uc.kv.Set(ctx, profilePrefix+profile.Email, raw); err != nil {
		uc.l.Errorf(ctx, "auth/usecase.saveProfile: %v", err)
		return err
	}
	return nil
}

func avatarLetter(name string) string {
	for _, r := range name {
		if !unicode.IsSpace(r) {
			return string(unicode.ToUpper(r))
		}
	}
	return ""
}
