package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"personal-task-planner/internal/auth"
	"personal-task-planner/internal/clock"
	"personal-task-planner/internal/model"
	"personal-task-planner/internal/storage"
	"personal-task-planner/pkg/log"
)

type mockLogger struct{}

func (mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (mockLogger) Debugf(ctx context.Context, template string, arg ...any) {}
func (mockLogger) Info(ctx context.Context, arg ...any)                    {}
func (mockLogger) Infof(ctx context.Context, template string, arg ...any)  {}
func (mockLogger) Warn(ctx context.Context, arg ...any)                    {}
func (mockLogger) Warnf(ctx context.Context, template string, arg ...any)  {}
func (mockLogger) Error(ctx context.Context, arg ...any)                   {}
func (mockLogger) Errorf(ctx context.Context, template string, arg ...any) {}
func (mockLogger) Fatal(ctx context.Context, arg ...any)                   {}
func (mockLogger) Fatalf(ctx context.Context, template string, arg ...any) {}
func (mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

var _ log.Logger = mockLogger{}

// mockHook records session hand-offs.
type mockHook struct {
	active  model.Scope
	sets    int
	clears  int
	failSet bool
}

func (m *mockHook) SetActiveUser(ctx context.Context, sc model.Scope) error {
	if m.failSet {
		return errors.New("hook failure")
	}
	m.active = sc
	m.sets++
	return nil
}

func (m *mockHook) ClearActiveUser(ctx context.Context) error {
	m.active = model.Scope{}
	m.clears++
	return nil
}

var testNow = time.Date(2024, 6, 10, 7, 30, 0, 0, time.UTC)

func newAuth(hook *mockHook, kv storage.KV) *implUseCase {
	if kv == nil {
		kv = storage.NewMemory()
	}
	return New(mockLogger{}, kv, hook, clock.Fixed(testNow))
}

func TestLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("First Sign In Creates Profile", func(t *testing.T) {
		hook := &mockHook{}
		uc := newAuth(hook, nil)

		out, err := uc.Login(ctx, auth.LoginInput{Email: "Alice@Example.com", Name: "alice liddell"})
		if err != nil {
			t.Fatalf("Login: %v", err)
		}
		if out.Profile.Email != "alice@example.com" {
			t.Errorf("email not lower-cased: %q", out.Profile.Email)
		}
		if out.Profile.AvatarLetter != "A" {
			t.Errorf("avatar letter = %q, want A", out.Profile.AvatarLetter)
		}
		if out.Profile.Color == "" {
			t.Error("expected default color")
		}
		if out.Profile.CreatedAt != testNow.UnixMilli() {
			t.Errorf("CreatedAt = %d, want %d", out.Profile.CreatedAt, testNow.UnixMilli())
		}
		if hook.active.UserID != "alice@example.com" {
			t.Errorf("hook not notified, active = %+v", hook.active)
		}
	})

	t.Run("Second Sign In Keeps Profile", func(t *testing.T) {
		hook := &mockHook{}
		kv := storage.NewMemory()
		uc := newAuth(hook, kv)

		first, err := uc.Login(ctx, auth.LoginInput{Email: "bob@example.com", Name: "Bob"})
		if err != nil {
			t.Fatalf("first Login: %v", err)
		}
		if err := uc.Logout(ctx); err != nil {
			t.Fatalf("Logout: %v", err)
		}

		second, err := uc.Login(ctx, auth.LoginInput{Email: "bob@example.com", Name: "Robert"})
		if err != nil {
			t.Fatalf("second Login: %v", err)
		}
		if second.Profile.Name != first.Profile.Name {
			t.Errorf("profile name overwritten on re-login: %q", second.Profile.Name)
		}
		if second.Profile.CreatedAt != first.Profile.CreatedAt {
			t.Error("CreatedAt changed on re-login")
		}
	})

	t.Run("Validation", func(t *testing.T) {
		uc := newAuth(&mockHook{}, nil)

		if _, err := uc.Login(ctx, auth.LoginInput{Email: "  ", Name: "x"}); !errors.Is(err, auth.ErrEmptyEmail) {
			t.Errorf("blank email: got %v", err)
		}
		if _, err := uc.Login(ctx, auth.LoginInput{Email: "not-an-address", Name: "x"}); !errors.Is(err, auth.ErrInvalidEmail) {
			t.Errorf("malformed email: got %v", err)
		}
		if _, err := uc.Login(ctx, auth.LoginInput{Email: "a@b.com", Name: ""}); !errors.Is(err, auth.ErrEmptyName) {
			t.Errorf("blank name: got %v", err)
		}
	})

	t.Run("Hook Failure Aborts Login", func(t *testing.T) {
		hook := &mockHook{failSet: true}
		uc := newAuth(hook, nil)

		if _, err := uc.Login(ctx, auth.LoginInput{Email: "a@b.com", Name: "A"}); err == nil {
			t.Fatal("expected error from failing hook")
		}
	})
}

func TestLogout(t *testing.T) {
	ctx := context.Background()

	t.Run("Requires Session", func(t *testing.T) {
		uc := newAuth(&mockHook{}, nil)
		if err := uc.Logout(ctx); !errors.Is(err, auth.ErrNotLoggedIn) {
			t.Errorf("got %v, want ErrNotLoggedIn", err)
		}
	})

	t.Run("Clears Hook And Current", func(t *testing.T) {
		hook := &mockHook{}
		uc := newAuth(hook, nil)
		if _, err := uc.Login(ctx, auth.LoginInput{Email: "a@b.com", Name: "A"}); err != nil {
			t.Fatalf("Login: %v", err)
		}
		if err := uc.Logout(ctx); err != nil {
			t.Fatalf("Logout: %v", err)
		}
		if hook.clears != 1 {
			t.Errorf("hook.clears = %d, want 1", hook.clears)
		}
		if _, err := uc.Current(ctx); !errors.Is(err, auth.ErrNotLoggedIn) {
			t.Errorf("Current after logout: %v", err)
		}
	})
}

func TestUpdateProfile(t *testing.T) {
	ctx := context.Background()
	hook := &mockHook{}
	uc := newAuth(hook, nil)

	if _, err := uc.UpdateProfile(ctx, auth.UpdateProfileInput{Name: "x"}); !errors.Is(err, auth.ErrNotLoggedIn) {
		t.Fatalf("update without session: %v", err)
	}

	if _, err := uc.Login(ctx, auth.LoginInput{Email: "a@b.com", Name: "Alice"}); err != nil {
		t.Fatalf("Login: %v", err)
	}

	out, err := uc.UpdateProfile(ctx, auth.UpdateProfileInput{Name: "nina", Age: 30})
	if err != nil {
		t.Fatalf("UpdateProfile: %v", err)
	}
	if out.Profile.Name != "nina" || out.Profile.Age != 30 {
		t.Errorf("patch not applied: %+v", out.Profile)
	}
	if out.Profile.AvatarLetter != "N" {
		t.Errorf("avatar letter not refreshed: %q", out.Profile.AvatarLetter)
	}
	if out.Profile.Email != "a@b.com" {
		t.Errorf("email changed: %q", out.Profile.Email)
	}

	// Zero values keep stored fields.
	out, err = uc.UpdateProfile(ctx, auth.UpdateProfileInput{Color: "#FF0000"})
	if err != nil {
		t.Fatalf("UpdateProfile: %v", err)
	}
	if out.Profile.Name != "nina" || out.Profile.Age != 30 {
		t.Errorf("zero-valued patch clobbered fields: %+v", out.Profile)
	}
	if out.Profile.Color != "#FF0000" {
		t.Errorf("color not applied: %q", out.Profile.Color)
	}
}

func TestRestore(t *testing.T) {
	ctx := context.Background()

	t.Run("No Persisted Session", func(t *testing.T) {
		uc := newAuth(&mockHook{}, nil)
		if err := uc.Restore(ctx); err != nil {
			t.Fatalf("Restore: %v", err)
		}
		if _, err := uc.Current(ctx); !errors.Is(err, auth.ErrNotLoggedIn) {
			t.Errorf("Current: %v", err)
		}
	})

	t.Run("Session Survives Restart", func(t *testing.T) {
		kv := storage.NewMemory()
		first := newAuth(&mockHook{}, kv)
		if _, err := first.Login(ctx, auth.LoginInput{Email: "a@b.com", Name: "Alice"}); err != nil {
			t.Fatalf("Login: %v", err)
		}

		hook := &mockHook{}
		second := newAuth(hook, kv)
		if err := second.Restore(ctx); err != nil {
			t.Fatalf("Restore: %v", err)
		}
		profile, err := second.Current(ctx)
		if err != nil {
			t.Fatalf("Current: %v", err)
		}
		if profile.Email != "a@b.com" {
			t.Errorf("restored wrong profile: %+v", profile)
		}
		if hook.sets != 1 {
			t.Errorf("hook.sets = %d, want 1", hook.sets)
		}
	})

	t.Run("Logout Ends Persisted Session", func(t *testing.T) {
		kv := storage.NewMemory()
		first := newAuth(&mockHook{}, kv)
		if _, err := first.Login(ctx, auth.LoginInput{Email: "a@b.com", Name: "Alice"}); err != nil {
			t.Fatalf("Login: %v", err)
		}
		if err := first.Logout(ctx); err != nil {
			t.Fatalf("Logout: %v", err)
		}

		second := newAuth(&mockHook{}, kv)
		if err := second.Restore(ctx); err != nil {
			t.Fatalf("Restore: %v", err)
		}
		if _, err := second.Current(ctx); !errors.Is(err, auth.ErrNotLoggedIn) {
			t.Errorf("session restored after logout: %v", err)
		}
	})
}
