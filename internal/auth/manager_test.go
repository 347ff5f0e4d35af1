package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/yourorg/stockroom/internal/models"
	"github.com/yourorg/stockroom/internal/storage"
)

func newTestManager(store storage.Store) *Manager {
	m := NewManager(store, 0)
	m.now = func() time.Time { return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC) }
	return m
}

func TestRegisterLogoutLogin(t *testing.T) {
	store := storage.NewMemoryStore()
	m := newTestManager(store)

	state := m.Register("Ann", "a@x.com", "abcdefgh", "abcdefgh")
	if !state.IsAuthenticated || state.User == nil || state.User.Email != "a@x.com" {
		t.Fatalf("register should sign in: %+v", state)
	}
	if state.Error != "" || state.IsLoading {
		t.Fatalf("register left flags dirty: %+v", state)
	}

	state = m.Logout()
	if state.IsAuthenticated || state.User != nil {
		t.Fatalf("logout should return to anonymous: %+v", state)
	}

	state = m.Login("a@x.com", "abcdefgh")
	if !state.IsAuthenticated || state.User.Email != "a@x.com" {
		t.Fatalf("login after logout failed: %+v", state)
	}
	if state.User.ID == "" || !strings.HasPrefix(state.User.ID, "user_") {
		t.Fatalf("unexpected user id %q", state.User.ID)
	}
}

func TestLoginUnknownEmail(t *testing.T) {
	m := newTestManager(storage.NewMemoryStore())
	state := m.Login("nobody@x.com", "whatever")
	if state.IsAuthenticated {
		t.Fatalf("login must fail for unknown email")
	}
	if state.Error != "Invalid email or password" {
		t.Fatalf("unexpected error %q", state.Error)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	store := storage.NewMemoryStore()
	m := newTestManager(store)
	m.Register("Ann", "a@x.com", "abcdefgh", "abcdefgh")
	m.Logout()

	state := m.Login("a@x.com", "wrongpass")
	if state.IsAuthenticated || state.Error != "Invalid email or password" {
		t.Fatalf("wrong password must fail identically to unknown email: %+v", state)
	}
}

func TestRegisterPasswordMismatchLeavesDirectoryUntouched(t *testing.T) {
	store := storage.NewMemoryStore()
	m := newTestManager(store)

	state := m.Register("Ann", "a@x.com", "abcdefgh", "different")
	if state.IsAuthenticated {
		t.Fatalf("mismatched registration must fail")
	}
	if state.Error != "Passwords do not match" {
		t.Fatalf("unexpected error %q", state.Error)
	}
	users := storage.LoadOr(store, "users", []models.StoredUser(nil))
	if len(users) != 0 {
		t.Fatalf("directory mutated by failed registration: %+v", users)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	store := storage.NewMemoryStore()
	m := newTestManager(store)
	m.Register("Ann", "a@x.com", "abcdefgh", "abcdefgh")

	state := m.Register("Ann Again", "a@x.com", "abcdefgh", "abcdefgh")
	if state.IsAuthenticated && state.User.Name == "Ann Again" {
		t.Fatalf("duplicate email must not register")
	}
	if state.Error != "User with this email already exists" {
		t.Fatalf("unexpected error %q", state.Error)
	}
	users := storage.LoadOr(store, "users", []models.StoredUser(nil))
	if len(users) != 1 {
		t.Fatalf("expected 1 directory entry, got %d", len(users))
	}
}

func TestPasswordsAreNotStoredInPlaintext(t *testing.T) {
	store := storage.NewMemoryStore()
	m := newTestManager(store)
	m.Register("Ann", "a@x.com", "abcdefgh", "abcdefgh")

	users := storage.LoadOr(store, "users", []models.StoredUser(nil))
	if len(users) != 1 {
		t.Fatalf("expected 1 stored user")
	}
	if users[0].PasswordHash == "abcdefgh" || users[0].PasswordHash == "" {
		t.Fatalf("password stored without hashing")
	}
}

func TestSessionOmitsCredentials(t *testing.T) {
	store := storage.NewMemoryStore()
	m := newTestManager(store)
	m.Register("Ann", "a@x.com", "abcdefgh", "abcdefgh")

	var raw map[string]any
	if !store.Load("user", &raw) {
		t.Fatalf("session not persisted")
	}
	for k := range raw {
		if strings.Contains(strings.ToLower(k), "password") {
			t.Fatalf("session record leaks credential field %q", k)
		}
	}
}

func TestSessionRestoreOnStartup(t *testing.T) {
	store := storage.NewMemoryStore()
	first := newTestManager(store)
	first.Register("Ann", "a@x.com", "abcdefgh", "abcdefgh")

	// a new manager over the same store trusts the persisted session
	second := NewManager(store, 0)
	state := second.State()
	if !state.IsAuthenticated || state.User.Email != "a@x.com" {
		t.Fatalf("session not restored: %+v", state)
	}
}

func TestLogoutClearsPersistedSession(t *testing.T) {
	store := storage.NewMemoryStore()
	m := newTestManager(store)
	m.Register("Ann", "a@x.com", "abcdefgh", "abcdefgh")
	m.Logout()

	var u models.User
	if store.Load("user", &u) {
		t.Fatalf("session key still present after logout")
	}
	if NewManager(store, 0).State().IsAuthenticated {
		t.Fatalf("restarted manager should be anonymous after logout")
	}
}

func TestFailedLoginClearsPreviousError(t *testing.T) {
	store := storage.NewMemoryStore()
	m := newTestManager(store)
	m.Register("Ann", "a@x.com", "abcdefgh", "abcdefgh")
	m.Logout()

	m.Login("a@x.com", "bad")
	state := m.Login("a@x.com", "abcdefgh")
	if !state.IsAuthenticated || state.Error != "" {
		t.Fatalf("stale error survived a successful login: %+v", state)
	}
}

func TestSimulatedLatencyIsObserved(t *testing.T) {
	store := storage.NewMemoryStore()
	m := NewManager(store, 25*time.Millisecond)
	slept := time.Duration(0)
	m.sleep = func(d time.Duration) { slept = d }

	m.Login("a@x.com", "x")
	if slept != 25*time.Millisecond {
		t.Fatalf("latency not applied: %v", slept)
	}
}
