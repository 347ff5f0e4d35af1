// Package auth manages the local session: login and registration against a
// locally stored user directory, and session restore across restarts.
//
// Failures surface through the state's Error field, mirroring how the rest
// of the application reads state snapshots; they are never returned as Go
// errors across the package boundary.
package auth

import (
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/yourorg/stockroom/internal/apperrors"
	"github.com/yourorg/stockroom/internal/id"
	"github.com/yourorg/stockroom/internal/models"
	"github.com/yourorg/stockroom/internal/storage"
)

const (
	usersKey   = "users"
	sessionKey = "user"
)

// State is a snapshot of the session. IsAuthenticated is true iff User is
// present.
type State struct {
	User            *models.User
	IsAuthenticated bool
	IsLoading       bool
	Error           string
}

// Manager drives the anonymous -> authenticating -> authenticated state
// machine. There is no guard against overlapping Login/Register calls; the
// most recently completing call's effect wins, matching single-threaded
// presentation use.
type Manager struct {
	mu    sync.Mutex
	store storage.Store
	state State

	// Delay simulates credential-check latency. Zero in tests.
	delay time.Duration
	sleep func(time.Duration)
	now   func() time.Time
	newID func() string
}

// NewManager restores a previously persisted session if one exists
// (trust-on-read, no re-validation) and otherwise starts anonymous.
func NewManager(store storage.Store, delay time.Duration) *Manager {
	m := &Manager{
		store: store,
		delay: delay,
		sleep: time.Sleep,
		now:   time.Now,
		newID: id.NewUserID,
	}
	var u models.User
	if store.Load(sessionKey, &u) {
		m.state = State{User: &u, IsAuthenticated: true}
	}
	return m
}

// State returns a snapshot of the session state.
func (m *Manager) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.snapshot()
}

func (m *Manager) snapshot() State {
	s := m.state
	if m.state.User != nil {
		u := *m.state.User
		s.User = &u
	}
	return s
}

// Login checks email and password against the stored user directory. On a
// match the session is persisted and the state becomes authenticated; on a
// miss the state returns to anonymous with the error set. The returned
// snapshot is the post-transition state.
func (m *Manager) Login(email, password string) State {
	m.begin()
	m.sleep(m.delay)

	users := storage.LoadOr[[]models.StoredUser](m.store, usersKey, nil)
	for _, u := range users {
		if u.Email != email {
			continue
		}
		if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
			continue
		}
		return m.establishSession(u.Session())
	}
	return m.fail(apperrors.NewInvalidCredentialsError().Error())
}

// Register validates the confirmation, rejects duplicate emails, then
// appends the new user to the directory and signs them in. On mismatch or
// duplicate the directory is left untouched.
func (m *Manager) Register(name, email, password, confirmPassword string) State {
	m.begin()
	m.sleep(m.delay)

	if password != confirmPassword {
		return m.fail(apperrors.NewPasswordMismatchError().Error())
	}

	users := storage.LoadOr[[]models.StoredUser](m.store, usersKey, nil)
	for _, u := range users {
		if u.Email == email {
			return m.fail(apperrors.NewDuplicateEmailError(email).Error())
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return m.fail("Registration failed")
	}

	stored := models.StoredUser{
		ID:           m.newID(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    m.now(),
	}
	users = append(users, stored)
	m.store.Save(usersKey, users)

	return m.establishSession(stored.Session())
}

// Logout clears the persisted session and returns to anonymous. It cannot
// fail.
func (m *Manager) Logout() State {
	m.store.Remove(sessionKey)
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state = State{}
	return m.snapshot()
}

// begin enters the authenticating sub-state: loading on, error cleared.
func (m *Manager) begin() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state.IsLoading = true
	m.state.Error = ""
}

func (m *Manager) establishSession(u models.User) State {
	m.store.Save(sessionKey, u)
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state = State{User: &u, IsAuthenticated: true}
	return m.snapshot()
}

// fail returns to anonymous with the error set.
func (m *Manager) fail(msg string) State {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state = State{Error: msg}
	return m.snapshot()
}
