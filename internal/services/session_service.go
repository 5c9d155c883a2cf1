package services

import (
	"strings"
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"

	"travelbook/internal/domain/models"
	"travelbook/internal/kv"
	"travelbook/internal/store"
	"travelbook/internal/utils"
)

// SessionState is the session manager's lifecycle state.
type SessionState int

const (
	SessionUninitialized SessionState = iota
	SessionAnonymous
	SessionAuthenticated
)

// sessionKey is the single durable-storage key holding the current user id.
const sessionKey = "userId"

// loginDelay models the original client's simulated auth latency. It is a
// UX-only delay, not a functional requirement.
const loginDelay = 1 * time.Second

// SessionService tracks the current user and persists the session across
// restarts through an injected KV store. Passwords are stored as bcrypt
// hashes; the matching contract is still exact email + password per user, so
// the legacy semantics (including the joint email+password duplicate check on
// signup) are unchanged. Safe for concurrent use by handlers.
type SessionService struct {
	Store *store.Store
	KV    kv.Store

	// Sleep is swapped for a no-op in tests.
	Sleep func(time.Duration)

	mu    sync.Mutex
	state SessionState
	user  models.User
}

func NewSessionService(st *store.Store, storage kv.Store) *SessionService {
	return &SessionService{
		Store: st,
		KV:    storage,
		Sleep: time.Sleep,
		state: SessionUninitialized,
	}
}

func (s *SessionService) sleep(d time.Duration) {
	if s.Sleep != nil {
		s.Sleep(d)
	}
}

// State returns the current lifecycle state.
func (s *SessionService) State() SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Current returns the authenticated user, if any.
func (s *SessionService) Current() (models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != SessionAuthenticated {
		return models.User{}, false
	}
	return s.user, true
}

// Initialize restores a persisted session. A stored id that no longer
// resolves to a user is treated as corrupt and cleared. After this call the
// state is never Uninitialized.
func (s *SessionService) Initialize() {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, err := s.KV.Get(sessionKey)
	if err != nil {
		utils.LogEvent("", "session", "initialize", "storage read failed: "+err.Error())
		_ = s.KV.Remove(sessionKey)
		s.state = SessionAnonymous
		return
	}
	if id == "" {
		s.state = SessionAnonymous
		return
	}
	user, err := s.Store.UserByID(id)
	if err != nil {
		_ = s.KV.Remove(sessionKey)
		s.state = SessionAnonymous
		return
	}
	s.user = user
	s.state = SessionAuthenticated
}

// Login authenticates by exact email+password match. On success the user id
// is persisted and the session becomes Authenticated; on failure the session
// stays Anonymous.
func (s *SessionService) Login(email, password string) bool {
	s.sleep(loginDelay)

	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.findByCredentials(email, password)
	if !ok {
		if s.state == SessionUninitialized {
			s.state = SessionAnonymous
		}
		return false
	}

	s.user = user
	s.state = SessionAuthenticated
	if err := s.KV.Set(sessionKey, user.ID); err != nil {
		utils.LogEvent("", "session", "login", "persist failed: "+err.Error())
	}
	return true
}

// Signup creates an account unless a user already exists with the same email
// AND password. Same email with a different password is accepted, matching
// the original precheck.
func (s *SessionService) Signup(data models.SignupData) bool {
	s.sleep(loginDelay)

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.findByCredentials(data.Email, data.Password); exists {
		if s.state == SessionUninitialized {
			s.state = SessionAnonymous
		}
		return false
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(data.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.LogEvent("", "session", "signup", "hash failed: "+err.Error())
		return false
	}

	user := s.Store.AddUser(models.User{
		Email:     strings.TrimSpace(data.Email),
		Password:  string(hash),
		Name:      strings.TrimSpace(data.Name),
		Phone:     strings.TrimSpace(data.Phone),
		CreatedAt: time.Now(),
	})

	s.user = user
	s.state = SessionAuthenticated
	if err := s.KV.Set(sessionKey, user.ID); err != nil {
		utils.LogEvent("", "session", "signup", "persist failed: "+err.Error())
	}
	return true
}

// Logout clears the persisted id and drops to Anonymous. Calling it while
// already Anonymous is a no-op.
func (s *SessionService) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.user = models.User{}
	s.state = SessionAnonymous
	_ = s.KV.Remove(sessionKey)
}

func (s *SessionService) findByCredentials(email, password string) (models.User, bool) {
	for _, u := range s.Store.UsersByEmail(strings.TrimSpace(email)) {
		if bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)) == nil {
			return u, true
		}
	}
	return models.User{}, false
}
