package auth

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"sync"

	"weardistrict/internal/domain"
	"weardistrict/internal/metrics"
	"weardistrict/internal/repository/kv"
)

const (
	msgEmailTaken         = "Email already registered"
	msgRegistered         = "Registration successful"
	msgInvalidCredentials = "Invalid email or password"
	msgNotAdmin           = "Not authorized as admin"
	msgLoggedIn           = "Login successful"
	msgProfileUpdated     = "Profile updated"
	msgNoSession          = "Not logged in"
)

// Service holds the mock user list and the single current session. The
// session survives restarts through store; the user list does not.
type Service struct {
	mu      sync.RWMutex
	users   []domain.User
	nextID  int
	session domain.Session
	store   kv.Repository
	logger  *log.Logger
	metrics *metrics.Metrics
}

// New seeds the user list and rehydrates the session from store. A stored
// elevated flag is honored only for a user that carries the admin flag.
func New(ctx context.Context, users []domain.User, store kv.Repository, logger *log.Logger, m *metrics.Metrics) *Service {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	s := &Service{store: store, logger: logger, metrics: m}
	for _, u := range users {
		s.users = append(s.users, u)
		if u.ID > s.nextID {
			s.nextID = u.ID
		}
	}
	s.nextID++
	s.session = s.load(ctx)
	return s
}

// Register appends a new non-admin user and logs it in.
func (s *Service) Register(ctx context.Context, email, password, name string) domain.Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.indexByEmail(email) >= 0 {
		s.metrics.AuthAttempt("register", "duplicate_email")
		return domain.Failed(domain.ReasonDuplicateEmail, msgEmailTaken)
	}
	u := domain.User{ID: s.nextID, Email: email, Password: password, Name: name}
	s.nextID++
	s.users = append(s.users, u)
	s.setSessionLocked(ctx, u, false)
	s.metrics.AuthAttempt("register", "success")
	s.logger.Printf("auth svc: registered id=%d", u.ID)
	return domain.Succeeded(msgRegistered)
}

// Login establishes a session for an exact (email, password) match.
// adminMode asks for an elevated session and fails for non-admin users.
func (s *Service) Login(ctx context.Context, email, password string, adminMode bool) domain.Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexByEmail(email)
	if i < 0 || s.users[i].Password != password {
		s.metrics.AuthAttempt("login", "invalid_credentials")
		return domain.Failed(domain.ReasonInvalidCredentials, msgInvalidCredentials)
	}
	u := s.users[i]
	if adminMode && !u.IsAdmin {
		s.metrics.AuthAttempt("login", "not_authorized")
		return domain.Failed(domain.ReasonNotAuthorized, msgNotAdmin)
	}
	s.setSessionLocked(ctx, u, u.IsAdmin && adminMode)
	s.metrics.AuthAttempt("login", "success")
	return domain.Succeeded(msgLoggedIn)
}

// Logout clears the session and its stored keys unconditionally.
func (s *Service) Logout(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = domain.Session{}
	for _, key := range []string{kv.KeyCurrentUser, kv.KeyIsAdmin} {
		if err := s.store.Remove(ctx, key); err != nil {
			s.logger.Printf("auth svc: remove key=%s error=%v", key, err)
			s.metrics.StorageError(key, "remove")
		}
	}
	s.metrics.AuthAttempt("logout", "success")
}

// UpdateProfile merges patch into the session user and the matching entry of
// the user list. It fails when nobody is logged in or when the new email
// belongs to another user.
func (s *Service) UpdateProfile(ctx context.Context, patch domain.ProfilePatch) domain.Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session.User == nil {
		return domain.Failed(domain.ReasonNoSession, msgNoSession)
	}
	current := *s.session.User
	if patch.Email != nil {
		if i := s.indexByEmail(*patch.Email); i >= 0 && s.users[i].ID != current.ID {
			s.metrics.AuthAttempt("update_profile", "duplicate_email")
			return domain.Failed(domain.ReasonDuplicateEmail, msgEmailTaken)
		}
	}
	patch.Apply(&current)
	for i := range s.users {
		if s.users[i].ID == current.ID {
			s.users[i] = current
			break
		}
	}
	s.session.User = &current
	s.persistUserLocked(ctx)
	s.metrics.AuthAttempt("update_profile", "success")
	return domain.Succeeded(msgProfileUpdated)
}

// Session returns a copy of the current session.
func (s *Service) Session() domain.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := domain.Session{Elevated: s.session.Elevated}
	if s.session.User != nil {
		u := *s.session.User
		out.User = &u
	}
	return out
}

// Users returns a copy of the user list.
func (s *Service) Users() []domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.User{}, s.users...)
}

func (s *Service) UserCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.users)
}

func (s *Service) indexByEmail(email string) int {
	for i, u := range s.users {
		if u.Email == email {
			return i
		}
	}
	return -1
}

func (s *Service) setSessionLocked(ctx context.Context, u domain.User, elevated bool) {
	s.session = domain.Session{User: &u, Elevated: elevated}
	s.persistUserLocked(ctx)
	flag := "false"
	if elevated {
		flag = "true"
	}
	if err := s.store.Set(ctx, kv.KeyIsAdmin, flag); err != nil {
		s.logger.Printf("auth svc: persist key=%s error=%v", kv.KeyIsAdmin, err)
		s.metrics.StorageError(kv.KeyIsAdmin, "set")
	}
}

func (s *Service) persistUserLocked(ctx context.Context) {
	data, err := json.Marshal(s.session.User)
	if err != nil {
		s.logger.Printf("auth svc: encode session error=%v", err)
		s.metrics.StorageError(kv.KeyCurrentUser, "encode")
		return
	}
	if err := s.store.Set(ctx, kv.KeyCurrentUser, string(data)); err != nil {
		s.logger.Printf("auth svc: persist key=%s error=%v", kv.KeyCurrentUser, err)
		s.metrics.StorageError(kv.KeyCurrentUser, "set")
	}
}

func (s *Service) load(ctx context.Context) domain.Session {
	raw, ok, err := s.store.Get(ctx, kv.KeyCurrentUser)
	if err != nil {
		s.logger.Printf("auth svc: failed to load session from storage error=%v", err)
		s.metrics.StorageError(kv.KeyCurrentUser, "get")
		return domain.Session{}
	}
	if !ok {
		return domain.Session{}
	}
	var u *domain.User
	if err := json.Unmarshal([]byte(raw), &u); err != nil {
		s.logger.Printf("auth svc: failed to decode stored session error=%v", err)
		s.metrics.StorageError(kv.KeyCurrentUser, "decode")
		return domain.Session{}
	}
	if u == nil {
		return domain.Session{}
	}
	flag, _, err := s.store.Get(ctx, kv.KeyIsAdmin)
	if err != nil {
		s.logger.Printf("auth svc: failed to load admin flag error=%v", err)
		s.metrics.StorageError(kv.KeyIsAdmin, "get")
	}
	return domain.Session{User: u, Elevated: flag == "true" && u.IsAdmin}
}
