package session

import (
	"context"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/brackup/brackup-cli/internal/api"
	"github.com/brackup/brackup-cli/internal/metrics"
	"github.com/brackup/brackup-cli/internal/storage"
)

// Navigator is where the session store sends its post-logout and
// post-callback navigation.
type Navigator interface {
	NavigateHome()
}

// Service tracks whether a user is authenticated and who they are. The
// bearer token lives in persistent storage; the verified user lives only
// in memory. The two are not independently trustworthy: a persisted token
// with no verified user is treated as unauthenticated until VerifyToken
// succeeds.
type Service struct {
	store   storage.Store
	client  api.TournamentAPI
	nav     Navigator
	metrics metrics.Metrics

	mu          sync.RWMutex
	currentUser *api.User
}

// New creates a new session store.
func New(store storage.Store, client api.TournamentAPI, nav Navigator, m metrics.Metrics) *Service {
	return &Service{
		store:   store,
		client:  client,
		nav:     nav,
		metrics: m,
	}
}

// Token returns the persisted bearer token, or "" when none is stored.
// Absence is a valid state, not an error.
func (s *Service) Token() string {
	token, err := s.store.Token()
	if err != nil {
		log.Error("Failed to read persisted token", "error", err)
		return ""
	}
	return token
}

// LoginURL returns the identity provider's authorization entry point. The
// browser client redirects here; the terminal client prints it.
func (s *Service) LoginURL() string {
	return s.client.LoginURL()
}

// HandleCallback persists the token handed over by the identity-provider
// callback, verifies it, and navigates home.
func (s *Service) HandleCallback(ctx context.Context, token string) error {
	if err := s.store.SetToken(token); err != nil {
		return err
	}
	s.VerifyToken(ctx)
	s.nav.NavigateHome()
	return nil
}

// VerifyToken calls the remote verification endpoint with the current
// token. On success it sets the current user and returns true. On any
// failure (network, 401, malformed body, valid=false) it clears all local
// session state and returns false. Idempotent and safe to call repeatedly.
func (s *Service) VerifyToken(ctx context.Context) bool {
	user, err := s.client.Verify(ctx)
	if err != nil {
		log.Error("Token verification failed", "error", err)
		s.metrics.IncVerifyFailures()
		s.clearLocalState()
		return false
	}

	s.mu.Lock()
	s.currentUser = user
	s.mu.Unlock()

	if err := s.store.SetProfile(user); err != nil {
		log.Warn("Failed to snapshot verified user", "error", err)
	}
	return true
}

// RefreshUser re-fetches the current user's record without touching the
// token.
func (s *Service) RefreshUser(ctx context.Context) (*api.User, error) {
	user, err := s.client.Me(ctx)
	if err != nil {
		log.Error("Failed to refresh current user", "error", err)
		return nil, err
	}

	s.mu.Lock()
	s.currentUser = user
	s.mu.Unlock()

	if err := s.store.SetProfile(user); err != nil {
		log.Warn("Failed to snapshot refreshed user", "error", err)
	}
	return user, nil
}

// Logout invalidates the session remotely on a best-effort basis, then
// unconditionally clears local state and navigates home. Remote failure is
// logged and swallowed, never surfaced.
func (s *Service) Logout(ctx context.Context) {
	if err := s.client.Logout(ctx); err != nil {
		log.Warn("Remote logout failed", "error", err)
	}
	s.clearLocalState()
	s.nav.NavigateHome()
}

// Restore runs the startup protocol: if a token was persisted by a prior
// run, verify it before the application is considered ready, so guards
// never race against an unresolved verification. No token means immediate
// unauthenticated startup.
func (s *Service) Restore(ctx context.Context) {
	token, err := s.store.Token()
	if err != nil {
		log.Error("Failed to restore session", "error", err)
		return
	}
	if token == "" {
		return
	}
	s.VerifyToken(ctx)
}

// CurrentUser returns the verified user, or nil when unauthenticated.
func (s *Service) CurrentUser() *api.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.currentUser
}

// StoredProfile returns the persisted snapshot of the last verified user.
// Informational only; never a substitute for verification.
func (s *Service) StoredProfile() *api.User {
	profile, err := s.store.Profile()
	if err != nil {
		log.Warn("Failed to read profile snapshot", "error", err)
		return nil
	}
	return profile
}

// IsAuthenticated is token-independent: true iff a verified user is set.
func (s *Service) IsAuthenticated() bool {
	return s.CurrentUser() != nil
}

// IsAdmin reports whether the verified user holds the admin role.
func (s *Service) IsAdmin() bool {
	user := s.CurrentUser()
	return user != nil && user.Role == api.RoleAdmin
}

// IsModerator reports whether the verified user holds the moderator role
// or above.
func (s *Service) IsModerator() bool {
	user := s.CurrentUser()
	return user != nil && (user.Role == api.RoleAdmin || user.Role == api.RoleModerator)
}

func (s *Service) clearLocalState() {
	s.mu.Lock()
	s.currentUser = nil
	s.mu.Unlock()

	if err := s.store.ClearToken(); err != nil {
		log.Error("Failed to clear persisted token", "error", err)
	}
	if err := s.store.ClearProfile(); err != nil {
		log.Error("Failed to clear profile snapshot", "error", err)
	}
}
