package router

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

// fakeSession drives the guards directly. verified flips on VerifyToken
// to simulate a successful just-in-time verification.
type fakeSession struct {
	token       string
	verified    bool
	admin       bool
	moderator   bool
	verifyCalls int
	verifyOK    bool
}

func (s *fakeSession) Token() string         { return s.token }
func (s *fakeSession) IsAuthenticated() bool { return s.verified }
func (s *fakeSession) IsAdmin() bool         { return s.verified && s.admin }
func (s *fakeSession) IsModerator() bool     { return s.verified && (s.admin || s.moderator) }

func (s *fakeSession) VerifyToken(ctx context.Context) bool {
	s.verifyCalls++
	if s.verifyOK {
		s.verified = true
	}
	return s.verifyOK
}

func TestAuthGuardRedirectsUnauthenticatedToLogin(t *testing.T) {
	guard := AuthGuard(&fakeSession{})

	resolved := guard(context.Background(), "/tournaments/t-1")
	assert.Equal(t, "/auth/login?returnUrl=%2Ftournaments%2Ft-1", resolved)
}

func TestAuthGuardAdmitsVerifiedSession(t *testing.T) {
	guard := AuthGuard(&fakeSession{verified: true})

	assert.Equal(t, "/tournaments", guard(context.Background(), "/tournaments"))
}

func TestAuthGuardVerifiesPersistedTokenJustInTime(t *testing.T) {
	sess := &fakeSession{token: "persisted", verifyOK: true}
	guard := AuthGuard(sess)

	assert.Equal(t, "/profile", guard(context.Background(), "/profile"))
	assert.Equal(t, 1, sess.verifyCalls)
}

func TestAuthGuardRedirectsWhenVerificationFails(t *testing.T) {
	sess := &fakeSession{token: "stale", verifyOK: false}
	guard := AuthGuard(sess)

	assert.Equal(t, "/auth/login?returnUrl=%2Fprofile", guard(context.Background(), "/profile"))
	assert.Equal(t, 1, sess.verifyCalls)
}

func TestGuardsSkipVerificationWhenAlreadyAuthenticated(t *testing.T) {
	sess := &fakeSession{verified: true, admin: true}

	AuthGuard(sess)(context.Background(), "/tournaments")
	ModeratorGuard(sess)(context.Background(), "/tournaments/create")
	AdminGuard(sess)(context.Background(), "/admin")

	assert.Equal(t, 0, sess.verifyCalls)
}

func TestModeratorGuardSendsPlayerHome(t *testing.T) {
	guard := ModeratorGuard(&fakeSession{verified: true})

	assert.Equal(t, "/", guard(context.Background(), "/tournaments/create"))
}

func TestModeratorGuardAdmitsModeratorAndAdmin(t *testing.T) {
	moderator := ModeratorGuard(&fakeSession{verified: true, moderator: true})
	admin := ModeratorGuard(&fakeSession{verified: true, admin: true})

	assert.Equal(t, "/tournaments/create", moderator(context.Background(), "/tournaments/create"))
	assert.Equal(t, "/tournaments/create", admin(context.Background(), "/tournaments/create"))
}

func TestModeratorGuardVerifiesPersistedTokenJustInTime(t *testing.T) {
	// The role-gated guards apply the same just-in-time verification as
	// the plain auth guard, so a restarted process holding a valid token
	// is not bounced off role-gated routes.
	sess := &fakeSession{token: "persisted", verifyOK: true, moderator: true}
	guard := ModeratorGuard(sess)

	assert.Equal(t, "/tournaments/create", guard(context.Background(), "/tournaments/create"))
	assert.Equal(t, 1, sess.verifyCalls)
}

func TestAdminGuardSendsNonAdminHome(t *testing.T) {
	guard := AdminGuard(&fakeSession{verified: true, moderator: true})

	assert.Equal(t, "/", guard(context.Background(), "/admin"))
}

func TestAdminGuardRedirectsUnauthenticatedToLogin(t *testing.T) {
	guard := AdminGuard(&fakeSession{})

	assert.Equal(t, "/auth/login?returnUrl=%2Fadmin", guard(context.Background(), "/admin"))
}

func TestRouteTable(t *testing.T) {
	r := New()
	sess := &fakeSession{verified: true, moderator: true}
	r.Register(Routes(sess)...)

	// Public routes pass without a session.
	assert.Equal(t, "/", r.Navigate(context.Background(), "/"))
	assert.Equal(t, "/auth/login", r.Navigate(context.Background(), "/auth/login"))
	assert.Equal(t, "/auth/success", r.Navigate(context.Background(), "/auth/success"))

	// The literal create route is guarded by role, not treated as an id.
	assert.Equal(t, "/tournaments/create", r.Navigate(context.Background(), "/tournaments/create"))

	// A moderator is not an admin.
	assert.Equal(t, "/", r.Navigate(context.Background(), "/admin"))

	assert.Equal(t, "/teams/team-9", r.Navigate(context.Background(), "/teams/team-9"))
}
