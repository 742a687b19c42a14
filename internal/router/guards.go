package router

import (
	"context"
	"net/url"
)

// Session is the slice of the session store the guards consult.
type Session interface {
	Token() string
	IsAuthenticated() bool
	IsAdmin() bool
	IsModerator() bool
	VerifyToken(ctx context.Context) bool
}

// ensureVerified attempts a just-in-time verification when a token is
// persisted but no user is resolved yet. Every guard applies the same
// policy, so a freshly restarted process holding a valid token passes
// role-gated routes the same way it passes plain-auth ones.
func ensureVerified(ctx context.Context, sess Session) {
	if sess.IsAuthenticated() {
		return
	}
	if sess.Token() != "" {
		sess.VerifyToken(ctx)
	}
}

func loginRedirect(path string) string {
	query := url.Values{"returnUrl": {path}}
	return "/auth/login?" + query.Encode()
}

// AuthGuard admits any authenticated session. Unauthenticated requests
// are redirected to login carrying the requested path as returnUrl.
func AuthGuard(sess Session) Guard {
	return func(ctx context.Context, path string) string {
		ensureVerified(ctx, sess)
		if sess.IsAuthenticated() {
			return path
		}
		return loginRedirect(path)
	}
}

// ModeratorGuard admits moderators and admins. Authenticated callers
// lacking the role are silently sent home.
func ModeratorGuard(sess Session) Guard {
	return func(ctx context.Context, path string) string {
		ensureVerified(ctx, sess)
		if !sess.IsAuthenticated() {
			return loginRedirect(path)
		}
		if sess.IsModerator() {
			return path
		}
		return "/"
	}
}

// AdminGuard admits admins only. Authenticated callers lacking the role
// are silently sent home.
func AdminGuard(sess Session) Guard {
	return func(ctx context.Context, path string) string {
		ensureVerified(ctx, sess)
		if !sess.IsAuthenticated() {
			return loginRedirect(path)
		}
		if sess.IsAdmin() {
			return path
		}
		return "/"
	}
}

// Routes builds the application route table: public landing and auth
// routes, authenticated list/detail routes, and role-gated creation and
// admin routes. Literal routes precede parameterized ones.
func Routes(sess Session) []Route {
	return []Route{
		{Pattern: "/"},
		{Pattern: "/auth/login"},
		{Pattern: "/auth/success"},
		{Pattern: "/tournaments", Guard: AuthGuard(sess)},
		{Pattern: "/tournaments/create", Guard: ModeratorGuard(sess)},
		{Pattern: "/tournaments/:id", Guard: AuthGuard(sess)},
		{Pattern: "/teams", Guard: AuthGuard(sess)},
		{Pattern: "/teams/:id", Guard: AuthGuard(sess)},
		{Pattern: "/profile", Guard: AuthGuard(sess)},
		{Pattern: "/admin", Guard: AdminGuard(sess)},
	}
}
