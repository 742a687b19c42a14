package router

import (
	"context"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
)

// Guard decides whether a navigation may proceed. It returns the path the
// navigation resolves to: the requested path when allowed, or a redirect
// target.
type Guard func(ctx context.Context, path string) string

// Route binds a path pattern to an optional guard. Patterns may contain
// ":param" segments, e.g. "/tournaments/:id".
type Route struct {
	Pattern string
	Guard   Guard
}

// Router is the client-side navigation surface: it matches paths against
// the registered route table, runs guards, and tracks the current
// location. Unmatched paths fall back to the landing route.
type Router struct {
	mu      sync.RWMutex
	routes  []Route
	current string
}

// New creates a router positioned on the landing route.
func New() *Router {
	return &Router{current: "/"}
}

// Register appends routes to the table. Order matters: the first matching
// pattern wins, so literal routes must precede parameterized ones.
func (r *Router) Register(routes ...Route) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.routes = append(r.routes, routes...)
}

// Navigate resolves a path through the route table and its guard, records
// the resulting location, and returns it.
func (r *Router) Navigate(ctx context.Context, path string) string {
	route, ok := r.match(path)
	if !ok {
		log.Debug("No route matched, falling back to landing", "path", path)
		return r.setCurrent("/")
	}
	if route.Guard == nil {
		return r.setCurrent(path)
	}

	resolved := route.Guard(ctx, path)
	if resolved != path {
		log.Debug("Guard redirected navigation", "requested", path, "resolved", resolved)
	}
	return r.setCurrent(resolved)
}

// Current returns the current location.
func (r *Router) Current() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.current
}

// RedirectToLogin is the pipeline's 401 side effect.
func (r *Router) RedirectToLogin() {
	r.setCurrent("/auth/login")
}

// NavigateHome is where the session store lands after logout and the
// provider callback.
func (r *Router) NavigateHome() {
	r.setCurrent("/")
}

func (r *Router) setCurrent(path string) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.current = path
	return path
}

func (r *Router) match(path string) (Route, bool) {
	// Guards may redirect to a path carrying a returnUrl query, so strip
	// queries before matching.
	if i := strings.IndexByte(path, '?'); i >= 0 {
		path = path[:i]
	}
	segments := splitPath(path)

	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, route := range r.routes {
		if matchSegments(splitPath(route.Pattern), segments) {
			return route, true
		}
	}
	return Route{}, false
}

func splitPath(path string) []string {
	trimmed := strings.Trim(path, "/")
	if trimmed == "" {
		return nil
	}
	return strings.Split(trimmed, "/")
}

func matchSegments(pattern, segments []string) bool {
	if len(pattern) != len(segments) {
		return false
	}
	for i, p := range pattern {
		if strings.HasPrefix(p, ":") {
			continue
		}
		if p != segments[i] {
			return false
		}
	}
	return true
}
