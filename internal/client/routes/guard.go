// Package routes gates navigation by authentication state and per-path role
// allow-lists. One authorization decision function serves both route gating
// and menu construction so the two can never drift apart.
package routes

import "github.com/teampulse/admin-console/internal/core/domain"

// Decision is the outcome of evaluating a navigation attempt.
type Decision int

const (
	// Resolving: the session store has not finished initializing yet.
	Resolving Decision = iota
	// Unauthenticated: no principal; render the login redirect.
	Unauthenticated
	// Denied: authenticated but the role is not allowed; render the
	// unauthorized redirect.
	Denied
	// Allowed: render the requested view.
	Allowed
)

func (d Decision) String() string {
	switch d {
	case Resolving:
		return "resolving"
	case Unauthenticated:
		return "unauthenticated"
	case Denied:
		return "denied"
	case Allowed:
		return "allowed"
	}
	return "unknown"
}

// Permissions maps each protected path to the roles allowed to view it.
// A path with no entry requires authentication only.
var Permissions = map[string][]domain.Role{
	"/dashboard": {domain.RoleAdmin, domain.RoleManager, domain.RoleUser},
	"/users":     {domain.RoleAdmin, domain.RoleManager},
	"/projects":  {domain.RoleAdmin, domain.RoleManager},
	"/profile":   {domain.RoleAdmin, domain.RoleManager, domain.RoleUser},
}

// Known reports whether path appears in the permission table. Unknown paths
// render the not-found view.
func Known(path string) bool {
	_, ok := Permissions[path]
	return ok
}

// Authorize is the single authorization decision: it reports whether the
// principal may view path. A nil principal is never authorized; a path
// without a permission entry is open to any authenticated principal.
func Authorize(p *domain.Principal, path string) bool {
	if p == nil {
		return false
	}
	allowed, ok := Permissions[path]
	if !ok {
		return true
	}
	return p.Role.In(allowed...)
}

// Visible returns the paths the principal may navigate to, for menu
// rendering. It reuses Authorize so the menu always matches the guard.
func Visible(p *domain.Principal) []string {
	// Fixed order, matching the sidebar.
	order := []string{"/dashboard", "/users", "/projects", "/profile"}
	var paths []string
	for _, path := range order {
		if Authorize(p, path) {
			paths = append(paths, path)
		}
	}
	return paths
}

// Session is the slice of the session store the guard consults.
type Session interface {
	Loading() bool
	Principal() *domain.Principal
}

// Guard evaluates navigation attempts against the current session state.
// Nothing is cached: every navigation re-evaluates from scratch.
type Guard struct {
	session Session
}

func NewGuard(session Session) *Guard {
	return &Guard{session: session}
}

// Evaluate decides what to render for path given the current session.
func (g *Guard) Evaluate(path string) Decision {
	if g.session.Loading() {
		return Resolving
	}
	p := g.session.Principal()
	if p == nil {
		return Unauthenticated
	}
	if !Authorize(p, path) {
		return Denied
	}
	return Allowed
}
