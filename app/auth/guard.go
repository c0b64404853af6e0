package auth

import (
	"log/slog"
	"net/http"

	"blogsite/app/models"
)

// Decision is the outcome of an authorization check.
type Decision int

const (
	Allowed Decision = iota
	Unauthenticated
	Forbidden
)

// UserHandler is a handler that additionally receives the authenticated user.
type UserHandler func(w http.ResponseWriter, r *http.Request, user *models.User)

// Check evaluates the request against the required access level. Admin
// access is positional: it belongs to the user whose id is AdminUserID,
// not to a role.
func (m *Manager) Check(r *http.Request, adminOnly bool) (Decision, *models.User) {
	user, err := m.CurrentUser(r)
	if err != nil {
		slog.Error("failed to load current user", "error", err)
		return Unauthenticated, nil
	}
	if user == nil {
		return Unauthenticated, nil
	}
	if adminOnly && !user.IsAdmin() {
		return Forbidden, user
	}
	return Allowed, user
}

// RequireUser guards a handler behind an authenticated session.
func (m *Manager) RequireUser(next UserHandler) http.HandlerFunc {
	return m.guard(next, false)
}

// RequireAdmin guards a handler behind the privileged identity. Any other
// authenticated user gets a 403 before the handler runs.
func (m *Manager) RequireAdmin(next UserHandler) http.HandlerFunc {
	return m.guard(next, true)
}

func (m *Manager) guard(next UserHandler, adminOnly bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		decision, user := m.Check(r, adminOnly)
		switch decision {
		case Unauthenticated:
			m.Flash(w, r, "Please login to access this page")
			http.Redirect(w, r, "/login", http.StatusSeeOther)
		case Forbidden:
			http.Error(w, "Forbidden", http.StatusForbidden)
		default:
			next(w, r, user)
		}
	}
}
