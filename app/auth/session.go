package auth

import (
	"errors"
	"net/http"

	"blogsite/app/models"
	"blogsite/app/repositories"

	"github.com/gorilla/sessions"
)

const (
	sessionName = "blogsite_session"
	userIDKey   = "user_id"
)

// Manager tracks the authenticated identity across requests with a signed
// client-side cookie. Only the user id is stored in the cookie; the User
// row is loaded on demand.
type Manager struct {
	store *sessions.CookieStore
	users repositories.UserRepository
}

// NewManager creates a session manager signing cookies with the given secret.
func NewManager(secret string, users repositories.UserRepository) *Manager {
	store := sessions.NewCookieStore([]byte(secret))
	store.Options = &sessions.Options{
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	return &Manager{store: store, users: users}
}

// SignIn establishes an authenticated session for the user.
func (m *Manager) SignIn(w http.ResponseWriter, r *http.Request, user *models.User) error {
	session, _ := m.store.Get(r, sessionName)
	session.Values[userIDKey] = user.ID
	return session.Save(r, w)
}

// SignOut clears the session, returning the visitor to the anonymous state.
func (m *Manager) SignOut(w http.ResponseWriter, r *http.Request) error {
	session, _ := m.store.Get(r, sessionName)
	delete(session.Values, userIDKey)
	session.Options.MaxAge = -1
	return session.Save(r, w)
}

// UserID returns the authenticated user id, if any.
func (m *Manager) UserID(r *http.Request) (int, bool) {
	session, err := m.store.Get(r, sessionName)
	if err != nil {
		// Tampered or stale cookie: treat as anonymous.
		return 0, false
	}
	id, ok := session.Values[userIDKey].(int)
	return id, ok && id > 0
}

// CurrentUser loads the authenticated user's row. A nil user with nil error
// means the request is anonymous (including sessions whose user no longer
// exists).
func (m *Manager) CurrentUser(r *http.Request) (*models.User, error) {
	id, ok := m.UserID(r)
	if !ok {
		return nil, nil
	}

	user, err := m.users.GetByID(id)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

// Flash queues a one-time message shown on the next rendered page.
func (m *Manager) Flash(w http.ResponseWriter, r *http.Request, message string) {
	session, _ := m.store.Get(r, sessionName)
	session.AddFlash(message)
	_ = session.Save(r, w)
}

// Flashes drains the queued messages. Reading clears them, so each message
// renders exactly once.
func (m *Manager) Flashes(w http.ResponseWriter, r *http.Request) []string {
	session, _ := m.store.Get(r, sessionName)
	raw := session.Flashes()
	if len(raw) > 0 {
		_ = session.Save(r, w)
	}

	messages := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			messages = append(messages, s)
		}
	}
	return messages
}
