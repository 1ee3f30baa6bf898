package web

import (
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
)

const sessionCookie = "sa_session"

// Session is the per-user browser session state. The generation
// pipeline never sees this; handlers read from it and pass plain values
// down, so the core stays testable without a cookie store.
type Session struct {
	Token     string
	UserID    string
	Name      string
	Email     string
	ExpiresAt time.Time

	// Last generated plan, kept so the note endpoints and a repeat
	// visit to the generator can reuse it.
	LastPlan     string
	LastTopic    string
	LastModality string
	LastTone     string
}

// SessionManager is an in-memory session table keyed by opaque token.
type SessionManager struct {
	mu       sync.Mutex
	sessions map[string]*Session
	ttl      time.Duration
}

// NewSessionManager creates a session manager with the given lifetime.
func NewSessionManager(ttl time.Duration) *SessionManager {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &SessionManager{
		sessions: make(map[string]*Session),
		ttl:      ttl,
	}
}

// Create starts a session for the given user and returns it.
func (m *SessionManager) Create(userID, name, email string) *Session {
	sess := &Session{
		Token:     uuid.New().String(),
		UserID:    userID,
		Name:      name,
		Email:     email,
		ExpiresAt: time.Now().Add(m.ttl),
	}

	m.mu.Lock()
	m.sessions[sess.Token] = sess
	m.mu.Unlock()
	return sess
}

// Get returns the live session for token, or nil if absent or expired.
// Expired sessions are removed on access.
func (m *SessionManager) Get(token string) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	sess, ok := m.sessions[token]
	if !ok {
		return nil
	}
	if time.Now().After(sess.ExpiresAt) {
		delete(m.sessions, token)
		return nil
	}
	return sess
}

// Destroy removes the session for token, if any.
func (m *SessionManager) Destroy(token string) {
	m.mu.Lock()
	delete(m.sessions, token)
	m.mu.Unlock()
}

// Update applies fn to the session under the lock. Used to stash the
// last generated plan without racing concurrent requests.
func (m *SessionManager) Update(token string, fn func(*Session)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if sess, ok := m.sessions[token]; ok {
		fn(sess)
	}
}

// setSessionCookie writes the session cookie on the response.
func setSessionCookie(w http.ResponseWriter, token string, expires time.Time) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    token,
		Path:     "/",
		Expires:  expires,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// clearSessionCookie expires the session cookie.
func clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// sessionFromRequest resolves the request's session, or nil.
func (s *Server) sessionFromRequest(r *http.Request) *Session {
	c, err := r.Cookie(sessionCookie)
	if err != nil {
		return nil
	}
	return s.sessions.Get(c.Value)
}
