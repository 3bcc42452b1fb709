package middleware

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"
)

const (
	cartSessionName = "cart_session"
	sessionIDKey    = "session_id"

	// Carts have no explicit expiry; the cookie just outlives any realistic
	// browsing session.
	sessionMaxAge = 60 * 60 * 24 * 365
)

// SessionProvider yields the anonymous identifier that owns a cart. Handlers
// receive it as an explicit dependency rather than reading ambient state, so
// tests can substitute a fixed identifier.
type SessionProvider interface {
	SessionID(w http.ResponseWriter, r *http.Request) (string, error)
}

// CookieSessionProvider persists the identifier in a signed session cookie,
// generating a random UUID on first contact
type CookieSessionProvider struct {
	store sessions.Store
}

// NewCookieSessionProvider creates a cookie-backed session provider
func NewCookieSessionProvider(store sessions.Store) *CookieSessionProvider {
	return &CookieSessionProvider{store: store}
}

// SessionID returns the existing identifier or creates and persists a new
// one. A cookie that fails to decode is treated as absent, not as an error;
// only a failure to write the new cookie is surfaced.
func (p *CookieSessionProvider) SessionID(w http.ResponseWriter, r *http.Request) (string, error) {
	session, _ := p.store.Get(r, cartSessionName)

	if id, ok := session.Values[sessionIDKey].(string); ok && id != "" {
		return id, nil
	}

	id := uuid.NewString()
	session.Values[sessionIDKey] = id
	session.Options.MaxAge = sessionMaxAge
	session.Options.HttpOnly = true
	session.Options.Path = "/"

	if err := session.Save(r, w); err != nil {
		return "", err
	}
	return id, nil
}

// FixedSessionProvider returns a constant identifier for tests
type FixedSessionProvider struct {
	ID string
}

// SessionID returns the fixed identifier
func (p *FixedSessionProvider) SessionID(http.ResponseWriter, *http.Request) (string, error) {
	return p.ID, nil
}
