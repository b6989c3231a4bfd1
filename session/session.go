package session

import (
	"sync"
	"time"

	"github.com/golang-jwt/jwt"
)

// TokenSource supplies the bearer token attached to outbound API calls.
// An empty token means "no active session"; the request is still sent with
// the Authorization header omitted and the backend decides.
type TokenSource interface {
	Token() string
}

// StaticTokenSource always returns the same token. Useful for scripts and tests.
type StaticTokenSource string

func (s StaticTokenSource) Token() string { return string(s) }

// Manager holds the active session token for the dashboard user.
// It treats an expired JWT as absent so callers never attach a token the
// backend is guaranteed to reject.
type Manager struct {
	mu    sync.RWMutex
	token string
}

// NewManager returns a Manager seeded with the given token (may be empty).
func NewManager(token string) *Manager {
	return &Manager{token: token}
}

// SetToken replaces the active session token.
func (m *Manager) SetToken(token string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = token
}

// Clear drops the active session token.
func (m *Manager) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = ""
}

// Token returns the active token, or "" when none is set or the token's
// exp claim has passed. The signature is not verified here; only the
// backend holds the signing key.
func (m *Manager) Token() string {
	m.mu.RLock()
	token := m.token
	m.mu.RUnlock()
	if token == "" {
		return ""
	}

	claims := jwt.MapClaims{}
	parser := new(jwt.Parser)
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		// Opaque (non-JWT) tokens are passed through untouched.
		return token
	}
	if exp, ok := claims["exp"].(float64); ok && int64(exp) < time.Now().Unix() {
		return ""
	}
	return token
}
