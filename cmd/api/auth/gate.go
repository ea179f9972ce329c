package auth

import (
	"github.com/gin-gonic/gin"
)

// Gate answers "does this request carry a valid session?". Both the
// dashboard path gate and the per-handler checks go through Resolve.
type Gate struct {
	sessions *SessionStore
	tokens   *JWTManager
}

func NewGate(sessions *SessionStore, tokens *JWTManager) *Gate {
	return &Gate{sessions: sessions, tokens: tokens}
}

// Resolve checks an Authorization header first. A header that is present
// but does not verify means no session, even when a valid cookie exists.
func (g *Gate) Resolve(c *gin.Context) (User, error) {
	if c.GetHeader("Authorization") != "" {
		if g.tokens == nil {
			return User{}, ErrNoSession
		}
		token, err := BearerToken(c.Request)
		if err != nil {
			return User{}, ErrNoSession
		}
		u, err := g.tokens.Parse(token)
		if err != nil {
			return User{}, ErrNoSession
		}
		return u, nil
	}

	if g.sessions == nil {
		return User{}, ErrNoSession
	}
	if u, ok := g.sessions.User(c.Request); ok {
		return u, nil
	}
	return User{}, ErrNoSession
}

// Sessions exposes the cookie store for sign-in, sign-out and theme handlers.
func (g *Gate) Sessions() *SessionStore {
	return g.sessions
}

// Tokens is nil when JWT_SECRET is not configured.
func (g *Gate) Tokens() *JWTManager {
	return g.tokens
}
