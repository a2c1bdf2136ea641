// utils/session.go
package utils

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// TokenCookie is the fixed key the bearer token is persisted under.
const TokenCookie = "token"

const sessionKey = "session"

// Session is the per-request auth state. It is built by the session
// middleware and injected into handlers; nothing reads ambient globals.
type Session struct {
	Token string
	User  SessionUser
}

// SessionUser mirrors the /auth/me payload fields the pages need.
type SessionUser struct {
	ID      string `json:"id"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Role    string `json:"role"`
	IsAdmin bool   `json:"is_admin"`
}

// SetSessionCookie persists the bearer token under the fixed cookie key.
func SetSessionCookie(c *gin.Context, token string, maxAge int, secure bool) {
	c.SetCookie(TokenCookie, token, maxAge, "/", "", secure, true)
}

// ClearSessionCookie tears the persisted token down (logout and 401 paths).
func ClearSessionCookie(c *gin.Context, secure bool) {
	c.SetCookie(TokenCookie, "", -1, "/", "", secure, true)
}

// TokenFromRequest reads the persisted token, or "" when there is none.
func TokenFromRequest(c *gin.Context) string {
	token, err := c.Cookie(TokenCookie)
	if err != nil {
		return ""
	}
	return token
}

// TokenExpired inspects the unverified exp claim so a session known to be
// stale is torn down without a round trip to the platform API. Signature
// verification stays server-side; a token without an exp claim is treated
// as live and left for the API to reject.
func TokenExpired(token string, now time.Time) bool {
	parser := jwt.NewParser()
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return true
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(now)
}

// SetSession puts the hydrated session on the gin context.
func SetSession(c *gin.Context, s Session) {
	c.Set(sessionKey, s)
}

// GetSession returns the session placed by the middleware.
func GetSession(c *gin.Context) (Session, bool) {
	v, ok := c.Get(sessionKey)
	if !ok {
		return Session{}, false
	}
	s, ok := v.(Session)
	return s, ok
}
