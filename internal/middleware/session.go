package middleware

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// SessionCookieName is the cookie carrying the opaque session token
const SessionCookieName = "studyhub_session"

// contextKey is a custom type for context keys to avoid collisions
type contextKey string

// UserIDKey is the context key for the resolved user ID
const UserIDKey contextKey = "user_id"

// SessionResolver resolves a session token to a user id
type SessionResolver interface {
	Resolve(token string) (string, error)
}

// SessionMiddleware resolves the session cookie to a user id and threads it
// through the request context. The user id is always consumed by handlers as
// an explicit value, never as ambient state.
type SessionMiddleware struct {
	resolver SessionResolver
}

// NewSessionMiddleware creates a new SessionMiddleware
func NewSessionMiddleware(resolver SessionResolver) *SessionMiddleware {
	return &SessionMiddleware{resolver: resolver}
}

// Require returns a middleware that rejects requests without a valid session
func (m *SessionMiddleware) Require() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			userID, ok := m.resolve(c)
			if !ok {
				return unauthorizedError(c, "Login required")
			}
			setUserID(c, userID)
			return next(c)
		}
	}
}

// Optional returns a middleware that resolves a session when present but
// lets anonymous requests through
func (m *SessionMiddleware) Optional() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if userID, ok := m.resolve(c); ok {
				setUserID(c, userID)
			}
			return next(c)
		}
	}
}

// resolve extracts and validates the session cookie
func (m *SessionMiddleware) resolve(c echo.Context) (string, bool) {
	cookie, err := c.Cookie(SessionCookieName)
	if err != nil || cookie.Value == "" {
		return "", false
	}

	userID, err := m.resolver.Resolve(cookie.Value)
	if err != nil {
		log.Debug().Msg("Session token not found or expired")
		return "", false
	}
	return userID, true
}

func setUserID(c echo.Context, userID string) {
	ctx := context.WithValue(c.Request().Context(), UserIDKey, userID)
	c.SetRequest(c.Request().WithContext(ctx))
}

// GetUserID extracts the resolved user ID from the context. Empty string
// means anonymous.
func GetUserID(c echo.Context) string {
	if id, ok := c.Request().Context().Value(UserIDKey).(string); ok {
		return id
	}
	return ""
}

// SessionToken returns the raw session token from the request cookie, if any
func SessionToken(c echo.Context) string {
	cookie, err := c.Cookie(SessionCookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}

// NewSessionCookie builds the session cookie for a token. A negative maxAge
// expires the cookie (logout).
func NewSessionCookie(token string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}
