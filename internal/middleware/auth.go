package middleware

import (
	"net/http"
	"strings"

	"scriptmarket/internal/auth"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

const userIDKey = "user_id"

// Auth resolves the session user from a bearer token or the session cookie.
type Auth struct {
	tokens     *auth.TokenManager
	cookieName string
}

func NewAuth(tokens *auth.TokenManager, cookieName string) *Auth {
	return &Auth{
		tokens:     tokens,
		cookieName: cookieName,
	}
}

func (a *Auth) token(c echo.Context) string {
	if h := c.Request().Header.Get(echo.HeaderAuthorization); h != "" {
		scheme, tok, ok := strings.Cut(h, " ")
		if ok && strings.EqualFold(scheme, "Bearer") {
			return strings.TrimSpace(tok)
		}
	}
	if cookie, err := c.Cookie(a.cookieName); err == nil {
		return cookie.Value
	}
	return ""
}

func (a *Auth) resolve(c echo.Context) (string, error) {
	tok := a.token(c)
	if tok == "" {
		return "", auth.ErrInvalidToken
	}
	return a.tokens.Parse(tok)
}

// OptionalAuth sets the user id when a valid session is present and never rejects.
func (a *Auth) OptionalAuth() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if uid, err := a.resolve(c); err == nil {
				c.Set(userIDKey, uid)
			} else if a.token(c) != "" {
				zerolog.Ctx(c.Request().Context()).Debug().Err(err).Msg("ignoring invalid session token")
			}
			return next(c)
		}
	}
}

// RequireAuth rejects requests without a valid session.
func (a *Auth) RequireAuth() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			uid, err := a.resolve(c)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
			}
			c.Set(userIDKey, uid)
			return next(c)
		}
	}
}

// UserID returns the authenticated user id, or "" for anonymous requests.
func UserID(c echo.Context) string {
	uid, _ := c.Get(userIDKey).(string)
	return uid
}
