package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/SagarGautam07/TickBuzz/internal/booking"
)

const (
	// SessionHeader carries the opaque booking-session token. Clients echo it
	// back on every request; browsers fall back to the cookie.
	SessionHeader = "X-Session-Token"
	sessionCookie = "tb_session"
	contextKey    = "session_token"
)

// Session resolves the caller's booking-session token, minting a fresh one
// when the request carries none. The token is stored in the context under
// "session_token" and always echoed back in the response header so clients
// can pick it up after their first request.
func Session() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := c.Request().Header.Get(SessionHeader)
			if token == "" {
				if ck, err := c.Cookie(sessionCookie); err == nil {
					token = ck.Value
				}
			}
			if token == "" {
				minted, err := booking.NewSessionToken()
				if err != nil {
					return c.JSON(http.StatusInternalServerError, echo.Map{"error": "session init failed"})
				}
				token = minted
				c.SetCookie(&http.Cookie{
					Name:     sessionCookie,
					Value:    token,
					Path:     "/",
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
			}
			c.Set(contextKey, token)
			c.Response().Header().Set(SessionHeader, token)
			return next(c)
		}
	}
}

// SessionToken returns the token placed in the context by Session, or "".
func SessionToken(c echo.Context) string {
	if v, ok := c.Get(contextKey).(string); ok {
		return v
	}
	return ""
}
