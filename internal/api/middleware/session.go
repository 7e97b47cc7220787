package middleware

import (
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/sokoyetu/storefront/internal/api/handler"
	"github.com/sokoyetu/storefront/internal/core/ports"
)

const cookieName = "storefront_session"

// Session resolves the client's session id from a signed cookie, minting a
// fresh id when the cookie is absent, tampered with, or unreadable, and
// injects the rehydrated session into the request context.
//
// The cookie carries an HS256 JWT whose only claim of interest is the session
// id; the session payload itself lives server-side in durable storage.
func Session(secret string, ttl time.Duration, secure bool, sessions ports.SessionService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sid, ok := sessionIDFromCookie(c, secret)
			if !ok {
				sid = uuid.NewString()
				if err := setSessionCookie(c, secret, sid, ttl, secure); err != nil {
					return echo.NewHTTPError(http.StatusInternalServerError, "failed to establish session")
				}
			}

			sess, err := sessions.Current(c.Request().Context(), sid)
			if err != nil {
				return err
			}

			c.Set(handler.CtxSessionID, sid)
			c.Set(handler.CtxSession, sess)
			return next(c)
		}
	}
}

func sessionIDFromCookie(c echo.Context, secret string) (string, bool) {
	cookie, err := c.Cookie(cookieName)
	if err != nil || cookie.Value == "" {
		return "", false
	}

	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(cookie.Value, claims, func(token *jwt.Token) (interface{}, error) {
		if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil || !tkn.Valid {
		return "", false
	}

	sid, _ := claims["sid"].(string)
	if sid == "" {
		return "", false
	}
	return sid, true
}

func setSessionCookie(c echo.Context, secret, sid string, ttl time.Duration, secure bool) error {
	claims := jwt.MapClaims{
		"sid": sid,
		"iat": time.Now().Unix(),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		return err
	}

	c.SetCookie(&http.Cookie{
		Name:     cookieName,
		Value:    signed,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}
