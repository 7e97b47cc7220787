package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sokoyetu/storefront/internal/core/domain"
)

// Context keys populated by the session middleware.
const (
	CtxSessionID = "session_id"
	CtxSession   = "session"
)

// ctxSession extracts the session id and rehydrated session injected by the
// session middleware. An empty session id means the middleware did not run,
// a wiring bug reported as 500 rather than silently minting state.
func ctxSession(c echo.Context) (string, domain.Session, error) {
	sid, _ := c.Get(CtxSessionID).(string)
	if sid == "" {
		return "", domain.Session{}, echo.NewHTTPError(http.StatusInternalServerError, "missing session context")
	}

	sess, ok := c.Get(CtxSession).(domain.Session)
	if !ok {
		sess = domain.NewSession()
	}
	return sid, sess, nil
}
