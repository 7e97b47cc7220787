package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sokoyetu/storefront/internal/api/metrics"
	"github.com/sokoyetu/storefront/internal/core/domain"
	"github.com/sokoyetu/storefront/internal/core/ports"
)

// PanelHandler toggles the storefront's modal panels. At most one panel is
// open after any toggle; the others are forced closed.
type PanelHandler struct {
	sessions ports.SessionService
}

func NewPanelHandler(sessions ports.SessionService) *PanelHandler {
	return &PanelHandler{sessions: sessions}
}

// Toggle handles POST /api/session/panels/:panel/toggle.
//
// @Summary      Toggle a modal panel
// @Tags         session
// @Produce      json
// @Param        panel  path      string  true  "Panel name: login, signup, password-reset or feedback"
// @Success      200    {object}  domain.Session
// @Failure      400    {object}  errorResponse
// @Router       /api/session/panels/{panel}/toggle [post]
func (h *PanelHandler) Toggle(c echo.Context) error {
	sid, _, err := ctxSession(c)
	if err != nil {
		return err
	}

	panel, err := domain.ParsePanel(c.Param("panel"))
	if err != nil {
		return err
	}

	sess, err := h.sessions.TogglePanel(c.Request().Context(), sid, panel)
	if err != nil {
		return err
	}

	metrics.PanelTogglesTotal.WithLabelValues(string(panel)).Inc()
	return c.JSON(http.StatusOK, sess)
}
