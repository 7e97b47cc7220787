package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sokoyetu/storefront/internal/api/metrics"
	"github.com/sokoyetu/storefront/internal/core/domain"
	"github.com/sokoyetu/storefront/internal/core/ports"
)

// ProfileHandler serves the authenticated user's profile. The session's token
// is the precondition: without one the request fails locally with no backend call.
type ProfileHandler struct {
	profiles ports.ProfileService
}

func NewProfileHandler(profiles ports.ProfileService) *ProfileHandler {
	return &ProfileHandler{profiles: profiles}
}

// updateProfileRequest is a partial update; only present fields are patched.
type updateProfileRequest struct {
	FirstName   *string  `json:"firstName"`
	LastName    *string  `json:"lastName"`
	PhoneNumber *string  `json:"phoneNumber"`
	County      *string  `json:"county"`
	SubCounty   *string  `json:"subCounty"`
	Latitude    *float64 `json:"latitude"   validate:"omitempty,gte=-90,lte=90"`
	Longitude   *float64 `json:"longitude"  validate:"omitempty,gte=-180,lte=180"`
	IDNumber    *string  `json:"idNumber"`
	IDImageURL  *string  `json:"idImageUrl"`
	AvatarURL   *string  `json:"avatarUrl"`
}

// Get handles GET /api/user/profile.
//
// @Summary      Fetch the current user's profile
// @Tags         profile
// @Produce      json
// @Success      200  {object}  domain.UserProfile
// @Failure      401  {object}  errorResponse
// @Router       /api/user/profile [get]
func (h *ProfileHandler) Get(c echo.Context) error {
	sid, sess, err := ctxSession(c)
	if err != nil {
		return err
	}

	profile, err := h.profiles.FetchUser(c.Request().Context(), sid, sess.Token)
	if err != nil {
		metrics.ProfileRequestsTotal.WithLabelValues("fetch", fetchOutcome(err)).Inc()
		return err
	}

	metrics.ProfileRequestsTotal.WithLabelValues("fetch", "success").Inc()
	return c.JSON(http.StatusOK, profile)
}

// Patch handles PATCH /api/user/profile. The response is the backend's
// authoritative profile, which also replaces the cached copy.
//
// @Summary      Update the current user's profile
// @Tags         profile
// @Accept       json
// @Produce      json
// @Param        body  body      updateProfileRequest  true  "Fields to update"
// @Success      200   {object}  domain.UserProfile
// @Failure      401   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /api/user/profile [patch]
func (h *ProfileHandler) Patch(c echo.Context) error {
	sid, sess, err := ctxSession(c)
	if err != nil {
		return err
	}

	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	profile, err := h.profiles.UpdateUser(c.Request().Context(), sid, sess.Token, ports.ProfilePatch{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		PhoneNumber: req.PhoneNumber,
		County:      req.County,
		SubCounty:   req.SubCounty,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		IDNumber:    req.IDNumber,
		IDImageURL:  req.IDImageURL,
		AvatarURL:   req.AvatarURL,
	})
	if err != nil {
		metrics.ProfileRequestsTotal.WithLabelValues("update", fetchOutcome(err)).Inc()
		return err
	}

	metrics.ProfileRequestsTotal.WithLabelValues("update", "success").Inc()
	return c.JSON(http.StatusOK, profile)
}

func fetchOutcome(err error) string {
	if errors.Is(err, domain.ErrNoToken) {
		return "no_token"
	}
	return "failure"
}
