package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sokoyetu/storefront/internal/api/metrics"
	"github.com/sokoyetu/storefront/internal/core/domain"
	"github.com/sokoyetu/storefront/internal/core/ports"
)

// FeedbackHandler collects visitor feedback. Open to anonymous clients.
type FeedbackHandler struct {
	feedback ports.FeedbackService
}

func NewFeedbackHandler(feedback ports.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{feedback: feedback}
}

type feedbackRequest struct {
	Name    string `json:"name"    validate:"omitempty,max=100"`
	Rating  int    `json:"rating"  validate:"required,gte=1,lte=5"`
	Comment string `json:"comment" validate:"required"`
}

// Submit handles POST /api/feedback.
//
// @Summary      Submit feedback
// @Tags         feedback
// @Accept       json
// @Produce      json
// @Param        body  body      feedbackRequest  true  "Feedback"
// @Success      200   {object}  messageResponse
// @Failure      422   {object}  errorResponse
// @Router       /api/feedback [post]
func (h *FeedbackHandler) Submit(c echo.Context) error {
	var req feedbackRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	err := h.feedback.Submit(c.Request().Context(), domain.Feedback{
		Name:    req.Name,
		Rating:  req.Rating,
		Comment: req.Comment,
	})
	if err != nil {
		metrics.FeedbackSubmissionsTotal.WithLabelValues("failure").Inc()
		return err
	}

	metrics.FeedbackSubmissionsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "thank you for your feedback"})
}
