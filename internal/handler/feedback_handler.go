package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Arun-sajwan/AICTE-Edunet-AI-Travel-Planner/internal/dto"
	"github.com/Arun-sajwan/AICTE-Edunet-AI-Travel-Planner/internal/service"
)

// FeedbackHandler exposes the visitor feedback endpoints.
type FeedbackHandler struct {
	feedback *service.FeedbackService
}

// NewFeedbackHandler constructs a FeedbackHandler.
func NewFeedbackHandler(feedback *service.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{feedback: feedback}
}

// Submit handles POST /feedback requests.
func (h *FeedbackHandler) Submit(c echo.Context) error {
	var req dto.FeedbackRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid payload")
	}

	entry, err := h.feedback.Submit(c.Request().Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyMessage), errors.Is(err, service.ErrInvalidEmotion):
			return Error(c, http.StatusBadRequest, err.Error())
		}
		return Error(c, http.StatusInternalServerError, "unable to store feedback")
	}

	return Success(c, http.StatusCreated, "feedback recorded", entry)
}

// Summary handles GET /feedback/summary requests.
func (h *FeedbackHandler) Summary(c echo.Context) error {
	summary, err := h.feedback.Summary(c.Request().Context())
	if err != nil {
		return Error(c, http.StatusInternalServerError, "unable to load feedback")
	}
	return Success(c, http.StatusOK, "", summary)
}

// List handles GET /admin/feedback requests.
func (h *FeedbackHandler) List(c echo.Context) error {
	entries, err := h.feedback.List(c.Request().Context())
	if err != nil {
		return Error(c, http.StatusInternalServerError, "unable to load feedback")
	}
	return Success(c, http.StatusOK, "", entries)
}

// ExportCSV handles GET /admin/feedback/export requests.
func (h *FeedbackHandler) ExportCSV(c echo.Context) error {
	data, err := h.feedback.ExportCSV(c.Request().Context())
	if err != nil {
		return Error(c, http.StatusInternalServerError, "unable to export feedback")
	}
	return attachment(c, "feedbacks.csv", "text/csv", data)
}
