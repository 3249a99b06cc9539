package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/Arun-sajwan/AICTE-Edunet-AI-Travel-Planner/internal/dto"
	"github.com/Arun-sajwan/AICTE-Edunet-AI-Travel-Planner/internal/service"
)

// PlanHandler exposes the trip planning endpoints.
type PlanHandler struct {
	planner *service.PlannerService
}

// NewPlanHandler constructs a PlanHandler.
func NewPlanHandler(planner *service.PlannerService) *PlanHandler {
	return &PlanHandler{planner: planner}
}

// Generate handles POST /plan requests.
func (h *PlanHandler) Generate(c echo.Context) error {
	var req dto.PlanRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid payload")
	}

	resp, err := h.planner.GeneratePlan(c.Request().Context(), req)
	if err != nil {
		return planError(c, err)
	}

	return Success(c, http.StatusOK, "plan generated", resp)
}

// Download handles POST /plan/download requests and returns the plan as a
// text attachment.
func (h *PlanHandler) Download(c echo.Context) error {
	var req dto.PlanRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid payload")
	}

	resp, err := h.planner.GeneratePlan(c.Request().Context(), req)
	if err != nil {
		return planError(c, err)
	}

	return attachment(c, resp.FileName, "text/plain; charset=utf-8", []byte(resp.Plan))
}

// PDF handles POST /plan/pdf requests and returns the plan as a rendered
// PDF attachment.
func (h *PlanHandler) PDF(c echo.Context) error {
	var req dto.PlanRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid payload")
	}

	resp, err := h.planner.GeneratePlan(c.Request().Context(), req)
	if err != nil {
		return planError(c, err)
	}

	data, name, err := service.RenderPlanPDF(strings.TrimSpace(req.Destination), resp.Plan)
	if err != nil {
		return Error(c, http.StatusInternalServerError, "unable to render pdf")
	}

	return attachment(c, name, "application/pdf", data)
}

// planError maps validation failures to 400 replies and everything else
// to a generic 500.
func planError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, service.ErrDestinationRequired),
		errors.Is(err, service.ErrHomeRequired),
		errors.Is(err, service.ErrBudgetRequired),
		errors.Is(err, service.ErrInvalidTripType),
		errors.Is(err, service.ErrInvalidDates),
		errors.Is(err, service.ErrInvalidDays):
		return Error(c, http.StatusBadRequest, err.Error())
	}
	return Error(c, http.StatusInternalServerError, "unable to generate plan")
}
