package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/AstroAir/student-attendance-system/services"
)

type ReportHandler struct {
	reports *services.ReportService
}

func NewReportHandler(reports *services.ReportService) *ReportHandler {
	return &ReportHandler{reports: reports}
}

// Details serves GET /reports/details; start_date and end_date are required.
func (h *ReportHandler) Details(c echo.Context) error {
	start, end := c.QueryParam("start_date"), c.QueryParam("end_date")
	if start == "" || end == "" {
		return fail(c, http.StatusBadRequest, "start_date and end_date are required")
	}
	rep := h.reports.Details(start, end, c.QueryParam("class"), c.QueryParam("student_id"))
	return envelope(c, http.StatusOK, "ok", rep)
}

// Daily serves GET /reports/daily; date is required.
func (h *ReportHandler) Daily(c echo.Context) error {
	date := c.QueryParam("date")
	if date == "" {
		return fail(c, http.StatusBadRequest, "date is required")
	}
	rep := h.reports.Daily(date, c.QueryParam("class"))
	return envelope(c, http.StatusOK, "ok", rep)
}

func (h *ReportHandler) Summary(c echo.Context) error {
	start, end := c.QueryParam("start_date"), c.QueryParam("end_date")
	if start == "" || end == "" {
		return fail(c, http.StatusBadRequest, "start_date and end_date are required")
	}
	rep := h.reports.Summary(start, end, c.QueryParam("class"))
	return envelope(c, http.StatusOK, "ok", rep)
}

func (h *ReportHandler) Abnormal(c echo.Context) error {
	start, end := c.QueryParam("start_date"), c.QueryParam("end_date")
	if start == "" || end == "" {
		return fail(c, http.StatusBadRequest, "start_date and end_date are required")
	}
	rep := h.reports.Abnormal(start, end, c.QueryParam("class"), c.QueryParam("type"))
	return envelope(c, http.StatusOK, "ok", rep)
}

func (h *ReportHandler) Leave(c echo.Context) error {
	start, end := c.QueryParam("start_date"), c.QueryParam("end_date")
	if start == "" || end == "" {
		return fail(c, http.StatusBadRequest, "start_date and end_date are required")
	}
	rep := h.reports.Leave(start, end, c.QueryParam("class"), c.QueryParam("type"))
	return envelope(c, http.StatusOK, "ok", rep)
}
