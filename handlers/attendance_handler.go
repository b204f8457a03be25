package handlers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/AstroAir/student-attendance-system/services"
	"github.com/AstroAir/student-attendance-system/store"
)

type AttendanceHandler struct {
	attendances *services.AttendanceService
}

func NewAttendanceHandler(attendances *services.AttendanceService) *AttendanceHandler {
	return &AttendanceHandler{attendances: attendances}
}

// List serves GET /attendances with pagination, sorting and the full filter
// set.
func (h *AttendanceHandler) List(c echo.Context) error {
	q := services.AttendanceListQuery{
		Page:     atoiOr(c.QueryParam("page"), 1),
		PageSize: atoiOr(c.QueryParam("page_size"), 20),
		SortBy:   c.QueryParam("sort_by"),
		Order:    c.QueryParam("order"),
		Filter: store.AttendanceFilter{
			StudentID: c.QueryParam("student_id"),
			Name:      c.QueryParam("name"),
			ClassName: c.QueryParam("class"),
			Date:      c.QueryParam("date"),
			StartDate: c.QueryParam("start_date"),
			EndDate:   c.QueryParam("end_date"),
			Status:    c.QueryParam("status"),
		},
	}
	res := h.attendances.List(q)
	return envelope(c, http.StatusOK, "ok", res)
}

type attendanceRequest struct {
	StudentID string `json:"student_id"`
	Date      string `json:"date"`
	Status    string `json:"status"`
	Remark    string `json:"remark"`
}

func (h *AttendanceHandler) Create(c echo.Context) error {
	var req attendanceRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid request body")
	}

	att, err := h.attendances.Create(req.StudentID, req.Date, req.Status, req.Remark)
	if err != nil {
		return serviceError(c, err)
	}
	return envelope(c, http.StatusCreated, "attendance recorded", att)
}

type batchRequest struct {
	Date    string                 `json:"date" validate:"required"`
	Records []services.BatchRecord `json:"records" validate:"required,dive"`
}

// Batch records attendance for many students on one date; the response
// carries only the count of records that went through.
func (h *AttendanceHandler) Batch(c echo.Context) error {
	var req batchRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	count := h.attendances.BatchCreate(req.Date, req.Records)
	return envelope(c, http.StatusCreated, "batch recorded", echo.Map{
		"created_count": count,
	})
}

func (h *AttendanceHandler) Get(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return fail(c, http.StatusBadRequest, "invalid attendance id")
	}
	att, err := h.attendances.Get(id)
	if err != nil {
		return serviceError(c, err)
	}
	return envelope(c, http.StatusOK, "ok", att)
}

func (h *AttendanceHandler) Update(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return fail(c, http.StatusBadRequest, "invalid attendance id")
	}

	var req attendanceRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid request body")
	}

	att, err := h.attendances.Update(id, req.Status, req.Remark)
	if err != nil {
		return serviceError(c, err)
	}
	return envelope(c, http.StatusOK, "attendance updated", att)
}

func (h *AttendanceHandler) Delete(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return fail(c, http.StatusBadRequest, "invalid attendance id")
	}
	if err := h.attendances.Delete(id); err != nil {
		return serviceError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
