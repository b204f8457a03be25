package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/AstroAir/student-attendance-system/models"
	"github.com/AstroAir/student-attendance-system/services"
)

type StudentHandler struct {
	students *services.StudentService
}

func NewStudentHandler(students *services.StudentService) *StudentHandler {
	return &StudentHandler{students: students}
}

// List serves GET /students with pagination, sorting and filters.
func (h *StudentHandler) List(c echo.Context) error {
	q := services.StudentListQuery{
		Page:      atoiOr(c.QueryParam("page"), 1),
		PageSize:  atoiOr(c.QueryParam("page_size"), 20),
		SortBy:    c.QueryParam("sort_by"),
		Order:     c.QueryParam("order"),
		ClassName: c.QueryParam("class"),
		Keyword:   c.QueryParam("keyword"),
	}
	res := h.students.List(q)
	return envelope(c, http.StatusOK, "ok", res)
}

type studentRequest struct {
	StudentID string `json:"student_id"`
	Name      string `json:"name"`
	Class     string `json:"class"`
}

func (h *StudentHandler) Create(c echo.Context) error {
	var req studentRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid request body")
	}

	st, err := h.students.Create(models.Student{
		StudentID: req.StudentID,
		Name:      req.Name,
		ClassName: req.Class,
	})
	if err != nil {
		return serviceError(c, err)
	}
	return envelope(c, http.StatusCreated, "student created", st)
}

func (h *StudentHandler) Get(c echo.Context) error {
	st, err := h.students.Get(c.Param("student_id"))
	if err != nil {
		return serviceError(c, err)
	}
	return envelope(c, http.StatusOK, "ok", st)
}

func (h *StudentHandler) Update(c echo.Context) error {
	var req studentRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid request body")
	}

	st, err := h.students.Update(c.Param("student_id"), req.Name, req.Class)
	if err != nil {
		return serviceError(c, err)
	}
	return envelope(c, http.StatusOK, "student updated", st)
}

func (h *StudentHandler) Delete(c echo.Context) error {
	if err := h.students.Delete(c.Param("student_id")); err != nil {
		return serviceError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
