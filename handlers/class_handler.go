package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/AstroAir/student-attendance-system/services"
)

type ClassHandler struct {
	students *services.StudentService
}

func NewClassHandler(students *services.StudentService) *ClassHandler {
	return &ClassHandler{students: students}
}

// Classes lists every class with its student count.
func (h *ClassHandler) Classes(c echo.Context) error {
	return envelope(c, http.StatusOK, "ok", h.students.Classes())
}

// ClassStudents returns the roster of one class in the compact
// {student_id, name} shape.
func (h *ClassHandler) ClassStudents(c echo.Context) error {
	className := c.Param("class")
	students, err := h.students.StudentsByClass(className)
	if err != nil {
		return serviceError(c, err)
	}

	roster := make([]map[string]any, 0, len(students))
	for _, st := range students {
		roster = append(roster, st.BasicView())
	}
	return envelope(c, http.StatusOK, "ok", echo.Map{
		"class":    className,
		"students": roster,
	})
}
