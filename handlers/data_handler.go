package handlers

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/AstroAir/student-attendance-system/models"
	"github.com/AstroAir/student-attendance-system/services"
	"github.com/AstroAir/student-attendance-system/store"
)

// DataHandler covers bulk export and import of students and attendances.
type DataHandler struct {
	students    *services.StudentService
	attendances *services.AttendanceService
}

func NewDataHandler(students *services.StudentService, attendances *services.AttendanceService) *DataHandler {
	return &DataHandler{students: students, attendances: attendances}
}

// Export serves GET /data/export?type=students|attendances|all&format=json|csv.
// CSV is limited to a single entity type.
func (h *DataHandler) Export(c echo.Context) error {
	kind := c.QueryParam("type")
	format := c.QueryParam("format")
	if format == "" {
		format = "json"
	}

	switch kind {
	case "students", "attendances", "all":
	case "":
		return fail(c, http.StatusBadRequest, "type is required")
	default:
		return fail(c, http.StatusBadRequest, "unknown export type")
	}

	switch format {
	case "json":
		return h.exportJSON(c, kind)
	case "csv":
		if kind == "all" {
			return fail(c, http.StatusBadRequest, "csv export covers a single type")
		}
		return h.exportCSV(c, kind)
	default:
		return fail(c, http.StatusBadRequest, "unknown export format")
	}
}

func (h *DataHandler) exportJSON(c echo.Context, kind string) error {
	payload := echo.Map{}
	if kind == "students" || kind == "all" {
		payload["students"] = h.students.All()
	}
	if kind == "attendances" || kind == "all" {
		payload["attendances"] = h.attendances.Search(store.AttendanceFilter{})
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="export.json"`)
	return c.JSON(http.StatusOK, payload)
}

func (h *DataHandler) exportCSV(c echo.Context, kind string) error {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	switch kind {
	case "students":
		_ = w.Write([]string{"student_id", "name", "class"})
		for _, st := range h.students.All() {
			_ = w.Write([]string{st.StudentID, st.Name, st.ClassName})
		}
	case "attendances":
		_ = w.Write([]string{"id", "student_id", "name", "class", "date", "status", "remark"})
		for _, a := range h.attendances.Search(store.AttendanceFilter{}) {
			_ = w.Write([]string{strconv.Itoa(a.ID), a.StudentID, a.Name, a.ClassName, a.Date, a.Status, a.Remark})
		}
	}
	w.Flush()

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="export.csv"`)
	return c.Blob(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

type importRequest struct {
	Type string            `json:"type" validate:"required,oneof=students attendances"`
	Data []json.RawMessage `json:"data" validate:"required"`
}

type importError struct {
	Line    int    `json:"line"`
	Message string `json:"message"`
}

// Import runs each record through the regular create path so validation and
// conflict rules apply unchanged; failures are reported per line, never
// aborting the rest of the batch.
func (h *DataHandler) Import(c echo.Context) error {
	var req importRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	imported := 0
	errs := make([]importError, 0)
	for i, raw := range req.Data {
		var msg string
		switch req.Type {
		case "students":
			var rec studentRequest
			if err := json.Unmarshal(raw, &rec); err != nil {
				msg = "malformed record"
				break
			}
			_, err := h.students.Create(models.Student{
				StudentID: rec.StudentID,
				Name:      rec.Name,
				ClassName: rec.Class,
			})
			if err != nil {
				msg = err.Error()
			}
		case "attendances":
			var rec attendanceRequest
			if err := json.Unmarshal(raw, &rec); err != nil {
				msg = "malformed record"
				break
			}
			if _, err := h.attendances.Create(rec.StudentID, rec.Date, rec.Status, rec.Remark); err != nil {
				msg = err.Error()
			}
		}
		if msg == "" {
			imported++
		} else {
			errs = append(errs, importError{Line: i + 1, Message: msg})
		}
	}

	return envelope(c, http.StatusOK, "import finished", echo.Map{
		"imported_count": imported,
		"skipped_count":  len(errs),
		"errors":         errs,
	})
}
