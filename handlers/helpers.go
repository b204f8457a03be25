package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/AstroAir/student-attendance-system/services"
)

// envelope is the uniform success/failure body: code mirrors the HTTP
// status, message is human-readable, data carries the payload when present.
func envelope(c echo.Context, status int, message string, data interface{}) error {
	return c.JSON(status, echo.Map{
		"code":    status,
		"message": message,
		"data":    data,
	})
}

func fail(c echo.Context, status int, message string) error {
	return c.JSON(status, echo.Map{
		"code":    status,
		"message": message,
	})
}

// httpStatusFor maps service sentinels to HTTP statuses.
func httpStatusFor(err error) int {
	switch {
	case errors.Is(err, services.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, services.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, services.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrUnauthorized):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

func serviceError(c echo.Context, err error) error {
	status := httpStatusFor(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		msg = "internal server error"
	}
	return fail(c, status, msg)
}

func atoiOr(s string, def int) int {
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}
