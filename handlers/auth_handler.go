package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/AstroAir/student-attendance-system/middlewares"
	"github.com/AstroAir/student-attendance-system/services"
)

const sessionTTL = 24 * time.Hour

type AuthHandler struct {
	auth   *services.AuthService
	secret string
}

func NewAuthHandler(auth *services.AuthService, secret string) *AuthHandler {
	return &AuthHandler{auth: auth, secret: secret}
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Login verifies the credentials and sets the session cookie.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.auth.Authenticate(req.Username, req.Password)
	if err != nil {
		return serviceError(c, err)
	}

	token, err := middlewares.SignSession(h.secret, user.ID, user.Username, user.Role, sessionTTL)
	if err != nil {
		return fail(c, http.StatusInternalServerError, "internal server error")
	}
	c.SetCookie(&http.Cookie{
		Name:     middlewares.SessionCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Expires:  time.Now().Add(sessionTTL),
	})

	return envelope(c, http.StatusOK, "login successful", echo.Map{
		"username": user.Username,
		"role":     user.Role,
	})
}

// Logout expires the session cookie. Always succeeds.
func (h *AuthHandler) Logout(c echo.Context) error {
	c.SetCookie(&http.Cookie{
		Name:     middlewares.SessionCookie,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
	return envelope(c, http.StatusOK, "logged out", nil)
}

// Me echoes the identity placed on the context by the auth middleware.
func (h *AuthHandler) Me(c echo.Context) error {
	return envelope(c, http.StatusOK, "ok", echo.Map{
		"user_id":  c.Get("user_id"),
		"username": c.Get("username"),
		"role":     c.Get("role"),
	})
}
