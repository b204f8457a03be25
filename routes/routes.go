package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/AstroAir/student-attendance-system/handlers"
	"github.com/AstroAir/student-attendance-system/middlewares"
)

// Deps bundles everything route registration needs.
type Deps struct {
	Auth        *handlers.AuthHandler
	Students    *handlers.StudentHandler
	Attendances *handlers.AttendanceHandler
	Classes     *handlers.ClassHandler
	Reports     *handlers.ReportHandler
	Data        *handlers.DataHandler
	Secret      string
}

// Register mounts the public endpoints and the authenticated /api/v1 surface.
func Register(e *echo.Echo, d Deps) {
	e.GET("/health", handlers.Health)

	api := e.Group("/api/v1")
	authMW := middlewares.RequireAuth(d.Secret)

	api.POST("/auth/login", d.Auth.Login)
	api.POST("/auth/logout", d.Auth.Logout)
	api.GET("/auth/me", d.Auth.Me, authMW)

	g := api.Group("", authMW)

	g.GET("/students", d.Students.List)
	g.POST("/students", d.Students.Create)
	g.GET("/students/:student_id", d.Students.Get)
	g.PUT("/students/:student_id", d.Students.Update)
	g.DELETE("/students/:student_id", d.Students.Delete)

	g.GET("/attendances", d.Attendances.List)
	g.POST("/attendances", d.Attendances.Create)
	g.POST("/attendances/batch", d.Attendances.Batch)
	g.GET("/attendances/:id", d.Attendances.Get)
	g.PUT("/attendances/:id", d.Attendances.Update)
	g.DELETE("/attendances/:id", d.Attendances.Delete)

	g.GET("/classes", d.Classes.Classes)
	g.GET("/classes/:class/students", d.Classes.ClassStudents)

	g.GET("/reports/details", d.Reports.Details)
	g.GET("/reports/daily", d.Reports.Daily)
	g.GET("/reports/summary", d.Reports.Summary)
	g.GET("/reports/abnormal", d.Reports.Abnormal)
	g.GET("/reports/leave", d.Reports.Leave)

	g.GET("/data/export", d.Data.Export)
	g.POST("/data/import", d.Data.Import)
}
