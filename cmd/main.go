package main

import (
	"log"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/AstroAir/student-attendance-system/config"
	"github.com/AstroAir/student-attendance-system/database"
	"github.com/AstroAir/student-attendance-system/handlers"
	"github.com/AstroAir/student-attendance-system/routes"
	"github.com/AstroAir/student-attendance-system/services"
	"github.com/AstroAir/student-attendance-system/store"
)

func main() {
	cfg := config.Load()

	db, err := database.Connect(cfg)
	if err != nil {
		log.Printf("database unavailable, using in-memory store: %v", err)
		db = nil
	}

	st := store.New()

	studentSvc := services.NewStudentService(db, st)
	attendanceSvc := services.NewAttendanceService(db, st)
	reportSvc := services.NewReportService(studentSvc, attendanceSvc)
	authSvc := services.NewAuthService(db)

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.Logger())
	e.Use(middleware.CORS())
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = handlers.ErrorHandler

	routes.Register(e, routes.Deps{
		Auth:        handlers.NewAuthHandler(authSvc, cfg.SessionSecret),
		Students:    handlers.NewStudentHandler(studentSvc),
		Attendances: handlers.NewAttendanceHandler(attendanceSvc),
		Classes:     handlers.NewClassHandler(studentSvc),
		Reports:     handlers.NewReportHandler(reportSvc),
		Data:        handlers.NewDataHandler(studentSvc, attendanceSvc),
		Secret:      cfg.SessionSecret,
	})

	log.Fatal(e.Start(":" + cfg.AppPort))
}
