package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/jhoicas/EmployeePortal-api/pkg/logger"
)

// AppConfig opciones del servidor Fiber.
type AppConfig struct {
	Name        string
	Development bool
}

// NewApp arma la aplicación Fiber completa: recover, request id, logging, sesión y rutas.
func NewApp(cfg AppConfig, deps RouterDeps) *fiber.App {
	log := deps.Log
	if log == nil {
		log = logger.Nop()
		deps.Log = log
	}
	httpLog := log.Component("http")

	app := fiber.New(fiber.Config{
		AppName:      cfg.Name,
		Immutable:    true,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		ErrorHandler: ErrorHandler(cfg.Development, httpLog),
	})
	app.Use(recover.New(recover.Config{EnableStackTrace: cfg.Development}))
	app.Use(requestid.New())
	app.Use(RequestLogger(httpLog))
	app.Use(SessionMiddleware(deps.AuthUC, deps.Cookies, httpLog))

	Router(app, deps)
	return app
}
