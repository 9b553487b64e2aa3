package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/EmployeePortal-api/internal/application/auth"
	"github.com/jhoicas/EmployeePortal-api/internal/application/dto"
	"github.com/jhoicas/EmployeePortal-api/internal/application/usecase"
	"github.com/jhoicas/EmployeePortal-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC     *auth.AuthUseCase
	EmployeeUC *usecase.EmployeeUseCase
	ExportUC   *usecase.ExportUseCase
	Cookies    CookieConfig
	Storage    string
	Log        *logger.Logger
}

// Route una entrada de la tabla de rutas: cada ruta declara su nivel de acceso.
type Route struct {
	Method  string
	Path    string
	Access  Access
	Action  string // verbo del mensaje de permiso denegado
	handler fiber.Handler
}

func routeTable(account *AccountHandler, employees *EmployeeHandler, health fiber.Handler) []Route {
	a, e := account, employees
	if a == nil {
		a = &AccountHandler{}
	}
	if e == nil {
		e = &EmployeeHandler{}
	}
	return []Route{
		{fiber.MethodGet, "/", AccessPublic, "", rootRedirect},
		{fiber.MethodGet, "/health", AccessPublic, "", health},
		{fiber.MethodGet, PathError, AccessPublic, "", errorPage},

		// Cuenta
		{fiber.MethodGet, "/Account/Register", AccessPublic, "", a.RegisterForm},
		{fiber.MethodPost, "/Account/Register", AccessPublic, "", a.Register},
		{fiber.MethodGet, PathLogin, AccessPublic, "", a.LoginForm},
		{fiber.MethodPost, PathLogin, AccessPublic, "", a.Login},
		{fiber.MethodGet, "/Account/Logout", AccessOptional, "", a.Logout},

		// Empleados: lectura
		{fiber.MethodGet, PathEmployeeList, AccessAuthenticated, "", e.List},
		{fiber.MethodGet, "/Employee/Details/:id", AccessAuthenticated, "", e.Details},
		{fiber.MethodGet, "/Employee/Success/:id", AccessAuthenticated, "", e.Success},
		{fiber.MethodGet, "/Employee/Export", AccessAuthenticated, "", e.Export},
		{fiber.MethodGet, "/Employee/GetPositions", AccessOptional, "", e.GetPositions},

		// Empleados: escritura (solo Admin)
		{fiber.MethodGet, "/Employee/Create", AccessAdmin, "create", e.CreateForm},
		{fiber.MethodPost, "/Employee/Create", AccessAdmin, "create", e.Create},
		{fiber.MethodGet, "/Employee/Update/:id", AccessAdmin, "update", e.UpdateForm},
		{fiber.MethodPost, "/Employee/Update/:id", AccessAdmin, "update", e.Update},
		{fiber.MethodGet, "/Employee/Delete/:id", AccessAdmin, "delete", e.DeleteForm},
		{fiber.MethodPost, "/Employee/Delete/:id", AccessAdmin, "delete", e.Delete},
	}
}

// Routes devuelve la tabla de rutas (método, path, acceso) sin handlers.
func Routes() []Route {
	table := routeTable(nil, nil, nil)
	for i := range table {
		table[i].handler = nil
	}
	return table
}

// Router registra las rutas. Cada ruta pasa por Authorize con su nivel declarado.
func Router(app *fiber.App, deps RouterDeps) {
	log := deps.Log
	if log == nil {
		log = logger.Nop()
	}
	account := NewAccountHandler(deps.AuthUC, deps.Cookies)
	employees := NewEmployeeHandler(deps.EmployeeUC, deps.ExportUC)
	health := func(c *fiber.Ctx) error {
		return c.JSON(dto.HealthResponse{Status: "ok", Storage: deps.Storage})
	}

	for _, r := range routeTable(account, employees, health) {
		app.Add(r.Method, r.Path, Authorize(r.Access, r.Action, log), r.handler)
	}
}

func rootRedirect(c *fiber.Ctx) error {
	return c.Redirect(PathLogin, fiber.StatusSeeOther)
}

func errorPage(c *fiber.Ctx) error {
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
		Code:    "INTERNAL",
		Message: "An error occurred while processing your request.",
	})
}
