package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/EmployeePortal-api/internal/application/auth"
	"github.com/jhoicas/EmployeePortal-api/internal/application/dto"
)

// AccountHandler maneja registro, login y logout.
type AccountHandler struct {
	uc      *auth.AuthUseCase
	cookies CookieConfig
}

// NewAccountHandler construye el handler de cuentas.
func NewAccountHandler(uc *auth.AuthUseCase, cookies CookieConfig) *AccountHandler {
	return &AccountHandler{uc: uc, cookies: cookies}
}

// RegisterForm godoc
// @Summary      Formulario de registro
// @Tags         account
// @Produce      json
// @Success      200  {object}  dto.FormResponse
// @Router       /Account/Register [get]
func (h *AccountHandler) RegisterForm(c *fiber.Ctx) error {
	return c.JSON(dto.FormResponse{
		Form:   "register",
		Action: "/Account/Register",
		Values: dto.RegisterRequest{},
		Flash:  popFlash(c),
	})
}

// Register godoc
// @Summary      Registrar usuario
// @Description  Crea la cuenta con rol User y redirige al login.
// @Tags         account
// @Accept       x-www-form-urlencoded,json
// @Produce      json
// @Param        body  body  dto.RegisterRequest  true  "Email, Password, ConfirmPassword"
// @Success      303
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /Account/Register [post]
func (h *AccountHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if _, err := h.uc.Register(c.UserContext(), in); err != nil {
		return respondError(c, err)
	}
	setFlash(c, dto.FlashSuccess, "Registration successful. Please log in.")
	return c.Redirect(PathLogin, fiber.StatusSeeOther)
}

// LoginForm godoc
// @Summary      Formulario de login
// @Tags         account
// @Produce      json
// @Success      200  {object}  dto.FormResponse
// @Router       /Account/Login [get]
func (h *AccountHandler) LoginForm(c *fiber.Ctx) error {
	return c.JSON(dto.FormResponse{
		Form:   "login",
		Action: PathLogin,
		Values: dto.LoginRequest{},
		Flash:  popFlash(c),
	})
}

// Login godoc
// @Summary      Iniciar sesión
// @Description  Crea la sesión, emite la cookie y redirige al listado.
// @Tags         account
// @Accept       x-www-form-urlencoded,json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "Email, Password, RememberMe"
// @Success      303
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /Account/Login [post]
func (h *AccountHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Login(c.UserContext(), in, c.Cookies(h.cookies.Name))
	if err != nil {
		return respondError(c, err)
	}
	setSessionCookie(c, h.cookies, out.Token, out.MaxAge)
	return c.Redirect(PathEmployeeList, fiber.StatusSeeOther)
}

// Logout godoc
// @Summary      Cerrar sesión
// @Tags         account
// @Success      303
// @Router       /Account/Logout [get]
func (h *AccountHandler) Logout(c *fiber.Ctx) error {
	if err := h.uc.Logout(c.UserContext(), c.Cookies(h.cookies.Name)); err != nil {
		return err
	}
	clearSessionCookie(c, h.cookies)
	return c.Redirect(PathLogin, fiber.StatusSeeOther)
}
