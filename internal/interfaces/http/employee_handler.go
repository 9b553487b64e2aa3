package http

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/EmployeePortal-api/internal/application/dto"
	"github.com/jhoicas/EmployeePortal-api/internal/application/usecase"
	"github.com/jhoicas/EmployeePortal-api/internal/domain"
)

// EmployeeHandler maneja las peticiones HTTP del roster. El gate ya validó el acceso.
type EmployeeHandler struct {
	uc     *usecase.EmployeeUseCase
	export *usecase.ExportUseCase
}

// NewEmployeeHandler construye el handler.
func NewEmployeeHandler(uc *usecase.EmployeeUseCase, export *usecase.ExportUseCase) *EmployeeHandler {
	return &EmployeeHandler{uc: uc, export: export}
}

// List godoc
// @Summary      Listar empleados
// @Description  Búsqueda por nombre, filtros por departamento y tipo, paginado.
// @Tags         employees
// @Produce      json
// @Param        SearchTerm          query  string  false  "Subcadena del nombre (sin distinguir mayúsculas)"
// @Param        SelectedDepartment  query  string  false  "IT | HR | Sales | Admin"
// @Param        SelectedType        query  string  false  "FullTime | PartTime | Contract | Intern"
// @Param        PageNumber          query  int     false  "Página (default 1)"
// @Param        PageSize            query  int     false  "Tamaño de página (default 5)"
// @Success      200  {object}  dto.EmployeeListResponse
// @Router       /Employee/List [get]
func (h *EmployeeHandler) List(c *fiber.Ctx) error {
	var q dto.EmployeeListQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	out, err := h.uc.List(c.UserContext(), q)
	if err != nil {
		return respondError(c, err)
	}
	out.Flash = popFlash(c)
	return c.JSON(out)
}

// CreateForm godoc
// @Summary      Formulario de alta
// @Tags         employees
// @Produce      json
// @Success      200  {object}  dto.FormResponse
// @Router       /Employee/Create [get]
func (h *EmployeeHandler) CreateForm(c *fiber.Ctx) error {
	return c.JSON(dto.FormResponse{
		Form:    "employee",
		Action:  "/Employee/Create",
		Values:  dto.EmployeeRequest{},
		Options: h.formOptions(""),
	})
}

// Create godoc
// @Summary      Crear empleado
// @Tags         employees
// @Accept       x-www-form-urlencoded,json
// @Produce      json
// @Param        body  body  dto.EmployeeRequest  true  "Datos del empleado"
// @Success      303
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /Employee/Create [post]
func (h *EmployeeHandler) Create(c *fiber.Ctx) error {
	var in dto.EmployeeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Redirect(fmt.Sprintf("/Employee/Success/%d", out.ID), fiber.StatusSeeOther)
}

// Success godoc
// @Summary      Confirmación de alta
// @Tags         employees
// @Produce      json
// @Param        id   path  int  true  "ID del empleado"
// @Success      200  {object}  dto.EmployeeSuccessResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /Employee/Success/{id} [get]
func (h *EmployeeHandler) Success(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return respondError(c, domain.ErrNotFound)
	}
	out, err := h.uc.GetByID(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.EmployeeSuccessResponse{
		Message:  fmt.Sprintf("Employee %s has been created successfully.", out.FullName),
		Employee: *out,
	})
}

// Details godoc
// @Summary      Detalle de empleado
// @Tags         employees
// @Produce      json
// @Param        id   path  int  true  "ID del empleado"
// @Success      200  {object}  dto.EmployeeResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /Employee/Details/{id} [get]
func (h *EmployeeHandler) Details(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return respondError(c, domain.ErrNotFound)
	}
	out, err := h.uc.GetByID(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// UpdateForm godoc
// @Summary      Formulario de edición
// @Tags         employees
// @Produce      json
// @Param        id   path  int  true  "ID del empleado"
// @Success      200  {object}  dto.FormResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /Employee/Update/{id} [get]
func (h *EmployeeHandler) UpdateForm(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return respondError(c, domain.ErrNotFound)
	}
	out, err := h.uc.GetByID(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.FormResponse{
		Form:    "employee",
		Action:  fmt.Sprintf("/Employee/Update/%d", id),
		Values:  out,
		Options: h.formOptions(out.Department),
	})
}

// Update godoc
// @Summary      Actualizar empleado
// @Description  Reemplaza todos los campos del empleado.
// @Tags         employees
// @Accept       x-www-form-urlencoded,json
// @Produce      json
// @Param        id    path  int                  true  "ID del empleado"
// @Param        body  body  dto.EmployeeRequest  true  "Datos del empleado"
// @Success      303
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /Employee/Update/{id} [post]
func (h *EmployeeHandler) Update(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return respondError(c, domain.ErrNotFound)
	}
	var in dto.EmployeeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.UserContext(), id, in)
	if err != nil {
		return respondError(c, err)
	}
	setFlash(c, dto.FlashSuccess, fmt.Sprintf("Employee with ID %d and Name %s has been updated.", out.ID, out.FullName))
	return c.Redirect(PathEmployeeList, fiber.StatusSeeOther)
}

// DeleteForm godoc
// @Summary      Confirmación de baja
// @Tags         employees
// @Produce      json
// @Param        id   path  int  true  "ID del empleado"
// @Success      200  {object}  dto.FormResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /Employee/Delete/{id} [get]
func (h *EmployeeHandler) DeleteForm(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return respondError(c, domain.ErrNotFound)
	}
	out, err := h.uc.GetByID(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.FormResponse{
		Form:   "delete",
		Action: fmt.Sprintf("/Employee/Delete/%d", id),
		Values: out,
	})
}

// Delete godoc
// @Summary      Eliminar empleado
// @Tags         employees
// @Produce      json
// @Param        id   path  int  true  "ID del empleado"
// @Success      303
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /Employee/Delete/{id} [post]
func (h *EmployeeHandler) Delete(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return respondError(c, domain.ErrNotFound)
	}
	out, err := h.uc.Delete(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	setFlash(c, dto.FlashSuccess, fmt.Sprintf("Employee with ID %d and Name %s has been deleted.", out.ID, out.FullName))
	return c.Redirect(PathEmployeeList, fiber.StatusSeeOther)
}

// GetPositions godoc
// @Summary      Cargos por departamento
// @Description  Lista vacía sin sesión o con departamento desconocido.
// @Tags         employees
// @Produce      json
// @Param        department  query  string  true  "IT | HR | Sales | Admin"
// @Success      200  {array}  string
// @Router       /Employee/GetPositions [get]
func (h *EmployeeHandler) GetPositions(c *fiber.Ctx) error {
	if GetPrincipal(c) == nil {
		return c.JSON([]string{})
	}
	return c.JSON(h.uc.Positions(c.Query("department")))
}

// Export godoc
// @Summary      Exportar roster
// @Description  Mismos filtros que el listado, sin paginar.
// @Tags         employees
// @Produce      application/pdf,application/xml
// @Param        format              query  string  false  "pdf | xml (default pdf)"
// @Param        SearchTerm          query  string  false  "Subcadena del nombre"
// @Param        SelectedDepartment  query  string  false  "IT | HR | Sales | Admin"
// @Param        SelectedType        query  string  false  "FullTime | PartTime | Contract | Intern"
// @Success      200  {file}  file
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /Employee/Export [get]
func (h *EmployeeHandler) Export(c *fiber.Ctx) error {
	var q dto.EmployeeListQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	out, err := h.export.Export(c.UserContext(), c.Query("format"), q, GetUsername(c))
	if err != nil {
		return respondError(c, err)
	}
	c.Attachment(out.Filename)
	c.Set(fiber.HeaderContentType, out.ContentType)
	return c.Send(out.Content)
}

func (h *EmployeeHandler) formOptions(department string) map[string][]string {
	opts := map[string][]string{
		"Department": usecase.DepartmentNames(),
		"Type":       usecase.EmployeeTypeNames(),
	}
	if department != "" {
		opts["Position"] = h.uc.Positions(department)
	}
	return opts
}

func parseID(c *fiber.Ctx) (int64, bool) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
