package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/asaskevich/govalidator"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/EmployeePortal-api/internal/application/dto"
	"github.com/jhoicas/EmployeePortal-api/internal/domain"
	"github.com/jhoicas/EmployeePortal-api/internal/domain/entity"
	"github.com/jhoicas/EmployeePortal-api/internal/domain/repository"
	"github.com/jhoicas/EmployeePortal-api/pkg/logger"
)

// PageSizeOptions tamaños de página ofrecidos en el listado.
var PageSizeOptions = []int{3, 5, 10, 15, 20, 25}

// EmployeeUseCase casos de uso del roster: listado filtrado, CRUD y cargos por departamento.
type EmployeeUseCase struct {
	repo repository.EmployeeRepository
	log  *logger.Logger
	now  func() time.Time
}

// NewEmployeeUseCase construye el caso de uso.
func NewEmployeeUseCase(repo repository.EmployeeRepository, log *logger.Logger) *EmployeeUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &EmployeeUseCase{repo: repo, log: log, now: time.Now}
}

// FilterFromQuery traduce los parámetros crudos del listado. Departamento o tipo
// que no correspondan a la enumeración se ignoran.
func FilterFromQuery(q dto.EmployeeListQuery) repository.EmployeeFilter {
	f := repository.EmployeeFilter{
		SearchTerm: strings.TrimSpace(q.SearchTerm),
		Page:       q.PageNumber,
		PageSize:   q.PageSize,
	}
	if d, ok := entity.ParseDepartment(q.SelectedDepartment); ok {
		f.Department = &d
	}
	if t, ok := entity.ParseEmployeeType(q.SelectedType); ok {
		f.Type = &t
	}
	return f.Normalize()
}

// List devuelve la página pedida con metadatos de paginación.
func (uc *EmployeeUseCase) List(ctx context.Context, q dto.EmployeeListQuery) (*dto.EmployeeListResponse, error) {
	filter := FilterFromQuery(q)
	items, total, err := uc.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	totalPages := (total + filter.PageSize - 1) / filter.PageSize
	out := &dto.EmployeeListResponse{
		Items:           make([]dto.EmployeeResponse, 0, len(items)),
		PageNumber:      filter.Page,
		PageSize:        filter.PageSize,
		TotalCount:      total,
		TotalPages:      totalPages,
		HasPrevious:     filter.Page > 1,
		HasNext:         filter.Page < totalPages,
		SearchTerm:      filter.SearchTerm,
		PageSizeOptions: append([]int(nil), PageSizeOptions...),
		Departments:     DepartmentNames(),
		Types:           EmployeeTypeNames(),
	}
	if filter.Department != nil {
		out.SelectedDepartment = string(*filter.Department)
	}
	if filter.Type != nil {
		out.SelectedType = string(*filter.Type)
	}
	for _, e := range items {
		out.Items = append(out.Items, *toEmployeeResponse(e))
	}
	return out, nil
}

// GetByID obtiene un empleado; domain.ErrNotFound si no existe.
func (uc *EmployeeUseCase) GetByID(ctx context.Context, id int64) (*dto.EmployeeResponse, error) {
	e, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, domain.ErrNotFound
	}
	return toEmployeeResponse(e), nil
}

// Create valida y persiste un empleado nuevo.
func (uc *EmployeeUseCase) Create(ctx context.Context, in dto.EmployeeRequest) (*dto.EmployeeResponse, error) {
	e, err := employeeFromRequest(in)
	if err != nil {
		return nil, err
	}
	now := uc.now().UTC()
	e.CreatedAt = now
	e.UpdatedAt = now
	if err := uc.repo.Create(ctx, e); err != nil {
		return nil, err
	}
	uc.log.Info().Int64("employee_id", e.ID).Str("department", string(e.Department)).Msg("empleado creado")
	return toEmployeeResponse(e), nil
}

// Update reemplaza todos los campos del empleado id. domain.ErrNotFound si no existe.
func (uc *EmployeeUseCase) Update(ctx context.Context, id int64, in dto.EmployeeRequest) (*dto.EmployeeResponse, error) {
	e, err := employeeFromRequest(in)
	if err != nil {
		return nil, err
	}
	current, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, domain.ErrNotFound
	}
	e.ID = id
	e.CreatedAt = current.CreatedAt
	e.UpdatedAt = uc.now().UTC()
	if err := uc.repo.Update(ctx, e); err != nil {
		return nil, err
	}
	uc.log.Info().Int64("employee_id", id).Msg("empleado actualizado")
	return toEmployeeResponse(e), nil
}

// Delete elimina el empleado y lo devuelve para el mensaje de confirmación.
// domain.ErrNotFound si no existe; el store no cambia.
func (uc *EmployeeUseCase) Delete(ctx context.Context, id int64) (*dto.EmployeeResponse, error) {
	e, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, domain.ErrNotFound
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		return nil, err
	}
	uc.log.Info().Int64("employee_id", id).Msg("empleado eliminado")
	return toEmployeeResponse(e), nil
}

// Positions devuelve los cargos del departamento (nombre u ordinal); vacío si no es válido.
func (uc *EmployeeUseCase) Positions(department string) []string {
	d, ok := entity.ParseDepartment(department)
	if !ok {
		return []string{}
	}
	return entity.PositionsFor(d)
}

// DepartmentNames nombres de la enumeración Department en orden canónico.
func DepartmentNames() []string {
	out := make([]string, len(entity.Departments))
	for i, d := range entity.Departments {
		out[i] = string(d)
	}
	return out
}

// EmployeeTypeNames nombres de la enumeración EmployeeType en orden canónico.
func EmployeeTypeNames() []string {
	out := make([]string, len(entity.EmployeeTypes))
	for i, t := range entity.EmployeeTypes {
		out[i] = string(t)
	}
	return out
}

func employeeFromRequest(in dto.EmployeeRequest) (*entity.Employee, error) {
	verr := domain.NewValidationError()
	e := &entity.Employee{
		FullName: strings.TrimSpace(in.FullName),
		Email:    strings.TrimSpace(in.Email),
		Position: strings.TrimSpace(in.Position),
	}
	if e.FullName == "" {
		verr.Add("FullName", "The FullName field is required.")
	}
	if e.Email != "" && !govalidator.IsEmail(e.Email) {
		verr.Add("Email", "The Email field is not a valid e-mail address.")
	}
	if d, ok := entity.ParseDepartment(in.Department); ok {
		e.Department = d
	} else {
		verr.Add("Department", "Select a valid department.")
	}
	if t, ok := entity.ParseEmployeeType(in.Type); ok {
		e.Type = t
	} else {
		verr.Add("Type", "Select a valid employee type.")
	}
	if e.Position == "" {
		verr.Add("Position", "The Position field is required.")
	}
	salary := strings.TrimSpace(in.Salary)
	if salary == "" {
		verr.Add("Salary", "The Salary field is required.")
	} else if d, err := decimal.NewFromString(salary); err != nil {
		verr.Add("Salary", "The Salary field must be a number.")
	} else if d.IsNegative() {
		verr.Add("Salary", "Salary must be a non-negative value.")
	} else {
		e.Salary = entity.NormalizeSalary(d)
	}
	if err := verr.OrNil(); err != nil {
		return nil, err
	}
	return e, nil
}

func toEmployeeResponse(e *entity.Employee) *dto.EmployeeResponse {
	if e == nil {
		return nil
	}
	return &dto.EmployeeResponse{
		ID:         e.ID,
		FullName:   e.FullName,
		Email:      e.Email,
		Department: string(e.Department),
		Type:       string(e.Type),
		Position:   e.Position,
		Salary:     e.Salary.StringFixed(entity.SalaryScale),
		CreatedAt:  e.CreatedAt,
		UpdatedAt:  e.UpdatedAt,
	}
}
