package repository

import (
	"context"

	"github.com/jhoicas/EmployeePortal-api/internal/domain/entity"
)

// Valores por defecto de la paginación del listado de empleados.
const (
	DefaultPage     = 1
	DefaultPageSize = 5
)

// EmployeeFilter criterios del listado. Department/Type nil = sin filtro.
type EmployeeFilter struct {
	SearchTerm string
	Department *entity.Department
	Type       *entity.EmployeeType
	Page       int
	PageSize   int
}

// Normalize reemplaza página o tamaño no positivos por los valores por defecto.
// El tamaño no tiene tope: PageSize=200 devuelve hasta 200 filas.
func (f EmployeeFilter) Normalize() EmployeeFilter {
	if f.Page < 1 {
		f.Page = DefaultPage
	}
	if f.PageSize < 1 {
		f.PageSize = DefaultPageSize
	}
	return f
}

// Offset devuelve el desplazamiento de la página (el filtro debe estar normalizado).
func (f EmployeeFilter) Offset() int {
	return (f.Page - 1) * f.PageSize
}

// EmployeeRepository define el puerto de persistencia para Employee (DIP).
type EmployeeRepository interface {
	Create(ctx context.Context, e *entity.Employee) error
	GetByID(ctx context.Context, id int64) (*entity.Employee, error)
	// Update reemplaza la fila completa; devuelve domain.ErrNotFound si el id no existe.
	Update(ctx context.Context, e *entity.Employee) error
	// Delete no falla cuando el id no existe.
	Delete(ctx context.Context, id int64) error
	// List devuelve la página pedida y el total del conjunto filtrado.
	List(ctx context.Context, filter EmployeeFilter) ([]*entity.Employee, int, error)
	// ListAll devuelve todo el conjunto filtrado sin paginar (exportación).
	ListAll(ctx context.Context, filter EmployeeFilter) ([]*entity.Employee, error)
}
