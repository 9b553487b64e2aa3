package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/EmployeePortal-api/internal/domain"
	"github.com/jhoicas/EmployeePortal-api/internal/domain/entity"
	"github.com/jhoicas/EmployeePortal-api/internal/domain/repository"
)

var _ repository.EmployeeRepository = (*EmployeeRepo)(nil)

// EmployeeRepo implementación del puerto EmployeeRepository sobre PostgreSQL (usable con pool o tx).
type EmployeeRepo struct {
	q Querier
}

// NewEmployeeRepository construye el adaptador de persistencia para empleados. Pasar pool o tx (Querier).
func NewEmployeeRepository(q Querier) *EmployeeRepo {
	return &EmployeeRepo{q: q}
}

// Create persiste un empleado y asigna ID y timestamps devueltos por la base.
func (r *EmployeeRepo) Create(ctx context.Context, e *entity.Employee) error {
	query := `
		INSERT INTO employees (full_name, email, department, employee_type, position, salary, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		e.FullName, e.Email, string(e.Department), string(e.Type), e.Position,
		entity.NormalizeSalary(e.Salary), e.CreatedAt, e.UpdatedAt,
	).Scan(&e.ID)
	if err != nil {
		return fmt.Errorf("insert employee: %w", err)
	}
	return nil
}

// GetByID obtiene un empleado; (nil, nil) si no existe.
func (r *EmployeeRepo) GetByID(ctx context.Context, id int64) (*entity.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE id = $1`
	e, err := scanEmployee(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get employee: %w", err)
	}
	return e, nil
}

// Update reemplaza todos los campos editables de la fila.
func (r *EmployeeRepo) Update(ctx context.Context, e *entity.Employee) error {
	query := `
		UPDATE employees
		SET full_name = $2, email = $3, department = $4, employee_type = $5, position = $6, salary = $7, updated_at = $8
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query,
		e.ID, e.FullName, e.Email, string(e.Department), string(e.Type), e.Position,
		entity.NormalizeSalary(e.Salary), e.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina por ID; sin error si no existe.
func (r *EmployeeRepo) Delete(ctx context.Context, id int64) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM employees WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete employee: %w", err)
	}
	return nil
}

// List devuelve la página pedida y el total filtrado.
func (r *EmployeeRepo) List(ctx context.Context, filter repository.EmployeeFilter) ([]*entity.Employee, int, error) {
	countSQL, countArgs := employeeCountQuery(filter)
	var total int
	if err := r.q.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count employees: %w", err)
	}
	pageSQL, pageArgs := employeePageQuery(filter)
	list, err := r.query(ctx, pageSQL, pageArgs)
	if err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

// ListAll devuelve el conjunto filtrado completo.
func (r *EmployeeRepo) ListAll(ctx context.Context, filter repository.EmployeeFilter) ([]*entity.Employee, error) {
	sql, args := employeeAllQuery(filter)
	return r.query(ctx, sql, args)
}

func (r *EmployeeRepo) query(ctx context.Context, sql string, args []any) ([]*entity.Employee, error) {
	rows, err := r.q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.Employee, 0)
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("scan employee: %w", err)
		}
		list = append(list, e)
	}
	return list, rows.Err()
}

func scanEmployee(row pgx.Row) (*entity.Employee, error) {
	var e entity.Employee
	var dept, typ string
	if err := row.Scan(
		&e.ID, &e.FullName, &e.Email, &dept, &typ, &e.Position, &e.Salary, &e.CreatedAt, &e.UpdatedAt,
	); err != nil {
		return nil, err
	}
	e.Department = entity.Department(dept)
	e.Type = entity.EmployeeType(typ)
	return &e, nil
}
