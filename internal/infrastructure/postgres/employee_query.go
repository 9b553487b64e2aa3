package postgres

import (
	"fmt"
	"strings"

	"github.com/jhoicas/EmployeePortal-api/internal/domain/repository"
)

const employeeColumns = `id, full_name, email, department, employee_type, position, salary, created_at, updated_at`

// employeeWhere construye la cláusula WHERE y sus argumentos posicionales para el filtro.
func employeeWhere(f repository.EmployeeFilter) (string, []any) {
	var conds []string
	var args []any
	if term := strings.TrimSpace(f.SearchTerm); term != "" {
		args = append(args, containsPattern(term))
		conds = append(conds, fmt.Sprintf(`full_name ILIKE $%d ESCAPE '\'`, len(args)))
	}
	if f.Department != nil {
		args = append(args, string(*f.Department))
		conds = append(conds, fmt.Sprintf("department = $%d", len(args)))
	}
	if f.Type != nil {
		args = append(args, string(*f.Type))
		conds = append(conds, fmt.Sprintf("employee_type = $%d", len(args)))
	}
	if len(conds) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

// employeeCountQuery cuenta el conjunto filtrado.
func employeeCountQuery(f repository.EmployeeFilter) (string, []any) {
	where, args := employeeWhere(f)
	return "SELECT COUNT(*) FROM employees" + where, args
}

// employeePageQuery devuelve la página pedida ordenada por id. El filtro se normaliza aquí.
func employeePageQuery(f repository.EmployeeFilter) (string, []any) {
	f = f.Normalize()
	where, args := employeeWhere(f)
	args = append(args, f.PageSize, f.Offset())
	query := fmt.Sprintf("SELECT %s FROM employees%s ORDER BY id LIMIT $%d OFFSET $%d",
		employeeColumns, where, len(args)-1, len(args))
	return query, args
}

// employeeAllQuery devuelve todo el conjunto filtrado ordenado por id.
func employeeAllQuery(f repository.EmployeeFilter) (string, []any) {
	where, args := employeeWhere(f)
	return fmt.Sprintf("SELECT %s FROM employees%s ORDER BY id", employeeColumns, where), args
}
