package memory

import (
	"context"
	"sort"
	"strings"

	"github.com/jhoicas/EmployeePortal-api/internal/domain"
	"github.com/jhoicas/EmployeePortal-api/internal/domain/entity"
	"github.com/jhoicas/EmployeePortal-api/internal/domain/repository"
)

var _ repository.EmployeeRepository = (*EmployeeRepo)(nil)

// EmployeeRepo EmployeeRepository en memoria con la misma semántica de filtro que PostgreSQL.
type EmployeeRepo struct {
	s *Store
}

// NewEmployeeRepository construye el repo sobre el store.
func NewEmployeeRepository(s *Store) *EmployeeRepo {
	return &EmployeeRepo{s: s}
}

func (r *EmployeeRepo) Create(_ context.Context, e *entity.Employee) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.nextEmpID++
	e.ID = r.s.nextEmpID
	e.Salary = entity.NormalizeSalary(e.Salary)
	r.s.employees[e.ID] = cloneEmployee(e)
	return nil
}

func (r *EmployeeRepo) GetByID(_ context.Context, id int64) (*entity.Employee, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	e, ok := r.s.employees[id]
	if !ok {
		return nil, nil
	}
	cp := *e
	return &cp, nil
}

func (r *EmployeeRepo) Update(_ context.Context, e *entity.Employee) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cur, ok := r.s.employees[e.ID]
	if !ok {
		return domain.ErrNotFound
	}
	cp := cloneEmployee(e)
	cp.CreatedAt = cur.CreatedAt
	cp.Salary = entity.NormalizeSalary(e.Salary)
	r.s.employees[e.ID] = cp
	return nil
}

func (r *EmployeeRepo) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.employees, id)
	return nil
}

func (r *EmployeeRepo) List(_ context.Context, filter repository.EmployeeFilter) ([]*entity.Employee, int, error) {
	filter = filter.Normalize()
	all := r.filtered(filter)
	total := len(all)
	start := filter.Offset()
	if start >= total {
		return []*entity.Employee{}, total, nil
	}
	end := start + filter.PageSize
	if end > total {
		end = total
	}
	return all[start:end], total, nil
}

func (r *EmployeeRepo) ListAll(_ context.Context, filter repository.EmployeeFilter) ([]*entity.Employee, error) {
	return r.filtered(filter), nil
}

// filtered devuelve copias del conjunto filtrado ordenado por id.
func (r *EmployeeRepo) filtered(f repository.EmployeeFilter) []*entity.Employee {
	term := fold(f.SearchTerm)
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*entity.Employee, 0, len(r.s.employees))
	for _, e := range r.s.employees {
		if term != "" && !strings.Contains(fold(e.FullName), term) {
			continue
		}
		if f.Department != nil && e.Department != *f.Department {
			continue
		}
		if f.Type != nil && e.Type != *f.Type {
			continue
		}
		cp := *e
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
