package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/EmployeePortal-api/internal/domain/entity"
	"github.com/jhoicas/EmployeePortal-api/internal/domain/repository"
)

var _ repository.RoleRepository = (*RoleRepo)(nil)

// RoleRepo implementación de RoleRepository sobre las tablas roles y user_roles.
type RoleRepo struct {
	q Querier
}

// NewRoleRepository construye el adaptador. Acepta pool o tx.
func NewRoleRepository(q Querier) *RoleRepo {
	return &RoleRepo{q: q}
}

// EnsureRole crea el rol si no existe.
func (r *RoleRepo) EnsureRole(ctx context.Context, name string) error {
	_, err := r.q.Exec(ctx, `INSERT INTO roles (name) VALUES ($1) ON CONFLICT (name) DO NOTHING`, name)
	if err != nil {
		return fmt.Errorf("ensure role %s: %w", name, err)
	}
	return nil
}

// Assign agrega el rol al usuario; repetir la asignación no cambia assigned_at.
func (r *RoleRepo) Assign(ctx context.Context, userID, roleName string) error {
	query := `
		INSERT INTO user_roles (user_id, role_name, assigned_at)
		VALUES ($1, $2, now())
		ON CONFLICT (user_id, role_name) DO NOTHING`
	if _, err := r.q.Exec(ctx, query, userID, roleName); err != nil {
		return fmt.Errorf("assign role %s: %w", roleName, err)
	}
	return nil
}

// ListByUser devuelve las asignaciones ordenadas por fecha de asignación.
func (r *RoleRepo) ListByUser(ctx context.Context, userID string) ([]entity.UserRole, error) {
	query := `
		SELECT user_id, role_name, assigned_at
		FROM user_roles WHERE user_id = $1
		ORDER BY assigned_at, role_name`
	rows, err := r.q.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list user roles: %w", err)
	}
	defer rows.Close()
	var list []entity.UserRole
	for rows.Next() {
		var ur entity.UserRole
		if err := rows.Scan(&ur.UserID, &ur.RoleName, &ur.AssignedAt); err != nil {
			return nil, fmt.Errorf("scan user role: %w", err)
		}
		list = append(list, ur)
	}
	return list, rows.Err()
}
