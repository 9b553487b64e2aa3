package repository

import (
	"context"

	"github.com/jhoicas/EmployeePortal-api/internal/domain/entity"
)

// RoleRepository administra el catálogo de roles y su asignación a usuarios.
type RoleRepository interface {
	// EnsureRole crea el rol si no existe.
	EnsureRole(ctx context.Context, name string) error
	// Assign agrega la pertenencia; asignar dos veces el mismo rol no es error.
	Assign(ctx context.Context, userID, roleName string) error
	// ListByUser devuelve las asignaciones en orden de asignación.
	ListByUser(ctx context.Context, userID string) ([]entity.UserRole, error)
}
