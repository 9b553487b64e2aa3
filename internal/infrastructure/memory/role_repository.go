package memory

import (
	"context"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2/utils"

	"github.com/jhoicas/EmployeePortal-api/internal/domain/entity"
	"github.com/jhoicas/EmployeePortal-api/internal/domain/repository"
)

var _ repository.RoleRepository = (*RoleRepo)(nil)

// RoleRepo RoleRepository en memoria.
type RoleRepo struct {
	s    *Store
	inTx bool
}

// NewRoleRepository construye el repo sobre el store.
func NewRoleRepository(s *Store) *RoleRepo {
	return &RoleRepo{s: s}
}

func (r *RoleRepo) EnsureRole(_ context.Context, name string) error {
	defer r.s.lockAccounts(r.inTx)()
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.roles[utils.CopyString(name)] = struct{}{}
	return nil
}

// Assign exige que el usuario y el rol existan, como las FK de user_roles.
func (r *RoleRepo) Assign(_ context.Context, userID, roleName string) error {
	defer r.s.lockAccounts(r.inTx)()
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.users[userID]; !ok {
		return fmt.Errorf("assign role %s: usuario %s inexistente", roleName, userID)
	}
	if _, ok := r.s.roles[roleName]; !ok {
		return fmt.Errorf("assign role %s: rol inexistente", roleName)
	}
	for _, ur := range r.s.userRoles[userID] {
		if ur.RoleName == roleName {
			return nil
		}
	}
	r.s.userRoles[userID] = append(r.s.userRoles[userID], entity.UserRole{
		UserID:     utils.CopyString(userID),
		RoleName:   utils.CopyString(roleName),
		AssignedAt: time.Now().UTC(),
	})
	return nil
}

// ListByUser devuelve las asignaciones en orden de inserción.
func (r *RoleRepo) ListByUser(_ context.Context, userID string) ([]entity.UserRole, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return append([]entity.UserRole(nil), r.s.userRoles[userID]...), nil
}
