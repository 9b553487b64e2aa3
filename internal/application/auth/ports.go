package auth

import (
	"context"

	"github.com/jhoicas/EmployeePortal-api/internal/domain/repository"
)

// TxRunner ejecuta fn en una transacción con repos de cuentas atados a ella.
// Si fn devuelve error no queda nada persistido.
type TxRunner interface {
	RunInTx(ctx context.Context, fn func(users repository.UserRepository, roles repository.RoleRepository) error) error
}
