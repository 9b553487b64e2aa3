package memory

import (
	"context"

	"github.com/jhoicas/EmployeePortal-api/internal/application/auth"
	"github.com/jhoicas/EmployeePortal-api/internal/domain/repository"
)

var _ auth.TxRunner = (*TxRunner)(nil)

// TxRunner emula una transacción: si fn falla se restauran usuarios y roles.
// Mientras corre, las escrituras de cuentas hechas fuera de la transacción esperan.
type TxRunner struct {
	s *Store
}

// NewTxRunner construye el runner sobre el store.
func NewTxRunner(s *Store) *TxRunner {
	return &TxRunner{s: s}
}

func (r *TxRunner) RunInTx(ctx context.Context, fn func(
	users repository.UserRepository,
	roles repository.RoleRepository,
) error) error {
	r.s.txMu.Lock()
	defer r.s.txMu.Unlock()
	snap := r.s.snapshotAccounts()
	users := &UserRepo{s: r.s, inTx: true}
	roles := &RoleRepo{s: r.s, inTx: true}
	if err := fn(users, roles); err != nil {
		r.s.restoreAccounts(snap)
		return err
	}
	return nil
}
