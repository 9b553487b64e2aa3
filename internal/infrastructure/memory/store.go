// Package memory implementa los puertos de persistencia en memoria de proceso.
// Se usa con STORAGE_DRIVER=memory y en los tests.
package memory

import (
	"strings"
	"sync"

	"github.com/gofiber/fiber/v2/utils"
	"golang.org/x/text/cases"

	"github.com/jhoicas/EmployeePortal-api/internal/domain/entity"
)

// Store guarda todas las tablas detrás de un único mutex.
// txMu serializa las escrituras de cuentas con las transacciones de TxRunner.
type Store struct {
	mu        sync.RWMutex
	txMu      sync.Mutex
	users     map[string]*entity.User
	roles     map[string]struct{}
	userRoles map[string][]entity.UserRole
	sessions  map[string]*entity.Session
	employees map[int64]*entity.Employee
	nextEmpID int64
}

// NewStore crea un store vacío.
func NewStore() *Store {
	return &Store{
		users:     map[string]*entity.User{},
		roles:     map[string]struct{}{},
		userRoles: map[string][]entity.UserRole{},
		sessions:  map[string]*entity.Session{},
		employees: map[int64]*entity.Employee{},
	}
}

// fold normaliza para comparar sin distinguir mayúsculas (Unicode).
// cases.Caser no es seguro entre goroutines: uno por llamada.
func fold(s string) string {
	return cases.Fold().String(strings.TrimSpace(s))
}

type accountSnapshot struct {
	users     map[string]*entity.User
	roles     map[string]struct{}
	userRoles map[string][]entity.UserRole
}

func (s *Store) snapshotAccounts() accountSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snap := accountSnapshot{
		users:     make(map[string]*entity.User, len(s.users)),
		roles:     make(map[string]struct{}, len(s.roles)),
		userRoles: make(map[string][]entity.UserRole, len(s.userRoles)),
	}
	for k, v := range s.users {
		snap.users[k] = v
	}
	for k := range s.roles {
		snap.roles[k] = struct{}{}
	}
	for k, v := range s.userRoles {
		snap.userRoles[k] = append([]entity.UserRole(nil), v...)
	}
	return snap
}

func (s *Store) restoreAccounts(snap accountSnapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users = snap.users
	s.roles = snap.roles
	s.userRoles = snap.userRoles
}

// lockAccounts toma txMu para escrituras de usuarios y roles hechas fuera de una transacción.
func (s *Store) lockAccounts(inTx bool) func() {
	if inTx {
		return func() {}
	}
	s.txMu.Lock()
	return s.txMu.Unlock
}

// Los strings que llegan desde Fiber pueden apuntar a buffers reutilizados:
// todo lo que se guarda en el store se copia.

func cloneUser(u *entity.User) *entity.User {
	cp := *u
	cp.ID = utils.CopyString(u.ID)
	cp.Email = utils.CopyString(u.Email)
	cp.PasswordHash = utils.CopyString(u.PasswordHash)
	return &cp
}

func cloneSession(sess *entity.Session) *entity.Session {
	cp := *sess
	cp.ID = utils.CopyString(sess.ID)
	cp.UserID = utils.CopyString(sess.UserID)
	cp.Username = utils.CopyString(sess.Username)
	cp.Role = utils.CopyString(sess.Role)
	return &cp
}

func cloneEmployee(e *entity.Employee) *entity.Employee {
	cp := *e
	cp.FullName = utils.CopyString(e.FullName)
	cp.Email = utils.CopyString(e.Email)
	cp.Position = utils.CopyString(e.Position)
	cp.Department = entity.Department(utils.CopyString(string(e.Department)))
	cp.Type = entity.EmployeeType(utils.CopyString(string(e.Type)))
	return &cp
}
