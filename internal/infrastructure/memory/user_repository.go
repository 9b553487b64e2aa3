package memory

import (
	"context"

	"github.com/jhoicas/EmployeePortal-api/internal/domain"
	"github.com/jhoicas/EmployeePortal-api/internal/domain/entity"
	"github.com/jhoicas/EmployeePortal-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo UserRepository en memoria.
type UserRepo struct {
	s    *Store
	inTx bool
}

// NewUserRepository construye el repo sobre el store.
func NewUserRepository(s *Store) *UserRepo {
	return &UserRepo{s: s}
}

// Create persiste un usuario; el email es único sin distinguir mayúsculas.
func (r *UserRepo) Create(_ context.Context, user *entity.User) error {
	defer r.s.lockAccounts(r.inTx)()
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	key := fold(user.Email)
	for _, u := range r.s.users {
		if fold(u.Email) == key {
			return domain.ErrEmailAlreadyExists
		}
	}
	r.s.users[user.ID] = cloneUser(user)
	return nil
}

func (r *UserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	u, ok := r.s.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *UserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	key := fold(email)
	for _, u := range r.s.users {
		if fold(u.Email) == key {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *UserRepo) Update(_ context.Context, user *entity.User) error {
	defer r.s.lockAccounts(r.inTx)()
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.users[user.ID]; !ok {
		return domain.ErrUserNotFound
	}
	key := fold(user.Email)
	for id, u := range r.s.users {
		if id != user.ID && fold(u.Email) == key {
			return domain.ErrEmailAlreadyExists
		}
	}
	r.s.users[user.ID] = cloneUser(user)
	return nil
}
