package repository

import (
	"context"
	"time"

	"github.com/jhoicas/EmployeePortal-api/internal/domain/entity"
)

// SessionRepository persiste las sesiones del lado del servidor.
type SessionRepository interface {
	Create(ctx context.Context, s *entity.Session) error
	GetByID(ctx context.Context, id string) (*entity.Session, error)
	Touch(ctx context.Context, id string, at time.Time) error
	Revoke(ctx context.Context, id string) error
	// DeleteInactive elimina las revocadas y las que no se usan desde before.
	DeleteInactive(ctx context.Context, before time.Time) (int64, error)
}
