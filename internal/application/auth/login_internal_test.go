package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/EmployeePortal-api/internal/application/dto"
	"github.com/jhoicas/EmployeePortal-api/internal/domain"
	"github.com/jhoicas/EmployeePortal-api/internal/domain/entity"
)

type noUsers struct{}

func (noUsers) Create(context.Context, *entity.User) error { return nil }
func (noUsers) GetByID(context.Context, string) (*entity.User, error) { return nil, nil }
func (noUsers) GetByEmail(context.Context, string) (*entity.User, error) { return nil, nil }
func (noUsers) Update(context.Context, *entity.User) error { return nil }

func TestLogin_EmailDesconocidoTambienComparaHash(t *testing.T) {
	orig := compareHash
	t.Cleanup(func() { compareHash = orig })

	var calls int
	var hashed []byte
	compareHash = func(hash, password []byte) error {
		calls++
		hashed = hash
		return orig(hash, password)
	}

	uc := NewAuthUseCase(noUsers{}, nil, nil, nil, SessionConfig{Secret: "s"})
	_, err := uc.Login(context.Background(), dto.LoginRequest{Email: "nadie@example.com", Password: "Secret1"}, "")

	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	require.Equal(t, 1, calls, "bcrypt debe ejecutarse aunque el email no exista")
	assert.Equal(t, unknownUserHash(), hashed)
}
