package entity

import "time"

// Roles válidos. Un usuario tiene un rol efectivo: el primero asignado.
const (
	RoleAdmin = "Admin"
	RoleUser  = "User"
)

// Roles es el conjunto que el bootstrap garantiza en el store.
var Roles = []string{RoleAdmin, RoleUser}

// User representa una cuenta que puede iniciar sesión. El email es el username.
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// UserRole es la pertenencia de un usuario a un rol.
type UserRole struct {
	UserID     string
	RoleName   string
	AssignedAt time.Time
}
