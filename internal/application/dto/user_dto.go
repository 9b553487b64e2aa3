package dto

import "time"

// RegisterRequest entrada del formulario de registro.
type RegisterRequest struct {
	Email           string `json:"email" form:"Email"`
	Password        string `json:"password" form:"Password"`
	ConfirmPassword string `json:"confirm_password" form:"ConfirmPassword"`
}

// LoginRequest entrada del formulario de login.
type LoginRequest struct {
	Email      string `json:"email" form:"Email"`
	Password   string `json:"password" form:"Password"`
	RememberMe bool   `json:"remember_me" form:"RememberMe"`
}

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}
