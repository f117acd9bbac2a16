package dto

import "time"

// CreateUserRequest entrada para crear una cuenta (password en texto, se hashea en use case).
type CreateUserRequest struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
	Role     string `json:"role" form:"role"` // admin | seller; vacío = seller
}

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// LoginRequest credenciales del formulario de login.
type LoginRequest struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
}

// UserFormResponse vista del formulario de alta de usuario.
type UserFormResponse struct {
	View  string   `json:"view"`
	Roles []string `json:"roles"`
}
