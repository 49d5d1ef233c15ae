package dto

import "github.com/jhoicas/Oficina-api/internal/domain/entity"

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	AvatarURL string `json:"avatar_url,omitempty"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse salida con token JWT.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// PermissionsResponse capacidades efectivas del actor por módulo y menú visible.
type PermissionsResponse struct {
	Role    string                              `json:"role"`
	Modules map[entity.Module]entity.Capability `json:"modules"`
	Visible []entity.Module                     `json:"visible"`
}

// ResponsibleResponse candidato a responsable de una orden o venta.
type ResponsibleResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Role string `json:"role"`
}

// CreateUserRequest entrada para dar de alta un usuario. Sin permisos se
// asignan los de solo lectura.
type CreateUserRequest struct {
	Name        string                 `json:"name" validate:"required,max=200"`
	Email       string                 `json:"email" validate:"required,email"`
	Password    string                 `json:"password" validate:"required,min=6"`
	Role        string                 `json:"role" validate:"omitempty,oneof=admin manager technician client"`
	Permissions []entity.PermissionRow `json:"permissions" validate:"max=20"`
}
