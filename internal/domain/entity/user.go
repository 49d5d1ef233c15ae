package entity

import "time"

// Role es el nivel de acceso de un usuario.
type Role string

// Roles válidos para User.
const (
	RoleAdmin      Role = "admin"
	RoleManager    Role = "manager"
	RoleTechnician Role = "technician"
	RoleClient     Role = "client"
)

// Valid informa si el rol es uno de los conocidos.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleManager, RoleTechnician, RoleClient:
		return true
	}
	return false
}

// User representa un usuario persistido del sistema.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Role         Role
	AvatarURL    string
	Permissions  []PermissionRow
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Actor construye el actor de una operación a partir del usuario persistido.
func (u *User) Actor() Actor {
	rows := make([]PermissionRow, len(u.Permissions))
	copy(rows, u.Permissions)
	return Actor{
		ID:          u.ID,
		Name:        u.Name,
		Email:       u.Email,
		Role:        u.Role,
		Permissions: rows,
	}
}
