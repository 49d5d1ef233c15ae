package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Oficina-api/internal/application/auth"
	"github.com/jhoicas/Oficina-api/internal/application/dto"
	"github.com/jhoicas/Oficina-api/internal/domain"
	"github.com/jhoicas/Oficina-api/internal/domain/entity"
	"github.com/jhoicas/Oficina-api/internal/domain/permission"
	"github.com/jhoicas/Oficina-api/internal/domain/repository"
)

// UserUseCase alta y listado de usuarios del sistema (módulo usuarios).
type UserUseCase struct {
	repo repository.UserRepository
	now  func() time.Time
}

// NewUserUseCase construye el caso de uso con el puerto de persistencia.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo, now: time.Now}
}

// List devuelve todos los usuarios. Requiere view sobre usuarios.
func (uc *UserUseCase) List(ctx context.Context, actor entity.Actor) ([]dto.UserResponse, error) {
	if !permission.Can(actor, entity.ModuleUsers, permission.ActionView) {
		return nil, domain.ErrForbidden
	}
	users, err := uc.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("listar usuarios: %w", err)
	}
	out := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, auth.ToUserResponse(u))
	}
	return out, nil
}

// Create da de alta un usuario: hashea el password con bcrypt y, si no se
// enviaron permisos, le asigna solo lectura en todos los módulos.
// Devuelve ErrConflict si el email ya existe.
func (uc *UserUseCase) Create(ctx context.Context, actor entity.Actor, in dto.CreateUserRequest) (*dto.UserResponse, error) {
	if !permission.Can(actor, entity.ModuleUsers, permission.ActionAdd) {
		return nil, domain.ErrForbidden
	}
	email := strings.ToLower(strings.TrimSpace(in.Email))
	existing, err := uc.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("crear usuario: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: email %s ya registrado", domain.ErrConflict, email)
	}

	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: nombre requerido", domain.ErrInvalidInput)
	}
	role := entity.Role(in.Role)
	if role == "" {
		role = entity.RoleManager
	}
	if !role.Valid() {
		return nil, fmt.Errorf("%w: rol %q", domain.ErrInvalidInput, in.Role)
	}
	rows := in.Permissions
	if len(rows) == 0 {
		rows = permission.DefaultRows()
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("crear usuario: hash: %w", err)
	}
	now := uc.now()
	user := &entity.User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		Permissions:  rows,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrRepository, err)
	}
	resp := auth.ToUserResponse(user)
	return &resp, nil
}
