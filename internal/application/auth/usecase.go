package auth

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Oficina-api/internal/application/dto"
	"github.com/jhoicas/Oficina-api/internal/domain"
	"github.com/jhoicas/Oficina-api/internal/domain/entity"
	"github.com/jhoicas/Oficina-api/internal/domain/permission"
	"github.com/jhoicas/Oficina-api/internal/domain/repository"
	"github.com/jhoicas/Oficina-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: login y carga del actor.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

// Login verifica email/password, genera JWT y retorna token + usuario.
// Email inexistente y password incorrecto devuelven el mismo error.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.FindByEmail(ctx, strings.TrimSpace(in.Email))
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}
	if user == nil {
		return nil, domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Name, string(user.Role), uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, fmt.Errorf("login: generar token: %w", err)
	}
	return &dto.LoginResponse{
		Token: token,
		User:  ToUserResponse(user),
	}, nil
}

// LoadActor relee el usuario del token con sus permisos vigentes. Un usuario
// borrado después de emitir el token queda no autorizado.
func (uc *AuthUseCase) LoadActor(ctx context.Context, userID string) (entity.Actor, error) {
	user, err := uc.userRepo.FindByID(ctx, userID)
	if err != nil {
		return entity.Actor{}, fmt.Errorf("cargar actor: %w", err)
	}
	if user == nil {
		return entity.Actor{}, domain.ErrUnauthorized
	}
	return user.Actor(), nil
}

// Permissions devuelve la capacidad efectiva del actor en cada módulo y el
// menú que le corresponde.
func Permissions(actor entity.Actor) dto.PermissionsResponse {
	modules := make(map[entity.Module]entity.Capability, len(entity.AllModules()))
	for _, m := range entity.AllModules() {
		modules[m] = permission.EffectiveCapability(actor, m)
	}
	visible := permission.VisibleModules(actor)
	if visible == nil {
		visible = []entity.Module{}
	}
	return dto.PermissionsResponse{
		Role:    string(actor.Role),
		Modules: modules,
		Visible: visible,
	}
}

// ToUserResponse convierte el usuario a su forma pública (sin hash).
func ToUserResponse(u *entity.User) dto.UserResponse {
	return dto.UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      string(u.Role),
		AvatarURL: u.AvatarURL,
	}
}
