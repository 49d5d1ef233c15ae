package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Oficina-api/internal/application/auth"
	"github.com/jhoicas/Oficina-api/internal/application/dto"
	"github.com/jhoicas/Oficina-api/internal/domain"
	"github.com/jhoicas/Oficina-api/internal/domain/entity"
	"github.com/jhoicas/Oficina-api/pkg/jwt"
)

const secret = "test-secret"

type usersStub struct{ users []*entity.User }

func (s *usersStub) FindByID(_ context.Context, id string) (*entity.User, error) {
	for _, u := range s.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (s *usersStub) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (s *usersStub) ListByRoles(context.Context, ...entity.Role) ([]*entity.User, error) {
	return s.users, nil
}
func (s *usersStub) GetAll(context.Context) ([]*entity.User, error) { return s.users, nil }
func (s *usersStub) Create(_ context.Context, u *entity.User) error {
	s.users = append(s.users, u)
	return nil
}

func newUseCase(t *testing.T) *auth.AuthUseCase {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("segredo1"), bcrypt.MinCost)
	require.NoError(t, err)
	repo := &usersStub{users: []*entity.User{{
		ID:           "u-1",
		Name:         "Carlos",
		Email:        "carlos@oficina.com",
		PasswordHash: string(hash),
		Role:         entity.RoleTechnician,
		Permissions: []entity.PermissionRow{
			{Module: entity.ModuleOrders, Capability: entity.Capability{View: true, Edit: true}},
		},
	}}}
	return auth.NewAuthUseCase(repo, auth.JWTConfig{Secret: secret, ExpMinutes: 60, Issuer: "oficina-api"})
}

func TestLogin_EmiteTokenConNombreYRol(t *testing.T) {
	uc := newUseCase(t)

	out, err := uc.Login(context.Background(), dto.LoginRequest{Email: "carlos@oficina.com", Password: "segredo1"})
	require.NoError(t, err)
	assert.Equal(t, "u-1", out.User.ID)
	assert.Equal(t, "technician", out.User.Role)

	claims, err := jwt.Parse(secret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, "u-1", claims.UserID)
	assert.Equal(t, "Carlos", claims.Name)
	assert.Equal(t, "technician", claims.Role)
}

func TestLogin_CredencialesInvalidas(t *testing.T) {
	uc := newUseCase(t)

	_, err := uc.Login(context.Background(), dto.LoginRequest{Email: "carlos@oficina.com", Password: "errado"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, err = uc.Login(context.Background(), dto.LoginRequest{Email: "ninguem@oficina.com", Password: "segredo1"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestLoadActor(t *testing.T) {
	uc := newUseCase(t)

	actor, err := uc.LoadActor(context.Background(), "u-1")
	require.NoError(t, err)
	assert.Equal(t, entity.RoleTechnician, actor.Role)
	require.Len(t, actor.Permissions, 1)

	_, err = uc.LoadActor(context.Background(), "borrado")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestPermissions(t *testing.T) {
	tech := entity.Actor{Role: entity.RoleTechnician, Permissions: []entity.PermissionRow{
		{Module: entity.ModuleOrders, Capability: entity.Capability{View: true, Edit: true}},
		{Module: entity.ModuleFinance, Capability: entity.Capability{Add: true}},
	}}

	out := auth.Permissions(tech)
	assert.Equal(t, "technician", out.Role)
	assert.Len(t, out.Modules, len(entity.AllModules()))
	assert.True(t, out.Modules[entity.ModuleOrders].Edit)
	assert.False(t, out.Modules[entity.ModuleSales].View)
	assert.Equal(t, []entity.Module{entity.ModuleOrders}, out.Visible)

	admin := auth.Permissions(entity.Actor{Role: entity.RoleAdmin})
	assert.Equal(t, entity.AllModules(), admin.Visible)

	none := auth.Permissions(entity.Actor{Role: entity.RoleClient})
	assert.NotNil(t, none.Visible)
	assert.Empty(t, none.Visible)
}
