package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Oficina-api/internal/application/dto"
	"github.com/jhoicas/Oficina-api/internal/application/usecase"
	"github.com/jhoicas/Oficina-api/internal/domain"
	"github.com/jhoicas/Oficina-api/internal/domain/entity"
	"github.com/jhoicas/Oficina-api/internal/domain/permission"
)

type usersRepo struct{ users []*entity.User }

func (r *usersRepo) FindByID(context.Context, string) (*entity.User, error) { return nil, nil }
func (r *usersRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}
func (r *usersRepo) ListByRoles(context.Context, ...entity.Role) ([]*entity.User, error) {
	return nil, nil
}
func (r *usersRepo) GetAll(context.Context) ([]*entity.User, error) { return r.users, nil }
func (r *usersRepo) Create(_ context.Context, u *entity.User) error {
	r.users = append(r.users, u)
	return nil
}

var admin = entity.Actor{ID: "1", Name: "Admin", Role: entity.RoleAdmin}

func TestCreateUser_PermisosPorDefecto(t *testing.T) {
	repo := &usersRepo{}
	uc := usecase.NewUserUseCase(repo)

	out, err := uc.Create(context.Background(), admin, dto.CreateUserRequest{
		Name:     "Carlos",
		Email:    " Carlos@Oficina.com ",
		Password: "segredo1",
		Role:     "technician",
	})
	require.NoError(t, err)
	assert.Equal(t, "carlos@oficina.com", out.Email)
	assert.NotEmpty(t, out.ID)

	require.Len(t, repo.users, 1)
	stored := repo.users[0]
	assert.Equal(t, permission.DefaultRows(), stored.Permissions)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("segredo1")))
}

func TestCreateUser_RolPorDefectoYEmailDuplicado(t *testing.T) {
	repo := &usersRepo{}
	uc := usecase.NewUserUseCase(repo)
	in := dto.CreateUserRequest{Name: " Ana ", Email: "ana@oficina.com", Password: "segredo1"}

	out, err := uc.Create(context.Background(), admin, in)
	require.NoError(t, err)
	assert.Equal(t, "manager", out.Role)
	assert.Equal(t, "Ana", out.Name)

	_, err = uc.Create(context.Background(), admin, in)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestCreateUser_NombreEnBlanco(t *testing.T) {
	repo := &usersRepo{}
	uc := usecase.NewUserUseCase(repo)

	_, err := uc.Create(context.Background(), admin, dto.CreateUserRequest{
		Name:     "   ",
		Email:    "cliente@oficina.com",
		Password: "segredo1",
		Role:     "client",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, repo.users)
}

func TestCreateUser_SinPermiso(t *testing.T) {
	uc := usecase.NewUserUseCase(&usersRepo{})
	tech := entity.Actor{Role: entity.RoleTechnician, Permissions: permission.DefaultRows()}

	_, err := uc.Create(context.Background(), tech, dto.CreateUserRequest{Email: "x@y.com", Password: "segredo1"})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	list, err := uc.List(context.Background(), tech)
	require.NoError(t, err)
	assert.Empty(t, list)
}
