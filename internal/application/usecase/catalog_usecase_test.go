package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Oficina-api/internal/application/usecase"
	"github.com/jhoicas/Oficina-api/internal/domain"
	"github.com/jhoicas/Oficina-api/internal/domain/entity"
)

type catalogRepo struct {
	products []*entity.Product
	services []*entity.Service
	clients  []*entity.Client
	err      error
}

func (r *catalogRepo) GetAll(context.Context) ([]*entity.Product, error) { return r.products, r.err }
func (r *catalogRepo) GetByID(context.Context, int64) (*entity.Product, error) {
	return nil, nil
}
func (r *catalogRepo) Count(context.Context) (int, error) { return len(r.products), nil }

type serviceRepo struct{ *catalogRepo }

func (r serviceRepo) GetAll(context.Context) ([]*entity.Service, error) { return r.services, r.err }
func (r serviceRepo) GetByID(context.Context, int64) (*entity.Service, error) {
	return nil, nil
}

type clientRepo struct{ *catalogRepo }

func (r clientRepo) GetAll(context.Context) ([]*entity.Client, error) { return r.clients, r.err }

func newCatalog(r *catalogRepo) *usecase.CatalogUseCase {
	return usecase.NewCatalogUseCase(r, serviceRepo{r}, clientRepo{r})
}

var (
	tech = entity.Actor{ID: "2", Name: "Carlos", Role: entity.RoleTechnician, Permissions: []entity.PermissionRow{
		{Module: entity.ModuleOrders, Capability: entity.Capability{View: true, Add: true}},
	}}
	client = entity.Actor{ID: "3", Name: "Maria", Role: entity.RoleClient, Permissions: []entity.PermissionRow{
		{Module: entity.ModuleSales, Capability: entity.Capability{View: true}},
	}}
	nobody = entity.Actor{ID: "4", Name: "Sem acesso", Role: entity.RoleManager}
)

func TestCatalog_ProductosConPrecioNormalizado(t *testing.T) {
	r := &catalogRepo{products: []*entity.Product{
		{ID: 1, Name: "Filtro de óleo", Price: "R$ 50,00", Unit: "un", Stock: 2, MinStock: 5},
		{ID: 2, Name: "Pastilha de freio", Price: "1.234,56", Stock: 10, MinStock: 5},
		{ID: 3, Name: "Brinde", Price: "grátis"},
	}}

	out, err := newCatalog(r).ListProducts(context.Background(), tech)
	require.NoError(t, err)
	require.Len(t, out, 3)

	assert.Equal(t, "R$ 50,00", out[0].PriceText)
	assert.True(t, out[0].LowStock)
	assert.Equal(t, "product", out[0].Type)
	assert.Equal(t, "R$ 1.234,56", out[1].PriceText)
	assert.False(t, out[1].LowStock)
	assert.Equal(t, "R$ 0,00", out[2].PriceText)
	require.NotNil(t, out[2].Stock)
	assert.Equal(t, 0, *out[2].Stock)
}

func TestCatalog_Servicios(t *testing.T) {
	r := &catalogRepo{services: []*entity.Service{{ID: 1, Name: "Troca de óleo", Price: "R$ 100,00", Description: "Inclui mão de obra"}}}

	out, err := newCatalog(r).ListServices(context.Background(), client)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "service", out[0].Type)
	assert.Equal(t, int64(10000), out[0].Price.Cents())
	assert.Nil(t, out[0].Stock)
}

func TestCatalog_Clientes(t *testing.T) {
	r := &catalogRepo{clients: []*entity.Client{{ID: 1, Name: "Maria", Type: entity.ClientTypeCustomer, City: "Campinas"}}}
	uc := newCatalog(r)

	out, err := uc.ListClients(context.Background(), tech)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "Cliente", out[0].Type)

	_, err = uc.ListClients(context.Background(), client)
	assert.ErrorIs(t, err, domain.ErrForbidden, "un cliente no ve la cartera")
}

func TestCatalog_SinViewEnOrdenesNiVentas(t *testing.T) {
	uc := newCatalog(&catalogRepo{})

	_, err := uc.ListProducts(context.Background(), nobody)
	assert.ErrorIs(t, err, domain.ErrForbidden)
	_, err = uc.ListServices(context.Background(), nobody)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestCatalog_ErrorDelRepositorio(t *testing.T) {
	boom := errors.New("conexión perdida")
	_, err := newCatalog(&catalogRepo{err: boom}).ListProducts(context.Background(), admin)
	assert.ErrorIs(t, err, boom)
}
