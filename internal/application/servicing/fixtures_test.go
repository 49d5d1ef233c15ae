package servicing

import (
	"time"

	"github.com/jhoicas/Oficina-api/internal/domain/acceptance"
	"github.com/jhoicas/Oficina-api/internal/domain/entity"
	"github.com/jhoicas/Oficina-api/pkg/logger"
)

const warranty = "Garantia padrão de 90 dias."

var (
	fixedNow = time.Date(2024, 5, 10, 9, 0, 0, 0, time.UTC)
	digest   = acceptance.DigestOf(warranty)
)

func int64p(v int64) *int64 { return &v }

func actorWith(name string, role entity.Role, rows ...entity.PermissionRow) entity.Actor {
	return entity.Actor{ID: name, Name: name, Role: role, Permissions: rows}
}

func row(m entity.Module, c entity.Capability) entity.PermissionRow {
	return entity.PermissionRow{Module: m, Capability: c}
}

var (
	admin   = entity.Actor{ID: "1", Name: "Admin", Role: entity.RoleAdmin}
	manager = actorWith("Gerente", entity.RoleManager,
		row(entity.ModuleOrders, entity.FullCapability()),
		row(entity.ModuleSales, entity.FullCapability()))
	tech = actorWith("Carlos", entity.RoleTechnician,
		row(entity.ModuleOrders, entity.Capability{View: true, Add: true, Edit: true}),
		row(entity.ModuleSales, entity.Capability{View: true, Add: true, Edit: true}))
	client = actorWith("Maria", entity.RoleClient,
		row(entity.ModuleOrders, entity.FullCapability()),
		row(entity.ModuleSales, entity.FullCapability()))
	viewer = actorWith("Visitante", entity.RoleManager)
)

func catalogRepos() (*memProducts, *memServices, *memUsers) {
	products := &memProducts{items: map[int64]*entity.Product{
		1: {ID: 1, Name: "Filtro de óleo", Price: "R$ 50,00"},
		2: {ID: 2, Name: "Pastilha de freio", Price: "R$ 1.234,56"},
	}}
	services := &memServices{items: map[int64]*entity.Service{
		1: {ID: 1, Name: "Troca de óleo", Price: "R$ 100,00"},
		2: {ID: 2, Name: "Alinhamento", Price: "R$ 80,00"},
	}}
	users := &memUsers{users: []*entity.User{
		{ID: "1", Name: "Admin", Role: entity.RoleAdmin},
		{ID: "2", Name: "Gerente", Role: entity.RoleManager},
		{ID: "3", Name: "Carlos", Role: entity.RoleTechnician},
		{ID: "4", Name: "Maria", Role: entity.RoleClient},
	}}
	return products, services, users
}

type orderFixture struct {
	uc       *OrderUseCase
	orders   *memOrders
	files    *memFiles
	tx       *fakeTx
	renderer *fakeRenderer
	settings *memSettings
}

func newOrderFixture(recs ...*entity.OrderRecord) *orderFixture {
	orders := newMemOrders(recs...)
	files := &memFiles{}
	tx := &fakeTx{orders: orders, files: files}
	renderer := &fakeRenderer{}
	settings := &memSettings{}
	products, services, users := catalogRepos()

	uc := NewOrderUseCase(orders, files, products, services, users,
		NewTermsService(settings, warranty), tx, renderer, logger.Nop())
	uc.now = func() time.Time { return fixedNow }
	return &orderFixture{uc: uc, orders: orders, files: files, tx: tx, renderer: renderer, settings: settings}
}

type saleFixture struct {
	uc    *SaleUseCase
	sales *memSales
}

func newSaleFixture(recs ...*entity.SaleRecord) *saleFixture {
	sales := newMemSales(recs...)
	products, services, users := catalogRepos()
	uc := NewSaleUseCase(sales, products, services, users, NewTermsService(&memSettings{}, warranty), logger.Nop())
	uc.now = func() time.Time { return fixedNow }
	return &saleFixture{uc: uc, sales: sales}
}
