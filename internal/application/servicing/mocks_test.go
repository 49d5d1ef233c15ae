package servicing

import (
	"context"
	"strings"

	"github.com/jhoicas/Oficina-api/internal/domain/entity"
	"github.com/jhoicas/Oficina-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Repositorios en memoria para los tests del paquete.
// ──────────────────────────────────────────────────────────────────────────────

type memOrders struct {
	recs    map[int64]*entity.OrderRecord
	nextID  int64
	calls   int
	failAdd error
}

func newMemOrders(recs ...*entity.OrderRecord) *memOrders {
	m := &memOrders{recs: map[int64]*entity.OrderRecord{}, nextID: 100}
	for _, r := range recs {
		m.recs[r.ID] = r
	}
	return m
}

func (m *memOrders) GetAll(context.Context) ([]*entity.OrderRecord, error) {
	out := make([]*entity.OrderRecord, 0, len(m.recs))
	for _, r := range m.recs {
		cp := *r
		out = append(out, &cp)
	}
	return out, nil
}

func (m *memOrders) GetByID(_ context.Context, id int64) (*entity.OrderRecord, error) {
	r, ok := m.recs[id]
	if !ok {
		return nil, nil
	}
	cp := *r
	return &cp, nil
}

func (m *memOrders) Add(_ context.Context, rec *entity.OrderRecord) (int64, error) {
	m.calls++
	if m.failAdd != nil {
		return 0, m.failAdd
	}
	m.nextID++
	cp := *rec
	cp.ID = m.nextID
	m.recs[cp.ID] = &cp
	return cp.ID, nil
}

func (m *memOrders) Update(_ context.Context, rec *entity.OrderRecord) error {
	m.calls++
	if rec.ID == 0 {
		return nil
	}
	cp := *rec
	m.recs[rec.ID] = &cp
	return nil
}

func (m *memOrders) Delete(_ context.Context, id int64) (bool, error) {
	m.calls++
	if _, ok := m.recs[id]; !ok {
		return false, nil
	}
	delete(m.recs, id)
	return true, nil
}

func (m *memOrders) Count(context.Context) (int, error) { return len(m.recs), nil }

type memSales struct {
	recs   map[int64]*entity.SaleRecord
	nextID int64
	calls  int
}

func newMemSales(recs ...*entity.SaleRecord) *memSales {
	m := &memSales{recs: map[int64]*entity.SaleRecord{}}
	for _, r := range recs {
		m.recs[r.ID] = r
	}
	return m
}

func (m *memSales) GetAll(context.Context) ([]*entity.SaleRecord, error) {
	out := make([]*entity.SaleRecord, 0, len(m.recs))
	for _, r := range m.recs {
		cp := *r
		out = append(out, &cp)
	}
	return out, nil
}

func (m *memSales) GetByID(_ context.Context, id int64) (*entity.SaleRecord, error) {
	r, ok := m.recs[id]
	if !ok {
		return nil, nil
	}
	cp := *r
	return &cp, nil
}

func (m *memSales) Add(_ context.Context, rec *entity.SaleRecord) (int64, error) {
	m.calls++
	m.nextID++
	cp := *rec
	cp.ID = m.nextID
	m.recs[cp.ID] = &cp
	return cp.ID, nil
}

func (m *memSales) Update(_ context.Context, rec *entity.SaleRecord) error {
	m.calls++
	if rec.ID == 0 {
		return nil
	}
	cp := *rec
	m.recs[rec.ID] = &cp
	return nil
}

func (m *memSales) Delete(_ context.Context, id int64) (bool, error) {
	m.calls++
	if _, ok := m.recs[id]; !ok {
		return false, nil
	}
	delete(m.recs, id)
	return true, nil
}

type memFiles struct {
	files   []*entity.FileDocument
	failAdd error
}

func (m *memFiles) GetAll(context.Context) ([]*entity.FileDocument, error) { return m.files, nil }

func (m *memFiles) FindByDescriptionPrefix(_ context.Context, prefix string) (*entity.FileDocument, error) {
	for _, f := range m.files {
		if strings.HasPrefix(f.Description, prefix) {
			return f, nil
		}
	}
	return nil, nil
}

func (m *memFiles) Add(_ context.Context, f *entity.FileDocument) (int64, error) {
	if m.failAdd != nil {
		return 0, m.failAdd
	}
	cp := *f
	cp.ID = int64(len(m.files) + 1)
	m.files = append(m.files, &cp)
	return cp.ID, nil
}

func (m *memFiles) Delete(context.Context, int64) (bool, error) { return false, nil }

type memProducts struct{ items map[int64]*entity.Product }

func (m *memProducts) GetAll(context.Context) ([]*entity.Product, error) { return nil, nil }
func (m *memProducts) GetByID(_ context.Context, id int64) (*entity.Product, error) {
	return m.items[id], nil
}
func (m *memProducts) Count(context.Context) (int, error) { return len(m.items), nil }

type memServices struct{ items map[int64]*entity.Service }

func (m *memServices) GetAll(context.Context) ([]*entity.Service, error) { return nil, nil }
func (m *memServices) GetByID(_ context.Context, id int64) (*entity.Service, error) {
	return m.items[id], nil
}
func (m *memServices) Count(context.Context) (int, error) { return len(m.items), nil }

type memUsers struct{ users []*entity.User }

func (m *memUsers) FindByID(_ context.Context, id string) (*entity.User, error) {
	for _, u := range m.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (m *memUsers) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (m *memUsers) ListByRoles(_ context.Context, roles ...entity.Role) ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range m.users {
		for _, r := range roles {
			if u.Role == r {
				out = append(out, u)
			}
		}
	}
	return out, nil
}

func (m *memUsers) GetAll(context.Context) ([]*entity.User, error) { return m.users, nil }

func (m *memUsers) Create(_ context.Context, u *entity.User) error {
	m.users = append(m.users, u)
	return nil
}

type memSettings struct{ cfg *entity.CompanySettings }

func (m *memSettings) Get(context.Context) (*entity.CompanySettings, error) { return m.cfg, nil }

// fakeTx ejecuta fn sobre los mismos repos en memoria; si fn falla descarta
// los cambios restaurando una copia previa (rollback).
type fakeTx struct {
	orders *memOrders
	files  *memFiles
	runs   int
}

func (f *fakeTx) RunServicing(ctx context.Context, fn func(repository.OrderRepository, repository.FileRepository) error) error {
	f.runs++
	ordersBackup := make(map[int64]*entity.OrderRecord, len(f.orders.recs))
	for k, v := range f.orders.recs {
		ordersBackup[k] = v
	}
	nextBackup := f.orders.nextID
	filesBackup := append([]*entity.FileDocument(nil), f.files.files...)

	if err := fn(f.orders, f.files); err != nil {
		f.orders.recs = ordersBackup
		f.orders.nextID = nextBackup
		f.files.files = filesBackup
		return err
	}
	return nil
}

type fakeRenderer struct{ last OrderDocument }

func (r *fakeRenderer) RenderOrder(_ context.Context, doc OrderDocument) ([]byte, error) {
	r.last = doc
	return []byte("%PDF-1.4"), nil
}
