package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Oficina-api/internal/domain/entity"
	"github.com/jhoicas/Oficina-api/internal/domain/repository"
)

var (
	_ repository.ProductRepository = (*ProductRepo)(nil)
	_ repository.ServiceRepository = (*ServiceRepo)(nil)
)

// ProductRepo lectura del catálogo de productos. El precio se guarda como
// texto libre ("R$ 50,00") y lo interpreta money.Parse al agregarlo a un carrito.
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

const productColumns = `id, name, COALESCE(unit, ''), COALESCE(stock, 0), COALESCE(min_stock, 0), COALESCE(price, ''), created_at`

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	if err := row.Scan(&p.ID, &p.Name, &p.Unit, &p.Stock, &p.MinStock, &p.Price, &p.CreatedAt); err != nil {
		return nil, err
	}
	return &p, nil
}

// GetAll lista los productos por nombre.
func (r *ProductRepo) GetAll(ctx context.Context) ([]*entity.Product, error) {
	rows, err := r.q.Query(ctx, `SELECT `+productColumns+` FROM products ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// GetByID obtiene un producto por ID. Devuelve nil, nil si no existe.
func (r *ProductRepo) GetByID(ctx context.Context, id int64) (*entity.Product, error) {
	p, err := scanProduct(r.q.QueryRow(ctx, `SELECT `+productColumns+` FROM products WHERE id = $1`, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

// Count devuelve la cantidad de productos.
func (r *ProductRepo) Count(ctx context.Context) (int, error) {
	return count(ctx, r.q, "products")
}

// ServiceRepo lectura del catálogo de servicios.
type ServiceRepo struct {
	q Querier
}

// NewServiceRepository construye el adaptador de servicios.
func NewServiceRepository(q Querier) *ServiceRepo {
	return &ServiceRepo{q: q}
}

const serviceColumns = `id, name, COALESCE(description, ''), COALESCE(price, ''), created_at`

func scanService(row pgx.Row) (*entity.Service, error) {
	var s entity.Service
	if err := row.Scan(&s.ID, &s.Name, &s.Description, &s.Price, &s.CreatedAt); err != nil {
		return nil, err
	}
	return &s, nil
}

// GetAll lista los servicios por nombre.
func (r *ServiceRepo) GetAll(ctx context.Context) ([]*entity.Service, error) {
	rows, err := r.q.Query(ctx, `SELECT `+serviceColumns+` FROM services ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list services: %w", err)
	}
	defer rows.Close()
	var list []*entity.Service
	for rows.Next() {
		s, err := scanService(rows)
		if err != nil {
			return nil, fmt.Errorf("scan service: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

// GetByID obtiene un servicio por ID. Devuelve nil, nil si no existe.
func (r *ServiceRepo) GetByID(ctx context.Context, id int64) (*entity.Service, error) {
	s, err := scanService(r.q.QueryRow(ctx, `SELECT `+serviceColumns+` FROM services WHERE id = $1`, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get service: %w", err)
	}
	return s, nil
}

// Count devuelve la cantidad de servicios.
func (r *ServiceRepo) Count(ctx context.Context) (int, error) {
	return count(ctx, r.q, "services")
}

// count cuenta las filas de una tabla fija del esquema.
func count(ctx context.Context, q Querier, table string) (int, error) {
	var n int
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM `+pgx.Identifier{table}.Sanitize()).Scan(&n); err != nil {
		return 0, fmt.Errorf("count %s: %w", table, err)
	}
	return n, nil
}
