package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Oficina-api/internal/domain/entity"
	"github.com/jhoicas/Oficina-api/internal/domain/money"
	"github.com/jhoicas/Oficina-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementación de OrderRepository (usable con pool o tx).
// Los ítems viven en las columnas JSONB services_list y products_list.
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

const orderColumns = `
	id, COALESCE(client, ''), COALESCE(responsible, ''), date_init,
	COALESCE(status, ''), COALESCE(status_color, ''), COALESCE(total, 0),
	COALESCE(description, ''), COALESCE(service, ''),
	COALESCE(services_list, '[]'::jsonb), COALESCE(products_list, '[]'::jsonb), updated_at`

func scanOrder(row pgx.Row) (*entity.OrderRecord, error) {
	var (
		o     entity.OrderRecord
		total decimal.Decimal
	)
	err := row.Scan(
		&o.ID, &o.Client, &o.Responsible, &o.OpenedAt,
		&o.Status, &o.StatusColor, &total,
		&o.Description, &o.Summary,
		&o.Services, &o.Products, &o.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	o.Total = money.FromDecimal(total)
	return &o, nil
}

// GetAll devuelve todas las órdenes sin filtrar.
func (r *OrderRepo) GetAll(ctx context.Context) ([]*entity.OrderRecord, error) {
	rows, err := r.q.Query(ctx, `SELECT `+orderColumns+` FROM orders ORDER BY id DESC`)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()
	var list []*entity.OrderRecord
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		list = append(list, o)
	}
	return list, rows.Err()
}

// GetByID obtiene una orden por ID. Devuelve nil, nil si no existe.
func (r *OrderRepo) GetByID(ctx context.Context, id int64) (*entity.OrderRecord, error) {
	o, err := scanOrder(r.q.QueryRow(ctx, `SELECT `+orderColumns+` FROM orders WHERE id = $1`, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	return o, nil
}

// Add inserta la orden y devuelve el id generado.
func (r *OrderRepo) Add(ctx context.Context, rec *entity.OrderRecord) (int64, error) {
	query := `
		INSERT INTO orders (client, responsible, date_init, status, status_color, total, total_text,
			description, service, services_list, products_list, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, now())
		RETURNING id`
	var id int64
	err := r.q.QueryRow(ctx, query,
		string(rec.Client), string(rec.Responsible), rec.OpenedAt, rec.Status, rec.StatusColor,
		rec.Total.Amount(), money.Format(rec.Total), rec.Description, rec.Summary,
		lineItems(rec.Services), lineItems(rec.Products),
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert order: %w", err)
	}
	return id, nil
}

// Update reemplaza la orden completa; el último en escribir gana.
func (r *OrderRepo) Update(ctx context.Context, rec *entity.OrderRecord) error {
	if rec.ID == 0 {
		return nil
	}
	query := `
		UPDATE orders SET client = $2, responsible = $3, date_init = $4, status = $5, status_color = $6,
			total = $7, total_text = $8, description = $9, service = $10,
			services_list = $11, products_list = $12, updated_at = now()
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		rec.ID, string(rec.Client), string(rec.Responsible), rec.OpenedAt, rec.Status, rec.StatusColor,
		rec.Total.Amount(), money.Format(rec.Total), rec.Description, rec.Summary,
		lineItems(rec.Services), lineItems(rec.Products),
	)
	if err != nil {
		return fmt.Errorf("update order: %w", err)
	}
	return nil
}

// Delete elimina una orden. Devuelve false si no existía.
func (r *OrderRepo) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.q.Exec(ctx, `DELETE FROM orders WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete order: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// Count devuelve la cantidad de órdenes.
func (r *OrderRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM orders`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count orders: %w", err)
	}
	return n, nil
}
