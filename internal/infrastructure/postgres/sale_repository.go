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

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación de SaleRepository (usable con pool o tx).
type SaleRepo struct {
	q     Querier
	table string
}

// NewSaleRepository construye el adaptador. table es el nombre de la tabla de
// ventas (por defecto service_sales); config.Load ya lo validó como
// identificador, así que puede interpolarse en el SQL.
func NewSaleRepository(q Querier, table string) *SaleRepo {
	if table == "" {
		table = "service_sales"
	}
	return &SaleRepo{q: q, table: pgx.Identifier{table}.Sanitize()}
}

const saleColumns = `
	id, COALESCE(client, ''), COALESCE(responsible, ''), date,
	COALESCE(status, ''), COALESCE(total, 0), COALESCE(details, ''),
	COALESCE(products_list, '[]'::jsonb), updated_at`

func scanSale(row pgx.Row) (*entity.SaleRecord, error) {
	var (
		s     entity.SaleRecord
		total decimal.Decimal
	)
	err := row.Scan(&s.ID, &s.Client, &s.Responsible, &s.Date, &s.Status, &total, &s.Details, &s.Items, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	s.Total = money.FromDecimal(total)
	return &s, nil
}

// GetAll devuelve todas las ventas sin filtrar.
func (r *SaleRepo) GetAll(ctx context.Context) ([]*entity.SaleRecord, error) {
	rows, err := r.q.Query(ctx, `SELECT `+saleColumns+` FROM `+r.table+` ORDER BY id DESC`)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()
	var list []*entity.SaleRecord
	for rows.Next() {
		s, err := scanSale(rows)
		if err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

// GetByID obtiene una venta por ID. Devuelve nil, nil si no existe.
func (r *SaleRepo) GetByID(ctx context.Context, id int64) (*entity.SaleRecord, error) {
	s, err := scanSale(r.q.QueryRow(ctx, `SELECT `+saleColumns+` FROM `+r.table+` WHERE id = $1`, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale: %w", err)
	}
	return s, nil
}

// Add inserta la venta y devuelve el id generado.
func (r *SaleRepo) Add(ctx context.Context, rec *entity.SaleRecord) (int64, error) {
	query := `
		INSERT INTO ` + r.table + ` (client, responsible, date, status, total, total_text, details, products_list, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, now())
		RETURNING id`
	var id int64
	err := r.q.QueryRow(ctx, query,
		string(rec.Client), string(rec.Responsible), rec.Date, rec.Status,
		rec.Total.Amount(), money.Format(rec.Total), rec.Details, lineItems(rec.Items),
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert sale: %w", err)
	}
	return id, nil
}

// Update reemplaza la venta completa; el último en escribir gana.
func (r *SaleRepo) Update(ctx context.Context, rec *entity.SaleRecord) error {
	if rec.ID == 0 {
		return nil
	}
	query := `
		UPDATE ` + r.table + ` SET client = $2, responsible = $3, date = $4, status = $5,
			total = $6, total_text = $7, details = $8, products_list = $9, updated_at = now()
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		rec.ID, string(rec.Client), string(rec.Responsible), rec.Date, rec.Status,
		rec.Total.Amount(), money.Format(rec.Total), rec.Details, lineItems(rec.Items),
	)
	if err != nil {
		return fmt.Errorf("update sale: %w", err)
	}
	return nil
}

// Delete elimina una venta. Devuelve false si no existía.
func (r *SaleRepo) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.q.Exec(ctx, `DELETE FROM `+r.table+` WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete sale: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
