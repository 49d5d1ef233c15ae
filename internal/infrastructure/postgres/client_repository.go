package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Oficina-api/internal/domain/entity"
	"github.com/jhoicas/Oficina-api/internal/domain/repository"
)

var _ repository.ClientRepository = (*ClientRepo)(nil)

// ClientRepo lectura de clientes y proveedores.
type ClientRepo struct {
	q Querier
}

// NewClientRepository construye el adaptador. Pasar pool o tx (Querier).
func NewClientRepository(q Querier) *ClientRepo {
	return &ClientRepo{q: q}
}

// GetAll lista clientes y proveedores por nombre.
func (r *ClientRepo) GetAll(ctx context.Context) ([]*entity.Client, error) {
	query := `
		SELECT id, name, COALESCE(document, ''), COALESCE(phone, ''), COALESCE(email, ''),
			COALESCE(type, ''), COALESCE(cep, ''), COALESCE(street, ''), COALESCE(number, ''),
			COALESCE(neighborhood, ''), COALESCE(city, ''), COALESCE(state, '')
		FROM clients ORDER BY name`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	defer rows.Close()
	var list []*entity.Client
	for rows.Next() {
		var c entity.Client
		if err := rows.Scan(&c.ID, &c.Name, &c.Document, &c.Phone, &c.Email, &c.Type,
			&c.CEP, &c.Street, &c.Number, &c.Neighborhood, &c.City, &c.State); err != nil {
			return nil, fmt.Errorf("scan client: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Count devuelve la cantidad de clientes y proveedores.
func (r *ClientRepo) Count(ctx context.Context) (int, error) {
	return count(ctx, r.q, "clients")
}
