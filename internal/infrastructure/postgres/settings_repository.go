package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Oficina-api/internal/domain/entity"
	"github.com/jhoicas/Oficina-api/internal/domain/repository"
)

var _ repository.SettingsRepository = (*SettingsRepo)(nil)

// SettingsRepo configuración de la empresa: una única fila (id = 1).
type SettingsRepo struct {
	q Querier
}

// NewSettingsRepository construye el adaptador.
func NewSettingsRepository(q Querier) *SettingsRepo {
	return &SettingsRepo{q: q}
}

// Get devuelve la configuración, o nil si nunca se guardó.
func (r *SettingsRepo) Get(ctx context.Context) (*entity.CompanySettings, error) {
	query := `
		SELECT COALESCE(name, ''), COALESCE(cnpj, ''), COALESCE(email, ''), COALESCE(phone, ''),
			COALESCE(address, ''), COALESCE(theme, ''), COALESCE(logo_url, ''), COALESCE(warranty_text, '')
		FROM settings WHERE id = 1`
	var s entity.CompanySettings
	err := r.q.QueryRow(ctx, query).Scan(
		&s.Name, &s.CNPJ, &s.Email, &s.Phone, &s.Address, &s.Theme, &s.LogoURL, &s.WarrantyText,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get settings: %w", err)
	}
	return &s, nil
}
