package repository

import (
	"context"

	"github.com/jhoicas/Oficina-api/internal/domain/entity"
)

// SettingsRepository define el puerto de la configuración de la empresa.
type SettingsRepository interface {
	// Get devuelve la configuración vigente, o nil si nunca se guardó.
	Get(ctx context.Context) (*entity.CompanySettings, error)
}
