package servicing

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/Oficina-api/internal/domain/acceptance"
	"github.com/jhoicas/Oficina-api/internal/domain/entity"
	"github.com/jhoicas/Oficina-api/internal/domain/repository"
)

// TermsService resuelve el texto de garantía vigente y arma el gate de cada guardado.
type TermsService struct {
	settings repository.SettingsRepository
	fallback string
}

// NewTermsService construye el servicio. fallback se usa si la empresa no
// configuró texto de garantía.
func NewTermsService(settings repository.SettingsRepository, fallback string) *TermsService {
	return &TermsService{settings: settings, fallback: fallback}
}

// Settings devuelve la configuración de la empresa, o una vacía si no existe.
func (s *TermsService) Settings(ctx context.Context) (entity.CompanySettings, error) {
	cfg, err := s.settings.Get(ctx)
	if err != nil {
		return entity.CompanySettings{}, fmt.Errorf("obtener settings: %w", err)
	}
	if cfg == nil {
		return entity.CompanySettings{}, nil
	}
	return *cfg, nil
}

// Text devuelve el texto de garantía vigente.
func (s *TermsService) Text(ctx context.Context) (string, error) {
	cfg, err := s.Settings(ctx)
	if err != nil {
		return "", err
	}
	return s.textOf(cfg), nil
}

func (s *TermsService) textOf(cfg entity.CompanySettings) string {
	if strings.TrimSpace(cfg.WarrantyText) == "" {
		return s.fallback
	}
	return cfg.WarrantyText
}

// Current devuelve los términos vigentes con su huella.
func (s *TermsService) Current(ctx context.Context) (acceptance.Terms, error) {
	text, err := s.Text(ctx)
	if err != nil {
		return acceptance.Terms{}, err
	}
	return acceptance.Terms{Text: text, Digest: acceptance.DigestOf(text)}, nil
}

// Gate crea un gate nuevo en Pending, presenta los términos vigentes y, si el
// usuario los aceptó, registra el consentimiento con la huella recibida.
func (s *TermsService) Gate(ctx context.Context, accepted bool, digest string) (*acceptance.Gate, error) {
	text, err := s.Text(ctx)
	if err != nil {
		return nil, err
	}
	gate := acceptance.NewGate(text)
	gate.Present()
	if !accepted {
		return gate, nil
	}
	if err := gate.Accept(digest); err != nil {
		return nil, err
	}
	return gate, nil
}
