package pdf

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Oficina-api/internal/application/servicing"
	"github.com/jhoicas/Oficina-api/internal/domain/entity"
	"github.com/jhoicas/Oficina-api/internal/domain/money"
)

func TestRenderOrder(t *testing.T) {
	doc := servicing.OrderDocument{
		Company: entity.CompanySettings{Name: "Oficina do Zé", Phone: "(11) 5555-0000", CNPJ: "12.345.678/0001-90"},
		Order: &entity.OrderRecord{
			ID:          42,
			Client:      "Ana",
			Responsible: "Carlos",
			OpenedAt:    time.Date(2024, 5, 10, 9, 0, 0, 0, time.UTC),
			Status:      "Finalizado",
			Description: "Troca de óleo e revisão dos freios",
			Services: []entity.LineItem{
				{LocalID: "s1", Name: "Troca de óleo", UnitPrice: money.Parse("R$ 100,00"), Quantity: 1, Kind: entity.KindService},
			},
			Products: []entity.LineItem{
				{LocalID: "p1", Name: "Filtro de óleo", UnitPrice: money.Parse("R$ 50,00"), Quantity: 2, Kind: entity.KindProduct},
			},
			Total: money.Parse("R$ 200,00"),
		},
		WarrantyText: "Garantia padrão de 90 dias.",
	}

	out, err := NewMarotoPDFGenerator().RenderOrder(context.Background(), doc)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestRenderOrder_SinOrden(t *testing.T) {
	_, err := NewMarotoPDFGenerator().RenderOrder(context.Background(), servicing.OrderDocument{})
	assert.Error(t, err)
}

func TestHeightFor(t *testing.T) {
	assert.Equal(t, 7.0, heightFor("curto", 5))
	assert.Equal(t, 12.0, heightFor("uma\nduas", 5))
}
