package servicing

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Oficina-api/internal/application/dto"
	"github.com/jhoicas/Oficina-api/internal/domain"
	"github.com/jhoicas/Oficina-api/internal/domain/acceptance"
	"github.com/jhoicas/Oficina-api/internal/domain/entity"
	"github.com/jhoicas/Oficina-api/internal/domain/money"
)

func storedOrder(id int64, client, responsible, status string, services ...entity.LineItem) *entity.OrderRecord {
	return &entity.OrderRecord{
		ID:          id,
		Client:      entity.PartyRef(client),
		Responsible: entity.PartyRef(responsible),
		OpenedAt:    fixedNow.Add(-24 * time.Hour),
		Status:      status,
		Services:    services,
	}
}

func acceptedOrder(in dto.SaveOrderRequest) dto.SaveOrderRequest {
	in.Accepted = true
	in.TermsDigest = digest
	return in
}

// ──────────────────────────────────────────────────────────────────────────────
// Listado y lectura
// ──────────────────────────────────────────────────────────────────────────────

func TestOrderList_OrdenDescendenteYFiltroDeTecnico(t *testing.T) {
	f := newOrderFixture(
		storedOrder(1, "Ana", "Carlos", "Aberto"),
		storedOrder(2, "Bia", "Outro", "Aberto"),
		storedOrder(3, "Caio", "Carlos", "Finalizado"),
	)

	out, err := f.uc.List(context.Background(), tech)
	require.NoError(t, err)
	require.Len(t, out.Data, 2)
	assert.Equal(t, int64(3), out.Data[0].ID)
	assert.Equal(t, int64(1), out.Data[1].ID)
	assert.True(t, out.CanAdd)

	all, err := f.uc.List(context.Background(), admin)
	require.NoError(t, err)
	assert.Len(t, all.Data, 3)
}

func TestOrderList_ClienteIgnoraMayusculas(t *testing.T) {
	f := newOrderFixture(
		storedOrder(1, "MARIA", "Carlos", "Aberto"),
		storedOrder(2, "Mariana", "Carlos", "Aberto"),
	)

	out, err := f.uc.List(context.Background(), client)
	require.NoError(t, err)
	require.Len(t, out.Data, 1)
	assert.Equal(t, int64(1), out.Data[0].ID)
	assert.True(t, out.Data[0].CanEdit)
	assert.False(t, out.Data[0].CanDelete)
}

func TestOrderList_SinViewEsForbidden(t *testing.T) {
	f := newOrderFixture()
	_, err := f.uc.List(context.Background(), viewer)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestOrderGet_AjenaEsNotFound(t *testing.T) {
	f := newOrderFixture(storedOrder(1, "Ana", "Outro", "Aberto"))
	_, err := f.uc.Get(context.Background(), tech, 1)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = f.uc.Get(context.Background(), admin, 99)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestOrderGet_IncluyeAdjunto(t *testing.T) {
	f := newOrderFixture(storedOrder(1, "Ana", "Carlos", "Aberto"), storedOrder(12, "Ana", "Carlos", "Aberto"))
	f.files.files = []*entity.FileDocument{
		{ID: 5, Name: "laudo12.pdf", Description: AttachmentDescription(12, "troca")},
		{ID: 6, Name: "laudo1.pdf", Description: AttachmentDescription(1, "troca")},
	}

	out, err := f.uc.Get(context.Background(), admin, 1)
	require.NoError(t, err)
	require.NotNil(t, out.Attachment)
	assert.Equal(t, "laudo1.pdf", out.Attachment.Name)
}

// ──────────────────────────────────────────────────────────────────────────────
// Guardado
// ──────────────────────────────────────────────────────────────────────────────

func TestOrderSave_NuevaCalculaTotal(t *testing.T) {
	f := newOrderFixture()
	in := acceptedOrder(dto.SaveOrderRequest{
		Client:      "Ana",
		Responsible: "Carlos",
		Description: "Revisão",
		Services:    []dto.LineItemInput{{SourceID: int64p(1), Quantity: 1}},
		Products:    []dto.LineItemInput{{SourceID: int64p(1), Quantity: 2}},
	})

	out, err := f.uc.Save(context.Background(), admin, 0, in)
	require.NoError(t, err)
	assert.Equal(t, int64(101), out.ID)
	assert.Equal(t, "R$ 200,00", out.TotalText)
	assert.Equal(t, "Troca de óleo", out.Summary)
	assert.Equal(t, "Aberto", out.Status)
	assert.Equal(t, "bg-green-500", out.StatusColor)
	assert.Equal(t, fixedNow, out.DateInit)

	stored := f.orders.recs[101]
	require.NotNil(t, stored)
	assert.Equal(t, entity.PartyRef("Ana"), stored.Client)
	assert.Equal(t, int64(20000), stored.Total.Cents())
	assert.Equal(t, 1, f.tx.runs)
}

func TestOrderSave_SinAceptarNoLlamaAlRepositorio(t *testing.T) {
	f := newOrderFixture()
	in := dto.SaveOrderRequest{Services: []dto.LineItemInput{{SourceID: int64p(1)}}}

	_, err := f.uc.Save(context.Background(), admin, 0, in)
	assert.ErrorIs(t, err, domain.ErrGateDenied)
	assert.Zero(t, f.orders.calls)
	assert.Zero(t, f.tx.runs)
}

func TestOrderSave_HuellaDeOtrosTerminos(t *testing.T) {
	f := newOrderFixture()
	in := dto.SaveOrderRequest{Accepted: true, TermsDigest: acceptance.DigestOf("outro texto")}

	_, err := f.uc.Save(context.Background(), admin, 0, in)
	assert.ErrorIs(t, err, domain.ErrTermsMismatch)
	assert.Zero(t, f.orders.calls)
}

func TestOrderSave_UsaTextoDeGarantiaDeLaEmpresa(t *testing.T) {
	f := newOrderFixture()
	f.settings.cfg = &entity.CompanySettings{WarrantyText: "Garantia de 6 meses."}

	_, err := f.uc.Save(context.Background(), admin, 0, acceptedOrder(dto.SaveOrderRequest{}))
	assert.ErrorIs(t, err, domain.ErrTermsMismatch)

	in := dto.SaveOrderRequest{Accepted: true, TermsDigest: acceptance.DigestOf("Garantia de 6 meses.")}
	_, err = f.uc.Save(context.Background(), admin, 0, in)
	assert.NoError(t, err)
}

func TestOrderSave_LineaExistenteConservaPrecioGuardado(t *testing.T) {
	old := entity.LineItem{
		LocalID:   "a",
		SourceID:  int64p(1),
		Name:      "Troca de óleo",
		UnitPrice: money.Parse("R$ 90,00"),
		Quantity:  1,
		Kind:      entity.KindService,
	}
	f := newOrderFixture(storedOrder(7, "Ana", "Carlos", "Aberto", old))
	in := acceptedOrder(dto.SaveOrderRequest{
		Services: []dto.LineItemInput{{ID: "a", Quantity: 2}},
	})

	out, err := f.uc.Save(context.Background(), admin, 7, in)
	require.NoError(t, err)
	assert.Equal(t, "R$ 180,00", out.TotalText)
	require.Len(t, out.Services, 1)
	assert.Equal(t, "a", out.Services[0].ID)
	assert.Equal(t, 2, out.Services[0].Quantity)
	assert.Equal(t, entity.PartyRef("Ana"), f.orders.recs[7].Client)
}

func TestOrderSave_QuitaLineasAusentes(t *testing.T) {
	a := entity.LineItem{LocalID: "a", Name: "Troca de óleo", UnitPrice: money.Parse("100"), Quantity: 1}
	b := entity.LineItem{LocalID: "b", Name: "Alinhamento", UnitPrice: money.Parse("80"), Quantity: 1}
	f := newOrderFixture(storedOrder(7, "Ana", "Carlos", "Aberto", a, b))

	out, err := f.uc.Save(context.Background(), admin, 7, acceptedOrder(dto.SaveOrderRequest{
		Services: []dto.LineItemInput{{ID: "b", Quantity: 1}},
	}))
	require.NoError(t, err)
	require.Len(t, out.Services, 1)
	assert.Equal(t, "Alinhamento", out.Summary)
	assert.Equal(t, "R$ 80,00", out.TotalText)
}

func TestOrderSave_BorradorInvalido(t *testing.T) {
	a := entity.LineItem{LocalID: "a", Name: "Troca de óleo", UnitPrice: money.Parse("100"), Quantity: 1}
	cases := map[string]dto.SaveOrderRequest{
		"responsable cliente":  {Responsible: "Maria"},
		"responsable inexist.": {Responsible: "Ninguém"},
		"línea sin source_id":  {Services: []dto.LineItemInput{{Quantity: 1}}},
		"producto inexistente": {Products: []dto.LineItemInput{{SourceID: int64p(99)}}},
		"línea repetida":       {Services: []dto.LineItemInput{{ID: "a"}, {ID: "a"}}},
		"estado desconocido":   {Status: "Perdido"},
		"adjunto no pdf":       {Attachment: &dto.AttachmentInput{Name: "foto.png", Type: "image/png"}},
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			f := newOrderFixture(storedOrder(7, "Ana", "Carlos", "Aberto", a))
			_, err := f.uc.Save(context.Background(), admin, 7, acceptedOrder(in))
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
			assert.Zero(t, f.orders.calls)
		})
	}
}

func TestOrderSave_TransicionIlegalEsConflict(t *testing.T) {
	f := newOrderFixture(storedOrder(7, "Ana", "Carlos", "Finalizado"))
	_, err := f.uc.Save(context.Background(), admin, 7, acceptedOrder(dto.SaveOrderRequest{Status: "Aberto"}))
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestOrderSave_TransicionLegal(t *testing.T) {
	f := newOrderFixture(storedOrder(7, "Ana", "Carlos", "Aberto"))
	out, err := f.uc.Save(context.Background(), tech, 7, acceptedOrder(dto.SaveOrderRequest{Status: "Em Andamento"}))
	require.NoError(t, err)
	assert.Equal(t, "Em Andamento", out.Status)
	assert.Equal(t, "bg-blue-500", out.StatusColor)
	assert.Equal(t, "Em Andamento", f.orders.recs[7].Status)
}

func TestOrderSave_ClienteNoCambiaPartesNiEstado(t *testing.T) {
	f := newOrderFixture()
	out, err := f.uc.Save(context.Background(), client, 0, acceptedOrder(dto.SaveOrderRequest{
		Client:      "Outro",
		Responsible: "Carlos",
		Description: "Barulho no motor",
	}))
	require.NoError(t, err)
	assert.Equal(t, "Maria", out.Client)
	assert.Empty(t, out.Responsible)
	assert.Equal(t, "Barulho no motor", out.Description)

	_, err = f.uc.Save(context.Background(), client, out.ID, acceptedOrder(dto.SaveOrderRequest{
		Description: "Barulho no motor",
		Status:      "Cancelado",
	}))
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestOrderSave_ClienteCongeladoFueraDeAberto(t *testing.T) {
	f := newOrderFixture(storedOrder(7, "Maria", "Carlos", "Em Andamento"))
	_, err := f.uc.Save(context.Background(), client, 7, acceptedOrder(dto.SaveOrderRequest{Description: "x"}))
	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.Zero(t, f.orders.calls)
}

func TestOrderSave_TecnicoNoEditaOrdenAjena(t *testing.T) {
	f := newOrderFixture(storedOrder(7, "Ana", "Outro", "Aberto"))
	_, err := f.uc.Save(context.Background(), tech, 7, acceptedOrder(dto.SaveOrderRequest{}))
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// El técnico entrega su orden a otro responsable en el mismo guardado en que
// edita descripción, ítems o estado.
func TestOrderSave_TecnicoReasignaYEdita(t *testing.T) {
	cases := []struct {
		name  string
		draft dto.SaveOrderRequest
		check func(t *testing.T, out *dto.OrderResponse)
	}{
		{
			name:  "descripción",
			draft: dto.SaveOrderRequest{Responsible: "Gerente", Description: "troca de pneu"},
			check: func(t *testing.T, out *dto.OrderResponse) {
				assert.Equal(t, "troca de pneu", out.Description)
			},
		},
		{
			name:  "estado",
			draft: dto.SaveOrderRequest{Responsible: "Gerente", Status: "Em Andamento"},
			check: func(t *testing.T, out *dto.OrderResponse) {
				assert.Equal(t, "Em Andamento", out.Status)
			},
		},
		{
			name: "ítems",
			draft: dto.SaveOrderRequest{
				Responsible: "Gerente",
				Services:    []dto.LineItemInput{{SourceID: int64p(2), Quantity: 1}},
			},
			check: func(t *testing.T, out *dto.OrderResponse) {
				assert.Equal(t, "R$ 80,00", out.TotalText)
			},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newOrderFixture(storedOrder(7, "Ana", "Carlos", "Aberto"))
			out, err := f.uc.Save(context.Background(), tech, 7, acceptedOrder(tc.draft))
			require.NoError(t, err)
			assert.Equal(t, "Gerente", out.Responsible)
			assert.Equal(t, entity.PartyRef("Gerente"), f.orders.recs[7].Responsible)
			tc.check(t, out)
		})
	}
}

func TestOrderSave_TecnicoCreaParaOtroResponsable(t *testing.T) {
	f := newOrderFixture()
	out, err := f.uc.Save(context.Background(), tech, 0, acceptedOrder(dto.SaveOrderRequest{
		Client:      "Ana",
		Responsible: "Gerente",
		Description: "Revisão",
		Services:    []dto.LineItemInput{{SourceID: int64p(1), Quantity: 1}},
	}))
	require.NoError(t, err)
	assert.Equal(t, "Gerente", out.Responsible)
	assert.Equal(t, "R$ 100,00", out.TotalText)
	assert.Equal(t, entity.PartyRef("Gerente"), f.orders.recs[out.ID].Responsible)
}

func TestOrderSave_ResponsableInvalidoNoGuarda(t *testing.T) {
	f := newOrderFixture(storedOrder(7, "Ana", "Carlos", "Aberto"))
	_, err := f.uc.Save(context.Background(), tech, 7, acceptedOrder(dto.SaveOrderRequest{
		Responsible: "Maria",
		Description: "x",
	}))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Zero(t, f.orders.calls)
}

func TestOrderSave_AdjuntoQuedaRegistrado(t *testing.T) {
	f := newOrderFixture()
	desc := "Troca completa do óleo do motor e dos filtros"
	out, err := f.uc.Save(context.Background(), client, 0, acceptedOrder(dto.SaveOrderRequest{
		Description: desc,
		Attachment:  &dto.AttachmentInput{Name: "laudo.PDF", Size: "120 KB", URL: "https://files.example.com/laudo.pdf"},
	}))
	require.NoError(t, err)

	require.Len(t, f.files.files, 1)
	file := f.files.files[0]
	assert.Equal(t, "Anexo da OS #101: Troca completa do óleo do moto...", file.Description)
	assert.Equal(t, entity.PartyRef("Maria"), file.Client)
	assert.Equal(t, "PDF", file.Type)
	assert.Equal(t, fixedNow, file.Date)
	require.NotNil(t, out.Attachment)
	assert.Equal(t, int64(1), out.Attachment.ID)
}

func TestOrderSave_FalloDelAdjuntoRevierteLaOrden(t *testing.T) {
	f := newOrderFixture()
	f.files.failAdd = errors.New("disco cheio")

	_, err := f.uc.Save(context.Background(), admin, 0, acceptedOrder(dto.SaveOrderRequest{
		Attachment: &dto.AttachmentInput{Name: "laudo.pdf"},
	}))
	assert.ErrorIs(t, err, domain.ErrRepository)
	assert.Empty(t, f.orders.recs)
}

func TestOrderSave_FalloDelRepositorioPermiteReintentar(t *testing.T) {
	f := newOrderFixture()
	f.orders.failAdd = errors.New("conexão perdida")
	in := acceptedOrder(dto.SaveOrderRequest{Services: []dto.LineItemInput{{SourceID: int64p(2)}}})

	_, err := f.uc.Save(context.Background(), admin, 0, in)
	require.ErrorIs(t, err, domain.ErrRepository)
	assert.Empty(t, f.orders.recs)

	f.orders.failAdd = nil
	out, err := f.uc.Save(context.Background(), admin, 0, in)
	require.NoError(t, err)
	assert.Equal(t, "R$ 80,00", out.TotalText)
}

// ──────────────────────────────────────────────────────────────────────────────
// Borrado y PDF
// ──────────────────────────────────────────────────────────────────────────────

func TestOrderDelete(t *testing.T) {
	f := newOrderFixture(
		storedOrder(1, "Maria", "Carlos", "Aberto"),
		storedOrder(2, "Ana", "Carlos", "Aberto"),
	)
	ctx := context.Background()

	assert.ErrorIs(t, f.uc.Delete(ctx, client, 1), domain.ErrForbidden)
	assert.ErrorIs(t, f.uc.Delete(ctx, tech, 1), domain.ErrForbidden)
	assert.ErrorIs(t, f.uc.Delete(ctx, manager, 99), domain.ErrNotFound)

	require.NoError(t, f.uc.Delete(ctx, manager, 1))
	assert.NotContains(t, f.orders.recs, int64(1))
	assert.Contains(t, f.orders.recs, int64(2))
}

func TestOrderPDF(t *testing.T) {
	svc := entity.LineItem{LocalID: "a", Name: "Troca de óleo", UnitPrice: money.Parse("100"), Quantity: 1}
	f := newOrderFixture(storedOrder(7, "Ana", "Carlos", "Finalizado", svc))
	f.settings.cfg = &entity.CompanySettings{Name: "Oficina do Zé"}

	pdf, name, err := f.uc.PDF(context.Background(), admin, 7)
	require.NoError(t, err)
	assert.Equal(t, "OS_7.pdf", name)
	assert.NotEmpty(t, pdf)
	assert.Equal(t, "Oficina do Zé", f.renderer.last.Company.Name)
	assert.Equal(t, warranty, f.renderer.last.WarrantyText)
	assert.Equal(t, int64(10000), f.renderer.last.Order.Total.Cents())

	_, _, err = f.uc.PDF(context.Background(), viewer, 7)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestOrderTermsYResponsables(t *testing.T) {
	f := newOrderFixture()

	terms, err := f.uc.Terms(context.Background())
	require.NoError(t, err)
	assert.Equal(t, warranty, terms.Text)
	assert.Equal(t, digest, terms.Digest)

	rs, err := f.uc.Responsibles(context.Background())
	require.NoError(t, err)
	names := make([]string, 0, len(rs))
	for _, r := range rs {
		names = append(names, r.Name)
	}
	assert.ElementsMatch(t, []string{"Admin", "Gerente", "Carlos"}, names)
}
