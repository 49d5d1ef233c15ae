// Package pdf genera el documento imprimible de una orden de servicio.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre de la empresa + dirección + contacto        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  Ordem de Serviço Nº X                       Status: ...     │
//	│  CLIENTE: nombre + fecha     │  Técnico responsable          │
//	│  Descripción del problema / servicio                        │
//	│  TABLA productos: Produto | Qtd | Preço Unit. | Subtotal     │
//	│  TABLA servicios: Serviço | Qtd | Preço | Subtotal           │
//	│                                         Valor Total: R$ ...  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  Termos de Garantia                                          │
//	│                 ____________________                         │
//	│                 Assinatura do Cliente                        │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/Oficina-api/internal/application/servicing"
	"github.com/jhoicas/Oficina-api/internal/domain/entity"
	"github.com/jhoicas/Oficina-api/internal/domain/money"
)

var _ servicing.OrderPDFRenderer = (*MarotoPDFGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 59, Green: 130, Blue: 246}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
	colorStripe  = &props.Color{Red: 245, Green: 245, Blue: 245}
)

const (
	defaultCompany = "Empresa Exemplo"
	charsPerLine   = 110
)

// MarotoPDFGenerator implementa servicing.OrderPDFRenderer usando Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// RenderOrder genera el PDF y devuelve sus bytes.
func (g *MarotoPDFGenerator) RenderOrder(_ context.Context, doc servicing.OrderDocument) ([]byte, error) {
	if doc.Order == nil {
		return nil, fmt.Errorf("pdf: orden vacía")
	}
	company := nonEmpty(doc.Company.Name, defaultCompany)
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(14).WithRightMargin(14).
		WithTopMargin(12).WithBottomMargin(12).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 10}).
		WithTitle(fmt.Sprintf("Ordem de Serviço Nº %d", doc.Order.ID), true).
		WithAuthor(company, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(companyRows(company, doc.Company)...)
	m.AddRows(line.NewRow(2, props.Line{Color: colorGray, Thickness: 0.5}))
	m.AddRows(titleRow(doc.Order), partiesRow(doc.Order))
	m.AddRows(descriptionRows(doc.Order.Description)...)

	if len(doc.Order.Products) > 0 {
		m.AddRows(sectionRow("Produtos Utilizados"))
		m.AddRows(itemRows("Produto", doc.Order.Products)...)
	}
	if len(doc.Order.Services) > 0 {
		m.AddRows(sectionRow("Serviços Realizados"))
		m.AddRows(itemRows("Serviço", doc.Order.Services)...)
	}

	m.AddRows(totalRow(doc.Order.Total))
	m.AddRows(line.NewRow(2, props.Line{Color: colorGray, Thickness: 0.5}))
	m.AddRows(warrantyRows(doc.WarrantyText)...)
	m.AddRows(signatureRows()...)

	out, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return out.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func companyRows(name string, c entity.CompanySettings) []core.Row {
	rows := []core.Row{
		text.NewRow(9, name, props.Text{Style: fontstyle.Bold, Size: 18}),
	}
	if c.Address != "" {
		rows = append(rows, text.NewRow(5, c.Address, props.Text{Size: 10}))
	}
	var contact []string
	if c.Phone != "" {
		contact = append(contact, "Tel: "+c.Phone)
	}
	if c.Email != "" {
		contact = append(contact, "Email: "+c.Email)
	}
	if c.CNPJ != "" {
		contact = append(contact, "CNPJ: "+c.CNPJ)
	}
	if len(contact) > 0 {
		rows = append(rows, text.NewRow(6, strings.Join(contact, " | "), props.Text{Size: 10}))
	}
	return rows
}

func titleRow(o *entity.OrderRecord) core.Row {
	return row.New(12).Add(
		col.New(8).Add(text.New(fmt.Sprintf("Ordem de Serviço Nº %d", o.ID), props.Text{
			Style: fontstyle.Bold, Size: 16, Top: 3,
		})),
		col.New(4).Add(text.New("Status: "+o.Status, props.Text{
			Size: 12, Align: align.Right, Color: colorGray, Top: 4,
		})),
	)
}

func partiesRow(o *entity.OrderRecord) core.Row {
	return row.New(16).Add(
		col.New(6).Add(
			text.New("Detalhes do Cliente", props.Text{Style: fontstyle.Bold, Top: 1}),
			text.New("Cliente: "+o.Client.String(), props.Text{Top: 6}),
			text.New("Data Entrada: "+o.OpenedAt.Format("02/01/2006"), props.Text{Top: 11}),
		),
		col.New(6).Add(
			text.New("Detalhes do Serviço", props.Text{Style: fontstyle.Bold, Top: 1}),
			text.New("Técnico Responsável: "+nonEmpty(o.Responsible.String(), "Não informado"), props.Text{Top: 6}),
		),
	)
}

func descriptionRows(desc string) []core.Row {
	desc = nonEmpty(desc, "Sem descrição.")
	body := row.New(heightFor(desc, 5)).Add(col.New(12).Add(
		text.New(desc, props.Text{Left: 2, Right: 2, Top: 1}),
	))
	body.WithStyle(&props.Cell{BackgroundColor: colorStripe})
	head := text.NewRow(7, "Descrição do Problema / Serviço:", props.Text{Style: fontstyle.Bold, Left: 2, Top: 2})
	head.WithStyle(&props.Cell{BackgroundColor: colorStripe})
	return []core.Row{head, body, row.New(4)}
}

func sectionRow(title string) core.Row {
	return text.NewRow(7, title, props.Text{Style: fontstyle.Bold, Top: 2})
}

// itemRows: cabecera azul y una fila por línea, alternando fondo.
func itemRows(label string, items []entity.LineItem) []core.Row {
	h := func(s string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: a, Color: colorWhite, Top: 1.5, Left: 1, Right: 1,
		}))
	}
	header := row.New(7).Add(
		h(label, 6, align.Left),
		h("Qtd", 1, align.Center),
		h("Preço Unit.", 2, align.Right),
		h("Subtotal", 3, align.Right),
	)
	header.WithStyle(&props.Cell{BackgroundColor: colorPrimary})

	rows := make([]core.Row, 0, len(items)+2)
	rows = append(rows, header)
	for i, it := range items {
		cell := func(s string, size int, a align.Type) core.Col {
			return col.New(size).Add(text.New(s, props.Text{Size: 9, Align: a, Top: 1.5, Left: 1, Right: 1}))
		}
		r := row.New(7).Add(
			cell(it.Name, 6, align.Left),
			cell(strconv.Itoa(it.Quantity), 1, align.Center),
			cell(money.Format(it.UnitPrice), 2, align.Right),
			cell(money.Format(it.Subtotal()), 3, align.Right),
		)
		if i%2 == 1 {
			r.WithStyle(&props.Cell{BackgroundColor: colorStripe})
		}
		rows = append(rows, r)
	}
	return append(rows, row.New(4))
}

func totalRow(total money.Money) core.Row {
	return text.NewRow(12, "Valor Total: "+money.Format(total), props.Text{
		Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 3,
	})
}

func warrantyRows(warranty string) []core.Row {
	return []core.Row{
		text.NewRow(6, "Termos de Garantia e Condições:", props.Text{Style: fontstyle.Bold, Size: 8, Top: 2}),
		row.New(heightFor(warranty, 4)).Add(col.New(12).Add(text.New(warranty, props.Text{Size: 8}))),
	}
}

func signatureRows() []core.Row {
	return []core.Row{
		row.New(25),
		row.New(2).Add(
			col.New(3),
			line.NewCol(6, props.Line{Thickness: 0.5}),
			col.New(3),
		),
		text.NewRow(6, "Assinatura do Cliente", props.Text{Size: 8, Align: align.Center, Top: 1}),
	}
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if strings.TrimSpace(s) != "" {
		return s
	}
	return fallback
}

// heightFor estima el alto de una fila de texto libre: lineHeight mm por
// cada línea visual, contando los saltos explícitos.
func heightFor(s string, lineHeight float64) float64 {
	lines := 0
	for _, part := range strings.Split(s, "\n") {
		lines += utf8.RuneCountInString(part)/charsPerLine + 1
	}
	return float64(lines)*lineHeight + 2
}
