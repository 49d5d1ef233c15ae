package dto

import (
	"time"

	"github.com/jhoicas/Oficina-api/internal/domain/money"
)

// LineItemInput línea del borrador enviado por el front. Las líneas existentes
// se identifican por ID (id local); las nuevas por SourceID del catálogo. El
// nombre y el precio siempre salen del catálogo o del registro guardado.
type LineItemInput struct {
	ID       string `json:"id" validate:"max=64"`
	SourceID *int64 `json:"source_id" validate:"omitempty,gt=0"`
	Type     string `json:"type" validate:"omitempty,oneof=product service"`
	Quantity int    `json:"quantity"`
}

// AttachmentInput PDF adjunto a una orden. El archivo ya fue subido; aquí
// solo viaja su metadata.
type AttachmentInput struct {
	Name string `json:"name" validate:"required,max=255"`
	Type string `json:"type" validate:"max=100"`
	Size string `json:"size" validate:"max=50"`
	URL  string `json:"url" validate:"omitempty,url"`
}

// SaveOrderRequest cuerpo de POST/PUT /api/orders. Accepted y TermsDigest
// registran el consentimiento de los términos de garantía mostrados.
type SaveOrderRequest struct {
	Client      string           `json:"client" validate:"max=200"`
	Responsible string           `json:"responsible" validate:"max=200"`
	DateInit    *time.Time       `json:"date_init"`
	Status      string           `json:"status" validate:"max=50"`
	Description string           `json:"description" validate:"max=4000"`
	Services    []LineItemInput  `json:"services_list" validate:"max=200,dive"`
	Products    []LineItemInput  `json:"products_list" validate:"max=200,dive"`
	Attachment  *AttachmentInput `json:"attachment"`
	Accepted    bool             `json:"accepted"`
	TermsDigest string           `json:"terms_digest" validate:"omitempty,len=64,hexadecimal"`
}

// SaveSaleRequest cuerpo de POST/PUT /api/sales.
type SaveSaleRequest struct {
	Client      string          `json:"client" validate:"max=200"`
	Responsible string          `json:"responsible" validate:"max=200"`
	Date        *time.Time      `json:"date"`
	Status      string          `json:"status" validate:"max=50"`
	Details     string          `json:"details" validate:"max=4000"`
	Items       []LineItemInput `json:"products_list" validate:"max=200,dive"`
	Accepted    bool            `json:"accepted"`
	TermsDigest string          `json:"terms_digest" validate:"omitempty,len=64,hexadecimal"`
}

// LineItemResponse línea de carrito en respuestas.
type LineItemResponse struct {
	ID           string      `json:"id"`
	SourceID     *int64      `json:"source_id,omitempty"`
	Name         string      `json:"name"`
	Type         string      `json:"type"`
	Quantity     int         `json:"quantity"`
	UnitPrice    money.Money `json:"price"`
	UnitPriceTxt string      `json:"price_text"`
	Subtotal     money.Money `json:"subtotal"`
	SubtotalTxt  string      `json:"subtotal_text"`
}

// FileResponse archivo registrado.
type FileResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Client      string    `json:"client,omitempty"`
	Date        time.Time `json:"date"`
	Description string    `json:"description"`
	Type        string    `json:"type"`
	Size        string    `json:"size"`
	URL         string    `json:"url,omitempty"`
}

// OrderResponse orden de servicio con sus derivados y las acciones permitidas
// al actor.
type OrderResponse struct {
	ID          int64              `json:"id"`
	Client      string             `json:"client"`
	Responsible string             `json:"responsible"`
	DateInit    time.Time          `json:"date_init"`
	Status      string             `json:"status"`
	StatusColor string             `json:"status_color"`
	Total       money.Money        `json:"total"`
	TotalText   string             `json:"total_text"`
	Description string             `json:"description"`
	Summary     string             `json:"service"`
	Services    []LineItemResponse `json:"services_list"`
	Products    []LineItemResponse `json:"products_list"`
	CanEdit     bool               `json:"can_edit"`
	CanDelete   bool               `json:"can_delete"`
	Attachment  *FileResponse      `json:"attachment,omitempty"`
}

// OrderListResponse listado de órdenes visibles, id descendente.
type OrderListResponse struct {
	Data   []OrderResponse `json:"data"`
	CanAdd bool            `json:"can_add"`
}

// SaleResponse venta con derivados y acciones permitidas.
type SaleResponse struct {
	ID          int64              `json:"id"`
	Client      string             `json:"client"`
	Responsible string             `json:"responsible"`
	Date        time.Time          `json:"date"`
	Status      string             `json:"status"`
	StatusColor string             `json:"status_color"`
	Total       money.Money        `json:"total"`
	TotalText   string             `json:"total_text"`
	Details     string             `json:"details"`
	Summary     string             `json:"summary"`
	Items       []LineItemResponse `json:"products_list"`
	CanEdit     bool               `json:"can_edit"`
	CanDelete   bool               `json:"can_delete"`
}

// SaleListResponse listado de ventas. Title cambia para clientes ("Minhas Compras").
type SaleListResponse struct {
	Title  string         `json:"title"`
	Data   []SaleResponse `json:"data"`
	CanAdd bool           `json:"can_add"`
}

// TermsResponse texto de garantía vigente y su huella, que el front devuelve
// en terms_digest al aceptar.
type TermsResponse struct {
	Text   string `json:"text"`
	Digest string `json:"digest"`
}
