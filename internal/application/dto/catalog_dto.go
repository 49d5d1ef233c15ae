package dto

import "github.com/jhoicas/Oficina-api/internal/domain/money"

// CatalogItemResponse producto o servicio para elegir en el carrito. Price ya
// viene normalizado; PriceText es el texto canónico.
type CatalogItemResponse struct {
	ID          int64       `json:"id"`
	Name        string      `json:"name"`
	Type        string      `json:"type"`
	Price       money.Money `json:"price"`
	PriceText   string      `json:"price_text"`
	Unit        string      `json:"unit,omitempty"`
	Stock       *int        `json:"stock,omitempty"`
	LowStock    bool        `json:"low_stock,omitempty"`
	Description string      `json:"description,omitempty"`
}

// ClientResponse cliente o proveedor.
type ClientResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Document string `json:"document,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Email    string `json:"email,omitempty"`
	Type     string `json:"type"`
	City     string `json:"city,omitempty"`
	State    string `json:"state,omitempty"`
}
