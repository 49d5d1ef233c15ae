package entity

import (
	"time"

	"github.com/jhoicas/Oficina-api/internal/domain/money"
)

// OrderRecord es la forma persistida de una orden de servicio (colección orders).
// Total y Summary son caché: al cargar se recalculan desde los ítems.
type OrderRecord struct {
	ID          int64
	Client      PartyRef
	Responsible PartyRef
	OpenedAt    time.Time
	Status      string
	StatusColor string
	Total       money.Money
	Description string
	Services    []LineItem
	Products    []LineItem
	Summary     string
	UpdatedAt   time.Time
}

// SaleRecord es la forma persistida de una venta (colección service_sales).
type SaleRecord struct {
	ID          int64
	Client      PartyRef
	Responsible PartyRef
	Date        time.Time
	Status      string
	Total       money.Money
	Details     string
	Items       []LineItem
	UpdatedAt   time.Time
}
