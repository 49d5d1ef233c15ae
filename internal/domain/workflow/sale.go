package workflow

// SaleStatus es el estado de una venta.
type SaleStatus string

const (
	SaleOpen      SaleStatus = "Aberto"
	SaleInvoiced  SaleStatus = "Faturado"
	SaleCancelled SaleStatus = "Cancelado"
)

// Sales es la máquina de estados de ventas: Aberto → Faturado | Cancelado.
var Sales = &Workflow[SaleStatus]{
	initial: SaleOpen,
	edges: map[SaleStatus][]SaleStatus{
		SaleOpen:      {SaleInvoiced, SaleCancelled},
		SaleInvoiced:  nil,
		SaleCancelled: nil,
	},
	colors: map[SaleStatus]string{
		SaleInvoiced:  "green",
		SaleOpen:      "yellow",
		SaleCancelled: "red",
	},
	labels: map[SaleStatus]string{
		SaleOpen:      "Aberto",
		SaleInvoiced:  "Faturado",
		SaleCancelled: "Cancelado",
	},
	clientEdges:  map[SaleStatus][]SaleStatus{},
	defaultColor: "yellow",
}
