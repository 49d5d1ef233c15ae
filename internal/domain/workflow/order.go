package workflow

// OrderStatus es el estado de una orden de servicio. Los valores son los
// persistidos en la columna status.
type OrderStatus string

const (
	OrderOpen       OrderStatus = "Aberto"
	OrderQuote      OrderStatus = "Orçamento"
	OrderInProgress OrderStatus = "Em Andamento"
	OrderCancelled  OrderStatus = "Cancelado"
	OrderFinished   OrderStatus = "Finalizado"
)

// Orders es la máquina de estados de órdenes de servicio.
//
//	Aberto       → Orçamento, Em Andamento, Cancelado, Finalizado
//	Orçamento    → Em Andamento, Cancelado
//	Em Andamento → Finalizado, Cancelado
//	Finalizado, Cancelado: terminales
var Orders = &Workflow[OrderStatus]{
	initial: OrderOpen,
	edges: map[OrderStatus][]OrderStatus{
		OrderOpen:       {OrderQuote, OrderInProgress, OrderCancelled, OrderFinished},
		OrderQuote:      {OrderInProgress, OrderCancelled},
		OrderInProgress: {OrderFinished, OrderCancelled},
		OrderFinished:   nil,
		OrderCancelled:  nil,
	},
	colors: map[OrderStatus]string{
		OrderOpen:       "green",
		OrderInProgress: "blue",
		OrderQuote:      "yellow",
		OrderCancelled:  "red",
		OrderFinished:   "gray",
	},
	labels: map[OrderStatus]string{
		OrderOpen:       "Aberto",
		OrderQuote:      "Orçamento",
		OrderInProgress: "Em Andamento",
		OrderCancelled:  "Cancelado",
		OrderFinished:   "Finalizado",
	},
	clientEdges:  map[OrderStatus][]OrderStatus{},
	defaultColor: "gray",
}
