package entity

import "time"

// Product es un producto del catálogo. Price es texto libre ("R$ 50,00")
// heredado del sistema anterior; se interpreta con money.Parse.
type Product struct {
	ID        int64
	Name      string
	Unit      string
	Stock     int
	MinStock  int
	Price     string
	CreatedAt time.Time
}

// Service es un servicio del catálogo.
type Service struct {
	ID          int64
	Name        string
	Description string
	Price       string
	CreatedAt   time.Time
}

// Tipos de Client.
const (
	ClientTypeCustomer = "Cliente"
	ClientTypeSupplier = "Fornecedor"
)

// Client representa un cliente o proveedor.
type Client struct {
	ID           int64
	Name         string
	Document     string // CPF o CNPJ
	Phone        string
	Email        string
	Type         string
	CEP          string
	Street       string
	Number       string
	Neighborhood string
	City         string
	State        string
}
