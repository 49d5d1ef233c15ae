package entity

// CompanySettings guarda los datos de la empresa y el texto de garantía que
// se presenta antes de guardar órdenes y ventas.
type CompanySettings struct {
	Name         string
	CNPJ         string
	Email        string
	Phone        string
	Address      string
	Theme        string
	LogoURL      string
	WarrantyText string
}
