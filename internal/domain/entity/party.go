package entity

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// PartyRef referencia a un cliente, proveedor o técnico por su nombre visible.
// No es una clave foránea: dos partes homónimas son indistinguibles.
type PartyRef string

// String devuelve el nombre.
func (p PartyRef) String() string { return string(p) }

// IsZero informa si la referencia está vacía.
func (p PartyRef) IsZero() bool { return strings.TrimSpace(string(p)) == "" }

// Equal compara de forma exacta.
func (p PartyRef) Equal(other PartyRef) bool { return p == other }

// EqualFold compara sin distinguir mayúsculas, normalizando a NFC para que
// "José" compuesto y descompuesto coincidan.
func (p PartyRef) EqualFold(other PartyRef) bool {
	return foldName(string(p)) == foldName(string(other))
}

func foldName(s string) string {
	return cases.Fold().String(norm.NFC.String(s))
}
