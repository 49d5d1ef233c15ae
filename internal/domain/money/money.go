// Package money implementa el valor monetario del sistema (reales, dos decimales).
//
// Los importes se guardan como decimal.Decimal redondeado a centavos; nunca se
// acumulan float64 entre líneas. El formato de texto es el de pt-BR:
// "R$ 1.234,56" (punto como separador de miles, coma decimal).
package money

import (
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
)

// Symbol es el símbolo de moneda usado al formatear.
const Symbol = "R$"

const scale = 2

// Money es inmutable: todas las operaciones devuelven un valor nuevo.
type Money struct {
	amount decimal.Decimal
}

// Zero devuelve R$ 0,00.
func Zero() Money { return Money{amount: decimal.Zero} }

// FromDecimal construye un Money redondeando a centavos.
func FromDecimal(d decimal.Decimal) Money {
	return Money{amount: d.Round(scale)}
}

// FromCents construye un Money a partir de centavos (unidad mínima).
func FromCents(cents int64) Money {
	return Money{amount: decimal.New(cents, -scale)}
}

// Parse convierte texto libre en Money. Acepta "R$ 1.234,56", "1234,56",
// "50" o "-R$ 5,00". Entrada malformada devuelve Zero, nunca error: los
// precios del catálogo son texto libre heredado.
func Parse(text string) Money {
	s := strings.Map(func(r rune) rune {
		switch r {
		case 'R', '$', '.', ' ', '\t', '\n', '\u00a0', '\u202f':
			return -1
		}
		return r
	}, text)
	if s == "" {
		return Zero()
	}
	if strings.Count(s, ",") > 1 {
		return Zero()
	}
	s = strings.Replace(s, ",", ".", 1)
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Zero()
	}
	return FromDecimal(d)
}

// Amount devuelve el importe decimal.
func (m Money) Amount() decimal.Decimal { return m.amount }

// Cents devuelve el importe en centavos.
func (m Money) Cents() int64 {
	return m.amount.Shift(scale).IntPart()
}

// Add suma dos importes.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

// Sub resta other.
func (m Money) Sub(other Money) Money {
	return Money{amount: m.amount.Sub(other.amount)}
}

// Mul multiplica por una cantidad entera (precio unitario × cantidad).
func (m Money) Mul(quantity int) Money {
	return Money{amount: m.amount.Mul(decimal.NewFromInt(int64(quantity)))}
}

// Equal compara importes.
func (m Money) Equal(other Money) bool { return m.amount.Equal(other.amount) }

// IsZero informa si el importe es cero.
func (m Money) IsZero() bool { return m.amount.IsZero() }

// String equivale a Format.
func (m Money) String() string { return Format(m) }

// Format devuelve el texto canónico pt-BR con símbolo: "R$ 1.234,56".
func Format(m Money) string {
	neg := m.amount.IsNegative()
	fixed := m.amount.Abs().StringFixed(scale)
	intPart, frac, _ := strings.Cut(fixed, ".")

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	b.WriteString(Symbol)
	b.WriteByte(' ')
	b.WriteString(groupThousands(intPart))
	b.WriteByte(',')
	b.WriteString(frac)
	return b.String()
}

func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	head := len(digits) % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

// MarshalJSON serializa como número con dos decimales (ej. 200.00).
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.amount.StringFixed(scale)), nil
}

// UnmarshalJSON acepta números, strings numéricos o texto de moneda ("R$ 10,00").
func (m *Money) UnmarshalJSON(data []byte) error {
	var d decimal.Decimal
	if err := d.UnmarshalJSON(data); err == nil {
		*m = FromDecimal(d)
		return nil
	}
	var text string
	if err := json.Unmarshal(data, &text); err != nil {
		*m = Zero()
		return nil
	}
	*m = Parse(text)
	return nil
}
