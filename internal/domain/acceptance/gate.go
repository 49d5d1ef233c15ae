// Package acceptance implementa el punto de consentimiento de los términos de
// garantía que precede a todo guardado de órdenes y ventas.
package acceptance

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/jhoicas/Oficina-api/internal/domain"
)

// State es el estado del gate.
type State int

const (
	Pending State = iota
	Accepted
)

func (s State) String() string {
	if s == Accepted {
		return "accepted"
	}
	return "pending"
}

// Terms es el texto presentado al usuario y su huella.
type Terms struct {
	Text   string
	Digest string
}

// DigestOf devuelve el sha256 hexadecimal del texto de términos.
func DigestOf(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}

// Gate bloquea el guardado hasta que los términos vigentes fueron presentados
// y aceptados. Se crea uno por operación de guardado; no es seguro para uso
// concurrente.
type Gate struct {
	terms     Terms
	presented bool
	state     State
}

// NewGate crea un gate en Pending para el texto de términos dado.
func NewGate(text string) *Gate {
	return &Gate{terms: Terms{Text: text, Digest: DigestOf(text)}}
}

// Present devuelve los términos a mostrar. Accept solo procede después.
func (g *Gate) Present() Terms {
	g.presented = true
	return g.terms
}

// Accept registra el consentimiento para los términos con esa huella.
func (g *Gate) Accept(digest string) error {
	if !g.presented {
		return domain.ErrTermsNotPresented
	}
	if digest != g.terms.Digest {
		return domain.ErrTermsMismatch
	}
	g.state = Accepted
	return nil
}

// State devuelve el estado actual.
func (g *Gate) State() State { return g.state }

// Commit ejecuta save solo si el gate está Accepted. Si save tiene éxito el
// gate vuelve a Pending y exige una nueva presentación; si falla se mantiene
// Accepted para poder reintentar.
func (g *Gate) Commit(ctx context.Context, save func(ctx context.Context) error) error {
	if g.state != Accepted {
		return domain.ErrGateDenied
	}
	if err := save(ctx); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrRepository, err)
	}
	g.state = Pending
	g.presented = false
	return nil
}
