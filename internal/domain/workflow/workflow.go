// Package workflow define las máquinas de estado de órdenes y ventas: qué
// transiciones son legales y qué color y etiqueta tiene cada estado.
//
// Una transición fuera de las aristas definidas es inválida; el paquete no
// corrige ni aproxima, el llamador debe chequear antes de aplicar.
package workflow

// Workflow es una máquina de estados finita sobre un tipo de estado S.
type Workflow[S ~string] struct {
	initial      S
	edges        map[S][]S
	colors       map[S]string
	labels       map[S]string
	clientEdges  map[S][]S
	defaultColor string
}

// Initial devuelve el estado con el que nace un registro.
func (w *Workflow[S]) Initial() S { return w.initial }

// Known informa si el estado pertenece a la máquina.
func (w *Workflow[S]) Known(s S) bool {
	_, ok := w.colors[s]
	return ok
}

// CanTransition informa si from → to es una arista definida.
func (w *Workflow[S]) CanTransition(from, to S) bool {
	return contains(w.edges[from], to)
}

// ClientCanTransition informa si un cliente puede disparar from → to.
func (w *Workflow[S]) ClientCanTransition(from, to S) bool {
	return contains(w.clientEdges[from], to)
}

// Next lista los estados alcanzables desde s.
func (w *Workflow[S]) Next(s S) []S {
	out := make([]S, len(w.edges[s]))
	copy(out, w.edges[s])
	return out
}

// IsTerminal informa si el estado no tiene salidas.
func (w *Workflow[S]) IsTerminal(s S) bool {
	return w.Known(s) && len(w.edges[s]) == 0
}

// Color devuelve la etiqueta de color del estado (green, blue, ...).
// Estados desconocidos usan el color por defecto de la máquina.
func (w *Workflow[S]) Color(s S) string {
	if c, ok := w.colors[s]; ok {
		return c
	}
	return w.defaultColor
}

// CSSClass devuelve la clase de fondo usada por el front ("bg-green-500").
func (w *Workflow[S]) CSSClass(s S) string {
	return "bg-" + w.Color(s) + "-500"
}

// Label devuelve el texto visible del estado.
func (w *Workflow[S]) Label(s S) string {
	if l, ok := w.labels[s]; ok {
		return l
	}
	return string(s)
}

func contains[S comparable](list []S, v S) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
