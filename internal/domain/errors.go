package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrConflict           = errors.New("conflicto con el estado actual")
	ErrInvalidCredentials = errors.New("credenciales inválidas")

	// Guardado de órdenes y ventas.
	ErrGateDenied        = errors.New("los términos de garantía no fueron aceptados")
	ErrTermsNotPresented = errors.New("los términos de garantía no fueron presentados")
	ErrTermsMismatch     = errors.New("los términos aceptados no coinciden con los vigentes")
	ErrRepository        = errors.New("falla del repositorio")
)
