package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrItemNotFound      = errors.New("herramienta/insumo no encontrado")
	ErrPersonNotFound    = errors.New("persona no encontrada")
	ErrUserNotFound      = errors.New("usuario no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrInvalidQuantity   = errors.New("la cantidad debe ser mayor a 0")
	ErrInsufficientStock = errors.New("stock insuficiente")
	ErrShiftAlreadyOpen  = errors.New("ya hay un turno sin finalizar")
	ErrShiftNotFound     = errors.New("no hay un turno abierto")
	ErrReferentialBlock  = errors.New("el registro tiene relaciones y no puede eliminarse")
	ErrInvalidTemplate   = errors.New("no hay plantilla de historial para la gestión y operación")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrUnauthorized      = errors.New("no autorizado")
	ErrForbidden         = errors.New("acceso denegado")
)
