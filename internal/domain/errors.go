package domain

import "errors"

// Errores de dominio (sin dependencias externas).
// Los handlers HTTP los traducen a códigos de estado: reglas de negocio -> 400,
// recurso ausente -> 404, duplicado -> reintento interno del asignador de números.
var (
	ErrNotFound         = errors.New("recurso no encontrado")
	ErrDuplicate        = errors.New("recurso duplicado")
	ErrInvalidInput     = errors.New("entrada inválida")
	ErrClientNotFound   = errors.New("cliente no encontrado")
	ErrProductNotFound  = errors.New("producto no encontrado")
	ErrEmptyItems       = errors.New("la factura requiere al menos un ítem")
	ErrInvalidQuantity  = errors.New("la cantidad debe ser mayor o igual a 1")
	ErrInvalidDateRange = errors.New("la fecha de vencimiento no puede ser anterior a la de emisión")
)
