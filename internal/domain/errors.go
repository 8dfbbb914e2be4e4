package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound        = errors.New("recurso no encontrado")
	ErrInvalidInput    = errors.New("entrada inválida")
	ErrDuplicate       = errors.New("recurso duplicado")
	ErrUnauthenticated = errors.New("no autenticado")
	ErrConflict        = errors.New("conflicto con el estado actual")
	ErrBatchTooLarge   = errors.New("el lote supera el límite de escrituras")
)
