package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrDuplicate    = errors.New("recurso duplicado")
	ErrUnauthorized = errors.New("no autorizado")
	ErrForbidden    = errors.New("acceso denegado")
	ErrConflict     = errors.New("conflicto con el estado actual")

	// ErrHorasMensualesInvalidas: el colaborador no tiene horas mensuales > 0 y la
	// asignación no define un costo por hora propio, la tarifa base no se puede derivar.
	ErrHorasMensualesInvalidas = errors.New("horas mensuales del colaborador deben ser mayores a cero")
)
