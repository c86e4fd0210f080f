package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound             = errors.New("recurso no encontrado")
	ErrUserNotFound         = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists   = errors.New("el email ya está registrado")
	ErrRUTAlreadyExists     = errors.New("el RUT ya está registrado")
	ErrInvalidRUT           = errors.New("RUT inválido")
	ErrInvalidInput         = errors.New("entrada inválida")
	ErrDuplicateSKU         = errors.New("el SKU ya existe en esta empresa")
	ErrUnauthorized         = errors.New("no autorizado")
	ErrForbidden            = errors.New("acceso denegado")
	ErrQuotaExceeded        = errors.New("límite del plan alcanzado")
	ErrInsufficientStock    = errors.New("stock insuficiente")
	ErrEmptyCart            = errors.New("carrito vacío")
	ErrNoBranch             = errors.New("la empresa no tiene sucursales")
	ErrSubscriptionInactive = errors.New("suscripción inactiva")
)
