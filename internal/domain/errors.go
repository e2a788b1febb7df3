package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrClientNotFound     = errors.New("el cliente no existe")
	ErrProductNotFound    = errors.New("el producto no existe")
	ErrOrderNotFound      = errors.New("el pedido no existe")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrInvalidStatus      = errors.New("estado de pedido inválido")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrInsufficientStock  = errors.New("stock insuficiente")
)

// InsufficientStockError indica que un renglón del pedido excede la existencia
// disponible. Lleva el nombre del producto porque así se reporta al vendedor.
type InsufficientStockError struct {
	Product string
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("el artículo %s excede la cantidad disponible", e.Product)
}

// Is permite detectar el error con errors.Is(err, ErrInsufficientStock).
func (e *InsufficientStockError) Is(target error) bool {
	return target == ErrInsufficientStock
}
