package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo.
// Stock (existencia) nunca es negativo; en este núcleo solo lo modifica la
// reserva durante la creación de pedidos y el CRUD administrativo.
type Product struct {
	ID        string
	Name      string
	Stock     int             // existencia disponible
	Price     decimal.Decimal // precio unitario de venta
	CreatedAt time.Time
}
