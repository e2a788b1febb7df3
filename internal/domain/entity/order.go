package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de un pedido. Solo se valida pertenencia al enum; no hay máquina de
// estados sobre las transiciones.
const (
	OrderStatusPending   = "PENDING"
	OrderStatusCompleted = "COMPLETED"
	OrderStatusCanceled  = "CANCELED"
)

// ValidOrderStatus indica si s es un estado de pedido conocido.
func ValidOrderStatus(s string) bool {
	switch s {
	case OrderStatusPending, OrderStatusCompleted, OrderStatusCanceled:
		return true
	}
	return false
}

// OrderItem es un renglón del pedido: referencia a producto y cantidad.
type OrderItem struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// Order representa un pedido colocado por un vendedor a nombre de un cliente.
// SellerID es copia del vendedor del cliente al momento de la creación; Total
// es el monto declarado por el caller (no se recalcula desde precios).
type Order struct {
	ID        string
	Items     []OrderItem
	Total     decimal.Decimal
	ClientID  string
	SellerID  string
	Status    string
	CreatedAt time.Time
}
