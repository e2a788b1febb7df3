package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderItemInput renglón de un pedido: producto y cantidad solicitada.
type OrderItemInput struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// CreateOrderRequest solicitud de pedido. Total lo declara el caller y se
// persiste tal cual; Status vacío equivale a PENDING.
type CreateOrderRequest struct {
	ClientID string           `json:"client_id"`
	Items    []OrderItemInput `json:"items"`
	Total    decimal.Decimal  `json:"total"`
	Status   string           `json:"status"`
}

// UpdateOrderRequest actualización parcial de pedido.
type UpdateOrderRequest struct {
	Items  []OrderItemInput `json:"items"`
	Total  *decimal.Decimal `json:"total"`
	Status *string          `json:"status"`
}

// OrderItemResponse renglón en respuestas.
type OrderItemResponse struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// OrderResponse representación de un pedido.
type OrderResponse struct {
	ID        string              `json:"id"`
	Items     []OrderItemResponse `json:"items"`
	Total     decimal.Decimal     `json:"total"`
	ClientID  string              `json:"client_id"`
	SellerID  string              `json:"seller_id"`
	Status    string              `json:"status"`
	CreatedAt time.Time           `json:"created_at"`
}
