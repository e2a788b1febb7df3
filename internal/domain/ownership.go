package domain

import "github.com/tu-usuario/ventas-pro/internal/domain/entity"

// Predicados puros de autorización: un vendedor solo actúa sobre los clientes
// que captó y sobre los pedidos colocados a su nombre.

// OwnsClient indica si el vendedor identificado por sellerID es dueño del cliente.
func OwnsClient(sellerID string, client *entity.Client) bool {
	return client != nil && sellerID != "" && client.SellerID == sellerID
}

// OwnsOrder indica si el vendedor identificado por sellerID es dueño del pedido.
func OwnsOrder(sellerID string, order *entity.Order) bool {
	return order != nil && sellerID != "" && order.SellerID == sellerID
}
