package orders

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/ventas-pro/internal/domain/entity"
	"github.com/tu-usuario/ventas-pro/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Es la costura para el modo de colocación
// atómica: reserva de todos los renglones + insert del pedido, todo o nada.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		orderRepo repository.OrderRepository,
	) error) error
}

// OrderLineForPDF renglón enriquecido con nombre y precio del producto para la
// hoja de pedido imprimible.
type OrderLineForPDF struct {
	Item        entity.OrderItem
	ProductName string
	UnitPrice   decimal.Decimal
}

// OrderPDFGenerator genera la hoja de pedido en PDF.
type OrderPDFGenerator interface {
	GenerateOrderPDF(ctx context.Context, order *entity.Order, client *entity.Client, lines []OrderLineForPDF) ([]byte, error)
}
