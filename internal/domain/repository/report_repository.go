package repository

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/ventas-pro/internal/domain/entity"
)

// TopClientRow total vendido a un cliente (solo pedidos COMPLETED).
type TopClientRow struct {
	Total  decimal.Decimal
	Client entity.Client
}

// TopSellerRow total vendido por un vendedor (solo pedidos COMPLETED).
type TopSellerRow struct {
	Total  decimal.Decimal
	Seller entity.User
}

// ReportRepository consultas de solo lectura para los rankings de ventas.
type ReportRepository interface {
	// TopClients agrupa pedidos COMPLETED por cliente, suma el total y devuelve
	// hasta limit filas en orden descendente.
	TopClients(ctx context.Context, limit int) ([]TopClientRow, error)
	// TopSellers ídem, agrupado por vendedor.
	TopSellers(ctx context.Context, limit int) ([]TopSellerRow, error)
}
