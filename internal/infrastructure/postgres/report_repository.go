package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tu-usuario/ventas-pro/internal/domain/entity"
	"github.com/tu-usuario/ventas-pro/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo consultas de solo lectura para los rankings de ventas.
// Equivalente SQL de los pipelines $match/$group/$sort/$limit del sistema original.
type ReportRepo struct {
	pool *pgxpool.Pool
}

// NewReportRepository construye el adaptador de reportes.
func NewReportRepository(pool *pgxpool.Pool) *ReportRepo {
	return &ReportRepo{pool: pool}
}

// TopClients agrupa pedidos COMPLETED por cliente, suma totales y devuelve
// hasta limit filas ordenadas por total descendente.
func (r *ReportRepo) TopClients(ctx context.Context, limit int) ([]repository.TopClientRow, error) {
	const query = `
	SELECT
	    SUM(o.total)  AS total,
	    c.id, c.name, c.surname, c.company, c.email, c.phone, c.seller_id, c.created_at
	FROM orders o
	JOIN clients c ON c.id = o.client_id
	WHERE o.status = $1
	GROUP BY c.id, c.name, c.surname, c.company, c.email, c.phone, c.seller_id, c.created_at
	ORDER BY total DESC
	LIMIT $2`

	rows, err := r.pool.Query(ctx, query, entity.OrderStatusCompleted, limit)
	if err != nil {
		return nil, fmt.Errorf("report.TopClients: %w", err)
	}
	defer rows.Close()

	var results []repository.TopClientRow
	for rows.Next() {
		var row repository.TopClientRow
		if err := rows.Scan(
			&row.Total,
			&row.Client.ID, &row.Client.Name, &row.Client.Surname, &row.Client.Company,
			&row.Client.Email, &row.Client.Phone, &row.Client.SellerID, &row.Client.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("report.TopClients scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// TopSellers agrupa pedidos COMPLETED por vendedor, suma totales y devuelve
// hasta limit filas ordenadas por total descendente.
func (r *ReportRepo) TopSellers(ctx context.Context, limit int) ([]repository.TopSellerRow, error) {
	const query = `
	SELECT
	    SUM(o.total)  AS total,
	    u.id, u.name, u.surname, u.email, u.created_at
	FROM orders o
	JOIN users u ON u.id = o.seller_id
	WHERE o.status = $1
	GROUP BY u.id, u.name, u.surname, u.email, u.created_at
	ORDER BY total DESC
	LIMIT $2`

	rows, err := r.pool.Query(ctx, query, entity.OrderStatusCompleted, limit)
	if err != nil {
		return nil, fmt.Errorf("report.TopSellers: %w", err)
	}
	defer rows.Close()

	var results []repository.TopSellerRow
	for rows.Next() {
		var row repository.TopSellerRow
		if err := rows.Scan(
			&row.Total,
			&row.Seller.ID, &row.Seller.Name, &row.Seller.Surname, &row.Seller.Email, &row.Seller.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("report.TopSellers scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}
