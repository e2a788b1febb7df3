package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/ventas-pro/internal/domain/entity"
	"github.com/tu-usuario/ventas-pro/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementación de OrderRepository sobre PostgreSQL (usable con pool o tx).
// Los renglones se guardan como JSONB en la misma fila: el pedido es un
// documento, como en el sistema original, y el insert es atómico por sí solo.
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

const orderColumns = `id, items, total, client_id, seller_id, status, created_at`

// Create persiste un nuevo pedido con sus renglones.
func (r *OrderRepo) Create(order *entity.Order) error {
	items, err := json.Marshal(order.Items)
	if err != nil {
		return fmt.Errorf("marshal order items: %w", err)
	}
	query := `
		INSERT INTO orders (id, items, total, client_id, seller_id, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err = r.q.Exec(context.Background(), query,
		order.ID, items, order.Total, order.ClientID, order.SellerID, order.Status, order.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

// GetByID obtiene un pedido por ID.
func (r *OrderRepo) GetByID(id string) (*entity.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`
	row := r.q.QueryRow(context.Background(), query, id)
	order, err := scanOrder(row.Scan)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	return order, nil
}

// Update actualiza renglones, total y estado de un pedido.
func (r *OrderRepo) Update(order *entity.Order) error {
	items, err := json.Marshal(order.Items)
	if err != nil {
		return fmt.Errorf("marshal order items: %w", err)
	}
	query := `
		UPDATE orders SET items = $2, total = $3, status = $4
		WHERE id = $1`
	_, err = r.q.Exec(context.Background(), query, order.ID, items, order.Total, order.Status)
	if err != nil {
		return fmt.Errorf("update order: %w", err)
	}
	return nil
}

// List lista todos los pedidos, más recientes primero.
func (r *OrderRepo) List() ([]*entity.Order, error) {
	return r.list(`SELECT ` + orderColumns + ` FROM orders ORDER BY created_at DESC`)
}

// ListBySeller lista los pedidos de un vendedor.
func (r *OrderRepo) ListBySeller(sellerID string) ([]*entity.Order, error) {
	return r.list(`SELECT `+orderColumns+` FROM orders WHERE seller_id = $1 ORDER BY created_at DESC`, sellerID)
}

// ListBySellerAndStatus lista los pedidos de un vendedor filtrados por estado.
func (r *OrderRepo) ListBySellerAndStatus(sellerID, status string) ([]*entity.Order, error) {
	return r.list(`SELECT `+orderColumns+` FROM orders WHERE seller_id = $1 AND status = $2 ORDER BY created_at DESC`,
		sellerID, status)
}

func (r *OrderRepo) list(query string, args ...any) ([]*entity.Order, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()
	var list []*entity.Order
	for rows.Next() {
		order, err := scanOrder(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		list = append(list, order)
	}
	return list, rows.Err()
}

// Delete elimina un pedido por ID.
func (r *OrderRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM orders WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete order: %w", err)
	}
	return nil
}

// scanOrder escanea una fila de orders decodificando los renglones JSONB.
func scanOrder(scan func(dest ...any) error) (*entity.Order, error) {
	var o entity.Order
	var items []byte
	if err := scan(&o.ID, &items, &o.Total, &o.ClientID, &o.SellerID, &o.Status, &o.CreatedAt); err != nil {
		return nil, err
	}
	if len(items) > 0 {
		if err := json.Unmarshal(items, &o.Items); err != nil {
			return nil, fmt.Errorf("unmarshal order items: %w", err)
		}
	}
	return &o, nil
}
