package repository

import "github.com/tu-usuario/ventas-pro/internal/domain/entity"

// OrderRepository define el puerto de persistencia para Order.
type OrderRepository interface {
	Create(order *entity.Order) error
	GetByID(id string) (*entity.Order, error)
	Update(order *entity.Order) error
	List() ([]*entity.Order, error)
	ListBySeller(sellerID string) ([]*entity.Order, error)
	ListBySellerAndStatus(sellerID, status string) ([]*entity.Order, error)
	Delete(id string) error
}
