package repository

import "github.com/tu-usuario/ventas-pro/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	// GetByIDForUpdate obtiene el producto bloqueando la fila (SELECT FOR UPDATE).
	// Solo tiene efecto dentro de una transacción; fuera de ella equivale a GetByID.
	GetByIDForUpdate(id string) (*entity.Product, error)
	Update(product *entity.Product) error
	// UpdateStock persiste únicamente la existencia del producto (reserva de pedidos).
	UpdateStock(productID string, stock int) error
	List() ([]*entity.Product, error)
	// SearchByName busca por nombre (máx. limit resultados).
	SearchByName(text string, limit int) ([]*entity.Product, error)
	Delete(id string) error
}
