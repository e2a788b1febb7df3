package repository

import "github.com/tu-usuario/ventas-pro/internal/domain/entity"

// ClientRepository define el puerto de persistencia para Client.
type ClientRepository interface {
	Create(client *entity.Client) error
	GetByID(id string) (*entity.Client, error)
	GetByEmail(email string) (*entity.Client, error)
	Update(client *entity.Client) error
	List() ([]*entity.Client, error)
	ListBySeller(sellerID string) ([]*entity.Client, error)
	Delete(id string) error
}
