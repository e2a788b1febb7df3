package repository

import "github.com/tu-usuario/ventas-pro/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
// Los lectores devuelven (nil, nil) cuando el registro no existe; el caso de
// uso decide qué error de dominio corresponde.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
}
