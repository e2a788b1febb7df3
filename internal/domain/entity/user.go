package entity

import "time"

// User representa un vendedor del sistema: el principal para los chequeos de
// propiedad sobre clientes y pedidos.
type User struct {
	ID           string
	Name         string
	Surname      string
	Email        string // único
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	CreatedAt    time.Time
}
