package entity

import "time"

// Client representa un cliente captado por un vendedor.
// SellerID referencia al User dueño; la propiedad no se transfiere.
type Client struct {
	ID        string
	Name      string
	Surname   string
	Company   string
	Email     string // único
	Phone     string
	SellerID  string
	CreatedAt time.Time
}
