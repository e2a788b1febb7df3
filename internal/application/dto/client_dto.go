package dto

import "time"

// CreateClientRequest alta de cliente. El vendedor se asigna desde el token.
type CreateClientRequest struct {
	Name    string `json:"name"`
	Surname string `json:"surname"`
	Company string `json:"company"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
}

// UpdateClientRequest actualización parcial de cliente.
type UpdateClientRequest struct {
	Name    *string `json:"name"`
	Surname *string `json:"surname"`
	Company *string `json:"company"`
	Email   *string `json:"email"`
	Phone   *string `json:"phone"`
}

// ClientResponse representación de un cliente.
type ClientResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Surname   string    `json:"surname"`
	Company   string    `json:"company"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	SellerID  string    `json:"seller_id"`
	CreatedAt time.Time `json:"created_at"`
}
