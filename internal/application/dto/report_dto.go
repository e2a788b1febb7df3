package dto

import "github.com/shopspring/decimal"

// TopClientResponse total vendido a un cliente (ranking).
type TopClientResponse struct {
	Total  decimal.Decimal `json:"total"`
	Client ClientResponse  `json:"client"`
}

// TopSellerResponse total vendido por un vendedor (ranking).
type TopSellerResponse struct {
	Total  decimal.Decimal `json:"total"`
	Seller UserResponse    `json:"seller"`
}
