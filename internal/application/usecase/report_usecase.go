package usecase

import (
	"context"

	"github.com/tu-usuario/ventas-pro/internal/application/dto"
	"github.com/tu-usuario/ventas-pro/internal/domain/repository"
)

// topLimit tope del ranking de clientes/vendedores.
const topLimit = 10

// ReportUseCase rankings de ventas sobre pedidos COMPLETED.
// La agregación (filtro por estado, suma y orden) vive en el repositorio;
// aquí solo se proyecta al DTO.
type ReportUseCase struct {
	repo repository.ReportRepository
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(repo repository.ReportRepository) *ReportUseCase {
	return &ReportUseCase{repo: repo}
}

// TopClients devuelve hasta 10 clientes ordenados por total vendido descendente.
func (uc *ReportUseCase) TopClients(ctx context.Context) ([]dto.TopClientResponse, error) {
	rows, err := uc.repo.TopClients(ctx, topLimit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.TopClientResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.TopClientResponse{
			Total: r.Total,
			Client: dto.ClientResponse{
				ID:        r.Client.ID,
				Name:      r.Client.Name,
				Surname:   r.Client.Surname,
				Company:   r.Client.Company,
				Email:     r.Client.Email,
				Phone:     r.Client.Phone,
				SellerID:  r.Client.SellerID,
				CreatedAt: r.Client.CreatedAt,
			},
		})
	}
	return out, nil
}

// TopSellers devuelve hasta 10 vendedores ordenados por total vendido descendente.
func (uc *ReportUseCase) TopSellers(ctx context.Context) ([]dto.TopSellerResponse, error) {
	rows, err := uc.repo.TopSellers(ctx, topLimit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.TopSellerResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.TopSellerResponse{
			Total: r.Total,
			Seller: dto.UserResponse{
				ID:        r.Seller.ID,
				Name:      r.Seller.Name,
				Surname:   r.Seller.Surname,
				Email:     r.Seller.Email,
				CreatedAt: r.Seller.CreatedAt,
			},
		})
	}
	return out, nil
}
