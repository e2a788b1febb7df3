package orders

import (
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/ventas-pro/internal/application/dto"
	"github.com/tu-usuario/ventas-pro/internal/domain"
	"github.com/tu-usuario/ventas-pro/internal/domain/entity"
	"github.com/tu-usuario/ventas-pro/internal/domain/repository"
)

// OrderUseCase lecturas y mutaciones directas sobre pedidos ya colocados.
// Las operaciones por ID son solo para el vendedor dueño.
type OrderUseCase struct {
	repo repository.OrderRepository
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(repo repository.OrderRepository) *OrderUseCase {
	return &OrderUseCase{repo: repo}
}

// GetByID obtiene un pedido; solo su vendedor puede leerlo.
func (uc *OrderUseCase) GetByID(sellerID, id string) (*dto.OrderResponse, error) {
	order, err := uc.loadOwned(sellerID, id)
	if err != nil {
		return nil, err
	}
	return toOrderResponse(order), nil
}

// List lista todos los pedidos.
func (uc *OrderUseCase) List() ([]dto.OrderResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	return toOrderResponses(list), nil
}

// ListBySeller lista los pedidos del vendedor del token.
func (uc *OrderUseCase) ListBySeller(sellerID string) ([]dto.OrderResponse, error) {
	if sellerID == "" {
		return nil, domain.ErrUnauthorized
	}
	list, err := uc.repo.ListBySeller(sellerID)
	if err != nil {
		return nil, err
	}
	return toOrderResponses(list), nil
}

// ListBySellerAndStatus filtra los pedidos del vendedor por estado.
func (uc *OrderUseCase) ListBySellerAndStatus(sellerID, status string) ([]dto.OrderResponse, error) {
	if sellerID == "" {
		return nil, domain.ErrUnauthorized
	}
	if !entity.ValidOrderStatus(status) {
		return nil, domain.ErrInvalidStatus
	}
	list, err := uc.repo.ListBySellerAndStatus(sellerID, status)
	if err != nil {
		return nil, err
	}
	return toOrderResponses(list), nil
}

// Update actualiza un pedido del vendedor (estado, total o renglones).
// No re-verifica ni re-descuenta stock: los renglones se aceptan tal cual,
// igual que la actualización directa del sistema original.
func (uc *OrderUseCase) Update(sellerID, id string, in dto.UpdateOrderRequest) (*dto.OrderResponse, error) {
	order, err := uc.loadOwned(sellerID, id)
	if err != nil {
		return nil, err
	}
	if in.Status != nil {
		if !entity.ValidOrderStatus(*in.Status) {
			return nil, domain.ErrInvalidStatus
		}
		order.Status = *in.Status
	}
	if in.Total != nil {
		if in.Total.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		order.Total = *in.Total
	}
	if in.Items != nil {
		items := make([]entity.OrderItem, 0, len(in.Items))
		for _, it := range in.Items {
			if it.ProductID == "" || it.Quantity <= 0 {
				return nil, domain.ErrInvalidInput
			}
			items = append(items, entity.OrderItem{ProductID: it.ProductID, Quantity: it.Quantity})
		}
		order.Items = items
	}
	if err := uc.repo.Update(order); err != nil {
		return nil, err
	}
	return toOrderResponse(order), nil
}

// Delete elimina un pedido del vendedor y devuelve la entidad previa.
func (uc *OrderUseCase) Delete(sellerID, id string) (*dto.OrderResponse, error) {
	order, err := uc.loadOwned(sellerID, id)
	if err != nil {
		return nil, err
	}
	if err := uc.repo.Delete(id); err != nil {
		return nil, err
	}
	return toOrderResponse(order), nil
}

// loadOwned carga el pedido y aplica el predicado de propiedad.
func (uc *OrderUseCase) loadOwned(sellerID, id string) (*entity.Order, error) {
	if sellerID == "" {
		return nil, domain.ErrUnauthorized
	}
	order, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrOrderNotFound
	}
	if !domain.OwnsOrder(sellerID, order) {
		return nil, domain.ErrForbidden
	}
	return order, nil
}

func toOrderResponses(list []*entity.Order) []dto.OrderResponse {
	out := make([]dto.OrderResponse, 0, len(list))
	for _, o := range list {
		out = append(out, *toOrderResponse(o))
	}
	return out
}
