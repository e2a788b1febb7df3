package orders

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/ventas-pro/internal/application/dto"
	"github.com/tu-usuario/ventas-pro/internal/domain"
	"github.com/tu-usuario/ventas-pro/internal/domain/entity"
	"github.com/tu-usuario/ventas-pro/internal/domain/repository"
)

// PlaceOrderUseCase coloca un pedido reservando existencia por renglón.
//
// Modo por defecto (atomic=false): cada renglón se lee, se verifica y se
// persiste de forma independiente y secuencial, en el orden del request. Si un
// renglón falla, el flujo se corta antes de crear el pedido, pero los
// descuentos ya aplicados a renglones anteriores NO se revierten. Es una
// debilidad conocida que se conserva para no cambiar el comportamiento
// observable del sistema original.
//
// Modo estricto (atomic=true, requiere TxRunner): la misma secuencia corre
// dentro de una transacción con bloqueo de fila, y cualquier fallo revierte
// descuentos e insert del pedido.
type PlaceOrderUseCase struct {
	clientRepo  repository.ClientRepository
	productRepo repository.ProductRepository
	orderRepo   repository.OrderRepository
	txRunner    TxRunner
	atomic      bool
}

// NewPlaceOrderUseCase construye el caso de uso. txRunner puede ser nil si
// atomic es false.
func NewPlaceOrderUseCase(
	clientRepo repository.ClientRepository,
	productRepo repository.ProductRepository,
	orderRepo repository.OrderRepository,
	txRunner TxRunner,
	atomic bool,
) *PlaceOrderUseCase {
	return &PlaceOrderUseCase{
		clientRepo:  clientRepo,
		productRepo: productRepo,
		orderRepo:   orderRepo,
		txRunner:    txRunner,
		atomic:      atomic,
	}
}

// PlaceOrder valida cliente y propiedad, reserva stock renglón a renglón y
// persiste el pedido con el total declarado por el caller.
func (uc *PlaceOrderUseCase) PlaceOrder(ctx context.Context, sellerID string, in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	if sellerID == "" {
		return nil, domain.ErrUnauthorized
	}
	if in.ClientID == "" || len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	for _, item := range in.Items {
		if item.ProductID == "" || item.Quantity <= 0 {
			return nil, domain.ErrInvalidInput
		}
	}
	if in.Total.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	status := in.Status
	if status == "" {
		status = entity.OrderStatusPending
	}
	if !entity.ValidOrderStatus(status) {
		return nil, domain.ErrInvalidStatus
	}

	client, err := uc.clientRepo.GetByID(in.ClientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrClientNotFound
	}
	if !domain.OwnsClient(sellerID, client) {
		return nil, domain.ErrForbidden
	}

	var order *entity.Order
	if uc.atomic && uc.txRunner != nil {
		// Modo estricto: reserva + insert en una sola transacción con FOR UPDATE.
		err = uc.txRunner.Run(ctx, func(productRepo repository.ProductRepository, orderRepo repository.OrderRepository) error {
			var txErr error
			order, txErr = uc.reserveAndCreate(productRepo, orderRepo, sellerID, status, in, true)
			return txErr
		})
	} else {
		order, err = uc.reserveAndCreate(uc.productRepo, uc.orderRepo, sellerID, status, in, false)
	}
	if err != nil {
		return nil, err
	}
	return toOrderResponse(order), nil
}

// reserveAndCreate procesa los renglones en el orden recibido: cada producto se
// carga, se compara la cantidad contra la existencia y el descuento se persiste
// de inmediato (no al final del bucle). Al pasar todos los renglones se crea el
// pedido con SellerID = vendedor del token.
func (uc *PlaceOrderUseCase) reserveAndCreate(
	productRepo repository.ProductRepository,
	orderRepo repository.OrderRepository,
	sellerID, status string,
	in dto.CreateOrderRequest,
	forUpdate bool,
) (*entity.Order, error) {
	for _, item := range in.Items {
		var product *entity.Product
		var err error
		if forUpdate {
			product, err = productRepo.GetByIDForUpdate(item.ProductID)
		} else {
			product, err = productRepo.GetByID(item.ProductID)
		}
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, domain.ErrProductNotFound
		}
		if item.Quantity > product.Stock {
			return nil, &domain.InsufficientStockError{Product: product.Name}
		}
		if err := productRepo.UpdateStock(product.ID, product.Stock-item.Quantity); err != nil {
			return nil, err
		}
	}

	items := make([]entity.OrderItem, 0, len(in.Items))
	for _, item := range in.Items {
		items = append(items, entity.OrderItem{ProductID: item.ProductID, Quantity: item.Quantity})
	}
	order := &entity.Order{
		ID:        uuid.New().String(),
		Items:     items,
		Total:     in.Total,
		ClientID:  in.ClientID,
		SellerID:  sellerID,
		Status:    status,
		CreatedAt: time.Now(),
	}
	if err := orderRepo.Create(order); err != nil {
		return nil, err
	}
	return order, nil
}

func toOrderResponse(o *entity.Order) *dto.OrderResponse {
	if o == nil {
		return nil
	}
	items := make([]dto.OrderItemResponse, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, dto.OrderItemResponse{ProductID: it.ProductID, Quantity: it.Quantity})
	}
	return &dto.OrderResponse{
		ID:        o.ID,
		Items:     items,
		Total:     o.Total,
		ClientID:  o.ClientID,
		SellerID:  o.SellerID,
		Status:    o.Status,
		CreatedAt: o.CreatedAt,
	}
}
