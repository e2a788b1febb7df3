package orders_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/ventas-pro/internal/application/dto"
	"github.com/tu-usuario/ventas-pro/internal/application/orders"
	"github.com/tu-usuario/ventas-pro/internal/domain"
	"github.com/tu-usuario/ventas-pro/internal/domain/entity"
)

const (
	sellerA = "seller-a"
	sellerB = "seller-b"
)

func fixtures() (*fakeClientRepo, *fakeProductRepo, *fakeOrderRepo) {
	clients := newFakeClientRepo(
		&entity.Client{ID: "cli-1", Name: "Laura", Email: "laura@acme.co", SellerID: sellerA},
	)
	products := newFakeProductRepo(
		&entity.Product{ID: "prod-1", Name: "Monitor 24", Stock: 10, Price: decimal.NewFromInt(500)},
		&entity.Product{ID: "prod-2", Name: "Teclado", Stock: 3, Price: decimal.NewFromInt(80)},
	)
	return clients, products, newFakeOrderRepo()
}

func placeUC(clients *fakeClientRepo, products *fakeProductRepo, ordersRepo *fakeOrderRepo) *orders.PlaceOrderUseCase {
	return orders.NewPlaceOrderUseCase(clients, products, ordersRepo, nil, false)
}

// Camino feliz: descuenta cada renglón, copia el vendedor del token y deja el
// pedido en PENDING con el total declarado.
func TestPlaceOrder_DescuentaStockYCreaPedido(t *testing.T) {
	clients, products, ordersRepo := fixtures()
	uc := placeUC(clients, products, ordersRepo)

	out, err := uc.PlaceOrder(context.Background(), sellerA, dto.CreateOrderRequest{
		ClientID: "cli-1",
		Items: []dto.OrderItemInput{
			{ProductID: "prod-1", Quantity: 4},
			{ProductID: "prod-2", Quantity: 2},
		},
		Total: decimal.NewFromInt(2160),
	})
	require.NoError(t, err)

	assert.Equal(t, 6, products.stockOf("prod-1"))
	assert.Equal(t, 1, products.stockOf("prod-2"))
	assert.Equal(t, sellerA, out.SellerID, "el vendedor sale del token, no del request")
	assert.Equal(t, entity.OrderStatusPending, out.Status, "sin estado explícito queda PENDING")
	assert.True(t, out.Total.Equal(decimal.NewFromInt(2160)), "el total se persiste tal cual lo declara el caller")
	assert.Len(t, ordersRepo.orders, 1)
	assert.NotEmpty(t, out.ID)
}

func TestPlaceOrder_SinIdentidad_Unauthorized(t *testing.T) {
	clients, products, ordersRepo := fixtures()
	uc := placeUC(clients, products, ordersRepo)

	_, err := uc.PlaceOrder(context.Background(), "", dto.CreateOrderRequest{
		ClientID: "cli-1",
		Items:    []dto.OrderItemInput{{ProductID: "prod-1", Quantity: 1}},
	})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	assert.Equal(t, 10, products.stockOf("prod-1"), "sin identidad no se toca el stock")
}

func TestPlaceOrder_ValidacionDeEntrada(t *testing.T) {
	clients, products, ordersRepo := fixtures()
	uc := placeUC(clients, products, ordersRepo)
	ctx := context.Background()

	_, err := uc.PlaceOrder(ctx, sellerA, dto.CreateOrderRequest{ClientID: "cli-1"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "pedido sin renglones")

	_, err = uc.PlaceOrder(ctx, sellerA, dto.CreateOrderRequest{
		ClientID: "cli-1",
		Items:    []dto.OrderItemInput{{ProductID: "prod-1", Quantity: 0}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "cantidad cero")

	_, err = uc.PlaceOrder(ctx, sellerA, dto.CreateOrderRequest{
		ClientID: "cli-1",
		Items:    []dto.OrderItemInput{{ProductID: "prod-1", Quantity: 1}},
		Total:    decimal.NewFromInt(-5),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "total negativo")

	_, err = uc.PlaceOrder(ctx, sellerA, dto.CreateOrderRequest{
		ClientID: "cli-1",
		Items:    []dto.OrderItemInput{{ProductID: "prod-1", Quantity: 1}},
		Status:   "SHIPPED",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidStatus, "estado fuera del enum")

	assert.Empty(t, products.stockWrites, "ninguna validación fallida debe escribir stock")
}

func TestPlaceOrder_ClienteInexistente(t *testing.T) {
	clients, products, ordersRepo := fixtures()
	uc := placeUC(clients, products, ordersRepo)

	_, err := uc.PlaceOrder(context.Background(), sellerA, dto.CreateOrderRequest{
		ClientID: "no-existe",
		Items:    []dto.OrderItemInput{{ProductID: "prod-1", Quantity: 1}},
	})
	assert.ErrorIs(t, err, domain.ErrClientNotFound)
}

// Cliente de otro vendedor: acceso denegado (403), distinto de inexistente (404).
func TestPlaceOrder_ClienteDeOtroVendedor_Forbidden(t *testing.T) {
	clients, products, ordersRepo := fixtures()
	uc := placeUC(clients, products, ordersRepo)

	_, err := uc.PlaceOrder(context.Background(), sellerB, dto.CreateOrderRequest{
		ClientID: "cli-1",
		Items:    []dto.OrderItemInput{{ProductID: "prod-1", Quantity: 1}},
	})
	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.Equal(t, 10, products.stockOf("prod-1"), "la verificación de propiedad corre antes de la reserva")
	assert.Empty(t, ordersRepo.orders)
}

// Stock insuficiente en el único renglón: el error lleva el nombre del producto,
// no se descuenta nada y no se crea el pedido.
func TestPlaceOrder_StockInsuficiente(t *testing.T) {
	clients, products, ordersRepo := fixtures()
	uc := placeUC(clients, products, ordersRepo)

	_, err := uc.PlaceOrder(context.Background(), sellerA, dto.CreateOrderRequest{
		ClientID: "cli-1",
		Items:    []dto.OrderItemInput{{ProductID: "prod-2", Quantity: 4}},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	var stockErr *domain.InsufficientStockError
	require.True(t, errors.As(err, &stockErr))
	assert.Equal(t, "Teclado", stockErr.Product, "el error identifica el producto por nombre")

	assert.Equal(t, 3, products.stockOf("prod-2"), "el renglón que falla no descuenta")
	assert.Empty(t, ordersRepo.orders)
}

// Fallo en el segundo renglón: el descuento del primero ya quedó persistido y
// NO se revierte; el pedido no se crea.
func TestPlaceOrder_FalloParcial_NoRevierteRenglonesAnteriores(t *testing.T) {
	clients, products, ordersRepo := fixtures()
	uc := placeUC(clients, products, ordersRepo)

	_, err := uc.PlaceOrder(context.Background(), sellerA, dto.CreateOrderRequest{
		ClientID: "cli-1",
		Items: []dto.OrderItemInput{
			{ProductID: "prod-1", Quantity: 4},
			{ProductID: "prod-2", Quantity: 99},
		},
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	assert.Equal(t, 6, products.stockOf("prod-1"), "el primer renglón queda descontado")
	assert.Equal(t, 3, products.stockOf("prod-2"))
	assert.Equal(t, []string{"prod-1"}, products.stockWrites)
	assert.Empty(t, ordersRepo.orders, "el pedido no se crea aunque haya descuentos aplicados")
}

func TestPlaceOrder_ProductoInexistenteEnRenglon(t *testing.T) {
	clients, products, ordersRepo := fixtures()
	uc := placeUC(clients, products, ordersRepo)

	_, err := uc.PlaceOrder(context.Background(), sellerA, dto.CreateOrderRequest{
		ClientID: "cli-1",
		Items: []dto.OrderItemInput{
			{ProductID: "prod-1", Quantity: 2},
			{ProductID: "fantasma", Quantity: 1},
		},
	})
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
	assert.Equal(t, 8, products.stockOf("prod-1"), "el renglón previo al fallo queda persistido")
	assert.Empty(t, ordersRepo.orders)
}

// Con varios renglones inválidos se reporta el primero en el orden del request.
func TestPlaceOrder_ReportaElPrimerFallo(t *testing.T) {
	clients, products, ordersRepo := fixtures()
	uc := placeUC(clients, products, ordersRepo)

	_, err := uc.PlaceOrder(context.Background(), sellerA, dto.CreateOrderRequest{
		ClientID: "cli-1",
		Items: []dto.OrderItemInput{
			{ProductID: "prod-2", Quantity: 50},
			{ProductID: "prod-1", Quantity: 50},
		},
	})
	var stockErr *domain.InsufficientStockError
	require.True(t, errors.As(err, &stockErr))
	assert.Equal(t, "Teclado", stockErr.Product)
	assert.Empty(t, products.stockWrites)
}

// Modo estricto: todo corre dentro del TxRunner con lectura FOR UPDATE y un
// fallo revierte también los renglones ya descontados.
func TestPlaceOrder_ModoAtomico_RevierteTodoAlFallar(t *testing.T) {
	clients, products, ordersRepo := fixtures()
	runner := &fakeTxRunner{products: products, orders: ordersRepo}
	uc := orders.NewPlaceOrderUseCase(clients, products, ordersRepo, runner, true)

	_, err := uc.PlaceOrder(context.Background(), sellerA, dto.CreateOrderRequest{
		ClientID: "cli-1",
		Items: []dto.OrderItemInput{
			{ProductID: "prod-1", Quantity: 4},
			{ProductID: "prod-2", Quantity: 99},
		},
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, 1, runner.runs)
	assert.Equal(t, 10, products.stockOf("prod-1"), "en modo atómico el descuento previo se revierte")
	assert.Empty(t, ordersRepo.orders)
}

func TestPlaceOrder_ModoAtomico_ConfirmaAlPasar(t *testing.T) {
	clients, products, ordersRepo := fixtures()
	runner := &fakeTxRunner{products: products, orders: ordersRepo}
	uc := orders.NewPlaceOrderUseCase(clients, products, ordersRepo, runner, true)

	out, err := uc.PlaceOrder(context.Background(), sellerA, dto.CreateOrderRequest{
		ClientID: "cli-1",
		Items:    []dto.OrderItemInput{{ProductID: "prod-1", Quantity: 4}},
		Total:    decimal.NewFromInt(2000),
		Status:   entity.OrderStatusCompleted,
	})
	require.NoError(t, err)
	assert.Equal(t, 6, products.stockOf("prod-1"))
	assert.Positive(t, products.forUpdateReads, "el modo atómico lee con bloqueo de fila")
	assert.Equal(t, entity.OrderStatusCompleted, out.Status)
	assert.Len(t, ordersRepo.orders, 1)
}
