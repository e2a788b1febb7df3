package orders_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/ventas-pro/internal/application/dto"
	"github.com/tu-usuario/ventas-pro/internal/application/orders"
	"github.com/tu-usuario/ventas-pro/internal/domain"
	"github.com/tu-usuario/ventas-pro/internal/domain/entity"
)

func orderFixtures() *fakeOrderRepo {
	return newFakeOrderRepo(
		&entity.Order{ID: "ord-1", SellerID: sellerA, ClientID: "cli-1",
			Items:  []entity.OrderItem{{ProductID: "prod-1", Quantity: 2}},
			Total:  decimal.NewFromInt(1000),
			Status: entity.OrderStatusPending},
		&entity.Order{ID: "ord-2", SellerID: sellerA, ClientID: "cli-1",
			Total: decimal.NewFromInt(300), Status: entity.OrderStatusCompleted},
		&entity.Order{ID: "ord-3", SellerID: sellerB, ClientID: "cli-9",
			Total: decimal.NewFromInt(50), Status: entity.OrderStatusPending},
	)
}

func TestOrderGetByID_SoloElVendedorDuenio(t *testing.T) {
	uc := orders.NewOrderUseCase(orderFixtures())

	out, err := uc.GetByID(sellerA, "ord-1")
	require.NoError(t, err)
	assert.Equal(t, "ord-1", out.ID)

	_, err = uc.GetByID(sellerB, "ord-1")
	assert.ErrorIs(t, err, domain.ErrForbidden, "pedido de otro vendedor")

	_, err = uc.GetByID(sellerA, "no-existe")
	assert.ErrorIs(t, err, domain.ErrOrderNotFound)

	_, err = uc.GetByID("", "ord-1")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestOrderListBySellerAndStatus(t *testing.T) {
	uc := orders.NewOrderUseCase(orderFixtures())

	list, err := uc.ListBySellerAndStatus(sellerA, entity.OrderStatusCompleted)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "ord-2", list[0].ID)

	_, err = uc.ListBySellerAndStatus(sellerA, "ENVIADO")
	assert.ErrorIs(t, err, domain.ErrInvalidStatus)
}

func TestOrderUpdate_AplicaCamposParciales(t *testing.T) {
	repo := orderFixtures()
	uc := orders.NewOrderUseCase(repo)

	status := entity.OrderStatusCompleted
	total := decimal.NewFromInt(1200)
	out, err := uc.Update(sellerA, "ord-1", dto.UpdateOrderRequest{
		Status: &status,
		Total:  &total,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusCompleted, out.Status)
	assert.True(t, out.Total.Equal(total))

	stored, _ := repo.GetByID("ord-1")
	assert.Equal(t, entity.OrderStatusCompleted, stored.Status)

	bad := "DESPACHADO"
	_, err = uc.Update(sellerA, "ord-1", dto.UpdateOrderRequest{Status: &bad})
	assert.ErrorIs(t, err, domain.ErrInvalidStatus)

	_, err = uc.Update(sellerB, "ord-1", dto.UpdateOrderRequest{Status: &status})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestOrderDelete_DevuelveLaEntidadPrevia(t *testing.T) {
	repo := orderFixtures()
	uc := orders.NewOrderUseCase(repo)

	out, err := uc.Delete(sellerA, "ord-1")
	require.NoError(t, err)
	assert.Equal(t, "ord-1", out.ID)
	assert.True(t, out.Total.Equal(decimal.NewFromInt(1000)), "se devuelve el pedido tal como estaba")

	gone, _ := repo.GetByID("ord-1")
	assert.Nil(t, gone)

	_, err = uc.Delete(sellerB, "ord-3")
	require.NoError(t, err)
	_, err = uc.Delete(sellerB, "ord-2")
	assert.ErrorIs(t, err, domain.ErrForbidden)
}
