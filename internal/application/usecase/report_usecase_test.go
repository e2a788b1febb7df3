package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/ventas-pro/internal/application/usecase"
	"github.com/tu-usuario/ventas-pro/internal/domain/entity"
	"github.com/tu-usuario/ventas-pro/internal/domain/repository"
)

type fakeReportRepo struct {
	clientRows []repository.TopClientRow
	sellerRows []repository.TopSellerRow
	lastLimit  int
}

func (r *fakeReportRepo) TopClients(_ context.Context, limit int) ([]repository.TopClientRow, error) {
	r.lastLimit = limit
	return r.clientRows, nil
}

func (r *fakeReportRepo) TopSellers(_ context.Context, limit int) ([]repository.TopSellerRow, error) {
	r.lastLimit = limit
	return r.sellerRows, nil
}

// El caso de uso solo proyecta: el tope de 10 se delega al repositorio y las
// filas salen en el orden que éste entrega (descendente por total).
func TestReportTopClients(t *testing.T) {
	repo := &fakeReportRepo{clientRows: []repository.TopClientRow{
		{Total: decimal.NewFromInt(900), Client: entity.Client{ID: "cli-1", Name: "Laura"}},
		{Total: decimal.NewFromInt(400), Client: entity.Client{ID: "cli-2", Name: "Pedro"}},
	}}
	uc := usecase.NewReportUseCase(repo)

	out, err := uc.TopClients(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 10, repo.lastLimit, "el ranking se corta en 10")
	require.Len(t, out, 2)
	assert.Equal(t, "cli-1", out[0].Client.ID)
	assert.True(t, out[0].Total.GreaterThan(out[1].Total))
}

func TestReportTopSellers(t *testing.T) {
	repo := &fakeReportRepo{sellerRows: []repository.TopSellerRow{
		{Total: decimal.NewFromInt(1500), Seller: entity.User{ID: "seller-a", Name: "Juan"}},
	}}
	uc := usecase.NewReportUseCase(repo)

	out, err := uc.TopSellers(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 10, repo.lastLimit)
	require.Len(t, out, 1)
	assert.Equal(t, "seller-a", out[0].Seller.ID)
	assert.True(t, out[0].Total.Equal(decimal.NewFromInt(1500)))
}
