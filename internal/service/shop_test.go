package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/treasuretrove/treasures-api/internal/domain"
)

type stubShopRepository struct {
	shops []domain.Shop
	sums  []domain.ShopStock
}

func (r *stubShopRepository) FindAll(_ context.Context) ([]domain.Shop, error) {
	return r.shops, nil
}

func (r *stubShopRepository) StockValues(_ context.Context) ([]domain.ShopStock, error) {
	return r.sums, nil
}

func TestShopService_ListShops(t *testing.T) {
	repo := &stubShopRepository{
		shops: []domain.Shop{
			{ShopID: 1, ShopName: "Gilded Gannet", Slogan: "Treasure beyond measure"},
			{ShopID: 2, ShopName: "Rust & Relic", Slogan: "Old things, new homes"},
			{ShopID: 11, ShopName: "Driftwood Dealers", Slogan: "Fresh from the tide"},
		},
		sums: []domain.ShopStock{
			{ShopID: 1, StockValue: 435.79},
			{ShopID: 2, StockValue: 470.495},
		},
	}
	svc := NewShopService(repo)

	shops, err := svc.ListShops(context.Background())
	require.NoError(t, err)
	require.Len(t, shops, 3)

	require.NotNil(t, shops[0].StockValue)
	assert.Equal(t, 435.79, *shops[0].StockValue)

	// Sums are rounded to 2 decimal places.
	require.NotNil(t, shops[1].StockValue)
	assert.Equal(t, 470.50, *shops[1].StockValue)

	// A shop without treasures carries no stock value at all.
	assert.Nil(t, shops[2].StockValue)
}
