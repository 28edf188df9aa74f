package service

import (
	"context"
	"fmt"
	"math"

	"github.com/treasuretrove/treasures-api/internal/domain"
)

type ShopRepository interface {
	FindAll(ctx context.Context) ([]domain.Shop, error)
	StockValues(ctx context.Context) ([]domain.ShopStock, error)
}

type ShopService struct {
	repo ShopRepository
}

func NewShopService(repo ShopRepository) *ShopService {
	return &ShopService{
		repo: repo,
	}
}

// ListShops merges every shop with its summed treasure cost, rounded to
// 2 decimal places. A shop with no treasures gets no stock value at all.
func (s *ShopService) ListShops(ctx context.Context) ([]domain.Shop, error) {
	shops, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	sums, err := s.repo.StockValues(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.StockValues -> %w", err)
	}

	valueByShop := make(map[uint]float64, len(sums))
	for _, sum := range sums {
		valueByShop[sum.ShopID] = sum.StockValue
	}

	for i := range shops {
		if value, ok := valueByShop[shops[i].ShopID]; ok {
			rounded := math.Round(value*100) / 100
			shops[i].StockValue = &rounded
		}
	}

	return shops, nil
}
