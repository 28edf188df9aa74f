package repository

import (
	"context"

	"github.com/treasuretrove/treasures-api/internal/domain"
	"github.com/treasuretrove/treasures-api/internal/repository/dao"
)

type ShopDAO interface {
	FindAll(ctx context.Context) ([]dao.Shop, error)
	SumCostsByShop(ctx context.Context) ([]dao.ShopStock, error)
}

type ShopRepository struct {
	dao ShopDAO
}

func NewShopRepository(dao ShopDAO) *ShopRepository {
	return &ShopRepository{
		dao: dao,
	}
}

func (r *ShopRepository) FindAll(ctx context.Context) ([]domain.Shop, error) {
	shops, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]domain.Shop, len(shops))
	for i, s := range shops {
		result[i] = domain.Shop{
			ShopID:   s.ShopID,
			ShopName: s.ShopName,
			Slogan:   s.Slogan,
		}
	}

	return result, nil
}

func (r *ShopRepository) StockValues(ctx context.Context) ([]domain.ShopStock, error) {
	sums, err := r.dao.SumCostsByShop(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]domain.ShopStock, len(sums))
	for i, s := range sums {
		result[i] = domain.ShopStock{
			ShopID:     s.ShopID,
			StockValue: s.StockValue,
		}
	}

	return result, nil
}
