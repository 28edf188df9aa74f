package repository

import (
	"context"

	"github.com/treasuretrove/treasures-api/internal/domain"
	"github.com/treasuretrove/treasures-api/internal/repository/dao"
)

var (
	ErrTreasureNotFound = dao.ErrTreasureNotFound
	ErrShopNotFound     = dao.ErrShopNotFound
)

type TreasureDAO interface {
	ListWithShopName(ctx context.Context, sortBy, order string) ([]dao.TreasureRow, error)
	Insert(ctx context.Context, treasure dao.Treasure) (dao.Treasure, error)
	FindByID(ctx context.Context, id uint) (dao.Treasure, error)
	UpdateCost(ctx context.Context, id uint, cost float64) error
	Delete(ctx context.Context, id uint) error
}

type TreasureRepository struct {
	dao TreasureDAO
}

func NewTreasureRepository(dao TreasureDAO) *TreasureRepository {
	return &TreasureRepository{
		dao: dao,
	}
}

func (r *TreasureRepository) domainToDao(t domain.Treasure) dao.Treasure {
	return dao.Treasure{
		TreasureID:    t.TreasureID,
		TreasureName:  t.TreasureName,
		Colour:        t.Colour,
		Age:           t.Age,
		CostAtAuction: t.CostAtAuction,
		ShopID:        t.ShopID,
	}
}

func (r *TreasureRepository) daoToDomain(t dao.Treasure) domain.Treasure {
	return domain.Treasure{
		TreasureID:    t.TreasureID,
		TreasureName:  t.TreasureName,
		Colour:        t.Colour,
		Age:           t.Age,
		CostAtAuction: t.CostAtAuction,
		ShopID:        t.ShopID,
	}
}

// ListWithShopName returns treasures joined with their shop's name, ordered
// by the given validated sort field and direction. The results carry
// ShopName rather than ShopID.
func (r *TreasureRepository) ListWithShopName(ctx context.Context, sortBy, order string) ([]domain.Treasure, error) {
	rows, err := r.dao.ListWithShopName(ctx, sortBy, order)
	if err != nil {
		return nil, err
	}

	treasures := make([]domain.Treasure, len(rows))
	for i, row := range rows {
		treasures[i] = domain.Treasure{
			TreasureID:    row.TreasureID,
			TreasureName:  row.TreasureName,
			Colour:        row.Colour,
			Age:           row.Age,
			CostAtAuction: row.CostAtAuction,
			ShopName:      row.ShopName,
		}
	}

	return treasures, nil
}

func (r *TreasureRepository) Create(ctx context.Context, treasure domain.Treasure) (domain.Treasure, error) {
	created, err := r.dao.Insert(ctx, r.domainToDao(treasure))
	if err != nil {
		return domain.Treasure{}, err
	}

	return r.daoToDomain(created), nil
}

func (r *TreasureRepository) GetByID(ctx context.Context, id uint) (domain.Treasure, error) {
	treasure, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Treasure{}, err
	}

	return r.daoToDomain(treasure), nil
}

func (r *TreasureRepository) UpdateCost(ctx context.Context, id uint, cost float64) error {
	return r.dao.UpdateCost(ctx, id, cost)
}

func (r *TreasureRepository) Delete(ctx context.Context, id uint) error {
	return r.dao.Delete(ctx, id)
}
