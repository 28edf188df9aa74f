package dao

import (
	"context"

	"gorm.io/gorm"
)

type Shop struct {
	ShopID   uint   `gorm:"column:shop_id;primaryKey"`
	ShopName string `gorm:"column:shop_name;not null"`
	Slogan   string `gorm:"column:slogan"`
}

func (Shop) TableName() string {
	return "shops"
}

// ShopStock is the result shape of the stock-value aggregate.
type ShopStock struct {
	ShopID     uint
	StockValue float64
}

type ShopDAO struct {
	db *gorm.DB
}

func NewShopDAO(db *gorm.DB) *ShopDAO {
	return &ShopDAO{
		db: db,
	}
}

func (d *ShopDAO) FindAll(ctx context.Context) ([]Shop, error) {
	var shops []Shop
	err := d.db.WithContext(ctx).
		Order("shop_id").
		Find(&shops).
		Error
	if err != nil {
		return nil, err
	}

	return shops, nil
}

// SumCostsByShop sums cost_at_auction per shop. Shops without treasures
// produce no row at all.
func (d *ShopDAO) SumCostsByShop(ctx context.Context) ([]ShopStock, error) {
	var sums []ShopStock
	err := d.db.WithContext(ctx).
		Table("treasures").
		Select("shop_id, SUM(cost_at_auction) AS stock_value").
		Group("shop_id").
		Scan(&sums).
		Error
	if err != nil {
		return nil, err
	}

	return sums, nil
}
