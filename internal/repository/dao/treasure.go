package dao

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrTreasureNotFound = errors.New("treasure not found")
	ErrShopNotFound     = errors.New("shop not found")
	ErrInvalidSortField = errors.New("invalid sort field")
	ErrInvalidOrder     = errors.New("invalid order")
)

type Treasure struct {
	TreasureID    uint    `gorm:"column:treasure_id;primaryKey"`
	TreasureName  string  `gorm:"column:treasure_name;not null"`
	Colour        string  `gorm:"not null"`
	Age           int     `gorm:"not null"`
	CostAtAuction float64 `gorm:"column:cost_at_auction;type:numeric(10,2);not null"`
	ShopID        uint    `gorm:"column:shop_id;not null"`
	Shop          Shop    `gorm:"foreignKey:ShopID;references:ShopID"`
}

func (Treasure) TableName() string {
	return "treasures"
}

// TreasureRow is a treasure joined with its shop's name.
type TreasureRow struct {
	TreasureID    uint
	TreasureName  string
	Colour        string
	Age           int
	CostAtAuction float64
	ShopName      string
}

// Sort input is validated at the API boundary; these maps are the only
// source of ORDER BY fragments, so no request value reaches the SQL text.
var sortColumns = map[string]string{
	"treasure_id":     "treasures.treasure_id",
	"treasure_name":   "treasures.treasure_name",
	"colour":          "treasures.colour",
	"age":             "treasures.age",
	"cost_at_auction": "treasures.cost_at_auction",
	"shop_name":       "shops.shop_name",
}

var orderDirections = map[string]string{
	"asc":  "ASC",
	"desc": "DESC",
}

type TreasureDAO struct {
	db *gorm.DB
}

func NewTreasureDAO(db *gorm.DB) *TreasureDAO {
	return &TreasureDAO{
		db: db,
	}
}

func (d *TreasureDAO) ListWithShopName(ctx context.Context, sortBy, order string) ([]TreasureRow, error) {
	column, ok := sortColumns[sortBy]
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSortField, sortBy)
	}

	direction, ok := orderDirections[order]
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrInvalidOrder, order)
	}

	var rows []TreasureRow
	err := d.db.WithContext(ctx).
		Table("treasures").
		Select("treasures.treasure_id, treasures.treasure_name, treasures.colour, treasures.age, treasures.cost_at_auction, shops.shop_name").
		Joins("JOIN shops ON treasures.shop_id = shops.shop_id").
		Order(column + " " + direction).
		Scan(&rows).
		Error
	if err != nil {
		return nil, err
	}

	return rows, nil
}

func (d *TreasureDAO) Insert(ctx context.Context, treasure Treasure) (Treasure, error) {
	result := d.db.WithContext(ctx).
		Omit(clause.Associations).
		Create(&treasure)
	if result.Error != nil {
		var pgErr *pgconn.PgError
		if errors.As(result.Error, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation {
			return Treasure{}, ErrShopNotFound
		}

		return Treasure{}, result.Error
	}

	return treasure, nil
}

func (d *TreasureDAO) FindByID(ctx context.Context, id uint) (Treasure, error) {
	var treasure Treasure
	err := d.db.WithContext(ctx).
		First(&treasure, "treasure_id = ?", id).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Treasure{}, ErrTreasureNotFound
		}

		return Treasure{}, err
	}

	return treasure, nil
}

func (d *TreasureDAO) UpdateCost(ctx context.Context, id uint, cost float64) error {
	result := d.db.WithContext(ctx).
		Model(&Treasure{}).
		Where("treasure_id = ?", id).
		Update("cost_at_auction", cost)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTreasureNotFound
	}

	return nil
}

func (d *TreasureDAO) Delete(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).
		Delete(&Treasure{}, "treasure_id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTreasureNotFound
	}

	return nil
}
