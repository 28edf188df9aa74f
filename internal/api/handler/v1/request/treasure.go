package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

// ListTreasuresQuery holds the query parameters of the list endpoint.
// Gin fills the defaults before validation runs.
type ListTreasuresQuery struct {
	SortBy string `form:"sort_by,default=age"`
	Order  string `form:"order,default=asc"`
	Colour string `form:"colour"`
	MinAge *int   `form:"min_age"`
	MaxAge *int   `form:"max_age"`
}

func (q *ListTreasuresQuery) Validate() error {
	return validation.ValidateStruct(
		q,
		validation.Field(&q.SortBy,
			validation.Required,
			validation.In("treasure_id", "treasure_name", "colour", "age", "cost_at_auction", "shop_name").
				Error("must be a valid sort field"),
		),
		validation.Field(&q.Order,
			validation.Required,
			validation.In("asc", "desc").
				Error("must be either asc or desc"),
		),
		validation.Field(&q.MinAge, validation.Min(0)),
		validation.Field(&q.MaxAge, validation.Min(0)),
	)
}

// CostAtAuction is a pointer because 0 is a legal cost; presence is
// checked, not truthiness.
type CreateTreasureRequest struct {
	TreasureName  string   `json:"treasure_name" binding:"required"`
	Colour        string   `json:"colour" binding:"required"`
	Age           int      `json:"age" binding:"min=0"`
	CostAtAuction *float64 `json:"cost_at_auction" binding:"required"`
	ShopID        uint     `json:"shop_id" binding:"required"`
}

func (req *CreateTreasureRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.TreasureName, validation.Required, validation.Length(1, 100)),
		validation.Field(&req.Colour, validation.Required, validation.Length(1, 50)),
		validation.Field(&req.Age, validation.Min(0)),
		validation.Field(&req.CostAtAuction, validation.NotNil, validation.Min(0.0)),
		validation.Field(&req.ShopID, validation.Required, validation.Min(uint(1))),
	)
}

type UpdatePriceRequest struct {
	CostAtAuction *float64 `json:"cost_at_auction" binding:"required"`
}

func (req *UpdatePriceRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.CostAtAuction, validation.NotNil, validation.Min(0.0)),
	)
}
