package response

import (
	"github.com/treasuretrove/treasures-api/internal/domain"
)

type ListShopsResponse struct {
	Shops []domain.Shop `json:"shops"`
}
