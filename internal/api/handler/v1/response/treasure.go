package response

import (
	"github.com/treasuretrove/treasures-api/internal/domain"
)

type ListTreasuresResponse struct {
	Treasures []domain.Treasure `json:"treasures"`
}

type CreateTreasureResponse struct {
	Treasure domain.Treasure `json:"treasure"`
}
