package service

import (
	"context"
	"fmt"

	"github.com/treasuretrove/treasures-api/internal/domain"
	"github.com/treasuretrove/treasures-api/internal/repository"
)

var (
	ErrTreasureNotFound = repository.ErrTreasureNotFound
	ErrShopNotFound     = repository.ErrShopNotFound
)

// PriceNotLowerError signals a price update that does not strictly
// decrease the stored cost.
type PriceNotLowerError struct {
	CurrentPrice float64
}

func (e *PriceNotLowerError) Error() string {
	return fmt.Sprintf("the current price is %v, please enter a lower price", e.CurrentPrice)
}

type TreasureRepository interface {
	ListWithShopName(ctx context.Context, sortBy, order string) ([]domain.Treasure, error)
	Create(ctx context.Context, treasure domain.Treasure) (domain.Treasure, error)
	GetByID(ctx context.Context, id uint) (domain.Treasure, error)
	UpdateCost(ctx context.Context, id uint, cost float64) error
	Delete(ctx context.Context, id uint) error
}

// ListTreasuresFilters are applied in memory after the ordered fetch.
// Nil age bounds mean unbounded.
type ListTreasuresFilters struct {
	Colour string
	MinAge *int
	MaxAge *int
}

type TreasureService struct {
	repo TreasureRepository
}

func NewTreasureService(repo TreasureRepository) *TreasureService {
	return &TreasureService{
		repo: repo,
	}
}

func (s *TreasureService) ListTreasures(ctx context.Context, sortBy, order string, filters ListTreasuresFilters) ([]domain.Treasure, error) {
	treasures, err := s.repo.ListWithShopName(ctx, sortBy, order)
	if err != nil {
		return nil, fmt.Errorf("s.repo.ListWithShopName -> %w", err)
	}

	filtered := make([]domain.Treasure, 0, len(treasures))
	for _, t := range treasures {
		if filters.Colour != "" && t.Colour != filters.Colour {
			continue
		}
		if filters.MinAge != nil && t.Age < *filters.MinAge {
			continue
		}
		if filters.MaxAge != nil && t.Age > *filters.MaxAge {
			continue
		}

		filtered = append(filtered, t)
	}

	return filtered, nil
}

func (s *TreasureService) CreateTreasure(ctx context.Context, treasure domain.Treasure) (domain.Treasure, error) {
	created, err := s.repo.Create(ctx, treasure)
	if err != nil {
		return domain.Treasure{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

// UpdatePrice rejects any price that is not strictly lower than the stored
// one. The read and the write are two statements, not a transaction.
func (s *TreasureService) UpdatePrice(ctx context.Context, treasureID uint, newPrice float64) error {
	current, err := s.repo.GetByID(ctx, treasureID)
	if err != nil {
		return fmt.Errorf("s.repo.GetByID -> %w", err)
	}

	if newPrice >= current.CostAtAuction {
		return &PriceNotLowerError{CurrentPrice: current.CostAtAuction}
	}

	if err = s.repo.UpdateCost(ctx, treasureID, newPrice); err != nil {
		return fmt.Errorf("s.repo.UpdateCost -> %w", err)
	}

	return nil
}

func (s *TreasureService) DeleteTreasure(ctx context.Context, treasureID uint) error {
	if err := s.repo.Delete(ctx, treasureID); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}
