package v1

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/treasuretrove/treasures-api/internal/api/handler/v1/response"
	"github.com/treasuretrove/treasures-api/internal/domain"
)

type ShopService interface {
	ListShops(ctx context.Context) ([]domain.Shop, error)
}

type ShopHandler struct {
	svc ShopService
}

func NewShopHandler(svc ShopService) *ShopHandler {
	return &ShopHandler{
		svc: svc,
	}
}

// HandleListShops godoc
// @Summary      List all shops with their stock value
// @Description  Lists every shop; each shop carrying treasures includes the sum of their auction costs rounded to 2 decimals
// @Tags         shops
// @Produce      json
// @Success      200  {object}  response.ListShopsResponse
// @Failure      500  {object}  response.Err
// @Router       /shops [get]
func (h *ShopHandler) HandleListShops(ctx *gin.Context) {
	shops, err := h.svc.ListShops(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleListShops -> h.svc.ListShops -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.ListShopsResponse{Shops: shops})
}
