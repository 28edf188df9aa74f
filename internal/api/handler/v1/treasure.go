package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/treasuretrove/treasures-api/internal/api/handler/v1/request"
	"github.com/treasuretrove/treasures-api/internal/api/handler/v1/response"
	"github.com/treasuretrove/treasures-api/internal/domain"
	"github.com/treasuretrove/treasures-api/internal/service"
)

type TreasureService interface {
	ListTreasures(ctx context.Context, sortBy, order string, filters service.ListTreasuresFilters) ([]domain.Treasure, error)
	CreateTreasure(ctx context.Context, treasure domain.Treasure) (domain.Treasure, error)
	UpdatePrice(ctx context.Context, treasureID uint, newPrice float64) error
	DeleteTreasure(ctx context.Context, treasureID uint) error
}

type TreasureHandler struct {
	svc TreasureService
}

func NewTreasureHandler(svc TreasureService) *TreasureHandler {
	return &TreasureHandler{
		svc: svc,
	}
}

// HandleListTreasures godoc
// @Summary      List all treasures
// @Description  Lists treasures joined with their shop's name, sorted by the requested field and direction, optionally filtered by colour and age bounds
// @Tags         treasures
// @Produce      json
// @Param        sort_by  query     string  false  "sort field"  Enums(treasure_id, treasure_name, colour, age, cost_at_auction, shop_name)  default(age)
// @Param        order    query     string  false  "sort direction"  Enums(asc, desc)  default(asc)
// @Param        colour   query     string  false  "exact colour filter"
// @Param        min_age  query     int     false  "inclusive lower age bound"
// @Param        max_age  query     int     false  "inclusive upper age bound"
// @Success      200      {object}  response.ListTreasuresResponse
// @Failure      422      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /treasures [get]
func (h *TreasureHandler) HandleListTreasures(ctx *gin.Context) {
	var query request.ListTreasuresQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		response.RenderErr(ctx, response.ErrUnprocessableEntity(err))
		return
	}

	if err := query.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrUnprocessableEntity(err))
		return
	}

	filters := service.ListTreasuresFilters{
		Colour: query.Colour,
		MinAge: query.MinAge,
		MaxAge: query.MaxAge,
	}

	treasures, err := h.svc.ListTreasures(ctx.Request.Context(), query.SortBy, query.Order, filters)
	if err != nil {
		err = fmt.Errorf("v1.HandleListTreasures -> h.svc.ListTreasures -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.ListTreasuresResponse{Treasures: treasures})
}

// HandleCreateTreasure godoc
// @Summary      Create a treasure
// @Description  Inserts a new treasure and returns the persisted record including its generated id
// @Tags         treasures
// @Accept       json
// @Produce      json
// @Param        request  body      request.CreateTreasureRequest  true  "request body"
// @Success      201      {object}  response.CreateTreasureResponse
// @Failure      400      {object}  response.Err
// @Failure      422      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /treasures [post]
func (h *TreasureHandler) HandleCreateTreasure(ctx *gin.Context) {
	var req request.CreateTreasureRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	treasure := domain.Treasure{
		TreasureName:  req.TreasureName,
		Colour:        req.Colour,
		Age:           req.Age,
		CostAtAuction: *req.CostAtAuction,
		ShopID:        req.ShopID,
	}

	created, err := h.svc.CreateTreasure(ctx.Request.Context(), treasure)
	if err != nil {
		if errors.Is(err, service.ErrShopNotFound) {
			response.RenderErr(ctx, response.ErrUnprocessableEntity(fmt.Errorf("shop id %v is out of range", req.ShopID)))
			return
		}

		err = fmt.Errorf("v1.HandleCreateTreasure -> h.svc.CreateTreasure -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, response.CreateTreasureResponse{Treasure: created})
}

// HandleUpdatePrice godoc
// @Summary      Update a treasure's price
// @Description  Sets a new auction cost, which must be strictly lower than the current one
// @Tags         treasures
// @Accept       json
// @Param        treasureID  path  int                         true  "Treasure ID"
// @Param        request     body  request.UpdatePriceRequest  true  "request body"
// @Success      204
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      409  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /treasures/{treasureID} [patch]
func (h *TreasureHandler) HandleUpdatePrice(ctx *gin.Context) {
	treasureID, err := strconv.ParseUint(ctx.Param("treasureID"), 10, 64)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid treasure ID: %w", err)))
		return
	}

	var req request.UpdatePriceRequest
	if err = ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err = req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	err = h.svc.UpdatePrice(ctx.Request.Context(), uint(treasureID), *req.CostAtAuction)
	if err != nil {
		if errors.Is(err, service.ErrTreasureNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("treasure", "treasureID", treasureID))
			return
		}

		var priceErr *service.PriceNotLowerError
		if errors.As(err, &priceErr) {
			response.RenderErr(ctx, response.ErrConflict(priceErr))
			return
		}

		err = fmt.Errorf("v1.HandleUpdatePrice -> h.svc.UpdatePrice -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.Status(http.StatusNoContent)
}

// HandleDeleteTreasure godoc
// @Summary      Delete a treasure
// @Tags         treasures
// @Param        treasureID  path  int  true  "Treasure ID"
// @Success      204
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /treasures/{treasureID} [delete]
func (h *TreasureHandler) HandleDeleteTreasure(ctx *gin.Context) {
	treasureID, err := strconv.ParseUint(ctx.Param("treasureID"), 10, 64)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid treasure ID: %w", err)))
		return
	}

	err = h.svc.DeleteTreasure(ctx.Request.Context(), uint(treasureID))
	if err != nil {
		if errors.Is(err, service.ErrTreasureNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("treasure", "treasureID", treasureID))
			return
		}

		err = fmt.Errorf("v1.HandleDeleteTreasure -> h.svc.DeleteTreasure -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.Status(http.StatusNoContent)
}
