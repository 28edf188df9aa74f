package v1

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/treasuretrove/treasures-api/internal/domain"
)

type stubShopService struct {
	shops []domain.Shop
}

func (s *stubShopService) ListShops(_ context.Context) ([]domain.Shop, error) {
	return s.shops, nil
}

func TestHandleListShops(t *testing.T) {
	stock := 435.79
	svc := &stubShopService{
		shops: []domain.Shop{
			{ShopID: 1, ShopName: "Gilded Gannet", Slogan: "Treasure beyond measure", StockValue: &stock},
			{ShopID: 11, ShopName: "Driftwood Dealers", Slogan: "Fresh from the tide"},
		},
	}

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/api/shops", NewShopHandler(svc).HandleListShops)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/shops", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	body := w.Body.String()
	assert.Contains(t, body, `"stock value":435.79`)
	// The key must be entirely absent for a shop without treasures.
	assert.NotContains(t, body, `"stock value":0`)
	assert.Contains(t, body, `"shop_name":"Driftwood Dealers"`)
}
