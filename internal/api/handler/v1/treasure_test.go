package v1

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/treasuretrove/treasures-api/internal/domain"
	"github.com/treasuretrove/treasures-api/internal/service"
)

type stubTreasureService struct {
	treasures []domain.Treasure
	created   domain.Treasure
	createErr error
	updateErr error
	deleteErr error

	listCalls    int
	updatedPrice float64
	updateCalls  int
}

func (s *stubTreasureService) ListTreasures(_ context.Context, _, _ string, _ service.ListTreasuresFilters) ([]domain.Treasure, error) {
	s.listCalls++
	return s.treasures, nil
}

func (s *stubTreasureService) CreateTreasure(_ context.Context, _ domain.Treasure) (domain.Treasure, error) {
	if s.createErr != nil {
		return domain.Treasure{}, s.createErr
	}

	return s.created, nil
}

func (s *stubTreasureService) UpdatePrice(_ context.Context, _ uint, newPrice float64) error {
	s.updateCalls++
	s.updatedPrice = newPrice
	return s.updateErr
}

func (s *stubTreasureService) DeleteTreasure(_ context.Context, _ uint) error {
	return s.deleteErr
}

func newTreasureRouter(svc TreasureService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	handler := NewTreasureHandler(svc)
	router.GET("/api/treasures", handler.HandleListTreasures)
	router.POST("/api/treasures", handler.HandleCreateTreasure)
	router.PATCH("/api/treasures/:treasureID", handler.HandleUpdatePrice)
	router.DELETE("/api/treasures/:treasureID", handler.HandleDeleteTreasure)

	return router
}

func TestHandleListTreasures(t *testing.T) {
	t.Run("returns the treasures envelope", func(t *testing.T) {
		svc := &stubTreasureService{
			treasures: []domain.Treasure{
				{TreasureID: 1, TreasureName: "Victorian Tea Set", Colour: "silver", Age: 120, CostAtAuction: 20.00, ShopName: "Gilded Gannet"},
			},
		}
		router := newTreasureRouter(svc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/treasures", nil)
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var body struct {
			Treasures []domain.Treasure `json:"treasures"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		require.Len(t, body.Treasures, 1)
		assert.Equal(t, "Gilded Gannet", body.Treasures[0].ShopName)
		assert.Zero(t, body.Treasures[0].ShopID)
	})

	t.Run("invalid sort field returns 422 before the service runs", func(t *testing.T) {
		svc := &stubTreasureService{}
		router := newTreasureRouter(svc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/treasures?sort_by=cost", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Zero(t, svc.listCalls)
	})

	t.Run("invalid order returns 422 before the service runs", func(t *testing.T) {
		svc := &stubTreasureService{}
		router := newTreasureRouter(svc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/treasures?order=dsc", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Zero(t, svc.listCalls)
	})
}

func TestHandleCreateTreasure(t *testing.T) {
	payload := `{"treasure_name":"Steel Computer","colour":"steel","age":24,"cost_at_auction":666,"shop_id":1}`

	t.Run("returns 201 with the persisted record", func(t *testing.T) {
		svc := &stubTreasureService{
			created: domain.Treasure{TreasureID: 27, TreasureName: "Steel Computer", Colour: "steel", Age: 24, CostAtAuction: 666, ShopID: 1},
		}
		router := newTreasureRouter(svc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/treasures", strings.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusCreated, w.Code)

		var body struct {
			Treasure domain.Treasure `json:"treasure"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, uint(27), body.Treasure.TreasureID)
		assert.Equal(t, uint(1), body.Treasure.ShopID)
		assert.Empty(t, body.Treasure.ShopName)
	})

	t.Run("a free treasure can be created", func(t *testing.T) {
		svc := &stubTreasureService{
			created: domain.Treasure{TreasureID: 27, TreasureName: "Worthless Trinket", Colour: "grey", Age: 3, CostAtAuction: 0, ShopID: 1},
		}
		router := newTreasureRouter(svc)

		w := httptest.NewRecorder()
		free := strings.Replace(payload, `"cost_at_auction":666`, `"cost_at_auction":0`, 1)
		req := httptest.NewRequest(http.MethodPost, "/api/treasures", strings.NewReader(free))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("unknown shop returns 422 with the offending id", func(t *testing.T) {
		svc := &stubTreasureService{createErr: service.ErrShopNotFound}
		router := newTreasureRouter(svc)

		w := httptest.NewRecorder()
		badShop := strings.Replace(payload, `"shop_id":1`, `"shop_id":12`, 1)
		req := httptest.NewRequest(http.MethodPost, "/api/treasures", strings.NewReader(badShop))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusUnprocessableEntity, w.Code)

		var body struct {
			Message string `json:"message"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "shop id 12 is out of range", body.Message)
	})

	t.Run("incomplete payload returns 400", func(t *testing.T) {
		router := newTreasureRouter(&stubTreasureService{})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/treasures", strings.NewReader(`{"colour":"steel"}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHandleUpdatePrice(t *testing.T) {
	body := `{"cost_at_auction":5}`

	t.Run("returns 204 with no content", func(t *testing.T) {
		router := newTreasureRouter(&stubTreasureService{})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPatch, "/api/treasures/1", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Empty(t, w.Body.String())
	})

	t.Run("a price of zero is a present value, not a missing one", func(t *testing.T) {
		svc := &stubTreasureService{}
		router := newTreasureRouter(svc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPatch, "/api/treasures/1", strings.NewReader(`{"cost_at_auction":0}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, 1, svc.updateCalls)
		assert.Zero(t, svc.updatedPrice)
	})

	t.Run("missing price returns 400 before the service runs", func(t *testing.T) {
		svc := &stubTreasureService{}
		router := newTreasureRouter(svc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPatch, "/api/treasures/1", strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Zero(t, svc.updateCalls)
	})

	t.Run("price not lower returns 409", func(t *testing.T) {
		svc := &stubTreasureService{updateErr: &service.PriceNotLowerError{CurrentPrice: 20.0}}
		router := newTreasureRouter(svc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPatch, "/api/treasures/1", strings.NewReader(`{"cost_at_auction":1000000}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusConflict, w.Code)

		var resp struct {
			Message string `json:"message"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "the current price is 20, please enter a lower price", resp.Message)
	})

	t.Run("missing treasure returns 404", func(t *testing.T) {
		svc := &stubTreasureService{updateErr: service.ErrTreasureNotFound}
		router := newTreasureRouter(svc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPatch, "/api/treasures/9999", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("non-numeric id returns 400", func(t *testing.T) {
		router := newTreasureRouter(&stubTreasureService{})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPatch, "/api/treasures/abc", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHandleDeleteTreasure(t *testing.T) {
	t.Run("returns 204 with no content", func(t *testing.T) {
		router := newTreasureRouter(&stubTreasureService{})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodDelete, "/api/treasures/1", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Empty(t, w.Body.String())
	})

	t.Run("missing treasure returns 404", func(t *testing.T) {
		svc := &stubTreasureService{deleteErr: service.ErrTreasureNotFound}
		router := newTreasureRouter(svc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodDelete, "/api/treasures/9999", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
