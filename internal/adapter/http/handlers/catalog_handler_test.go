package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"metalurgica_xpto/internal/adapter/http/handlers/mocks"
	"metalurgica_xpto/internal/domain/entities"
	"metalurgica_xpto/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newCatalogRouter(h *CatalogHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/products", h.ListProducts)
	r.GET("/products/:code", h.GetProduct)
	r.PUT("/products/:code", h.UpdateProduct)
	return r
}

func TestCatalogHandler_ListProducts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := mocks.NewMockICatalogUseCase(ctrl)
	uc.EXPECT().List(gomock.Any()).Return([]entities.Product{
		{Code: "PRD00001", Description: "Parafuso"},
		{Code: "PRD00002", Description: "Suporte"},
	}, nil)

	r := newCatalogRouter(NewCatalogHandler(uc))
	req := httptest.NewRequest(http.MethodGet, "/products", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unreadable response: %v", err)
	}
	if len(resp) != 2 {
		t.Fatalf("expected 2 products, got %v", resp)
	}
}

func TestCatalogHandler_GetProduct(t *testing.T) {
	t.Run("unknown code maps to 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		uc := mocks.NewMockICatalogUseCase(ctrl)
		uc.EXPECT().GetByCode(gomock.Any(), "PRD99998").Return(entities.Product{}, usecase.ErrProductNotFound)

		r := newCatalogRouter(NewCatalogHandler(uc))
		req := httptest.NewRequest(http.MethodGet, "/products/PRD99998", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("returns the entry", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		uc := mocks.NewMockICatalogUseCase(ctrl)
		uc.EXPECT().GetByCode(gomock.Any(), "PRD00001").Return(entities.Product{Code: "PRD00001", Description: "Parafuso"}, nil)

		r := newCatalogRouter(NewCatalogHandler(uc))
		req := httptest.NewRequest(http.MethodGet, "/products/PRD00001", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestCatalogHandler_UpdateProduct(t *testing.T) {
	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		r := newCatalogRouter(NewCatalogHandler(mocks.NewMockICatalogUseCase(ctrl)))
		req := httptest.NewRequest(http.MethodPut, "/products/PRD00001", bytes.NewBufferString("{broken"))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("edits the entry identified by the url code", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		uc := mocks.NewMockICatalogUseCase(ctrl)
		uc.EXPECT().Update(gomock.Any(), entities.Product{
			Code:        "PRD00001",
			Description: "Parafuso M8",
			TaxCode:     "7318.15.00",
			UnitPrice:   2.5,
			Unit:        "un",
		}).Return(entities.Product{Code: "PRD00001", Description: "Parafuso M8"}, nil)

		r := newCatalogRouter(NewCatalogHandler(uc))
		body := `{"descricao":"Parafuso M8","ncm":"7318.15.00","preco":2.5,"unidade":"un"}`
		req := httptest.NewRequest(http.MethodPut, "/products/PRD00001", bytes.NewBufferString(body))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
		}
	})
}
