package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	appsales "github.com/AJCrest412/proxima-be/internal/application/sales"
	"github.com/AJCrest412/proxima-be/internal/domain/sales"
	"github.com/AJCrest412/proxima-be/internal/domain/shared"
)

func setupSaleTestRouter(userID uuid.UUID) (*gin.Engine, *MockSaleRepository, *MockClientRepository, *SaleHandler) {
	mockSaleRepo := new(MockSaleRepository)
	mockClientRepo := new(MockClientRepository)
	service := appsales.NewSaleService(mockSaleRepo, mockClientRepo)
	handler := NewSaleHandler(service)

	router := gin.New()
	router.Use(testAuthMiddleware(userID))
	return router, mockSaleRepo, mockClientRepo, handler
}

func testDraftSale(t *testing.T, createdBy uuid.UUID) *sales.Sale {
	t.Helper()
	sale := sales.NewSale(createdBy, nil)
	_, err := sale.AddItems([]sales.SaleItemAttrs{{
		Room:          "Living Room",
		Category:      sales.CategoryHardware,
		ProductName:   "Door Handle",
		Quantity:      3,
		MRP:           decimal.NewFromInt(100),
		DiscountType:  sales.DiscountPercent,
		DiscountValue: decimal.NewFromInt(10),
	}})
	require.NoError(t, err)
	return sale
}

func saleItemPayload() appsales.SaleItemRequest {
	return appsales.SaleItemRequest{
		Room:          "Kitchen",
		Category:      "Modular",
		ProductName:   "Base Unit",
		Quantity:      2,
		MRP:           decimal.NewFromInt(500),
		DiscountType:  "amount",
		DiscountValue: decimal.NewFromInt(50),
	}
}

func TestSaleHandler_Create(t *testing.T) {
	userID := uuid.New()

	t.Run("should create draft sale with items", func(t *testing.T) {
		router, mockSaleRepo, _, handler := setupSaleTestRouter(userID)
		router.POST("/sales", handler.Create)

		mockSaleRepo.On("Save", mock.Anything, mock.MatchedBy(func(s *sales.Sale) bool {
			return s.CreatedBy == userID && s.ItemCount() == 1
		})).Return(nil)

		body, _ := json.Marshal(appsales.CreateSaleRequest{
			Items: []appsales.SaleItemRequest{saleItemPayload()},
		})
		req, _ := http.NewRequest(http.MethodPost, "/sales", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)

		var response map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.True(t, response["success"].(bool))
		assert.Equal(t, "Sale created successfully.", response["message"])
		data := response["data"].(map[string]interface{})
		assert.Equal(t, "draft", data["status"])
		assert.Equal(t, "900", data["total_amount"])

		mockSaleRepo.AssertExpectations(t)
	})

	t.Run("should reject invalid item", func(t *testing.T) {
		router, mockSaleRepo, _, handler := setupSaleTestRouter(userID)
		router.POST("/sales", handler.Create)

		item := saleItemPayload()
		item.Quantity = -1
		body, _ := json.Marshal(appsales.CreateSaleRequest{
			Items: []appsales.SaleItemRequest{item},
		})
		req, _ := http.NewRequest(http.MethodPost, "/sales", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var response map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		errInfo := response["error"].(map[string]interface{})
		assert.Equal(t, "Quantity must be greater than 0.", errInfo["message"])

		mockSaleRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("should require authentication context", func(t *testing.T) {
		mockSaleRepo := new(MockSaleRepository)
		service := appsales.NewSaleService(mockSaleRepo, new(MockClientRepository))
		handler := NewSaleHandler(service)

		router := gin.New()
		router.POST("/sales", handler.Create)

		req, _ := http.NewRequest(http.MethodPost, "/sales", bytes.NewBufferString(`{"items":[]}`))
		req.Header.Set("Content-Type", "application/json")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestSaleHandler_Get(t *testing.T) {
	userID := uuid.New()

	t.Run("should get sale by id", func(t *testing.T) {
		router, mockSaleRepo, _, handler := setupSaleTestRouter(userID)
		router.GET("/sales/:id", handler.Get)

		sale := testDraftSale(t, userID)
		mockSaleRepo.On("FindByID", mock.Anything, sale.ID).Return(sale, nil)

		req, _ := http.NewRequest(http.MethodGet, "/sales/"+sale.ID.String(), nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var response map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		data := response["data"].(map[string]interface{})
		assert.Equal(t, float64(1), data["item_count"])

		mockSaleRepo.AssertExpectations(t)
	})

	t.Run("should return 404 for unknown sale", func(t *testing.T) {
		router, mockSaleRepo, _, handler := setupSaleTestRouter(userID)
		router.GET("/sales/:id", handler.Get)

		id := uuid.New()
		mockSaleRepo.On("FindByID", mock.Anything, id).Return(nil, shared.NewNotFoundError("Sale"))

		req, _ := http.NewRequest(http.MethodGet, "/sales/"+id.String(), nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("should reject malformed id", func(t *testing.T) {
		router, _, _, handler := setupSaleTestRouter(userID)
		router.GET("/sales/:id", handler.Get)

		req, _ := http.NewRequest(http.MethodGet, "/sales/nope", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestSaleHandler_List(t *testing.T) {
	userID := uuid.New()

	t.Run("should filter by status", func(t *testing.T) {
		router, mockSaleRepo, _, handler := setupSaleTestRouter(userID)
		router.GET("/sales", handler.List)

		mockSaleRepo.On("FindAll", mock.Anything, mock.MatchedBy(func(f shared.Filter) bool {
			return f.Filters["status"] == "draft"
		})).Return([]sales.Sale{*testDraftSale(t, userID)}, nil)

		req, _ := http.NewRequest(http.MethodGet, "/sales?status=draft", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var response map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Len(t, response["data"].([]interface{}), 1)
	})

	t.Run("should reject unknown status", func(t *testing.T) {
		router, _, _, handler := setupSaleTestRouter(userID)
		router.GET("/sales", handler.List)

		req, _ := http.NewRequest(http.MethodGet, "/sales?status=archived", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestSaleHandler_Confirm(t *testing.T) {
	userID := uuid.New()

	t.Run("should confirm with existing client", func(t *testing.T) {
		router, mockSaleRepo, mockClientRepo, handler := setupSaleTestRouter(userID)
		router.POST("/sales/:id/confirm", handler.Confirm)

		sale := testDraftSale(t, userID)
		client := storedTestClient(t, "Sharma Residence")

		mockSaleRepo.On("FindByID", mock.Anything, sale.ID).Return(sale, nil)
		mockClientRepo.On("FindByID", mock.Anything, client.ID).Return(client, nil)
		mockSaleRepo.On("Save", mock.Anything, mock.MatchedBy(func(s *sales.Sale) bool {
			return s.Status == sales.SaleStatusConfirmed
		})).Return(nil)

		body, _ := json.Marshal(appsales.ConfirmSaleRequest{ClientID: &client.ID})
		req, _ := http.NewRequest(http.MethodPost, "/sales/"+sale.ID.String()+"/confirm", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var response map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "Sale confirmed successfully.", response["message"])
		data := response["data"].(map[string]interface{})
		assert.Equal(t, "confirmed", data["status"])

		mockSaleRepo.AssertExpectations(t)
		mockClientRepo.AssertExpectations(t)
	})

	t.Run("should require client data", func(t *testing.T) {
		router, mockSaleRepo, _, handler := setupSaleTestRouter(userID)
		router.POST("/sales/:id/confirm", handler.Confirm)

		sale := testDraftSale(t, userID)
		mockSaleRepo.On("FindByID", mock.Anything, sale.ID).Return(sale, nil)

		req, _ := http.NewRequest(http.MethodPost, "/sales/"+sale.ID.String()+"/confirm", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var response map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		errInfo := response["error"].(map[string]interface{})
		assert.Equal(t, "Provide client_id or client data.", errInfo["message"])
	})

	t.Run("should reject non draft sale", func(t *testing.T) {
		router, mockSaleRepo, mockClientRepo, handler := setupSaleTestRouter(userID)
		router.POST("/sales/:id/confirm", handler.Confirm)

		sale := testDraftSale(t, userID)
		client := storedTestClient(t, "Sharma Residence")
		require.NoError(t, sale.Confirm(client))

		mockSaleRepo.On("FindByID", mock.Anything, sale.ID).Return(sale, nil)
		mockClientRepo.On("FindByID", mock.Anything, client.ID).Return(client, nil)

		body, _ := json.Marshal(appsales.ConfirmSaleRequest{ClientID: &client.ID})
		req, _ := http.NewRequest(http.MethodPost, "/sales/"+sale.ID.String()+"/confirm", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var response map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		errInfo := response["error"].(map[string]interface{})
		assert.Equal(t, "Only draft sales can be confirmed.", errInfo["message"])
	})
}

func TestSaleHandler_Cancel(t *testing.T) {
	userID := uuid.New()

	t.Run("should cancel sale", func(t *testing.T) {
		router, mockSaleRepo, _, handler := setupSaleTestRouter(userID)
		router.POST("/sales/:id/cancel", handler.Cancel)

		sale := testDraftSale(t, userID)
		mockSaleRepo.On("FindByID", mock.Anything, sale.ID).Return(sale, nil)
		mockSaleRepo.On("Save", mock.Anything, mock.Anything).Return(nil)

		req, _ := http.NewRequest(http.MethodPost, "/sales/"+sale.ID.String()+"/cancel", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var response map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		data := response["data"].(map[string]interface{})
		assert.Equal(t, "cancelled", data["status"])
	})

	t.Run("should reject double cancel", func(t *testing.T) {
		router, mockSaleRepo, _, handler := setupSaleTestRouter(userID)
		router.POST("/sales/:id/cancel", handler.Cancel)

		sale := testDraftSale(t, userID)
		require.NoError(t, sale.Cancel())
		mockSaleRepo.On("FindByID", mock.Anything, sale.ID).Return(sale, nil)

		req, _ := http.NewRequest(http.MethodPost, "/sales/"+sale.ID.String()+"/cancel", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var response map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		errInfo := response["error"].(map[string]interface{})
		assert.Equal(t, "Sale already cancelled.", errInfo["message"])
	})
}

func TestSaleHandler_AddItems(t *testing.T) {
	userID := uuid.New()

	t.Run("should append items", func(t *testing.T) {
		router, mockSaleRepo, _, handler := setupSaleTestRouter(userID)
		router.POST("/sales/:id/add-items", handler.AddItems)

		sale := testDraftSale(t, userID)
		mockSaleRepo.On("FindByID", mock.Anything, sale.ID).Return(sale, nil)
		mockSaleRepo.On("Save", mock.Anything, mock.Anything).Return(nil)

		body, _ := json.Marshal(appsales.AddItemsRequest{Items: []appsales.SaleItemRequest{saleItemPayload()}})
		req, _ := http.NewRequest(http.MethodPost, "/sales/"+sale.ID.String()+"/add-items", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var response map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		data := response["data"].(map[string]interface{})
		assert.Equal(t, float64(2), data["item_count"])
	})

	t.Run("should reject on cancelled sale", func(t *testing.T) {
		router, mockSaleRepo, _, handler := setupSaleTestRouter(userID)
		router.POST("/sales/:id/add-items", handler.AddItems)

		sale := testDraftSale(t, userID)
		require.NoError(t, sale.Cancel())
		mockSaleRepo.On("FindByID", mock.Anything, sale.ID).Return(sale, nil)

		body, _ := json.Marshal(appsales.AddItemsRequest{Items: []appsales.SaleItemRequest{saleItemPayload()}})
		req, _ := http.NewRequest(http.MethodPost, "/sales/"+sale.ID.String()+"/add-items", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var response map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		errInfo := response["error"].(map[string]interface{})
		assert.Equal(t, "Cannot modify a cancelled sale.", errInfo["message"])
	})

	t.Run("should reject empty item list", func(t *testing.T) {
		router, _, _, handler := setupSaleTestRouter(userID)
		router.POST("/sales/:id/add-items", handler.AddItems)

		req, _ := http.NewRequest(http.MethodPost, "/sales/"+uuid.New().String()+"/add-items", bytes.NewBufferString(`{"items":[]}`))
		req.Header.Set("Content-Type", "application/json")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestSaleHandler_RemoveItems(t *testing.T) {
	userID := uuid.New()

	t.Run("should report removed count in message", func(t *testing.T) {
		router, mockSaleRepo, _, handler := setupSaleTestRouter(userID)
		router.POST("/sales/:id/remove-items", handler.RemoveItems)

		sale := testDraftSale(t, userID)
		itemID := sale.Items[0].ID
		mockSaleRepo.On("FindByID", mock.Anything, sale.ID).Return(sale, nil)
		mockSaleRepo.On("Save", mock.Anything, mock.Anything).Return(nil)

		body, _ := json.Marshal(appsales.RemoveItemsRequest{ItemIDs: []uuid.UUID{itemID, uuid.New()}})
		req, _ := http.NewRequest(http.MethodPost, "/sales/"+sale.ID.String()+"/remove-items", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var response map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "1 item(s) removed from the sale.", response["message"])
		data := response["data"].(map[string]interface{})
		assert.Equal(t, float64(0), data["item_count"])
	})

	t.Run("should report zero without saving", func(t *testing.T) {
		router, mockSaleRepo, _, handler := setupSaleTestRouter(userID)
		router.POST("/sales/:id/remove-items", handler.RemoveItems)

		sale := testDraftSale(t, userID)
		mockSaleRepo.On("FindByID", mock.Anything, sale.ID).Return(sale, nil)

		body, _ := json.Marshal(appsales.RemoveItemsRequest{ItemIDs: []uuid.UUID{uuid.New()}})
		req, _ := http.NewRequest(http.MethodPost, "/sales/"+sale.ID.String()+"/remove-items", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var response map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "0 item(s) removed from the sale.", response["message"])

		mockSaleRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func TestSaleHandler_Update(t *testing.T) {
	userID := uuid.New()

	t.Run("should replace items and move status", func(t *testing.T) {
		router, mockSaleRepo, mockClientRepo, handler := setupSaleTestRouter(userID)
		router.PUT("/sales/:id", handler.Update)

		sale := testDraftSale(t, userID)
		client := storedTestClient(t, "Mehta Villa")

		mockSaleRepo.On("FindByID", mock.Anything, sale.ID).Return(sale, nil)
		mockClientRepo.On("FindByID", mock.Anything, client.ID).Return(client, nil)
		mockSaleRepo.On("Save", mock.Anything, mock.Anything).Return(nil)

		status := "confirmed"
		items := []appsales.SaleItemRequest{saleItemPayload()}
		body, _ := json.Marshal(appsales.UpdateSaleRequest{
			ClientID: &client.ID,
			Status:   &status,
			Items:    &items,
		})
		req, _ := http.NewRequest(http.MethodPut, "/sales/"+sale.ID.String(), bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var response map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		data := response["data"].(map[string]interface{})
		assert.Equal(t, "confirmed", data["status"])
		assert.Equal(t, float64(1), data["item_count"])
		assert.Equal(t, "900", data["total_amount"])
	})

	t.Run("should reject moving back to draft", func(t *testing.T) {
		router, mockSaleRepo, _, handler := setupSaleTestRouter(userID)
		router.PUT("/sales/:id", handler.Update)

		sale := testDraftSale(t, userID)
		client := storedTestClient(t, "Mehta Villa")
		require.NoError(t, sale.Confirm(client))
		mockSaleRepo.On("FindByID", mock.Anything, sale.ID).Return(sale, nil)

		status := "draft"
		body, _ := json.Marshal(appsales.UpdateSaleRequest{Status: &status})
		req, _ := http.NewRequest(http.MethodPut, "/sales/"+sale.ID.String(), bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var response map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		errInfo := response["error"].(map[string]interface{})
		assert.Equal(t, "Cannot move a sale back to draft.", errInfo["message"])
	})

	t.Run("should reject any update of a cancelled sale", func(t *testing.T) {
		router, mockSaleRepo, _, handler := setupSaleTestRouter(userID)
		router.PUT("/sales/:id", handler.Update)

		sale := testDraftSale(t, userID)
		require.NoError(t, sale.Cancel())
		mockSaleRepo.On("FindByID", mock.Anything, sale.ID).Return(sale, nil)

		req, _ := http.NewRequest(http.MethodPut, "/sales/"+sale.ID.String(), bytes.NewBufferString(`{"status":"cancelled"}`))
		req.Header.Set("Content-Type", "application/json")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var response map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		errInfo := response["error"].(map[string]interface{})
		assert.Equal(t, "Cannot modify a cancelled sale.", errInfo["message"])

		mockSaleRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func TestSaleHandler_Delete(t *testing.T) {
	userID := uuid.New()

	t.Run("should delete sale", func(t *testing.T) {
		router, mockSaleRepo, _, handler := setupSaleTestRouter(userID)
		router.DELETE("/sales/:id", handler.Delete)

		sale := testDraftSale(t, userID)
		mockSaleRepo.On("FindByID", mock.Anything, sale.ID).Return(sale, nil)
		mockSaleRepo.On("Delete", mock.Anything, sale.ID).Return(nil)

		req, _ := http.NewRequest(http.MethodDelete, "/sales/"+sale.ID.String(), nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		mockSaleRepo.AssertExpectations(t)
	})
}

func TestSaleHandler_ListItems(t *testing.T) {
	userID := uuid.New()

	t.Run("should list items of a sale filtered by room", func(t *testing.T) {
		router, mockSaleRepo, _, handler := setupSaleTestRouter(userID)
		router.GET("/sale-items", handler.ListItems)

		sale := testDraftSale(t, userID)
		mockSaleRepo.On("FindByID", mock.Anything, sale.ID).Return(sale, nil)

		req, _ := http.NewRequest(http.MethodGet, "/sale-items?sale_id="+sale.ID.String()+"&room=living+room", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var response map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Len(t, response["data"].([]interface{}), 1)
	})

	t.Run("should require sale_id", func(t *testing.T) {
		router, _, _, handler := setupSaleTestRouter(userID)
		router.GET("/sale-items", handler.ListItems)

		req, _ := http.NewRequest(http.MethodGet, "/sale-items", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestSaleHandler_Choices(t *testing.T) {
	router, _, _, handler := setupSaleTestRouter(uuid.New())
	router.GET("/choices", handler.Choices)

	req, _ := http.NewRequest(http.MethodGet, "/choices", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	data := response["data"].(map[string]interface{})
	assert.Len(t, data["categories"].([]interface{}), 5)
	assert.Len(t, data["discount_types"].([]interface{}), 2)
	assert.Len(t, data["statuses"].([]interface{}), 3)
}
