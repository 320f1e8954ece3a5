package handler

import (
	"fmt"

	"github.com/gin-gonic/gin"

	appsales "github.com/AJCrest412/proxima-be/internal/application/sales"
)

// SaleHandler handles sale endpoints
type SaleHandler struct {
	BaseHandler
	saleService *appsales.SaleService
}

// NewSaleHandler creates a new SaleHandler
func NewSaleHandler(saleService *appsales.SaleService) *SaleHandler {
	return &SaleHandler{saleService: saleService}
}

// Create handles POST /api/v1/sales
func (h *SaleHandler) Create(c *gin.Context) {
	var req appsales.CreateSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}
	req.CreatedBy = userID

	resp, err := h.saleService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.CreatedWithMessage(c, "Sale created successfully.", resp)
}

// Get handles GET /api/v1/sales/:id
func (h *SaleHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid sale id")
		return
	}

	resp, err := h.saleService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMessage(c, "Sale retrieved successfully.", resp)
}

// List handles GET /api/v1/sales with optional client and status filters
func (h *SaleHandler) List(c *gin.Context) {
	var filter appsales.SaleListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BindingError(c, err)
		return
	}

	resp, err := h.saleService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMessage(c, "Sales retrieved successfully.", resp)
}

// Update handles PUT/PATCH /api/v1/sales/:id and its
// /:id/update-with-client alias. A single request may change the client,
// replace the item set, and move the status.
func (h *SaleHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid sale id")
		return
	}

	var req appsales.UpdateSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	resp, err := h.saleService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMessage(c, "Sale updated successfully.", resp)
}

// Delete handles DELETE /api/v1/sales/:id
func (h *SaleHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid sale id")
		return
	}

	if err := h.saleService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// Confirm handles POST /api/v1/sales/:id/confirm. The request must carry
// either a client_id or inline client data.
func (h *SaleHandler) Confirm(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid sale id")
		return
	}

	var req appsales.ConfirmSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	resp, err := h.saleService.Confirm(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMessage(c, "Sale confirmed successfully.", resp)
}

// Cancel handles POST /api/v1/sales/:id/cancel
func (h *SaleHandler) Cancel(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid sale id")
		return
	}

	resp, err := h.saleService.Cancel(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMessage(c, "Sale cancelled successfully.", resp)
}

// AddItems handles POST /api/v1/sales/:id/add-items
func (h *SaleHandler) AddItems(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid sale id")
		return
	}

	var req appsales.AddItemsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	resp, err := h.saleService.AddItems(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMessage(c, "Items added successfully.", resp)
}

// RemoveItems handles POST /api/v1/sales/:id/remove-items. Item ids that
// do not belong to the sale are ignored.
func (h *SaleHandler) RemoveItems(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid sale id")
		return
	}

	var req appsales.RemoveItemsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	removed, resp, err := h.saleService.RemoveItems(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMessage(c, fmt.Sprintf("%d item(s) removed from the sale.", removed), resp)
}

// ListItems handles GET /api/v1/sale-items?sale_id=...&room=...
func (h *SaleHandler) ListItems(c *gin.Context) {
	var filter appsales.SaleItemsFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BindingError(c, err)
		return
	}

	resp, err := h.saleService.ListItems(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMessage(c, "Sale items retrieved successfully.", resp)
}

// Choices handles GET /api/v1/choices
func (h *SaleHandler) Choices(c *gin.Context) {
	h.Success(c, h.saleService.Choices())
}
