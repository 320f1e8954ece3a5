package sales

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/AJCrest412/proxima-be/internal/domain/sales"
)

// =============================================================================
// Client DTOs
// =============================================================================

// ClientRequest carries client fields for create and update operations
type ClientRequest struct {
	Name       string `json:"name" binding:"required,min=1,max=255"`
	Phone      string `json:"phone" binding:"max=20"`
	Address    string `json:"address"`
	AttendBy   string `json:"attend_by" binding:"max=255"`
	ArcName    string `json:"arc_name" binding:"max=255"`
	ArcPhone   string `json:"arc_phone" binding:"max=20"`
	ArcAddress string `json:"arc_address"`
}

// Attrs converts the request to domain attributes
func (r ClientRequest) Attrs() sales.ClientAttrs {
	return sales.ClientAttrs{
		Name:       r.Name,
		Phone:      r.Phone,
		Address:    r.Address,
		AttendBy:   r.AttendBy,
		ArcName:    r.ArcName,
		ArcPhone:   r.ArcPhone,
		ArcAddress: r.ArcAddress,
	}
}

// ClientResponse represents a client in API responses
type ClientResponse struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Phone      string    `json:"phone"`
	Address    string    `json:"address"`
	AttendBy   string    `json:"attend_by"`
	ArcName    string    `json:"arc_name"`
	ArcPhone   string    `json:"arc_phone"`
	ArcAddress string    `json:"arc_address"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// ClientListFilter represents filter options for the client list
type ClientListFilter struct {
	Search   string `form:"search"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
}

// ToClientResponse maps a domain client to its response shape
func ToClientResponse(c *sales.Client) ClientResponse {
	return ClientResponse{
		ID:         c.ID,
		Name:       c.Name,
		Phone:      c.Phone,
		Address:    c.Address,
		AttendBy:   c.AttendBy,
		ArcName:    c.ArcName,
		ArcPhone:   c.ArcPhone,
		ArcAddress: c.ArcAddress,
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  c.UpdatedAt,
	}
}

// =============================================================================
// Sale item DTOs
// =============================================================================

// SaleItemRequest carries the writable fields of a sale item. Prices are
// never accepted from the caller; they are recomputed on every write.
// Quantity and DiscountType may be omitted and take the model defaults
// (1 and "amount").
type SaleItemRequest struct {
	Room          string          `json:"room" binding:"max=100"`
	Category      string          `json:"category" binding:"required"`
	ProductName   string          `json:"product_name" binding:"required,max=255"`
	ProductCode   string          `json:"product_code" binding:"max=100"`
	SizeFinish    string          `json:"size_finish" binding:"max=100"`
	Description   string          `json:"description"`
	Quantity      int             `json:"quantity"`
	MRP           decimal.Decimal `json:"mrp"`
	DiscountType  string          `json:"discount_type"`
	DiscountValue decimal.Decimal `json:"discount_value"`
}

// Attrs converts the request to domain attributes, filling in the defaults
// for omitted fields before domain validation runs.
func (r SaleItemRequest) Attrs() sales.SaleItemAttrs {
	quantity := r.Quantity
	if quantity == 0 {
		quantity = 1
	}

	discountType := sales.DiscountType(r.DiscountType)
	if r.DiscountType == "" {
		discountType = sales.DiscountAmount
	}

	return sales.SaleItemAttrs{
		Room:          r.Room,
		Category:      sales.Category(r.Category),
		ProductName:   r.ProductName,
		ProductCode:   r.ProductCode,
		SizeFinish:    r.SizeFinish,
		Description:   r.Description,
		Quantity:      quantity,
		MRP:           r.MRP,
		DiscountType:  discountType,
		DiscountValue: r.DiscountValue,
	}
}

func itemAttrs(reqs []SaleItemRequest) []sales.SaleItemAttrs {
	attrs := make([]sales.SaleItemAttrs, 0, len(reqs))
	for _, r := range reqs {
		attrs = append(attrs, r.Attrs())
	}
	return attrs
}

// SaleItemResponse represents a sale item in API responses
type SaleItemResponse struct {
	ID            uuid.UUID       `json:"id"`
	SaleID        uuid.UUID       `json:"sale_id"`
	Room          string          `json:"room"`
	Category      string          `json:"category"`
	ProductName   string          `json:"product_name"`
	ProductCode   string          `json:"product_code"`
	SizeFinish    string          `json:"size_finish"`
	Description   string          `json:"description"`
	Quantity      int             `json:"quantity"`
	MRP           decimal.Decimal `json:"mrp"`
	DiscountType  string          `json:"discount_type"`
	DiscountValue decimal.Decimal `json:"discount_value"`
	PricePerPiece decimal.Decimal `json:"price_per_piece"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// ToSaleItemResponse maps a domain sale item to its response shape
func ToSaleItemResponse(i *sales.SaleItem) SaleItemResponse {
	return SaleItemResponse{
		ID:            i.ID,
		SaleID:        i.SaleID,
		Room:          i.Room,
		Category:      i.Category.String(),
		ProductName:   i.ProductName,
		ProductCode:   i.ProductCode,
		SizeFinish:    i.SizeFinish,
		Description:   i.Description,
		Quantity:      i.Quantity,
		MRP:           i.MRP,
		DiscountType:  i.DiscountType.String(),
		DiscountValue: i.DiscountValue,
		PricePerPiece: i.PricePerPiece,
		TotalAmount:   i.TotalAmount,
		CreatedAt:     i.CreatedAt,
		UpdatedAt:     i.UpdatedAt,
	}
}

// ToSaleItemResponses maps a slice of items
func ToSaleItemResponses(items []sales.SaleItem) []SaleItemResponse {
	responses := make([]SaleItemResponse, 0, len(items))
	for idx := range items {
		responses = append(responses, ToSaleItemResponse(&items[idx]))
	}
	return responses
}

// =============================================================================
// Sale DTOs
// =============================================================================

// CreateSaleRequest represents a request to create a draft sale
type CreateSaleRequest struct {
	ClientID  *uuid.UUID        `json:"client_id"`
	Items     []SaleItemRequest `json:"items"`
	CreatedBy uuid.UUID         `json:"-"` // Set from JWT context, not from request body
}

// ConfirmSaleRequest confirms a draft sale. Exactly one of ClientID or
// Client must be supplied; when Client is given a new client is created.
type ConfirmSaleRequest struct {
	ClientID *uuid.UUID     `json:"client_id"`
	Client   *ClientRequest `json:"client"`
}

// AddItemsRequest appends items to a sale
type AddItemsRequest struct {
	Items []SaleItemRequest `json:"items" binding:"required,min=1,dive"`
}

// RemoveItemsRequest removes items from a sale by their ids
type RemoveItemsRequest struct {
	ItemIDs []uuid.UUID `json:"item_ids" binding:"required,min=1"`
}

// UpdateSaleRequest performs a combined update of a sale: optional client
// reassignment or edit, optional status transition, optional full item
// replacement. Nil fields are left untouched.
type UpdateSaleRequest struct {
	ClientID *uuid.UUID         `json:"client_id"`
	Client   *ClientRequest     `json:"client_data"`
	Status   *string            `json:"status" binding:"omitempty,oneof=draft confirmed cancelled"`
	Items    *[]SaleItemRequest `json:"items"`
}

// SaleListFilter represents filter options for the sale list
type SaleListFilter struct {
	ClientID *uuid.UUID `form:"client_id"`
	Status   string     `form:"status" binding:"omitempty,oneof=draft confirmed cancelled"`
	Page     int        `form:"page" binding:"omitempty,min=1"`
	PageSize int        `form:"page_size" binding:"omitempty,min=1,max=100"`
}

// SaleItemsFilter selects items of one sale, optionally narrowed by room
type SaleItemsFilter struct {
	SaleID uuid.UUID `form:"sale_id" binding:"required"`
	Room   string    `form:"room"`
}

// SaleResponse represents a sale in API responses. TotalAmount is derived
// from the items on every read.
type SaleResponse struct {
	ID          uuid.UUID          `json:"id"`
	ClientID    *uuid.UUID         `json:"client_id"`
	Client      *ClientResponse    `json:"client,omitempty"`
	Status      string             `json:"status"`
	Items       []SaleItemResponse `json:"items"`
	ItemCount   int                `json:"item_count"`
	TotalAmount decimal.Decimal    `json:"total_amount"`
	CreatedBy   uuid.UUID          `json:"created_by"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
}

// ToSaleResponse maps a domain sale to its response shape
func ToSaleResponse(s *sales.Sale) SaleResponse {
	resp := SaleResponse{
		ID:          s.ID,
		ClientID:    s.ClientID,
		Status:      s.Status.String(),
		Items:       ToSaleItemResponses(s.Items),
		ItemCount:   s.ItemCount(),
		TotalAmount: s.TotalAmount().Amount(),
		CreatedBy:   s.CreatedBy,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
	if s.Client != nil {
		client := ToClientResponse(s.Client)
		resp.Client = &client
	}
	return resp
}

// ToSaleResponses maps a slice of sales
func ToSaleResponses(items []sales.Sale) []SaleResponse {
	responses := make([]SaleResponse, 0, len(items))
	for idx := range items {
		responses = append(responses, ToSaleResponse(&items[idx]))
	}
	return responses
}

// =============================================================================
// Choices DTO
// =============================================================================

// ChoiceOption is a value/label pair for building form selects
type ChoiceOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// ChoicesResponse lists the closed vocabularies used by sale items
type ChoicesResponse struct {
	Categories    []ChoiceOption `json:"categories"`
	DiscountTypes []ChoiceOption `json:"discount_types"`
	Statuses      []ChoiceOption `json:"statuses"`
}
