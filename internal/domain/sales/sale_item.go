package sales

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/AJCrest412/proxima-be/internal/domain/shared"
)

// SaleItemAttrs carries the caller-supplied fields of a sale item.
// The derived prices are never part of the input; they are recomputed on
// every save.
type SaleItemAttrs struct {
	Room          string
	Category      Category
	ProductName   string
	ProductCode   string
	SizeFinish    string
	Description   string
	Quantity      int
	MRP           decimal.Decimal
	DiscountType  DiscountType
	DiscountValue decimal.Decimal
}

// Validate checks the item attributes and reports the first failing rule
// as a field-level validation error.
func (a SaleItemAttrs) Validate() error {
	if a.Quantity <= 0 {
		return shared.NewValidationError("quantity", "Quantity must be greater than 0.")
	}
	if !a.MRP.IsPositive() {
		return shared.NewValidationError("mrp", "MRP must be greater than 0.")
	}
	if a.DiscountValue.IsNegative() {
		return shared.NewValidationError("discount_value", "Discount value cannot be negative.")
	}
	if !a.DiscountType.IsValid() {
		return shared.NewValidationError("discount_type", "Invalid discount type.")
	}
	if a.DiscountType == DiscountPercent && a.DiscountValue.GreaterThan(decimal.NewFromInt(100)) {
		return shared.NewValidationError("discount_value", "Percentage discount cannot exceed 100%.")
	}
	if a.DiscountType == DiscountAmount && a.DiscountValue.GreaterThan(a.MRP) {
		return shared.NewValidationError("discount_value", "Discount amount cannot exceed MRP.")
	}
	if !a.Category.IsValid() {
		return shared.NewValidationError("category", "Invalid category.")
	}
	if a.ProductName == "" {
		return shared.NewValidationError("product_name", "Product name is required.")
	}
	return nil
}

// SaleItem represents a line item in a sale. PricePerPiece and TotalAmount
// are derived fields, recomputed from the other attributes on every write.
type SaleItem struct {
	ID            uuid.UUID       `gorm:"type:uuid;primary_key"`
	SaleID        uuid.UUID       `gorm:"type:uuid;not null;index"`
	Room          string          `gorm:"type:varchar(100)"`
	Category      Category        `gorm:"type:varchar(50);not null"`
	ProductName   string          `gorm:"type:varchar(255);not null"`
	ProductCode   string          `gorm:"type:varchar(100)"`
	SizeFinish    string          `gorm:"type:varchar(100)"`
	Description   string          `gorm:"type:text"`
	Quantity      int             `gorm:"not null;default:1"`
	MRP           decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	DiscountType  DiscountType    `gorm:"type:varchar(10);not null;default:'amount'"`
	DiscountValue decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	PricePerPiece decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	TotalAmount   decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0"`
	CreatedAt     time.Time       `gorm:"not null"`
	UpdatedAt     time.Time       `gorm:"not null"`
}

// TableName returns the table name for GORM
func (SaleItem) TableName() string {
	return "sale_items"
}

// NewSaleItem creates a sale item for the given sale, validating the
// attributes and computing the derived prices in one step.
func NewSaleItem(saleID uuid.UUID, attrs SaleItemAttrs) (*SaleItem, error) {
	if err := attrs.Validate(); err != nil {
		return nil, err
	}

	perPiece, total := ComputePrices(attrs.Quantity, attrs.MRP, attrs.DiscountType, attrs.DiscountValue)
	now := time.Now()

	return &SaleItem{
		ID:            uuid.New(),
		SaleID:        saleID,
		Room:          attrs.Room,
		Category:      attrs.Category,
		ProductName:   attrs.ProductName,
		ProductCode:   attrs.ProductCode,
		SizeFinish:    attrs.SizeFinish,
		Description:   attrs.Description,
		Quantity:      attrs.Quantity,
		MRP:           attrs.MRP,
		DiscountType:  attrs.DiscountType,
		DiscountValue: attrs.DiscountValue,
		PricePerPiece: perPiece,
		TotalAmount:   total,
		CreatedAt:     now,
		UpdatedAt:     now,
	}, nil
}

// Apply replaces the item's attributes, revalidating and repricing as one
// unit. There is no partial numeric update path that skips the recompute.
func (i *SaleItem) Apply(attrs SaleItemAttrs) error {
	if err := attrs.Validate(); err != nil {
		return err
	}

	perPiece, total := ComputePrices(attrs.Quantity, attrs.MRP, attrs.DiscountType, attrs.DiscountValue)

	i.Room = attrs.Room
	i.Category = attrs.Category
	i.ProductName = attrs.ProductName
	i.ProductCode = attrs.ProductCode
	i.SizeFinish = attrs.SizeFinish
	i.Description = attrs.Description
	i.Quantity = attrs.Quantity
	i.MRP = attrs.MRP
	i.DiscountType = attrs.DiscountType
	i.DiscountValue = attrs.DiscountValue
	i.PricePerPiece = perPiece
	i.TotalAmount = total
	i.UpdatedAt = time.Now()

	return nil
}

// MatchesRoom reports whether the item's room contains the given substring,
// case-insensitively. An empty query matches every item.
func (i *SaleItem) MatchesRoom(query string) bool {
	if query == "" {
		return true
	}
	return containsFold(i.Room, query)
}
