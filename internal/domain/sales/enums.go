package sales

// Category is the closed set of product categories a sale item belongs to
type Category string

const (
	CategoryHardware   Category = "Hardware"
	CategoryLamination Category = "Lamination & Highlighter"
	CategoryVeneer     Category = "Veneer"
	CategorySofa       Category = "Sofa & Curtains"
	CategoryModular    Category = "Modular"
)

// IsValid checks if the category is one of the known values
func (c Category) IsValid() bool {
	switch c {
	case CategoryHardware, CategoryLamination, CategoryVeneer, CategorySofa, CategoryModular:
		return true
	}
	return false
}

// String returns the string representation of Category
func (c Category) String() string {
	return string(c)
}

// AllCategories returns every category in display order
func AllCategories() []Category {
	return []Category{
		CategoryHardware,
		CategoryLamination,
		CategoryVeneer,
		CategorySofa,
		CategoryModular,
	}
}

// DiscountType determines how a sale item's discount value is interpreted
type DiscountType string

const (
	// DiscountPercent treats the discount value as a percentage of MRP
	DiscountPercent DiscountType = "percent"
	// DiscountAmount treats the discount value as an absolute deduction
	DiscountAmount DiscountType = "amount"
)

// IsValid checks if the discount type is one of the known values
func (d DiscountType) IsValid() bool {
	return d == DiscountPercent || d == DiscountAmount
}

// String returns the string representation of DiscountType
func (d DiscountType) String() string {
	return string(d)
}

// AllDiscountTypes returns every discount type
func AllDiscountTypes() []DiscountType {
	return []DiscountType{DiscountPercent, DiscountAmount}
}

// SaleStatus represents the lifecycle state of a sale
type SaleStatus string

const (
	SaleStatusDraft     SaleStatus = "draft"
	SaleStatusConfirmed SaleStatus = "confirmed"
	SaleStatusCancelled SaleStatus = "cancelled"
)

// IsValid checks if the status is a valid SaleStatus
func (s SaleStatus) IsValid() bool {
	switch s {
	case SaleStatusDraft, SaleStatusConfirmed, SaleStatusCancelled:
		return true
	}
	return false
}

// String returns the string representation of SaleStatus
func (s SaleStatus) String() string {
	return string(s)
}

// CanTransitionTo checks if the status can transition to the target status
func (s SaleStatus) CanTransitionTo(target SaleStatus) bool {
	switch s {
	case SaleStatusDraft:
		return target == SaleStatusConfirmed || target == SaleStatusCancelled
	case SaleStatusConfirmed:
		return target == SaleStatusCancelled
	case SaleStatusCancelled:
		return false // terminal
	}
	return false
}
