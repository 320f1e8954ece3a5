package sales

import (
	"github.com/shopspring/decimal"

	"github.com/AJCrest412/proxima-be/internal/domain/shared/valueobject"
)

// ComputePrices derives the per-piece price and line total for a sale item.
//
// For a percent discount the per-piece price is mrp − (mrp × value / 100);
// for an amount discount it is mrp − value. The per-piece price is clamped
// at zero before the total is taken, and both results are rounded to two
// decimal places half-up. The function is pure: same inputs, same outputs,
// regardless of call order across items.
func ComputePrices(quantity int, mrp decimal.Decimal, discountType DiscountType, discountValue decimal.Decimal) (pricePerPiece, totalAmount decimal.Decimal) {
	price := valueobject.NewMoney(mrp)

	var perPiece valueobject.Money
	if discountType == DiscountPercent {
		perPiece = price.Subtract(price.Percentage(discountValue))
	} else {
		perPiece = price.Subtract(valueobject.NewMoney(discountValue))
	}
	perPiece = perPiece.ClampNonNegative()

	// Total is taken from the unrounded per-piece price; both are rounded
	// independently at the end.
	total := perPiece.MultiplyByInt(int64(quantity))

	return perPiece.RoundHalfUp().Amount(), total.RoundHalfUp().Amount()
}
