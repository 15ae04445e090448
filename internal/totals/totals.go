// Package totals is the monetary calculation engine shared by receipts and
// invoices. It is pure: no I/O, no state, identical output for identical input.
//
// Order of operations is fixed and load-bearing: the discount applies to the
// subtotal first, then tax is computed on the discounted amount. Per-line
// amounts are rounded to cents; discount and tax are each rounded to cents when
// computed, and the grand total is assembled from the rounded components so
// that total == subtotal − discount + tax holds exactly.
package totals

import (
	"github.com/jaksoftwares/ReceiptPro/internal/model"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Result holds the four derived monetary values of a document.
type Result struct {
	Subtotal       decimal.Decimal `json:"subtotal"`
	DiscountAmount decimal.Decimal `json:"discount_amount"`
	TaxAmount      decimal.Decimal `json:"tax_amount"`
	Total          decimal.Decimal `json:"total"`
}

// LineAmount returns quantity × unitPrice rounded to cents — the LineItem
// invariant. Callers recompute it on every quantity or price mutation.
func LineAmount(quantity, unitPrice decimal.Decimal) decimal.Decimal {
	return quantity.Mul(unitPrice).Round(2)
}

// Calculate derives the totals from the line items and the two percentage
// rates. Rates are taken as-is; bounds checking (0–100) is the caller's
// responsibility. An empty item slice yields all zeros.
func Calculate(items []model.LineItem, taxRatePercent, discountRatePercent decimal.Decimal) Result {
	subtotal := decimal.Zero
	for _, item := range items {
		subtotal = subtotal.Add(item.Amount)
	}

	discountAmount := subtotal.Mul(discountRatePercent).Div(hundred).Round(2)
	taxable := subtotal.Sub(discountAmount)
	taxAmount := taxable.Mul(taxRatePercent).Div(hundred).Round(2)
	total := subtotal.Sub(discountAmount).Add(taxAmount)

	return Result{
		Subtotal:       subtotal,
		DiscountAmount: discountAmount,
		TaxAmount:      taxAmount,
		Total:          total,
	}
}
