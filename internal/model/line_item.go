package model

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LineItem is one row of a document's items table.
// Amount is derived: it always equals Quantity × UnitPrice rounded to cents.
// Mutations go through SetQuantity / SetUnitPrice so the invariant cannot drift.
type LineItem struct {
	ID          uuid.UUID       `json:"id"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Amount      decimal.Decimal `json:"amount"`
}

// NewLineItem builds a row with a fresh id and a computed amount.
func NewLineItem(description string, quantity, unitPrice decimal.Decimal) LineItem {
	item := LineItem{
		ID:          uuid.New(),
		Description: description,
		Quantity:    quantity,
		UnitPrice:   unitPrice,
	}
	item.recompute()
	return item
}

func (li *LineItem) SetQuantity(q decimal.Decimal) {
	li.Quantity = q
	li.recompute()
}

func (li *LineItem) SetUnitPrice(p decimal.Decimal) {
	li.UnitPrice = p
	li.recompute()
}

func (li *LineItem) recompute() {
	li.Amount = li.Quantity.Mul(li.UnitPrice).Round(2)
}
