package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

// ItemDraft is one editable row of a document draft. Amounts are never
// accepted from the client — the totals engine derives them on save.
type ItemDraft struct {
	Description string          `json:"description" validate:"required,min=1"`
	Quantity    decimal.Decimal `json:"quantity"    validate:"required,gt=0"`
	UnitPrice   decimal.Decimal `json:"unit_price"  validate:"min=0"`
}

// ReceiptDraft is bound from POST/PUT /v1/receipts. ProfileID is optional:
// when absent the current business profile is snapshotted into the record.
type ReceiptDraft struct {
	ProfileID *string `json:"profile_id" validate:"omitempty,uuid"`

	CustomerName    string `json:"customer_name"    validate:"required,min=1"`
	CustomerEmail   string `json:"customer_email"   validate:"omitempty,email"`
	CustomerPhone   string `json:"customer_phone"`
	CustomerAddress string `json:"customer_address"`

	Items        []ItemDraft     `json:"items"         validate:"required,min=1,dive"`
	TaxRate      decimal.Decimal `json:"tax_rate"      validate:"min=0,max=100"`
	DiscountRate decimal.Decimal `json:"discount_rate" validate:"min=0,max=100"`

	Notes           string `json:"notes"`
	PaymentMethod   string `json:"payment_method"   validate:"required,oneof=cash card bank_transfer mobile_money check other"`
	TransactionDate string `json:"transaction_date" validate:"required,datetime=2006-01-02"`
	Status          string `json:"status"           validate:"omitempty,oneof=completed refunded partial_refund"`
	Template        string `json:"template"         validate:"omitempty,oneof=modern classic minimal professional corporate elegant creative"`
	Currency        string `json:"currency"         validate:"omitempty,len=3"`
}
