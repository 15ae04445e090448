package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Receipt is a finalized point-of-sale document.
//
// BusinessProfile is a value snapshot taken at finalization — editing the
// profile afterwards never alters a stored receipt. The totals fields are
// derived from Items + TaxRate + DiscountRate by the totals engine and are
// recomputed on every save; they are persisted only so stored documents are
// self-contained.
type Receipt struct {
	ID              uuid.UUID       `json:"id"`
	ReceiptNumber   string          `json:"receipt_number"`
	BusinessProfile BusinessProfile `json:"business_profile"`

	CustomerName    string `json:"customer_name"`
	CustomerEmail   string `json:"customer_email"`
	CustomerPhone   string `json:"customer_phone,omitempty"`
	CustomerAddress string `json:"customer_address,omitempty"`

	Items          []LineItem      `json:"items"`
	Subtotal       decimal.Decimal `json:"subtotal"`
	TaxRate        decimal.Decimal `json:"tax_rate"`
	TaxAmount      decimal.Decimal `json:"tax_amount"`
	DiscountRate   decimal.Decimal `json:"discount_rate"`
	DiscountAmount decimal.Decimal `json:"discount_amount"`
	Total          decimal.Decimal `json:"total"`

	Notes           string        `json:"notes,omitempty"`
	PaymentMethod   PaymentMethod `json:"payment_method"`
	TransactionDate time.Time     `json:"transaction_date"`
	Status          ReceiptStatus `json:"status"`
	Template        TemplateID    `json:"template"`
	Currency        string        `json:"currency"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
}

// Document flattens the receipt into the shape shared by both pipelines.
func (r *Receipt) Document() Document {
	return Document{
		Type:           DocTypeReceipt,
		Number:         r.ReceiptNumber,
		Profile:        r.BusinessProfile,
		PartyName:      r.CustomerName,
		PartyEmail:     r.CustomerEmail,
		PartyLines:     partyLines(r.CustomerName, r.CustomerEmail, r.CustomerPhone, r.CustomerAddress),
		Date:           r.TransactionDate,
		DateLabel:      "Date",
		ExtraLabel:     "Payment",
		ExtraValue:     r.PaymentMethod.Label(),
		Items:          r.Items,
		Subtotal:       r.Subtotal,
		TaxRate:        r.TaxRate,
		TaxAmount:      r.TaxAmount,
		DiscountRate:   r.DiscountRate,
		DiscountAmount: r.DiscountAmount,
		Total:          r.Total,
		Notes:          r.Notes,
		Currency:       r.Currency,
		Template:       r.Template,
	}
}

func partyLines(lines ...string) []string {
	out := make([]string, 0, len(lines))
	for _, l := range lines {
		if l != "" {
			out = append(out, l)
		}
	}
	return out
}
