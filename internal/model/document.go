package model

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Document is the render-facing view shared by receipts and invoices.
// The template renderer and the fallback PDF layout consume this instead of
// switching on the concrete record type.
type Document struct {
	Type       DocType
	Number     string
	Profile    BusinessProfile
	PartyName  string
	PartyEmail string
	// PartyLines is the pre-filtered "To:" block (empty fields removed).
	PartyLines []string
	Date       time.Time
	DateLabel  string
	// ExtraLabel/ExtraValue carry the one field that differs between document
	// kinds: payment method for receipts, due date for invoices.
	ExtraLabel string
	ExtraValue string

	Items          []LineItem
	Subtotal       decimal.Decimal
	TaxRate        decimal.Decimal
	TaxAmount      decimal.Decimal
	DiscountRate   decimal.Decimal
	DiscountAmount decimal.Decimal
	Total          decimal.Decimal

	Notes    string
	Currency string
	Template TemplateID
}

// Title returns the document heading, e.g. "RECEIPT".
func (d Document) Title() string {
	return strings.ToUpper(string(d.Type))
}

// Money formats an amount with the document currency, e.g. "USD 108.00".
func (d Document) Money(v decimal.Decimal) string {
	cur := d.Currency
	if cur == "" {
		cur = "USD"
	}
	return cur + " " + v.StringFixed(2)
}
