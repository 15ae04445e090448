package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Invoice mirrors Receipt modulo naming: the counterparty is a "client" with a
// full billing address, the transaction date becomes issue + due dates, and the
// status lifecycle is draft → sent → paid / overdue.
type Invoice struct {
	ID              uuid.UUID       `json:"id"`
	InvoiceNumber   string          `json:"invoice_number"`
	BusinessProfile BusinessProfile `json:"business_profile"`

	ClientName    string `json:"client_name"`
	ClientEmail   string `json:"client_email"`
	ClientPhone   string `json:"client_phone,omitempty"`
	ClientAddress string `json:"client_address,omitempty"`
	ClientCity    string `json:"client_city,omitempty"`
	ClientState   string `json:"client_state,omitempty"`
	ClientZipCode string `json:"client_zip_code,omitempty"`
	ClientCountry string `json:"client_country,omitempty"`

	Items          []LineItem      `json:"items"`
	Subtotal       decimal.Decimal `json:"subtotal"`
	TaxRate        decimal.Decimal `json:"tax_rate"`
	TaxAmount      decimal.Decimal `json:"tax_amount"`
	DiscountRate   decimal.Decimal `json:"discount_rate"`
	DiscountAmount decimal.Decimal `json:"discount_amount"`
	Total          decimal.Decimal `json:"total"`

	Notes     string        `json:"notes,omitempty"`
	IssueDate time.Time     `json:"issue_date"`
	DueDate   time.Time     `json:"due_date"`
	Status    InvoiceStatus `json:"status"`
	Template  TemplateID    `json:"template"`
	Currency  string        `json:"currency"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

// Document flattens the invoice into the shape shared by both pipelines.
func (inv *Invoice) Document() Document {
	cityLine := inv.ClientCity
	if inv.ClientState != "" {
		cityLine += ", " + inv.ClientState
	}
	if inv.ClientZipCode != "" {
		cityLine += " " + inv.ClientZipCode
	}
	return Document{
		Type:       DocTypeInvoice,
		Number:     inv.InvoiceNumber,
		Profile:    inv.BusinessProfile,
		PartyName:  inv.ClientName,
		PartyEmail: inv.ClientEmail,
		PartyLines: partyLines(inv.ClientName, inv.ClientEmail, inv.ClientPhone,
			inv.ClientAddress, cityLine, inv.ClientCountry),
		Date:           inv.IssueDate,
		DateLabel:      "Issue Date",
		ExtraLabel:     "Due Date",
		ExtraValue:     inv.DueDate.Format("01/02/2006"),
		Items:          inv.Items,
		Subtotal:       inv.Subtotal,
		TaxRate:        inv.TaxRate,
		TaxAmount:      inv.TaxAmount,
		DiscountRate:   inv.DiscountRate,
		DiscountAmount: inv.DiscountAmount,
		Total:          inv.Total,
		Notes:          inv.Notes,
		Currency:       inv.Currency,
		Template:       inv.Template,
	}
}
