package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

// InvoiceDraft is bound from POST/PUT /v1/invoices.
type InvoiceDraft struct {
	ProfileID *string `json:"profile_id" validate:"omitempty,uuid"`

	ClientName    string `json:"client_name"     validate:"required,min=1"`
	ClientEmail   string `json:"client_email"    validate:"omitempty,email"`
	ClientPhone   string `json:"client_phone"`
	ClientAddress string `json:"client_address"`
	ClientCity    string `json:"client_city"`
	ClientState   string `json:"client_state"`
	ClientZipCode string `json:"client_zip_code"`
	ClientCountry string `json:"client_country"`

	Items        []ItemDraft     `json:"items"         validate:"required,min=1,dive"`
	TaxRate      decimal.Decimal `json:"tax_rate"      validate:"min=0,max=100"`
	DiscountRate decimal.Decimal `json:"discount_rate" validate:"min=0,max=100"`

	Notes     string `json:"notes"`
	IssueDate string `json:"issue_date" validate:"required,datetime=2006-01-02"`
	DueDate   string `json:"due_date"   validate:"required,datetime=2006-01-02"`
	Status    string `json:"status"     validate:"omitempty,oneof=draft sent paid overdue"`
	Template  string `json:"template"   validate:"omitempty,oneof=modern classic minimal professional corporate elegant creative"`
	Currency  string `json:"currency"   validate:"omitempty,len=3"`
}
