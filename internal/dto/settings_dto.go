package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

// EmailSettingsRequest carries the SMTP delivery values. All fields optional:
// delivery stays disabled until host, username and password are all present.
type EmailSettingsRequest struct {
	SMTPHost     string `json:"smtp_host"`
	SMTPPort     int    `json:"smtp_port"     validate:"omitempty,min=1,max=65535"`
	SMTPUsername string `json:"smtp_username" validate:"omitempty,email"`
	SMTPPassword string `json:"smtp_password"`
	FromAddress  string `json:"from_address"  validate:"omitempty,email"`
}

// SettingsRequest is bound from PUT /v1/settings. The whole document is
// replaced on every save.
type SettingsRequest struct {
	Currency       string               `json:"currency"         validate:"required,len=3"`
	DefaultTaxRate decimal.Decimal      `json:"default_tax_rate" validate:"min=0,max=100"`
	DateFormat     string               `json:"date_format"      validate:"required,oneof=MM/dd/yyyy dd/MM/yyyy yyyy-MM-dd"`
	Email          EmailSettingsRequest `json:"email"`
}
