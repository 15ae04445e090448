package model

import "github.com/shopspring/decimal"

// EmailSettings holds the SMTP delivery configuration entered in Settings.
// It is read from the store and handed to the mailer per call — never held as
// mutable package state.
type EmailSettings struct {
	SMTPHost     string `json:"smtp_host"`
	SMTPPort     int    `json:"smtp_port"`
	SMTPUsername string `json:"smtp_username"`
	SMTPPassword string `json:"smtp_password"`
	FromAddress  string `json:"from_address,omitempty"`
}

// Configured reports whether the three required delivery values are present.
func (e EmailSettings) Configured() bool {
	return e.SMTPHost != "" && e.SMTPUsername != "" && e.SMTPPassword != ""
}

// Settings are the app-wide preferences used to prefill new documents.
type Settings struct {
	Currency       string          `json:"currency"`
	DefaultTaxRate decimal.Decimal `json:"default_tax_rate"`
	DateFormat     string          `json:"date_format"`
	Email          EmailSettings   `json:"email"`
}

// DefaultSettings are applied when nothing has been saved yet.
func DefaultSettings() Settings {
	return Settings{
		Currency:       "USD",
		DefaultTaxRate: decimal.Zero,
		DateFormat:     "MM/dd/yyyy",
	}
}
