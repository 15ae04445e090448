package mail

import (
	"testing"
	"time"

	"github.com/jaksoftwares/ReceiptPro/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleDoc() model.Document {
	rec := model.Receipt{
		ReceiptNumber:   "RCP-20240115-001",
		BusinessProfile: model.BusinessProfile{Name: "Acme Traders", Email: "hello@acme.test", Phone: "555-0101"},
		CustomerName:    "Jordan Diaz",
		CustomerEmail:   "jordan@example.com",
		PaymentMethod:   model.PaymentCard,
		TransactionDate: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		Currency:        "USD",
		Total:           decimal.RequireFromString("108.00"),
	}
	return rec.Document()
}

func TestDefaultSubject(t *testing.T) {
	assert.Equal(t, "Receipt RCP-20240115-001 from Acme Traders", DefaultSubject(sampleDoc()))
}

func TestDefaultBodyStandardText(t *testing.T) {
	body := DefaultBody(sampleDoc(), "")

	assert.Contains(t, body, "Dear Jordan Diaz,")
	assert.Contains(t, body, "Thank you for your purchase!")
	assert.Contains(t, body, "Receipt Number: RCP-20240115-001")
	assert.Contains(t, body, "Date: January 15, 2024")
	assert.Contains(t, body, "Payment: CARD")
	assert.Contains(t, body, "Total Amount: USD 108.00")
	assert.Contains(t, body, "Best regards,\nAcme Traders")
	assert.Contains(t, body, "555-0101")
}

func TestDefaultBodyCustomMessageReplacesLead(t *testing.T) {
	body := DefaultBody(sampleDoc(), "Resending after the address fix.")

	assert.Contains(t, body, "Resending after the address fix.")
	assert.NotContains(t, body, "Thank you for your purchase!")
	// The summary block always stays.
	assert.Contains(t, body, "Receipt Number: RCP-20240115-001")
}

func TestConfigFromSettingsDefaults(t *testing.T) {
	cfg := ConfigFromSettings(model.EmailSettings{
		SMTPHost:     "smtp.acme.test",
		SMTPUsername: "mailer@acme.test",
		SMTPPassword: "hunter2",
	})

	assert.Equal(t, 587, cfg.Port, "port defaults to submission")
	assert.Equal(t, "mailer@acme.test", cfg.From, "from defaults to the username")
}

func TestSendRejectsMissingConfiguration(t *testing.T) {
	m := NewMailer()

	err := m.Send(Config{}, Message{ToEmail: "jordan@example.com"})
	require.ErrorIs(t, err, ErrNotConfigured)
}
