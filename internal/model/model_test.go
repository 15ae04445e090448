package model

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestPaymentMethodValid(t *testing.T) {
	assert.True(t, PaymentBankTransfer.Valid())
	assert.False(t, PaymentMethod("bitcoin").Valid())
}

func TestTemplateIDValid(t *testing.T) {
	for _, id := range Templates() {
		assert.True(t, id.Valid(), string(id))
	}
	assert.False(t, TemplateID("brutalist").Valid())
}

func TestReceiptDocumentFlattening(t *testing.T) {
	rec := Receipt{
		ReceiptNumber:   "RCP-20240115-001",
		CustomerName:    "Jordan Diaz",
		CustomerEmail:   "jordan@example.com",
		CustomerAddress: "12 Main St",
		PaymentMethod:   PaymentBankTransfer,
		TransactionDate: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
	}
	doc := rec.Document()

	assert.Equal(t, DocTypeReceipt, doc.Type)
	assert.Equal(t, "Payment", doc.ExtraLabel)
	assert.Equal(t, "BANK TRANSFER", doc.ExtraValue)
	// Empty phone is dropped from the address block.
	assert.Equal(t, []string{"Jordan Diaz", "jordan@example.com", "12 Main St"}, doc.PartyLines)
}

func TestInvoiceDocumentFlattening(t *testing.T) {
	inv := Invoice{
		InvoiceNumber: "INV-20240115-001",
		ClientName:    "Globex LLC",
		IssueDate:     time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		DueDate:       time.Date(2024, 2, 14, 0, 0, 0, 0, time.UTC),
	}
	doc := inv.Document()

	assert.Equal(t, DocTypeInvoice, doc.Type)
	assert.Equal(t, "Due Date", doc.ExtraLabel)
	assert.Equal(t, "02/14/2024", doc.ExtraValue)
}

func TestDocumentMoney(t *testing.T) {
	doc := Document{Currency: "EUR"}
	assert.Equal(t, "EUR 108.00", doc.Money(decimal.RequireFromString("108")))

	// Missing currency falls back to USD.
	assert.Equal(t, "USD 0.00", Document{}.Money(decimal.Zero))
}

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()
	assert.Equal(t, "USD", s.Currency)
	assert.Equal(t, "MM/dd/yyyy", s.DateFormat)
	assert.True(t, s.DefaultTaxRate.IsZero())
	assert.False(t, s.Email.Configured())
}
