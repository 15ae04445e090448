package model

import "fmt"

// Enumerated fields are closed string types. Anything decoded from storage or
// a request body must pass Valid() before it reaches a finalized record.

// PaymentMethod is how a receipt was paid.
type PaymentMethod string

const (
	PaymentCash         PaymentMethod = "cash"
	PaymentCard         PaymentMethod = "card"
	PaymentBankTransfer PaymentMethod = "bank_transfer"
	PaymentMobileMoney  PaymentMethod = "mobile_money"
	PaymentCheck        PaymentMethod = "check"
	PaymentOther        PaymentMethod = "other"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentCash, PaymentCard, PaymentBankTransfer, PaymentMobileMoney, PaymentCheck, PaymentOther:
		return true
	}
	return false
}

// Label returns the display form, e.g. "BANK TRANSFER".
func (m PaymentMethod) Label() string {
	switch m {
	case PaymentCash:
		return "CASH"
	case PaymentCard:
		return "CARD"
	case PaymentBankTransfer:
		return "BANK TRANSFER"
	case PaymentMobileMoney:
		return "MOBILE MONEY"
	case PaymentCheck:
		return "CHECK"
	case PaymentOther:
		return "OTHER"
	default:
		return "UNKNOWN"
	}
}

// ReceiptStatus tracks the settlement state of a receipt.
type ReceiptStatus string

const (
	ReceiptCompleted     ReceiptStatus = "completed"
	ReceiptRefunded      ReceiptStatus = "refunded"
	ReceiptPartialRefund ReceiptStatus = "partial_refund"
)

func (s ReceiptStatus) Valid() bool {
	switch s {
	case ReceiptCompleted, ReceiptRefunded, ReceiptPartialRefund:
		return true
	}
	return false
}

// InvoiceStatus tracks the billing state of an invoice.
type InvoiceStatus string

const (
	InvoiceDraft   InvoiceStatus = "draft"
	InvoiceSent    InvoiceStatus = "sent"
	InvoicePaid    InvoiceStatus = "paid"
	InvoiceOverdue InvoiceStatus = "overdue"
)

func (s InvoiceStatus) Valid() bool {
	switch s {
	case InvoiceDraft, InvoiceSent, InvoicePaid, InvoiceOverdue:
		return true
	}
	return false
}

// TemplateID selects one of the fixed visual templates.
type TemplateID string

const (
	TemplateModern       TemplateID = "modern"
	TemplateClassic      TemplateID = "classic"
	TemplateMinimal      TemplateID = "minimal"
	TemplateProfessional TemplateID = "professional"
	TemplateCorporate    TemplateID = "corporate"
	TemplateElegant      TemplateID = "elegant"
	TemplateCreative     TemplateID = "creative"
)

// Templates lists every selectable template, in display order.
func Templates() []TemplateID {
	return []TemplateID{
		TemplateModern, TemplateClassic, TemplateMinimal, TemplateProfessional,
		TemplateCorporate, TemplateElegant, TemplateCreative,
	}
}

func (t TemplateID) Valid() bool {
	for _, known := range Templates() {
		if t == known {
			return true
		}
	}
	return false
}

// DocType distinguishes the two document kinds where shared code needs to.
type DocType string

const (
	DocTypeReceipt DocType = "receipt"
	DocTypeInvoice DocType = "invoice"
)

func (d DocType) Valid() bool {
	return d == DocTypeReceipt || d == DocTypeInvoice
}

// ParseDocType converts a path segment into a DocType.
func ParseDocType(s string) (DocType, error) {
	d := DocType(s)
	if !d.Valid() {
		return "", fmt.Errorf("unknown document type %q", s)
	}
	return d, nil
}
