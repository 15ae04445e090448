package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

// SendEmailRequest is bound from POST /v1/{receipts,invoices}/:id/email.
// ToEmail overrides the address stored on the document; Message replaces the
// lead paragraph of the standard body.
type SendEmailRequest struct {
	ToEmail string `json:"to_email" validate:"omitempty,email"`
	Message string `json:"message"  validate:"omitempty,max=2000"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

// SendEmailResponse acknowledges that delivery was queued, not that it
// happened — the worker reports the outcome to the log and the DLQ.
type SendEmailResponse struct {
	Queued  bool   `json:"queued"`
	ToEmail string `json:"to_email"`
	PDFFile string `json:"pdf_file"`
}
