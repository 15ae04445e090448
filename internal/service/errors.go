package service

import "errors"

// Sentinel errors mapped to HTTP statuses by the handlers.
var (
	ErrNotFound       = errors.New("record not found")
	ErrNoProfile      = errors.New("no business profile is configured")
	ErrExportInFlight = errors.New("an export for this document is already in progress")
	ErrNoRecipient    = errors.New("no recipient email address on the document")
)
