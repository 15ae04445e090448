package dto

import "github.com/jaksoftwares/ReceiptPro/internal/model"

// ─── Response DTOs ───────────────────────────────────────────────────────────

// DataBundle is the full-database backup returned by GET /v1/export.
// Version identifies the bundle layout for future imports.
type DataBundle struct {
	Version          string                  `json:"version"`
	ExportDate       string                  `json:"exportDate"`
	BusinessProfiles []model.BusinessProfile `json:"businessProfiles"`
	CurrentProfileID string                  `json:"currentProfileId,omitempty"`
	Receipts         []model.Receipt         `json:"receipts"`
	Invoices         []model.Invoice         `json:"invoices"`
	Settings         model.Settings          `json:"settings"`
}
