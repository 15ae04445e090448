package pdf

import (
	"fmt"
	"time"

	"github.com/jaksoftwares/ReceiptPro/internal/model"
)

// Filename builds the deterministic download name:
// {doctype}-{documentNumber}-{exportDate}.pdf, e.g.
// receipt-RCP-20240101-007-2024-01-02.pdf
func Filename(docType model.DocType, number string, exportedAt time.Time) string {
	return fmt.Sprintf("%s-%s-%s.pdf", docType, number, exportedAt.Format("2006-01-02"))
}
