package pdf

import (
	"bytes"
	"fmt"

	"github.com/jaksoftwares/ReceiptPro/internal/model"

	"github.com/go-pdf/fpdf"
)

// Fallback text layout: the same header / parties / items / totals / notes
// structure drawn with text and line primitives, cursor advancing top to
// bottom with an explicit page break whenever the cursor nears the bottom
// margin. No template styling beyond the accent title.

const (
	fbMargin  = 20.0
	fbBreakAt = PageHeightMM - 40 // start a new page before writing past this
	fbLineH   = 6.0
)

type fallbackLayout struct {
	doc *fpdf.Fpdf
	y   float64
}

func (l *fallbackLayout) ensureRoom() {
	if l.y > fbBreakAt {
		l.doc.AddPage()
		l.y = fbMargin
	}
}

// clipDescription keeps a description on one table row. Counting runes, not
// bytes, so a multi-byte character is never cut in half.
func clipDescription(s string) string {
	runes := []rune(s)
	if len(runes) <= 48 {
		return s
	}
	return string(runes[:47]) + "…"
}

func (l *fallbackLayout) textAt(x float64, align, s string) {
	l.doc.SetXY(x, l.y)
	w := 0.0
	if align == "R" || align == "C" {
		w = l.doc.GetStringWidth(s) + 1
		l.doc.SetX(x - w)
		if align == "C" {
			l.doc.SetX(x - w/2)
		}
	}
	l.doc.CellFormat(w, fbLineH, s, "", 0, "L", false, 0, "")
}

func emitFallbackPDF(record model.Document) ([]byte, int, error) {
	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetCompression(false)
	doc.AddPage()

	l := &fallbackLayout{doc: doc, y: fbMargin}

	// ── Header ───────────────────────────────────────────────────────────────
	doc.SetFont("Helvetica", "B", 24)
	doc.SetTextColor(59, 130, 246)
	l.textAt(PageWidthMM/2, "C", record.Title())
	l.y += 15

	doc.SetFont("Helvetica", "", 12)
	doc.SetTextColor(0, 0, 0)
	l.textAt(fbMargin, "L", fmt.Sprintf("%s #: %s", record.Title(), record.Number))
	l.textAt(PageWidthMM-fbMargin, "R", record.DateLabel+": "+record.Date.Format("01/02/2006"))
	l.y += 10
	l.textAt(PageWidthMM-fbMargin, "R", record.ExtraLabel+": "+record.ExtraValue)
	l.y += 18

	// ── Parties ──────────────────────────────────────────────────────────────
	doc.SetFont("Helvetica", "B", 14)
	l.textAt(fbMargin, "L", "From:")
	l.textAt(PageWidthMM/2+10, "L", "To:")
	l.y += 8

	doc.SetFont("Helvetica", "", 10)
	fromLines := record.Profile.AddressLines()
	toLines := record.PartyLines
	maxLines := len(fromLines)
	if len(toLines) > maxLines {
		maxLines = len(toLines)
	}
	startY := l.y
	for i, line := range fromLines {
		l.y = startY + float64(i)*5
		l.textAt(fbMargin, "L", line)
	}
	for i, line := range toLines {
		l.y = startY + float64(i)*5
		l.textAt(PageWidthMM/2+10, "L", line)
	}
	l.y = startY + float64(maxLines)*5 + 15

	// ── Items table ──────────────────────────────────────────────────────────
	doc.SetFont("Helvetica", "B", 10)
	l.textAt(fbMargin, "L", "Description")
	l.textAt(PageWidthMM-80, "C", "Qty")
	l.textAt(PageWidthMM-60, "R", "Price")
	l.textAt(PageWidthMM-fbMargin, "R", "Amount")
	l.y += 5
	doc.Line(fbMargin, l.y, PageWidthMM-fbMargin, l.y)
	l.y += 8

	doc.SetFont("Helvetica", "", 10)
	for _, item := range record.Items {
		l.ensureRoom()
		l.textAt(fbMargin, "L", clipDescription(item.Description))
		l.textAt(PageWidthMM-80, "C", item.Quantity.String())
		l.textAt(PageWidthMM-60, "R", record.Money(item.UnitPrice))
		l.textAt(PageWidthMM-fbMargin, "R", record.Money(item.Amount))
		l.y += fbLineH
	}

	l.y += 10
	l.ensureRoom()
	doc.Line(PageWidthMM-100, l.y, PageWidthMM-fbMargin, l.y)
	l.y += 8

	// ── Totals ───────────────────────────────────────────────────────────────
	totalsX := PageWidthMM - 100
	l.ensureRoom()
	l.textAt(totalsX, "L", "Subtotal: "+record.Money(record.Subtotal))
	l.y += fbLineH
	if record.DiscountAmount.IsPositive() {
		l.ensureRoom()
		l.textAt(totalsX, "L", "Discount: "+record.Money(record.DiscountAmount))
		l.y += fbLineH
	}
	if record.TaxAmount.IsPositive() {
		l.ensureRoom()
		l.textAt(totalsX, "L", "Tax: "+record.Money(record.TaxAmount))
		l.y += fbLineH
	}
	l.ensureRoom()
	doc.SetFont("Helvetica", "B", 12)
	l.textAt(totalsX, "L", "Total: "+record.Money(record.Total))
	l.y += fbLineH

	// ── Notes ────────────────────────────────────────────────────────────────
	if record.Notes != "" {
		l.y += 14
		l.ensureRoom()
		doc.SetFont("Helvetica", "B", 10)
		l.textAt(fbMargin, "L", "Notes:")
		l.y += fbLineH
		doc.SetFont("Helvetica", "", 10)
		for _, line := range doc.SplitLines([]byte(record.Notes), PageWidthMM-2*fbMargin) {
			l.ensureRoom()
			l.textAt(fbMargin, "L", string(line))
			l.y += 5
		}
	}

	pages := doc.PageNo()

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, 0, err
	}
	return buf.Bytes(), pages, nil
}
