package mail

import (
	"fmt"
	"strings"

	"github.com/jaksoftwares/ReceiptPro/internal/model"
)

// DefaultSubject builds "Receipt RCP-… from Acme" / "Invoice INV-… from Acme".
func DefaultSubject(doc model.Document) string {
	return fmt.Sprintf("%s %s from %s", titleCase(string(doc.Type)), doc.Number, doc.Profile.Name)
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// DefaultBody reproduces the standard thank-you message with the document
// summary block. A custom message from the caller replaces only the lead
// paragraph; the summary and signature always appear.
func DefaultBody(doc model.Document, customMessage string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Dear %s,\n\n", doc.PartyName)

	if customMessage != "" {
		b.WriteString(customMessage)
		b.WriteString("\n\n")
	} else if doc.Type == model.DocTypeReceipt {
		fmt.Fprintf(&b, "Thank you for your purchase! Please find attached your receipt %s for your recent transaction.\n\n", doc.Number)
	} else {
		fmt.Fprintf(&b, "Please find attached invoice %s. Payment is due by %s.\n\n", doc.Number, doc.ExtraValue)
	}

	kind := titleCase(string(doc.Type))
	fmt.Fprintf(&b, "%s Details:\n", kind)
	fmt.Fprintf(&b, "- %s Number: %s\n", kind, doc.Number)
	fmt.Fprintf(&b, "- %s: %s\n", doc.DateLabel, doc.Date.Format("January 02, 2006"))
	fmt.Fprintf(&b, "- %s: %s\n", doc.ExtraLabel, doc.ExtraValue)
	fmt.Fprintf(&b, "- Total Amount: %s\n", doc.Money(doc.Total))

	if doc.Notes != "" {
		fmt.Fprintf(&b, "\nAdditional Notes:\n%s\n", doc.Notes)
	}

	fmt.Fprintf(&b, "\nThank you for choosing %s! We appreciate your business.\n\n", doc.Profile.Name)
	fmt.Fprintf(&b, "Best regards,\n%s", doc.Profile.Name)
	if doc.Profile.Email != "" {
		b.WriteString("\n" + doc.Profile.Email)
	}
	if doc.Profile.Phone != "" {
		b.WriteString("\n" + doc.Profile.Phone)
	}
	return b.String()
}
