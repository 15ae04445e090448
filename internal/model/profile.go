package model

import (
	"time"

	"github.com/google/uuid"
)

// BusinessProfile is the reusable sender identity attached to documents.
// Logo holds a data-URI or base64 PNG/JPEG payload; it is optional, as are
// Website and TaxNumber.
type BusinessProfile struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address"`
	City      string    `json:"city"`
	State     string    `json:"state"`
	ZipCode   string    `json:"zip_code"`
	Country   string    `json:"country"`
	Website   string    `json:"website,omitempty"`
	Logo      string    `json:"logo,omitempty"`
	TaxNumber string    `json:"tax_number,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AddressLines returns the non-empty contact lines in display order,
// mirroring the "From:" block of the rendered document.
func (p BusinessProfile) AddressLines() []string {
	lines := make([]string, 0, 6)
	cityLine := p.City
	if p.State != "" {
		cityLine += ", " + p.State
	}
	if p.ZipCode != "" {
		cityLine += " " + p.ZipCode
	}
	for _, l := range []string{p.Name, p.Email, p.Phone, p.Address, cityLine, p.Country} {
		if l != "" {
			lines = append(lines, l)
		}
	}
	return lines
}
