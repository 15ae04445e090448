package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

// ProfileRequest is bound from POST /v1/profiles and PUT /v1/profiles/:id.
type ProfileRequest struct {
	Name      string `json:"name"    validate:"required,min=1"`
	Email     string `json:"email"   validate:"required,email"`
	Phone     string `json:"phone"   validate:"required,min=3"`
	Address   string `json:"address" validate:"required,min=3"`
	City      string `json:"city"    validate:"required,min=1"`
	State     string `json:"state"`
	ZipCode   string `json:"zip_code"`
	Country   string `json:"country" validate:"required,min=2"`
	Website   string `json:"website"    validate:"omitempty,url"`
	Logo      string `json:"logo"`
	TaxNumber string `json:"tax_number"`
}

// SetCurrentProfileRequest selects the active profile for new documents.
type SetCurrentProfileRequest struct {
	ProfileID string `json:"profile_id" validate:"required,uuid"`
}
