package directory

import (
	"strings"

	"morisbiz/models"
)

// validateBusiness checks the required submission fields.
func validateBusiness(b *models.Business) error {
	if strings.TrimSpace(b.Name) == "" {
		return models.NewValidationError("name", "required")
	}
	if strings.TrimSpace(b.Category) == "" {
		return models.NewValidationError("category", "required")
	}
	if !models.KnownCategory(b.Category) {
		return models.NewValidationError("category", "unknown category")
	}
	if strings.TrimSpace(b.Description) == "" {
		return models.NewValidationError("description", "required")
	}
	if strings.TrimSpace(b.Email) == "" {
		return models.NewValidationError("email", "required")
	}
	if !strings.Contains(b.Email, "@") {
		return models.NewValidationError("email", "not a valid address")
	}
	if strings.TrimSpace(b.Phone) == "" {
		return models.NewValidationError("phone", "required")
	}
	if strings.TrimSpace(b.Location) == "" {
		return models.NewValidationError("location", "required")
	}
	if !models.KnownLocation(b.Location) {
		return models.NewValidationError("location", "unknown location")
	}
	return nil
}
