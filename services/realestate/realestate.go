package realestate

import (
	"strings"

	"morisbiz/models"
)

// ListProperties returns properties matching the criteria. Band and explicit
// price bounds are resolved by the repository; the sort is applied after
// filtering and only the named sort key is honoured.
func (s *DefaultRealEstateService) ListProperties(criteria models.PropertyCriteria) ([]models.Property, error) {
	if criteria.Type != "" && criteria.Type != models.PropertySale && criteria.Type != models.PropertyRent {
		return nil, models.NewValidationError("type", "must be sale or rent")
	}
	if criteria.Band != "" && !criteria.Band.Valid() {
		return nil, models.NewValidationError("band", "unknown price band")
	}
	return s.Repo.List(criteria)
}

// GetProperty fetches one property by ID.
func (s *DefaultRealEstateService) GetProperty(id string) (*models.Property, error) {
	return s.Repo.GetByID(id)
}

// CreateProperty validates and persists a public submission. The repository
// forces the pending state.
func (s *DefaultRealEstateService) CreateProperty(p *models.Property) (string, error) {
	if strings.TrimSpace(p.Title) == "" {
		return "", models.NewValidationError("title", "required")
	}
	if p.Type != models.PropertySale && p.Type != models.PropertyRent {
		return "", models.NewValidationError("type", "must be sale or rent")
	}
	if p.Price < 0 {
		return "", models.NewValidationError("price", "must not be negative")
	}
	if strings.TrimSpace(p.Location) == "" {
		return "", models.NewValidationError("location", "required")
	}
	if !models.KnownLocation(p.Location) {
		return "", models.NewValidationError("location", "unknown location")
	}
	if p.Bedrooms < 0 || p.Bathrooms < 0 || p.Area < 0 {
		return "", models.NewValidationError("rooms", "must not be negative")
	}
	return s.Repo.Create(p)
}
