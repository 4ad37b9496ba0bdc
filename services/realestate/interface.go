package realestate

import (
	propertyRepo "morisbiz/database/repository/property"
	"morisbiz/models"
)

// RealEstateService handles the public property browse and submission flows.
type RealEstateService interface {
	// ListProperties returns properties matching the criteria.
	ListProperties(criteria models.PropertyCriteria) ([]models.Property, error)
	// GetProperty fetches one property; (nil, nil) when absent.
	GetProperty(id string) (*models.Property, error)
	// CreateProperty validates and persists a public submission.
	CreateProperty(p *models.Property) (string, error)
}

// DefaultRealEstateService is the production implementation.
type DefaultRealEstateService struct {
	Repo propertyRepo.PropertyRepository
}
