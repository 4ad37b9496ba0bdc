package propertyRepo

import (
	"morisbiz/models"
)

// PropertyRepository defines methods for real estate listing data access.
type PropertyRepository interface {
	// List retrieves properties matching the criteria, empty when none match.
	List(criteria models.PropertyCriteria) ([]models.Property, error)
	// GetByID retrieves a property by ID; (nil, nil) signals absence.
	GetByID(id string) (*models.Property, error)
	// GetAll retrieves the full collection.
	GetAll() ([]models.Property, error)
	// Create inserts a new property and returns its server-assigned ID.
	Create(p *models.Property) (string, error)
	// Update merges fields into an existing property document.
	Update(id string, fields map[string]interface{}) error
	// SetApprovalState transitions the approval state; only transitions out
	// of pending are accepted.
	SetApprovalState(id string, state models.ApprovalStatus, reason string) error
	// Delete removes a property; deleting an absent ID is a no-op.
	Delete(id string) error
}
