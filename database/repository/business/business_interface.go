package businessRepo

import (
	"morisbiz/models"
)

// BusinessRepository defines methods for business data access.
type BusinessRepository interface {
	// List retrieves businesses matching the criteria. An empty result is
	// not an error.
	List(criteria models.BusinessCriteria) ([]models.Business, error)
	// GetByID retrieves a business by its unique ID. Absence is signalled
	// by (nil, nil), not by an error.
	GetByID(id string) (*models.Business, error)
	// GetAll retrieves the full collection. Used by the free-text search
	// scan and the dashboard aggregation.
	GetAll() ([]models.Business, error)
	// FindByNameAndEmail retrieves a business matching both fields, or
	// (nil, nil) when none exists. Used for import deduplication.
	FindByNameAndEmail(name, email string) (*models.Business, error)
	// Create inserts a new business record and returns its server-assigned ID.
	Create(b *models.Business) (string, error)
	// Update merges the set fields into an existing record.
	Update(id string, upd models.BusinessUpdate) error
	// SetApprovalState transitions the approval state. Only transitions out
	// of pending are accepted; re-applying the current state is a no-op.
	SetApprovalState(id string, state models.ApprovalStatus, reason string) error
	// Delete removes a business record. Deleting an absent ID is a no-op.
	Delete(id string) error
	// IncrementViews atomically bumps the view counter by one.
	IncrementViews(id string) error
	// AddReview appends a review and stores the recomputed rating.
	AddReview(id string, review models.Review, newRating float64) error
}
