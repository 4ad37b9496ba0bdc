package directory

import (
	businessRepo "morisbiz/database/repository/business"
	"morisbiz/models"
)

// DirectoryService is the public-facing business catalog: browsing,
// free-text search, submissions and reviews.
type DirectoryService interface {
	// ListBusinesses returns businesses matching the criteria.
	ListBusinesses(criteria models.BusinessCriteria) ([]models.Business, error)
	// SearchBusinesses scans the collection for a case-insensitive
	// substring match on name, description, category or any service.
	SearchBusinesses(term string) ([]models.Business, error)
	// GetBusiness fetches one business; (nil, nil) when absent.
	GetBusiness(id string) (*models.Business, error)
	// ViewBusiness fetches one business and records the visit without
	// blocking the caller on the counter write.
	ViewBusiness(id string) (*models.Business, error)
	// CreateBusiness validates and persists a public submission.
	CreateBusiness(b *models.Business) (string, error)
	// UpdateBusiness merges changed fields into a listing.
	UpdateBusiness(id string, upd models.BusinessUpdate) error
	// AddReview appends a review and refreshes the average rating.
	AddReview(id string, review models.Review) error
	// FeaturedBusinesses returns the top-rated approved businesses.
	FeaturedBusinesses(limit int64) ([]models.Business, error)
}

// DefaultDirectoryService is the production implementation.
type DefaultDirectoryService struct {
	Repo businessRepo.BusinessRepository
}
