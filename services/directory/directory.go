package directory

import (
	"math"

	"morisbiz/models"
	"morisbiz/utils"

	"go.uber.org/zap"
)

// ListBusinesses returns businesses matching the criteria. Structured
// filters are delegated to the repository's native query support.
func (s *DefaultDirectoryService) ListBusinesses(criteria models.BusinessCriteria) ([]models.Business, error) {
	return s.Repo.List(criteria)
}

// GetBusiness fetches one business by ID.
func (s *DefaultDirectoryService) GetBusiness(id string) (*models.Business, error) {
	return s.Repo.GetByID(id)
}

// ViewBusiness fetches one business and bumps its view counter. The counter
// write runs off the request path; a failed increment is logged, never
// surfaced to the visitor.
func (s *DefaultDirectoryService) ViewBusiness(id string) (*models.Business, error) {
	b, err := s.Repo.GetByID(id)
	if err != nil || b == nil {
		return b, err
	}
	go func() {
		if err := s.Repo.IncrementViews(id); err != nil {
			utils.GetLogger().Warn("failed to record business view",
				zap.String("id", id), zap.Error(err))
		}
	}()
	return b, nil
}

// CreateBusiness validates and persists a public submission. The repository
// forces the initial approval state and counters.
func (s *DefaultDirectoryService) CreateBusiness(b *models.Business) (string, error) {
	if err := validateBusiness(b); err != nil {
		return "", err
	}
	return s.Repo.Create(b)
}

// UpdateBusiness merges changed fields into a listing.
func (s *DefaultDirectoryService) UpdateBusiness(id string, upd models.BusinessUpdate) error {
	if upd.Category != nil && !models.KnownCategory(*upd.Category) {
		return models.NewValidationError("category", "unknown category")
	}
	if upd.Location != nil && !models.KnownLocation(*upd.Location) {
		return models.NewValidationError("location", "unknown location")
	}
	return s.Repo.Update(id, upd)
}

// AddReview appends a review and stores the recomputed average rating,
// rounded to one decimal.
func (s *DefaultDirectoryService) AddReview(id string, review models.Review) error {
	if review.Rating < 1 || review.Rating > 5 {
		return models.NewValidationError("rating", "must be between 1 and 5")
	}
	if review.Author == "" {
		return models.NewValidationError("author", "required")
	}

	b, err := s.Repo.GetByID(id)
	if err != nil {
		return err
	}
	if b == nil {
		return &models.NotFoundError{Entity: "business", ID: id}
	}

	sum := review.Rating
	for _, r := range b.Reviews {
		sum += r.Rating
	}
	avg := sum / float64(len(b.Reviews)+1)
	newRating := math.Round(avg*10) / 10

	return s.Repo.AddReview(id, review, newRating)
}

// FeaturedBusinesses returns the top-rated approved businesses.
func (s *DefaultDirectoryService) FeaturedBusinesses(limit int64) ([]models.Business, error) {
	if limit <= 0 {
		limit = 6
	}
	return s.Repo.List(models.BusinessCriteria{
		Status: models.StatusApproved,
		SortBy: models.SortRating,
		Limit:  limit,
	})
}
