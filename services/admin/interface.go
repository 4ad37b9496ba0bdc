package admin

import (
	analyticsRepo "morisbiz/database/repository/analytics"
	businessRepo "morisbiz/database/repository/business"
	propertyRepo "morisbiz/database/repository/property"
	"morisbiz/models"

	"github.com/go-redis/redis/v8"
)

// AdminService covers moderation, the dashboard and bulk imports. Callers
// are assumed to be already authorized; the auth boundary lives in the
// middleware, not here.
type AdminService interface {
	// Authenticate checks the configured admin credentials and mints a JWT.
	Authenticate(email, password string) (string, error)

	// Moderation of business listings.
	ListBusinesses(criteria models.BusinessCriteria) ([]models.Business, error)
	ApproveBusiness(id string) error
	RejectBusiness(id, reason string) error
	DeleteBusiness(id string) error

	// Moderation of property listings.
	ListProperties(criteria models.PropertyCriteria) ([]models.Property, error)
	ApproveProperty(id string) error
	RejectProperty(id, reason string) error
	DeleteProperty(id string) error

	// DashboardStats computes the admin dashboard snapshot.
	DashboardStats() (*models.DashboardStats, error)

	// ImportCompany inserts one externally sourced business, deduplicated
	// by name and email. BulkImport runs a batch and collects per-entry
	// outcomes instead of stopping on the first failure.
	ImportCompany(b *models.Business) (string, error)
	BulkImport(companies []models.Business) BulkImportResult
}

// BulkImportResult summarises a batch import.
type BulkImportResult struct {
	Succeeded int           `json:"succeeded"`
	Failed    int           `json:"failed"`
	Errors    []ImportError `json:"errors,omitempty"`
}

// ImportError records why one batch entry was not imported.
type ImportError struct {
	Company string `json:"company"`
	Reason  string `json:"reason"`
}

// DefaultAdminService is the production implementation.
type DefaultAdminService struct {
	Businesses businessRepo.BusinessRepository
	Properties propertyRepo.PropertyRepository
	Analytics  analyticsRepo.AnalyticsRepository
	// Cache holds the dashboard snapshot between recomputes. Optional;
	// a nil client disables caching.
	Cache *redis.Client
}
