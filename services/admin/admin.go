package admin

import (
	"morisbiz/models"
)

// ListBusinesses returns businesses for the moderation views, including
// unapproved ones. Defaults to newest first like the admin pages expect.
func (s *DefaultAdminService) ListBusinesses(criteria models.BusinessCriteria) ([]models.Business, error) {
	if criteria.Status != "" && !criteria.Status.Valid() {
		return nil, models.NewValidationError("status", "unknown approval status")
	}
	if criteria.SortBy == models.SortNone {
		criteria.SortBy = models.SortNewest
	}
	return s.Businesses.List(criteria)
}

// ApproveBusiness moves a pending business into the public catalog.
func (s *DefaultAdminService) ApproveBusiness(id string) error {
	return s.Businesses.SetApprovalState(id, models.StatusApproved, "")
}

// RejectBusiness declines a pending business, keeping the reason for the
// submitter.
func (s *DefaultAdminService) RejectBusiness(id, reason string) error {
	return s.Businesses.SetApprovalState(id, models.StatusRejected, reason)
}

// DeleteBusiness removes a listing for good. Idempotent.
func (s *DefaultAdminService) DeleteBusiness(id string) error {
	return s.Businesses.Delete(id)
}

// ListProperties returns properties for the moderation views.
func (s *DefaultAdminService) ListProperties(criteria models.PropertyCriteria) ([]models.Property, error) {
	if criteria.Status != "" && !criteria.Status.Valid() {
		return nil, models.NewValidationError("status", "unknown approval status")
	}
	if criteria.SortBy == models.SortNone {
		criteria.SortBy = models.SortNewest
	}
	return s.Properties.List(criteria)
}

// ApproveProperty moves a pending property into the public listings.
func (s *DefaultAdminService) ApproveProperty(id string) error {
	return s.Properties.SetApprovalState(id, models.StatusApproved, "")
}

// RejectProperty declines a pending property.
func (s *DefaultAdminService) RejectProperty(id, reason string) error {
	return s.Properties.SetApprovalState(id, models.StatusRejected, reason)
}

// DeleteProperty removes a property listing. Idempotent.
func (s *DefaultAdminService) DeleteProperty(id string) error {
	return s.Properties.Delete(id)
}
