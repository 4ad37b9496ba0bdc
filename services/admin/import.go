package admin

import (
	"fmt"
	"time"

	"morisbiz/models"
)

// DuplicateCompanyError signals that an import matched an existing listing
// by name and email.
type DuplicateCompanyError struct {
	Name string
}

func (e *DuplicateCompanyError) Error() string {
	return fmt.Sprintf("company %q already exists", e.Name)
}

// ImportCompany inserts one externally sourced business. Imports go through
// the same validation-free repository path as submissions but are flagged so
// the moderation view can tell them apart; they still start pending.
func (s *DefaultAdminService) ImportCompany(b *models.Business) (string, error) {
	if b.Name == "" || b.Email == "" {
		return "", models.NewValidationError("name/email", "required for import deduplication")
	}

	existing, err := s.Businesses.FindByNameAndEmail(b.Name, b.Email)
	if err != nil {
		return "", err
	}
	if existing != nil {
		return "", &DuplicateCompanyError{Name: b.Name}
	}

	now := time.Now()
	b.Imported = true
	b.ImportedAt = &now
	return s.Businesses.Create(b)
}

// BulkImport runs a batch of imports, recording per-entry failures rather
// than aborting the batch.
func (s *DefaultAdminService) BulkImport(companies []models.Business) BulkImportResult {
	var result BulkImportResult
	for i := range companies {
		if _, err := s.ImportCompany(&companies[i]); err != nil {
			result.Failed++
			result.Errors = append(result.Errors, ImportError{
				Company: companies[i].Name,
				Reason:  err.Error(),
			})
			continue
		}
		result.Succeeded++
	}
	return result
}
