package contactRepo

import (
	"morisbiz/models"
)

// ContactRepository defines methods for contact submission data access.
// Submissions are created by the public form and only ever flipped to read;
// no delete path exists.
type ContactRepository interface {
	Create(s *models.ContactSubmission) (string, error)
	// List returns all submissions, newest first.
	List() ([]models.ContactSubmission, error)
	// GetByID retrieves a submission; (nil, nil) signals absence.
	GetByID(id string) (*models.ContactSubmission, error)
	// MarkRead flips the read flag and records when it happened.
	MarkRead(id string) error
}
