package contact

import (
	"strings"

	contactRepo "morisbiz/database/repository/contact"
	"morisbiz/models"
)

// ContactService stores public contact form messages for admin review.
type ContactService interface {
	Submit(s *models.ContactSubmission) (string, error)
	ListSubmissions() ([]models.ContactSubmission, error)
	MarkAsRead(id string) error
}

// DefaultContactService is the production implementation.
type DefaultContactService struct {
	Repo contactRepo.ContactRepository
}

// Submit validates and stores a contact form message.
func (s *DefaultContactService) Submit(sub *models.ContactSubmission) (string, error) {
	if strings.TrimSpace(sub.Name) == "" {
		return "", models.NewValidationError("name", "required")
	}
	if strings.TrimSpace(sub.Email) == "" {
		return "", models.NewValidationError("email", "required")
	}
	if !strings.Contains(sub.Email, "@") {
		return "", models.NewValidationError("email", "not a valid address")
	}
	if strings.TrimSpace(sub.Message) == "" {
		return "", models.NewValidationError("message", "required")
	}
	return s.Repo.Create(sub)
}

// ListSubmissions returns every submission, newest first.
func (s *DefaultContactService) ListSubmissions() ([]models.ContactSubmission, error) {
	return s.Repo.List()
}

// MarkAsRead flips a submission's read flag.
func (s *DefaultContactService) MarkAsRead(id string) error {
	return s.Repo.MarkRead(id)
}
