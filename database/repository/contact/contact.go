package contactRepo

import "dialhub/models"

// ContactRepository defines persistence for a user's contact book.
type ContactRepository interface {
	Create(contact *models.Contact) error
	Update(contact *models.Contact) error
	Delete(userID, id string) error
	// GetByID returns (nil, nil) when no contact matches.
	GetByID(userID, id string) (*models.Contact, error)
	List(userID string, page, limit int) ([]models.Contact, error)
	// ListByStatus feeds the dispatcher its next batch.
	ListByStatus(userID, status string, limit int) ([]models.Contact, error)
}
