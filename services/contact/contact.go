package contact

import (
	"errors"
	"regexp"
	"strings"

	contactRepo "dialhub/database/repository/contact"
	"dialhub/models"

	"github.com/google/uuid"
)

// ContactService manages a user's CRM contact book.
type ContactService interface {
	Create(userID string, req models.ContactRequest) (*models.Contact, error)
	Update(userID, id string, req models.ContactRequest) (*models.Contact, error)
	Delete(userID, id string) error
	Get(userID, id string) (*models.Contact, error)
	List(userID string, page, limit int) ([]models.Contact, error)
}

// DefaultContactService is the production implementation.
type DefaultContactService struct {
	Repo contactRepo.ContactRepository
}

// Loose E.164-ish check; the calling provider does the strict one.
var phonePattern = regexp.MustCompile(`^\+?[0-9][0-9\-\s()]{6,18}$`)

var ErrContactNotFound = errors.New("contact not found")

func validStatus(status string) bool {
	switch status {
	case models.ContactStatusQueued, models.ContactStatusCalled, models.ContactStatusDoNotCall:
		return true
	}
	return false
}

func (s *DefaultContactService) Create(userID string, req models.ContactRequest) (*models.Contact, error) {
	phone := strings.TrimSpace(req.Phone)
	if !phonePattern.MatchString(phone) {
		return nil, errors.New("phone number does not look dialable")
	}

	status := req.Status
	if status == "" {
		status = models.ContactStatusQueued
	}
	if !validStatus(status) {
		return nil, errors.New("unknown contact status")
	}

	contact := &models.Contact{
		ID:      uuid.NewString(),
		UserID:  userID,
		Name:    strings.TrimSpace(req.Name),
		Phone:   phone,
		Email:   strings.TrimSpace(req.Email),
		Company: strings.TrimSpace(req.Company),
		Status:  status,
		Notes:   req.Notes,
	}
	if err := s.Repo.Create(contact); err != nil {
		return nil, err
	}
	return contact, nil
}

func (s *DefaultContactService) Update(userID, id string, req models.ContactRequest) (*models.Contact, error) {
	existing, err := s.Repo.GetByID(userID, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrContactNotFound
	}

	phone := strings.TrimSpace(req.Phone)
	if !phonePattern.MatchString(phone) {
		return nil, errors.New("phone number does not look dialable")
	}
	if req.Status != "" && !validStatus(req.Status) {
		return nil, errors.New("unknown contact status")
	}

	existing.Name = strings.TrimSpace(req.Name)
	existing.Phone = phone
	existing.Email = strings.TrimSpace(req.Email)
	existing.Company = strings.TrimSpace(req.Company)
	existing.Notes = req.Notes
	if req.Status != "" {
		existing.Status = req.Status
	}

	if err := s.Repo.Update(existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *DefaultContactService) Delete(userID, id string) error {
	return s.Repo.Delete(userID, id)
}

func (s *DefaultContactService) Get(userID, id string) (*models.Contact, error) {
	contact, err := s.Repo.GetByID(userID, id)
	if err != nil {
		return nil, err
	}
	if contact == nil {
		return nil, ErrContactNotFound
	}
	return contact, nil
}

func (s *DefaultContactService) List(userID string, page, limit int) ([]models.Contact, error) {
	return s.Repo.List(userID, page, limit)
}
