package contact

import (
	"testing"

	"dialhub/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeContactRepo struct {
	contacts map[string]*models.Contact
}

func newFakeContactRepo() *fakeContactRepo {
	return &fakeContactRepo{contacts: make(map[string]*models.Contact)}
}

func (r *fakeContactRepo) Create(c *models.Contact) error {
	r.contacts[c.ID] = c
	return nil
}

func (r *fakeContactRepo) Update(c *models.Contact) error {
	r.contacts[c.ID] = c
	return nil
}

func (r *fakeContactRepo) Delete(userID, id string) error {
	delete(r.contacts, id)
	return nil
}

func (r *fakeContactRepo) GetByID(userID, id string) (*models.Contact, error) {
	c, ok := r.contacts[id]
	if !ok || c.UserID != userID {
		return nil, nil
	}
	return c, nil
}

func (r *fakeContactRepo) List(userID string, page, limit int) ([]models.Contact, error) {
	var out []models.Contact
	for _, c := range r.contacts {
		if c.UserID == userID {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (r *fakeContactRepo) ListByStatus(userID, status string, limit int) ([]models.Contact, error) {
	var out []models.Contact
	for _, c := range r.contacts {
		if c.UserID == userID && c.Status == status {
			out = append(out, *c)
		}
	}
	return out, nil
}

func TestCreateContact(t *testing.T) {
	svc := &DefaultContactService{Repo: newFakeContactRepo()}

	created, err := svc.Create("user-1", models.ContactRequest{
		Name:  "  Dana Reyes ",
		Phone: "+1 (555) 010-2345",
	})
	require.NoError(t, err)
	assert.Equal(t, "Dana Reyes", created.Name)
	assert.Equal(t, models.ContactStatusQueued, created.Status)
	assert.NotEmpty(t, created.ID)
}

func TestCreateContact_RejectsBadPhone(t *testing.T) {
	svc := &DefaultContactService{Repo: newFakeContactRepo()}

	_, err := svc.Create("user-1", models.ContactRequest{Name: "Dana", Phone: "call me maybe"})
	assert.Error(t, err)
}

func TestCreateContact_RejectsUnknownStatus(t *testing.T) {
	svc := &DefaultContactService{Repo: newFakeContactRepo()}

	_, err := svc.Create("user-1", models.ContactRequest{
		Name: "Dana", Phone: "+15550102345", Status: "lukewarm",
	})
	assert.Error(t, err)
}

func TestUpdateContact_ScopedToOwner(t *testing.T) {
	repo := newFakeContactRepo()
	svc := &DefaultContactService{Repo: repo}

	created, err := svc.Create("user-1", models.ContactRequest{Name: "Dana", Phone: "+15550102345"})
	require.NoError(t, err)

	_, err = svc.Update("user-2", created.ID, models.ContactRequest{Name: "X", Phone: "+15550102345"})
	assert.ErrorIs(t, err, ErrContactNotFound)
}

func TestGetContact_NotFound(t *testing.T) {
	svc := &DefaultContactService{Repo: newFakeContactRepo()}

	_, err := svc.Get("user-1", "missing")
	assert.ErrorIs(t, err, ErrContactNotFound)
}
