package contact

import (
	"sort"
	"testing"
	"time"

	"morisbiz/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeContactRepo struct {
	byID map[string]*models.ContactSubmission
}

func newFakeContactRepo() *fakeContactRepo {
	return &fakeContactRepo{byID: make(map[string]*models.ContactSubmission)}
}

func (f *fakeContactRepo) Create(s *models.ContactSubmission) (string, error) {
	s.ID = uuid.NewString()
	s.SubmittedAt = time.Now()
	s.Read = false

	clone := *s
	f.byID[s.ID] = &clone
	return s.ID, nil
}

func (f *fakeContactRepo) List() ([]models.ContactSubmission, error) {
	var out []models.ContactSubmission
	for _, s := range f.byID {
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SubmittedAt.After(out[j].SubmittedAt) })
	return out, nil
}

func (f *fakeContactRepo) GetByID(id string) (*models.ContactSubmission, error) {
	s, ok := f.byID[id]
	if !ok {
		return nil, nil
	}
	clone := *s
	return &clone, nil
}

func (f *fakeContactRepo) MarkRead(id string) error {
	s, ok := f.byID[id]
	if !ok {
		return &models.NotFoundError{Entity: "contact submission", ID: id}
	}
	now := time.Now()
	s.Read = true
	s.ReadAt = &now
	return nil
}

func validSubmission() *models.ContactSubmission {
	return &models.ContactSubmission{
		Name:    "Jane",
		Email:   "jane@example.com",
		Message: "Please list my shop",
	}
}

func TestSubmitStoresUnread(t *testing.T) {
	repo := newFakeContactRepo()
	svc := &DefaultContactService{Repo: repo}

	sub := validSubmission()
	sub.Read = true // caller cannot pre-mark a message read

	id, err := svc.Submit(sub)
	require.NoError(t, err)

	got, err := repo.GetByID(id)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.False(t, got.Read)
	assert.False(t, got.SubmittedAt.IsZero())
}

func TestSubmitValidation(t *testing.T) {
	svc := &DefaultContactService{Repo: newFakeContactRepo()}

	cases := []struct {
		name   string
		mutate func(*models.ContactSubmission)
	}{
		{"missing name", func(s *models.ContactSubmission) { s.Name = "  " }},
		{"missing email", func(s *models.ContactSubmission) { s.Email = "" }},
		{"malformed email", func(s *models.ContactSubmission) { s.Email = "jane.example.com" }},
		{"missing message", func(s *models.ContactSubmission) { s.Message = "" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sub := validSubmission()
			tc.mutate(sub)
			_, err := svc.Submit(sub)
			require.Error(t, err)
			assert.True(t, models.IsValidation(err))
		})
	}
}

func TestMarkAsRead(t *testing.T) {
	repo := newFakeContactRepo()
	svc := &DefaultContactService{Repo: repo}

	id, err := svc.Submit(validSubmission())
	require.NoError(t, err)

	require.NoError(t, svc.MarkAsRead(id))

	got, err := repo.GetByID(id)
	require.NoError(t, err)
	assert.True(t, got.Read)
	require.NotNil(t, got.ReadAt)

	err = svc.MarkAsRead("missing")
	assert.True(t, models.IsNotFound(err))
}
